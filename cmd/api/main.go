package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/safe-leads/internal/config"
	"github.com/xavierca1/safe-leads/internal/content"
	"github.com/xavierca1/safe-leads/internal/infra/database"
	"github.com/xavierca1/safe-leads/internal/infra/http/handlers"
	appmw "github.com/xavierca1/safe-leads/internal/infra/http/middleware"
	"github.com/xavierca1/safe-leads/internal/infra/integration/kommo"
	"github.com/xavierca1/safe-leads/internal/infra/mail"
	"github.com/xavierca1/safe-leads/internal/infra/queue"
	"github.com/xavierca1/safe-leads/internal/infra/worker"
	"github.com/xavierca1/safe-leads/internal/usecase"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDBConnection(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("❌ migrate: %v", err)
	}

	catalog, err := content.Default(cfg.SiteURL)
	if err != nil {
		log.Fatalf("❌ content catalog: %v", err)
	}

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	contactRepo := database.NewContactRepository(db)
	inquiryRepo := database.NewInquiryRepository(db)
	chatRepo := database.NewChatRepository(db)
	courseRepo := database.NewCourseSubscriptionRepository(db)

	// 2. Email transport: API first, SMTP when the API quota runs out
	var primary, fallback mail.Sender
	if cfg.SendGridAPIKey != "" {
		primary = mail.NewAPIClient(cfg.SendGridAPIKey, cfg.SendGridBaseURL, cfg.MailFromName)
		if cfg.SMTPHost != "" && cfg.SMTPPassword != "" {
			fallback = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFromName)
		}
	} else {
		log.Println("⚠️ SENDGRID_API_KEY not set, emails will not be sent")
	}
	transport := mail.NewTransport(primary, fallback, cfg.MailFrom, cfg.OperatorEmail)

	// 3. Optional event bus
	var events usecase.EventPublisher
	var rabbitConn *amqp091.Connection
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("⚠️ RabbitMQ unavailable, events disabled: %v", err)
		} else {
			defer rabbitMQ.Close()
			rabbitConn = rabbitMQ.Conn
			events = queue.NewProducer(rabbitMQ.Ch)
			startCRMSync(ctx, cfg, rabbitMQ)
		}
	}

	// 4. UseCases
	dripUC := usecase.NewProcessDailyEmailsUseCase(courseRepo, catalog, transport)
	enrollUC := usecase.NewEnrollCourseUseCase(courseRepo, catalog, dripUC)
	submitLeadUC := usecase.NewSubmitLeadUseCase(leadRepo, catalog, transport, events)
	submitContactUC := usecase.NewSubmitContactUseCase(contactRepo)
	submitInquiryUC := usecase.NewSubmitInquiryUseCase(inquiryRepo, transport, events)
	inquiryAdminUC := usecase.NewInquiryAdminUseCase(inquiryRepo)
	chatUC := usecase.NewChatUseCase(chatRepo)

	// 5. Drip scheduler
	if cfg.DripEnabled {
		dripWorker := worker.NewDripWorker(dripUC, catalog.CourseTypes(), cfg.DripInterval)
		go dripWorker.Start(ctx)
	}

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(submitLeadUC)
	contactHandler := handlers.NewContactHandler(submitContactUC)
	inquiryHandler := handlers.NewInquiryHandler(submitInquiryUC, inquiryAdminUC)
	chatHandler := handlers.NewChatHandler(chatUC)
	courseHandler := handlers.NewCourseHandler(enrollUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, transport.Enabled(), cfg.DripEnabled)

	// 7. Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(appmw.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		intakeLimit := appmw.RateLimitByIP(cfg.LeadRateLimit, time.Minute)
		r.With(intakeLimit).Post("/leads", leadHandler.CaptureLead)
		r.With(intakeLimit).Post("/contacts", contactHandler.Handle)
		r.Post("/inquiries", inquiryHandler.Create)

		r.Post("/courses/{courseType}/subscribe", courseHandler.Subscribe)

		r.Post("/chat/session", chatHandler.StartSession)
		r.Post("/chat/messages", chatHandler.PostMessage)
		r.Get("/chat/messages/{sessionId}", chatHandler.History)

		r.Route("/admin", func(r chi.Router) {
			r.Use(appmw.AdminAuth(cfg.AdminToken))
			r.Get("/inquiries", inquiryHandler.List)
			r.Get("/inquiries/{id}", inquiryHandler.Get)
			r.Patch("/inquiries/{id}/read", inquiryHandler.MarkRead)
			r.Patch("/inquiries/{id}/unread", inquiryHandler.MarkUnread)
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🔥 SAFe leads API running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("⚠️ shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ shutdown: %v", err)
	}
}

// startCRMSync consumes lead and inquiry events on a dedicated channel and
// pushes them into Kommo. It is a no-op without a Kommo token.
func startCRMSync(ctx context.Context, cfg *config.Config, rabbitMQ *queue.RabbitMQ) {
	if cfg.KommoAPIToken == "" || cfg.KommoBaseURL == "" {
		log.Println("[CRM] Kommo not configured, events stay in the queue")
		return
	}
	ch, err := rabbitMQ.Conn.Channel()
	if err != nil {
		log.Printf("⚠️ [CRM] open consumer channel: %v", err)
		return
	}
	client := kommo.NewClient(cfg.KommoAPIToken, cfg.KommoBaseURL, cfg.KommoPipelineID)
	crmWorker := queue.NewCRMSyncWorker(ch, kommo.NewSyncer(client))
	go func() {
		defer ch.Close()
		if err := crmWorker.Start(ctx); err != nil {
			log.Printf("❌ [CRM] worker: %v", err)
		}
	}()
}
