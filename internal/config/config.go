package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	DBDriver    string

	SendGridAPIKey  string
	SendGridBaseURL string
	MailFrom        string
	MailFromName    string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPassword    string
	OperatorEmail   string

	SiteURL        string
	AllowedOrigins []string
	AdminToken     string
	RabbitMQURL    string

	KommoAPIToken   string
	KommoBaseURL    string
	KommoPipelineID int

	DripEnabled   bool
	DripInterval  time.Duration
	LeadRateLimit int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	apiKey := getEnv("SENDGRID_API_KEY", "")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBDriver:    getEnv("DB_DRIVER", "pgx"),

		SendGridAPIKey:  apiKey,
		SendGridBaseURL: getEnv("SENDGRID_BASE_URL", "https://api.sendgrid.com"),
		MailFrom:        getEnv("MAIL_FROM", "noreply@agile-edge.training"),
		MailFromName:    getEnv("MAIL_FROM_NAME", "Agile Edge SAFe Training"),
		SMTPHost:        getEnv("SMTP_HOST", "smtp.sendgrid.net"),
		SMTPPort:        getInt("SMTP_PORT", 587),
		SMTPUser:        getEnv("SMTP_USER", "apikey"),
		SMTPPassword:    getEnv("SMTP_PASS", apiKey),
		OperatorEmail:   getEnv("OPERATOR_EMAIL", ""),

		SiteURL:        getEnv("SITE_URL", "http://localhost:5173"),
		AllowedOrigins: getList("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		AdminToken:     getEnv("ADMIN_TOKEN", ""),
		RabbitMQURL:    getEnv("RABBITMQ_URL", ""),

		KommoAPIToken:   getEnv("KOMMO_API_TOKEN", ""),
		KommoBaseURL:    getEnv("KOMMO_BASE_URL", ""),
		KommoPipelineID: getInt("KOMMO_PIPELINE_ID", 0),

		DripEnabled:   getBool("DRIP_ENABLED", true),
		DripInterval:  getDuration("DRIP_INTERVAL", time.Hour),
		LeadRateLimit: getInt("LEAD_RATE_LIMIT", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return b
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
		log.Printf("⚠️ invalid %s=%q, using %s", key, value, defaultValue)
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
