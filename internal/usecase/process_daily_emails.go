package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/xavierca1/safe-leads/internal/content"
	"github.com/xavierca1/safe-leads/internal/entity"
	"github.com/xavierca1/safe-leads/internal/infra/mail"
	"github.com/xavierca1/safe-leads/internal/infra/metrics"
)

const (
	// DefaultMinSendInterval stays under 24h so scheduler jitter never skips a day.
	DefaultMinSendInterval = 23 * time.Hour
	DefaultClaimTTL        = 5 * time.Minute
	DefaultSendTimeout     = 30 * time.Second
)

// SweepReport summarises one pass over a course's active subscriptions.
type SweepReport struct {
	Course    string
	Scanned   int
	Sent      int
	Skipped   int
	Failed    int
	Completed int
}

type sweepOutcome int

const (
	outcomeSkipped sweepOutcome = iota
	outcomeSent
	outcomeFailed
)

type ProcessDailyEmailsUseCase struct {
	Repo    entity.CourseSubscriptionRepository
	Catalog LessonCatalog
	Mailer  Mailer

	MinSendInterval time.Duration
	ClaimTTL        time.Duration
	SendTimeout     time.Duration
	Now             func() time.Time
}

func NewProcessDailyEmailsUseCase(repo entity.CourseSubscriptionRepository, catalog LessonCatalog, mailer Mailer) *ProcessDailyEmailsUseCase {
	return &ProcessDailyEmailsUseCase{
		Repo:            repo,
		Catalog:         catalog,
		Mailer:          mailer,
		MinSendInterval: DefaultMinSendInterval,
		ClaimTTL:        DefaultClaimTTL,
		SendTimeout:     DefaultSendTimeout,
		Now:             func() time.Time { return time.Now().UTC() },
	}
}

// Execute runs one sweep. Only a failure to list subscriptions aborts it;
// every per-subscriber problem is logged and the sweep moves on.
func (uc *ProcessDailyEmailsUseCase) Execute(ctx context.Context, courseType content.CourseType) (SweepReport, error) {
	report := SweepReport{Course: string(courseType)}
	start := time.Now()
	defer func() { metrics.ObserveDripSweep(string(courseType), time.Since(start).Seconds()) }()

	course, ok := uc.Catalog.Course(courseType)
	if !ok {
		return report, fmt.Errorf("%w: %s", entity.ErrUnknownCourse, courseType)
	}

	subs, err := uc.Repo.ListActive(ctx, string(courseType))
	if err != nil {
		return report, storeFailure("list active subscriptions", err)
	}

	for _, sub := range subs {
		if ctx.Err() != nil {
			break
		}
		report.Scanned++

		outcome, completed := uc.process(ctx, course, sub)
		switch outcome {
		case outcomeSent:
			report.Sent++
		case outcomeFailed:
			report.Failed++
		default:
			report.Skipped++
		}
		if completed {
			report.Completed++
		}
	}

	if report.Sent > 0 || report.Failed > 0 {
		log.Printf("[DRIP] %s sweep: scanned=%d sent=%d skipped=%d failed=%d completed=%d",
			courseType, report.Scanned, report.Sent, report.Skipped, report.Failed, report.Completed)
	}
	return report, nil
}

func (uc *ProcessDailyEmailsUseCase) process(ctx context.Context, course content.Course, sub *entity.CourseSubscription) (sweepOutcome, bool) {
	now := uc.Now()
	courseName := string(course.Type)

	if sub.Completed {
		return outcomeSkipped, false
	}

	if now.Sub(sub.LastActivity()) < uc.MinSendInterval {
		metrics.RecordDripSkipped(courseName, "too_soon")
		return outcomeSkipped, false
	}

	dayToSend := min(sub.DaysSinceSubscription(now), course.FinalDay)

	if dayToSend < sub.CurrentDay {
		metrics.RecordDripSkipped(courseName, "ahead")
		return outcomeSkipped, false
	}

	if dayToSend == sub.CurrentDay && sub.LastEmailSent != nil {
		// Final lesson went out but the completion write was lost.
		if dayToSend == course.FinalDay {
			return outcomeSkipped, uc.complete(ctx, courseName, sub)
		}
		metrics.RecordDripSkipped(courseName, "nothing_due")
		return outcomeSkipped, false
	}

	return uc.deliver(ctx, course, sub, dayToSend, now)
}

// SendWelcome delivers day 0 right after enrollment so the first lesson is
// due a full day later. It returns false when nothing was sent.
func (uc *ProcessDailyEmailsUseCase) SendWelcome(ctx context.Context, sub *entity.CourseSubscription) bool {
	if sub.LastEmailSent != nil || sub.CurrentDay != 0 || sub.Completed {
		return false
	}
	course, ok := uc.Catalog.Course(content.CourseType(sub.CourseType))
	if !ok {
		return false
	}
	outcome, _ := uc.deliver(ctx, course, sub, 0, uc.Now())
	return outcome == outcomeSent
}

func (uc *ProcessDailyEmailsUseCase) deliver(ctx context.Context, course content.Course, sub *entity.CourseSubscription, day int, now time.Time) (sweepOutcome, bool) {
	courseName := string(course.Type)

	lesson, err := uc.Catalog.LessonFor(course.Type, day)
	if err != nil {
		log.Printf("⚠️ [DRIP] subscription %d: %v", sub.ID, err)
		metrics.RecordDripSkipped(courseName, "unknown_lesson")
		return outcomeSkipped, false
	}

	claimed, err := uc.Repo.Claim(ctx, sub, now, now.Add(uc.ClaimTTL))
	if err != nil {
		log.Printf("❌ [DRIP] subscription %d: claim failed: %v", sub.ID, err)
		return outcomeFailed, false
	}
	if !claimed {
		metrics.RecordDripSkipped(courseName, "claimed")
		return outcomeSkipped, false
	}

	sendCtx, cancel := context.WithTimeout(ctx, uc.SendTimeout)
	sent := uc.Mailer.Send(sendCtx, mail.Message{
		To:      sub.Email,
		Subject: lesson.Subject,
		Text:    lesson.Text,
		HTML:    lesson.HTML,
	})
	cancel()

	if !sent {
		if err := uc.Repo.Release(ctx, sub.ID); err != nil {
			log.Printf("⚠️ [DRIP] subscription %d: release failed, lease expires on its own: %v", sub.ID, err)
		}
		log.Printf("[DRIP] subscription %d: day %d not delivered, retrying next sweep", sub.ID, day)
		return outcomeFailed, false
	}

	fromDay := sub.CurrentDay
	if err := uc.Repo.Advance(ctx, sub.ID, fromDay, day, now); err != nil {
		log.Printf("❌ [DRIP] subscription %d: day %d sent but not recorded: %v", sub.ID, day, err)
		return outcomeFailed, false
	}
	sub.CurrentDay = day
	sub.LastEmailSent = &now
	sub.ClaimedUntil = nil
	metrics.RecordDripSent(courseName, day)
	log.Printf("✅ [DRIP] %s day %d sent to %s", courseName, day, sub.Email)

	if day == course.FinalDay {
		return outcomeSent, uc.complete(ctx, courseName, sub)
	}
	return outcomeSent, false
}

func (uc *ProcessDailyEmailsUseCase) complete(ctx context.Context, courseName string, sub *entity.CourseSubscription) bool {
	if err := uc.Repo.Complete(ctx, sub.ID); err != nil {
		if errors.Is(err, entity.ErrSubscriptionNotFound) {
			log.Printf("⚠️ [DRIP] subscription %d vanished before completion", sub.ID)
		} else {
			log.Printf("❌ [DRIP] subscription %d: completion failed, will retry: %v", sub.ID, err)
		}
		return false
	}
	sub.Completed = true
	metrics.RecordDripCompleted(courseName)
	return true
}
