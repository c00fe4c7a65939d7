package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xavierca1/safe-leads/internal/content"
	"github.com/xavierca1/safe-leads/internal/entity"
	"github.com/xavierca1/safe-leads/internal/infra/metrics"
)

// WelcomeSender delivers day 0 of a fresh enrollment.
type WelcomeSender interface {
	SendWelcome(ctx context.Context, sub *entity.CourseSubscription) bool
}

type EnrollCourseUseCase struct {
	Repo    entity.CourseSubscriptionRepository
	Catalog LessonCatalog
	Welcome WelcomeSender
	Now     func() time.Time
}

func NewEnrollCourseUseCase(repo entity.CourseSubscriptionRepository, catalog LessonCatalog, welcome WelcomeSender) *EnrollCourseUseCase {
	return &EnrollCourseUseCase{
		Repo:    repo,
		Catalog: catalog,
		Welcome: welcome,
		Now:     func() time.Time { return time.Now().UTC() },
	}
}

func (uc *EnrollCourseUseCase) Execute(ctx context.Context, input EnrollCourseInput) (*entity.CourseSubscription, error) {
	var errs ValidationErrors
	errs = validateEmail(errs, "email", input.Email)
	errs = validateOptionalText(errs, "name", input.Name, maxNameLength)
	if err := errs.orNil(); err != nil {
		return nil, err
	}

	courseType := content.CourseType(strings.TrimSpace(input.CourseType))
	if _, ok := uc.Catalog.Course(courseType); !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownCourse, courseType)
	}

	sub := entity.NewCourseSubscription(normalizeEmail(input.Email), strings.TrimSpace(input.Name), string(courseType), uc.Now())
	if err := uc.Repo.Create(ctx, sub); err != nil {
		if errors.Is(err, entity.ErrDuplicateSubscription) {
			return nil, err
		}
		return nil, storeFailure("save course subscription", err)
	}
	metrics.RecordSubmission("course_enrollment")
	log.Printf("[COURSE] %s enrolled in %s (subscription %d)", sub.Email, courseType, sub.ID)

	if uc.Welcome != nil && !uc.Welcome.SendWelcome(ctx, sub) {
		log.Printf("⚠️ [COURSE] welcome for subscription %d not sent, the sweep will pick it up", sub.ID)
	}
	return sub, nil
}
