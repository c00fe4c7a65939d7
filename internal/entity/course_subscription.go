package entity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrDuplicateSubscription = errors.New("subscriber already enrolled in this course")
	ErrSubscriptionNotFound  = errors.New("course subscription not found")
	// ErrStaleSubscription means the row changed between read and write.
	ErrStaleSubscription = errors.New("course subscription was modified concurrently")
	ErrDayRegression     = errors.New("course day cannot move backwards")
	ErrUnknownCourse     = errors.New("unknown course type")
)

// CourseSubscription tracks one subscriber's progress through a drip course.
// CurrentDay only moves forward and Completed implies CurrentDay is the
// course's final day.
type CourseSubscription struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name,omitempty"`
	CourseType       string     `json:"course_type"`
	CurrentDay       int        `json:"current_day"`
	SubscriptionDate time.Time  `json:"subscription_date"`
	LastEmailSent    *time.Time `json:"last_email_sent,omitempty"`
	Completed        bool       `json:"completed"`
	ClaimedUntil     *time.Time `json:"-"`
}

func NewCourseSubscription(email, name, courseType string, now time.Time) *CourseSubscription {
	return &CourseSubscription{
		Email:            email,
		Name:             name,
		CourseType:       courseType,
		CurrentDay:       0,
		SubscriptionDate: now,
	}
}

// LastActivity is the reference point for the minimum send interval.
func (s *CourseSubscription) LastActivity() time.Time {
	if s.LastEmailSent != nil {
		return *s.LastEmailSent
	}
	return s.SubscriptionDate
}

// DaysSinceSubscription counts whole 24h periods elapsed since enrollment.
func (s *CourseSubscription) DaysSinceSubscription(now time.Time) int {
	elapsed := now.Sub(s.SubscriptionDate)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / (24 * time.Hour))
}

type CourseSubscriptionRepository interface {
	Create(ctx context.Context, sub *CourseSubscription) error
	FindByID(ctx context.Context, id int64) (*CourseSubscription, error)
	ListActive(ctx context.Context, courseType string) ([]*CourseSubscription, error)
	// Claim leases the row for one send attempt. It returns false when the row
	// no longer matches the snapshot's day and last send, or when another
	// sweep holds an unexpired lease.
	Claim(ctx context.Context, snapshot *CourseSubscription, now, until time.Time) (bool, error)
	Release(ctx context.Context, id int64) error
	Advance(ctx context.Context, id int64, fromDay, newDay int, sentAt time.Time) error
	Complete(ctx context.Context, id int64) error
}
