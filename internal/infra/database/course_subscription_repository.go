package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xavierca1/safe-leads/internal/entity"
)

type CourseSubscriptionRepository struct {
	DB *sql.DB
}

func NewCourseSubscriptionRepository(db *sql.DB) *CourseSubscriptionRepository {
	return &CourseSubscriptionRepository{DB: db}
}

const subscriptionColumns = `id, email, name, course_type, current_day, subscription_date, last_email_sent, completed, claimed_until`

func (r *CourseSubscriptionRepository) Create(ctx context.Context, sub *entity.CourseSubscription) error {
	query := `
		INSERT INTO course_subscriptions (email, name, course_type, current_day, subscription_date, completed)
		VALUES ($1, $2, $3, 0, $4, FALSE)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, sub.Email, sub.Name, sub.CourseType, sub.SubscriptionDate).Scan(&sub.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrDuplicateSubscription
		}
		return fmt.Errorf("insert course subscription: %w", err)
	}
	sub.CurrentDay = 0
	sub.Completed = false
	return nil
}

func (r *CourseSubscriptionRepository) FindByID(ctx context.Context, id int64) (*entity.CourseSubscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM course_subscriptions WHERE id = $1`
	sub, err := scanSubscription(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find course subscription: %w", err)
	}
	return sub, nil
}

func (r *CourseSubscriptionRepository) ListActive(ctx context.Context, courseType string) ([]*entity.CourseSubscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM course_subscriptions
		WHERE course_type = $1 AND completed = FALSE
		ORDER BY id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, courseType)
	if err != nil {
		return nil, fmt.Errorf("list active subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*entity.CourseSubscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *CourseSubscriptionRepository) Claim(ctx context.Context, snapshot *entity.CourseSubscription, now, until time.Time) (bool, error) {
	query := `
		UPDATE course_subscriptions
		SET claimed_until = $4
		WHERE id = $1
			AND current_day = $2
			AND last_email_sent IS NOT DISTINCT FROM $3
			AND completed = FALSE
			AND (claimed_until IS NULL OR claimed_until < $5)
	`
	res, err := r.DB.ExecContext(ctx, query, snapshot.ID, snapshot.CurrentDay, snapshot.LastEmailSent, until, now)
	if err != nil {
		return false, fmt.Errorf("claim course subscription: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *CourseSubscriptionRepository) Release(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE course_subscriptions SET claimed_until = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("release course subscription: %w", err)
	}
	return nil
}

// Advance moves the row from fromDay to newDay only if nobody else moved it
// first.
func (r *CourseSubscriptionRepository) Advance(ctx context.Context, id int64, fromDay, newDay int, sentAt time.Time) error {
	if newDay < fromDay {
		return entity.ErrDayRegression
	}

	query := `
		UPDATE course_subscriptions
		SET current_day = $3, last_email_sent = $4, claimed_until = NULL
		WHERE id = $1 AND current_day = $2 AND completed = FALSE
	`
	res, err := r.DB.ExecContext(ctx, query, id, fromDay, newDay, sentAt)
	if err != nil {
		return fmt.Errorf("advance course subscription: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	return r.missingOrStale(ctx, id)
}

// Complete is idempotent: completing a completed row is not an error.
func (r *CourseSubscriptionRepository) Complete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE course_subscriptions SET completed = TRUE, claimed_until = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("complete course subscription: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrSubscriptionNotFound
	}
	return nil
}

func (r *CourseSubscriptionRepository) missingOrStale(ctx context.Context, id int64) error {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM course_subscriptions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check course subscription: %w", err)
	}
	if !exists {
		return entity.ErrSubscriptionNotFound
	}
	return entity.ErrStaleSubscription
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row rowScanner) (*entity.CourseSubscription, error) {
	var (
		sub          entity.CourseSubscription
		lastSent     sql.NullTime
		claimedUntil sql.NullTime
	)
	err := row.Scan(
		&sub.ID,
		&sub.Email,
		&sub.Name,
		&sub.CourseType,
		&sub.CurrentDay,
		&sub.SubscriptionDate,
		&lastSent,
		&sub.Completed,
		&claimedUntil,
	)
	if err != nil {
		return nil, err
	}
	if lastSent.Valid {
		t := lastSent.Time
		sub.LastEmailSent = &t
	}
	if claimedUntil.Valid {
		t := claimedUntil.Time
		sub.ClaimedUntil = &t
	}
	return &sub, nil
}
