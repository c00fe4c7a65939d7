package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xavierca1/safe-leads/internal/entity"
)

type InquiryRepository struct {
	DB *sql.DB
}

func NewInquiryRepository(db *sql.DB) *InquiryRepository {
	return &InquiryRepository{DB: db}
}

const inquiryColumns = `id, name, email, subject, message, is_read, created_at`

func (r *InquiryRepository) Create(ctx context.Context, i *entity.Inquiry) error {
	query := `INSERT INTO inquiries (` + inquiryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query, i.ID, i.Name, i.Email, i.Subject, i.Message, i.IsRead, i.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

func (r *InquiryRepository) List(ctx context.Context, sort entity.InquirySort) ([]*entity.Inquiry, error) {
	order := "DESC"
	if sort == entity.InquirySortOldest {
		order = "ASC"
	}
	query := `SELECT ` + inquiryColumns + ` FROM inquiries ORDER BY created_at ` + order

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []*entity.Inquiry{}
	for rows.Next() {
		i := &entity.Inquiry{}
		if err := rows.Scan(&i.ID, &i.Name, &i.Email, &i.Subject, &i.Message, &i.IsRead, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, i)
	}
	return inquiries, rows.Err()
}

func (r *InquiryRepository) FindByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`
	i := &entity.Inquiry{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&i.ID, &i.Name, &i.Email, &i.Subject, &i.Message, &i.IsRead, &i.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
		return nil, entity.ErrInquiryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find inquiry: %w", err)
	}
	return i, nil
}

func (r *InquiryRepository) SetRead(ctx context.Context, id string, read bool) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE inquiries SET is_read = $2 WHERE id = $1`, id, read)
	if isInvalidText(err) {
		return entity.ErrInquiryNotFound
	}
	if err != nil {
		return fmt.Errorf("update inquiry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrInquiryNotFound
	}
	return nil
}
