package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/safe-leads/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, company, phone, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.Email,
		nullString(c.Company), nullString(c.Phone), nullString(c.Subject),
		c.Message, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}
