package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/safe-leads/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, company, phone, service, message, lead_magnet, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		nullString(lead.Company),
		nullString(lead.Phone),
		nullString(lead.Service),
		nullString(lead.Message),
		nullString(lead.LeadMagnet),
		lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}
