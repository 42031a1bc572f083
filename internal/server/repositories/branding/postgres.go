package branding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmsplatform/rms/internal/common"
	"github.com/rmsplatform/rms/internal/dbx"
	"github.com/rmsplatform/rms/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context) (*models.BrandingSettings, error) {
	query :=
		`SELECT company_name, short_name, logo, whatsapp_number, whatsapp_link, support_email, support_phone, address, updated_at
	     FROM branding_settings
	     WHERE id = 1
	     `

	s := &models.BrandingSettings{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.CompanyName, &s.ShortName, &s.Logo, &s.WhatsappNumber,
		&s.WhatsappLink, &s.SupportEmail, &s.SupportPhone, &s.Address, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, settings *models.BrandingSettings) error {
	query :=
		`INSERT INTO branding_settings (id, company_name, short_name, logo, whatsapp_number, whatsapp_link, support_email, support_phone, address, updated_at)
	     VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, now())
	     ON CONFLICT (id) DO UPDATE SET
	         company_name = EXCLUDED.company_name,
	         short_name = EXCLUDED.short_name,
	         logo = EXCLUDED.logo,
	         whatsapp_number = EXCLUDED.whatsapp_number,
	         whatsapp_link = EXCLUDED.whatsapp_link,
	         support_email = EXCLUDED.support_email,
	         support_phone = EXCLUDED.support_phone,
	         address = EXCLUDED.address,
	         updated_at = now()
	     `

	_, err := r.db.ExecContext(ctx, query,
		settings.CompanyName, settings.ShortName, settings.Logo,
		settings.WhatsappNumber, settings.WhatsappLink,
		settings.SupportEmail, settings.SupportPhone, settings.Address)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
