package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

// settingsRowID pins the singleton to a single row so concurrent
// first reads cannot create competing instances.
const settingsRowID = 1

// SettingsRepository persists the singleton triage configuration.
type SettingsRepository interface {
	// GetOrCreate returns the settings row, inserting the defaults
	// if none exists. The insert is an ON CONFLICT DO NOTHING on the
	// fixed key, so racing callers converge on one row.
	GetOrCreate(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) error
}

type settingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository builds repository.
func NewSettingsRepository(pool *pgxpool.Pool) SettingsRepository {
	return &settingsRepository{pool: pool}
}

func (r *settingsRepository) GetOrCreate(ctx context.Context) (*domain.Settings, error) {
	const insert = `
        INSERT INTO settings (id, auto_close_enabled, confidence_threshold)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO NOTHING`
	if _, err := r.pool.Exec(ctx, insert, settingsRowID, domain.DefaultAutoCloseEnabled, domain.DefaultConfidenceThreshold); err != nil {
		return nil, err
	}

	const query = `
        SELECT auto_close_enabled, confidence_threshold, created_at, updated_at
        FROM settings WHERE id=$1`
	var settings domain.Settings
	if err := r.pool.QueryRow(ctx, query, settingsRowID).Scan(
		&settings.AutoCloseEnabled,
		&settings.ConfidenceThreshold,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *domain.Settings) error {
	const query = `
        UPDATE settings SET auto_close_enabled=$1, confidence_threshold=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query,
		settings.AutoCloseEnabled,
		settings.ConfidenceThreshold,
		settingsRowID,
	).Scan(&settings.UpdatedAt)
}
