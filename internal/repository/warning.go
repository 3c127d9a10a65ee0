package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/snowshield/snow_shield_api/internal/models"
	"github.com/snowshield/snow_shield_api/internal/service"
)

const warningColumns = `
	id,
	title,
	description,
	severity,
	affected_pincodes,
	expiry_time,
	is_active,
	resolved_at,
	created_by,
	created_by_name,
	created_at
`

type WarningRepository struct {
	db *pgxpool.Pool
}

func NewWarningRepository(db *pgxpool.Pool) service.WarningRepository {
	return &WarningRepository{db: db}
}

// Create создает новую запись о предупреждении в бд.
func (r *WarningRepository) Create(ctx context.Context, warning *models.Warning) error {
	query := `
		INSERT INTO warnings (title, description, severity, affected_pincodes, expiry_time, is_active, created_by, created_by_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		warning.Title,
		warning.Description,
		warning.Severity,
		warning.AffectedPincodes,
		warning.ExpiryTime,
		warning.IsActive,
		warning.CreatedBy,
		warning.CreatedByName,
	).Scan(&warning.ID, &warning.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create warning: %w", err)
	}
	return nil
}

// GetByID возвращает предупреждение по его UUID. Отсутствие записи - (nil, nil).
func (r *WarningRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Warning, error) {
	query := `SELECT ` + warningColumns + ` FROM warnings WHERE id = $1;`

	warning := &models.Warning{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&warning.ID,
		&warning.Title,
		&warning.Description,
		&warning.Severity,
		&warning.AffectedPincodes,
		&warning.ExpiryTime,
		&warning.IsActive,
		&warning.ResolvedAt,
		&warning.CreatedBy,
		&warning.CreatedByName,
		&warning.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get warning by id: %w", err)
	}
	return warning, nil
}

// ListForPincode возвращает активные по флагу предупреждения, зона которых
// содержит пин-код. Проверка принадлежности выполняется на стороне базы,
// фильтрация по сроку - нет: это забота сервисного слоя.
func (r *WarningRepository) ListForPincode(ctx context.Context, pincode string) ([]*models.Warning, error) {
	query := `
		SELECT ` + warningColumns + `
		FROM warnings
		WHERE is_active = TRUE AND $1 = ANY(affected_pincodes)
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, pincode)
	if err != nil {
		return nil, fmt.Errorf("failed to list warnings for pincode: %w", err)
	}
	defer rows.Close()

	return scanWarnings(rows)
}

// ListActive возвращает все активные по флагу предупреждения, новые сверху.
func (r *WarningRepository) ListActive(ctx context.Context) ([]*models.Warning, error) {
	query := `SELECT ` + warningColumns + ` FROM warnings WHERE is_active = TRUE ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active warnings: %w", err)
	}
	defer rows.Close()

	return scanWarnings(rows)
}

// Resolve снимает предупреждение. Возвращает false, если запись уже была
// снята раньше: повторное снятие - no-op.
func (r *WarningRepository) Resolve(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE warnings SET
			is_active = FALSE,
			resolved_at = NOW()
		WHERE id = $1 AND is_active = TRUE;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to resolve warning: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func scanWarnings(rows pgx.Rows) ([]*models.Warning, error) {
	warnings := make([]*models.Warning, 0)
	for rows.Next() {
		warning := &models.Warning{}
		err := rows.Scan(
			&warning.ID,
			&warning.Title,
			&warning.Description,
			&warning.Severity,
			&warning.AffectedPincodes,
			&warning.ExpiryTime,
			&warning.IsActive,
			&warning.ResolvedAt,
			&warning.CreatedBy,
			&warning.CreatedByName,
			&warning.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan warning row: %w", err)
		}
		warnings = append(warnings, warning)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error warning list iteration: %w", err)
	}
	return warnings, nil
}
