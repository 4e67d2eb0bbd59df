package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/pkg/dberrors"
)

// Driver error types
var (
	ErrDriverNotFound      = ErrNotFound
	ErrDriverLicenseExists = errors.New("driver with this license already exists")
)

// DriverRepository handles driver database operations
type DriverRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDriverRepository creates a new DriverRepository
func NewDriverRepository(db *pgxpool.Pool) *DriverRepository {
	return &DriverRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persists a new driver
func (r *DriverRepository) Create(ctx context.Context, driver *models.Driver) error {
	sql, args, err := r.sb.Insert("drivers").
		Columns("driver_id", "driver_name", "driver_license", "is_active").
		Values(driver.DriverID, driver.DriverName, driver.DriverLicense, driver.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build create driver query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&driver.ID, &driver.CreatedAt, &driver.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrDriverLicenseExists
		}
		return fmt.Errorf("error creating driver: %w", err)
	}

	return nil
}

// GetByID retrieves a driver by id regardless of its active flag
func (r *DriverRepository) GetByID(ctx context.Context, id int64) (*models.Driver, error) {
	sql, args, err := r.sb.Select("id", "driver_id", "driver_name", "driver_license", "is_active", "created_at", "updated_at").
		From("drivers").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get driver query: %w", err)
	}

	driver := &models.Driver{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&driver.ID, &driver.DriverID, &driver.DriverName, &driver.DriverLicense,
		&driver.IsActive, &driver.CreatedAt, &driver.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDriverNotFound
		}
		return nil, fmt.Errorf("error getting driver by ID: %w", err)
	}

	return driver, nil
}

// GetActive retrieves all active drivers
func (r *DriverRepository) GetActive(ctx context.Context) ([]*models.Driver, error) {
	sql, args, err := r.sb.Select("id", "driver_id", "driver_name", "driver_license", "is_active", "created_at", "updated_at").
		From("drivers").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get drivers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying drivers: %w", err)
	}
	defer rows.Close()

	drivers := []*models.Driver{}
	for rows.Next() {
		driver := &models.Driver{}
		if err := rows.Scan(
			&driver.ID, &driver.DriverID, &driver.DriverName, &driver.DriverLicense,
			&driver.IsActive, &driver.CreatedAt, &driver.UpdatedAt,
		); err != nil {
			return nil, err
		}
		drivers = append(drivers, driver)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

// Update applies the given column updates to a driver
func (r *DriverRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("drivers").
		SetMap(updates).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update driver query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrDriverLicenseExists
		}
		return fmt.Errorf("error updating driver: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrDriverNotFound
	}

	return nil
}

// Deactivate soft-deletes a driver
func (r *DriverRepository) Deactivate(ctx context.Context, id int64) error {
	return r.Update(ctx, id, map[string]interface{}{"is_active": false})
}
