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
	"github.com/rao756/utms-backend/internal/pkg/logger"
)

// Bus error types
var (
	ErrBusNotFound     = ErrNotFound
	ErrBusNumberExists = errors.New("bus with this number already exists")
)

// BusRepository handles bus database operations
type BusRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBusRepository creates a new BusRepository
func NewBusRepository(db *pgxpool.Pool) *BusRepository {
	return &BusRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persists a new bus
func (r *BusRepository) Create(ctx context.Context, bus *models.Bus) error {
	sql, args, err := r.sb.Insert("buses").
		Columns("bus_id", "bus_route", "bus_number", "bus_seats", "is_active").
		Values(bus.BusID, bus.BusRoute, bus.BusNumber, bus.BusSeats, bus.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create bus SQL")
		return fmt.Errorf("failed to build create bus query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&bus.ID, &bus.CreatedAt, &bus.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrBusNumberExists
		}
		return fmt.Errorf("error creating bus: %w", err)
	}

	return nil
}

// GetByID retrieves a bus by id regardless of its active flag
func (r *BusRepository) GetByID(ctx context.Context, id int64) (*models.Bus, error) {
	sql, args, err := r.sb.Select("id", "bus_id", "bus_route", "bus_number", "bus_seats", "is_active", "created_at", "updated_at").
		From("buses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get bus query: %w", err)
	}

	bus := &models.Bus{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&bus.ID, &bus.BusID, &bus.BusRoute, &bus.BusNumber, &bus.BusSeats,
		&bus.IsActive, &bus.CreatedAt, &bus.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBusNotFound
		}
		return nil, fmt.Errorf("error getting bus by ID: %w", err)
	}

	return bus, nil
}

// GetActive retrieves all active buses
func (r *BusRepository) GetActive(ctx context.Context) ([]*models.Bus, error) {
	sql, args, err := r.sb.Select("id", "bus_id", "bus_route", "bus_number", "bus_seats", "is_active", "created_at", "updated_at").
		From("buses").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get buses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying buses: %w", err)
	}
	defer rows.Close()

	buses := []*models.Bus{}
	for rows.Next() {
		bus := &models.Bus{}
		if err := rows.Scan(
			&bus.ID, &bus.BusID, &bus.BusRoute, &bus.BusNumber, &bus.BusSeats,
			&bus.IsActive, &bus.CreatedAt, &bus.UpdatedAt,
		); err != nil {
			return nil, err
		}
		buses = append(buses, bus)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return buses, nil
}

// Update applies the given column updates to a bus
func (r *BusRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("buses").
		SetMap(updates).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update bus SQL")
		return fmt.Errorf("failed to build update bus query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrBusNumberExists
		}
		return fmt.Errorf("error updating bus: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrBusNotFound
	}

	return nil
}

// Deactivate soft-deletes a bus
func (r *BusRepository) Deactivate(ctx context.Context, id int64) error {
	return r.Update(ctx, id, map[string]interface{}{"is_active": false})
}
