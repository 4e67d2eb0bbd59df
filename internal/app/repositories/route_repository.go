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

// Route error types
var (
	ErrRouteNotFound = ErrNotFound
	ErrRouteIDExists = errors.New("route with this id already exists")
)

// RouteRepository handles route database operations
type RouteRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRouteRepository creates a new RouteRepository
func NewRouteRepository(db *pgxpool.Pool) *RouteRepository {
	return &RouteRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persists a new route
func (r *RouteRepository) Create(ctx context.Context, route *models.Route) error {
	sql, args, err := r.sb.Insert("routes").
		Columns("route_id", "route_name", "is_active").
		Values(route.RouteID, route.RouteName, route.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build create route query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&route.ID, &route.CreatedAt, &route.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrRouteIDExists
		}
		return fmt.Errorf("error creating route: %w", err)
	}

	return nil
}

// GetByID retrieves a route by id regardless of its active flag
func (r *RouteRepository) GetByID(ctx context.Context, id int64) (*models.Route, error) {
	sql, args, err := r.sb.Select("id", "route_id", "route_name", "is_active", "created_at", "updated_at").
		From("routes").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get route query: %w", err)
	}

	route := &models.Route{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&route.ID, &route.RouteID, &route.RouteName,
		&route.IsActive, &route.CreatedAt, &route.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRouteNotFound
		}
		return nil, fmt.Errorf("error getting route by ID: %w", err)
	}

	return route, nil
}

// GetActive retrieves all active routes
func (r *RouteRepository) GetActive(ctx context.Context) ([]*models.Route, error) {
	sql, args, err := r.sb.Select("id", "route_id", "route_name", "is_active", "created_at", "updated_at").
		From("routes").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("route_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get routes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying routes: %w", err)
	}
	defer rows.Close()

	routes := []*models.Route{}
	for rows.Next() {
		route := &models.Route{}
		if err := rows.Scan(
			&route.ID, &route.RouteID, &route.RouteName,
			&route.IsActive, &route.CreatedAt, &route.UpdatedAt,
		); err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}

// Update applies the given column updates to a route
func (r *RouteRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("routes").
		SetMap(updates).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update route query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrRouteIDExists
		}
		return fmt.Errorf("error updating route: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrRouteNotFound
	}

	return nil
}

// Deactivate soft-deletes a route
func (r *RouteRepository) Deactivate(ctx context.Context, id int64) error {
	return r.Update(ctx, id, map[string]interface{}{"is_active": false})
}
