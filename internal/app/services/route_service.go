package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
	"github.com/rao756/utms-backend/internal/pkg/helpers"
)

// routeStore is the slice of route persistence RouteService needs
type routeStore interface {
	Create(ctx context.Context, route *models.Route) error
	GetActive(ctx context.Context) ([]*models.Route, error)
	GetByID(ctx context.Context, id int64) (*models.Route, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	Deactivate(ctx context.Context, id int64) error
}

// RouteService handles bus route operations
type RouteService struct {
	routeRepo routeStore
	logger    zerolog.Logger
}

// NewRouteService creates a new RouteService
func NewRouteService(routeRepo routeStore, logger zerolog.Logger) *RouteService {
	return &RouteService{routeRepo: routeRepo, logger: logger}
}

// CreateRoute registers a new route
func (s *RouteService) CreateRoute(ctx context.Context, route *models.Route) (*models.Route, error) {
	if route.RouteID == "" {
		route.RouteID = helpers.GenerateID("RT")
	}
	route.IsActive = true

	if err := s.routeRepo.Create(ctx, route); err != nil {
		if errors.Is(err, repositories.ErrRouteIDExists) {
			return nil, apperrors.ErrRouteIDExists
		}
		return nil, err
	}

	s.logger.Info().Str("routeName", route.RouteName).Msg("Route created")
	return route, nil
}

// GetRoutes returns all active routes
func (s *RouteService) GetRoutes(ctx context.Context) ([]*models.Route, error) {
	return s.routeRepo.GetActive(ctx)
}

// GetRouteByID returns one route by its database id
func (s *RouteService) GetRouteByID(ctx context.Context, id int64) (*models.Route, error) {
	route, err := s.routeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return route, nil
}

// UpdateRoute applies a partial update and returns the updated route
func (s *RouteService) UpdateRoute(ctx context.Context, id int64, req *dto.RouteUpdateRequest) (*models.Route, error) {
	updates := map[string]interface{}{}
	if req.RouteID != nil {
		updates["route_id"] = *req.RouteID
	}
	if req.RouteName != nil {
		updates["route_name"] = *req.RouteName
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.routeRepo.Update(ctx, id, updates); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.ErrResourceNotFound
		case errors.Is(err, repositories.ErrRouteIDExists):
			return nil, apperrors.ErrRouteIDExists
		}
		return nil, err
	}

	return s.routeRepo.GetByID(ctx, id)
}

// DeleteRoute soft-deletes a route
func (s *RouteService) DeleteRoute(ctx context.Context, id int64) error {
	if err := s.routeRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return err
	}
	s.logger.Info().Int64("id", id).Msg("Route deactivated")
	return nil
}
