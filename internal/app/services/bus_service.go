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

// busStore is the slice of bus persistence BusService needs
type busStore interface {
	Create(ctx context.Context, bus *models.Bus) error
	GetActive(ctx context.Context) ([]*models.Bus, error)
	GetByID(ctx context.Context, id int64) (*models.Bus, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	Deactivate(ctx context.Context, id int64) error
}

// BusService handles fleet bus operations
type BusService struct {
	busRepo busStore
	logger  zerolog.Logger
}

// NewBusService creates a new BusService
func NewBusService(busRepo busStore, logger zerolog.Logger) *BusService {
	return &BusService{busRepo: busRepo, logger: logger}
}

// CreateBus registers a new bus in the fleet
func (s *BusService) CreateBus(ctx context.Context, bus *models.Bus) (*models.Bus, error) {
	if bus.BusID == "" {
		bus.BusID = helpers.GenerateID("BUS")
	}
	bus.IsActive = true

	if err := s.busRepo.Create(ctx, bus); err != nil {
		if errors.Is(err, repositories.ErrBusNumberExists) {
			return nil, apperrors.ErrBusNumberExists
		}
		return nil, err
	}

	s.logger.Info().Str("busNumber", bus.BusNumber).Msg("Bus created")
	return bus, nil
}

// GetBuses returns all active buses
func (s *BusService) GetBuses(ctx context.Context) ([]*models.Bus, error) {
	return s.busRepo.GetActive(ctx)
}

// GetBusByID returns one bus by its database id
func (s *BusService) GetBusByID(ctx context.Context, id int64) (*models.Bus, error) {
	bus, err := s.busRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return bus, nil
}

// UpdateBus applies a partial update and returns the updated bus
func (s *BusService) UpdateBus(ctx context.Context, id int64, req *dto.BusUpdateRequest) (*models.Bus, error) {
	updates := map[string]interface{}{}
	if req.BusID != nil {
		updates["bus_id"] = *req.BusID
	}
	if req.BusRoute != nil {
		updates["bus_route"] = *req.BusRoute
	}
	if req.BusNumber != nil {
		updates["bus_number"] = *req.BusNumber
	}
	if req.BusSeats != nil {
		updates["bus_seats"] = *req.BusSeats
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.busRepo.Update(ctx, id, updates); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.ErrResourceNotFound
		case errors.Is(err, repositories.ErrBusNumberExists):
			return nil, apperrors.ErrBusNumberExists
		}
		return nil, err
	}

	return s.busRepo.GetByID(ctx, id)
}

// DeleteBus soft-deletes a bus
func (s *BusService) DeleteBus(ctx context.Context, id int64) error {
	if err := s.busRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return err
	}
	s.logger.Info().Int64("id", id).Msg("Bus deactivated")
	return nil
}
