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

// driverStore is the slice of driver persistence DriverService needs
type driverStore interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetActive(ctx context.Context) ([]*models.Driver, error)
	GetByID(ctx context.Context, id int64) (*models.Driver, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	Deactivate(ctx context.Context, id int64) error
}

// DriverService handles fleet driver operations
type DriverService struct {
	driverRepo driverStore
	logger     zerolog.Logger
}

// NewDriverService creates a new DriverService
func NewDriverService(driverRepo driverStore, logger zerolog.Logger) *DriverService {
	return &DriverService{driverRepo: driverRepo, logger: logger}
}

// CreateDriver registers a new driver
func (s *DriverService) CreateDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	if driver.DriverID == "" {
		driver.DriverID = helpers.GenerateID("DRV")
	}
	driver.IsActive = true

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		if errors.Is(err, repositories.ErrDriverLicenseExists) {
			return nil, apperrors.ErrDriverLicenseExists
		}
		return nil, err
	}

	s.logger.Info().Str("driverName", driver.DriverName).Msg("Driver created")
	return driver, nil
}

// GetDrivers returns all active drivers
func (s *DriverService) GetDrivers(ctx context.Context) ([]*models.Driver, error) {
	return s.driverRepo.GetActive(ctx)
}

// GetDriverByID returns one driver by its database id
func (s *DriverService) GetDriverByID(ctx context.Context, id int64) (*models.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return driver, nil
}

// UpdateDriver applies a partial update and returns the updated driver
func (s *DriverService) UpdateDriver(ctx context.Context, id int64, req *dto.DriverUpdateRequest) (*models.Driver, error) {
	updates := map[string]interface{}{}
	if req.DriverID != nil {
		updates["driver_id"] = *req.DriverID
	}
	if req.DriverName != nil {
		updates["driver_name"] = *req.DriverName
	}
	if req.DriverLicense != nil {
		updates["driver_license"] = *req.DriverLicense
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.driverRepo.Update(ctx, id, updates); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.ErrResourceNotFound
		case errors.Is(err, repositories.ErrDriverLicenseExists):
			return nil, apperrors.ErrDriverLicenseExists
		}
		return nil, err
	}

	return s.driverRepo.GetByID(ctx, id)
}

// DeleteDriver soft-deletes a driver
func (s *DriverService) DeleteDriver(ctx context.Context, id int64) error {
	if err := s.driverRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return err
	}
	s.logger.Info().Int64("id", id).Msg("Driver deactivated")
	return nil
}
