package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
	"github.com/rao756/utms-backend/internal/pkg/helpers"
)

// ValidateStops checks that a schedule carries at least one stop and that
// every stop has a name and both times filled in.
func ValidateStops(stops []models.Stop) error {
	if len(stops) == 0 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "schedule must contain at least one stop")
	}
	for i, stop := range stops {
		if stop.StopName == "" || stop.ArrivalTime == "" || stop.DepartureTime == "" {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed,
				fmt.Sprintf("stop %d must have stopName, arrivalTime and departureTime", i+1))
		}
	}
	return nil
}

// scheduleStore is the slice of schedule persistence ScheduleService needs
type scheduleStore interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	GetByScheduleID(ctx context.Context, scheduleID string) (*models.Schedule, error)
	GetAll(ctx context.Context) ([]*models.Schedule, error)
	UpdateByScheduleID(ctx context.Context, scheduleID string, schedule *models.Schedule) error
	DeleteByScheduleID(ctx context.Context, scheduleID string) error
}

// ScheduleService handles bus timetable operations
type ScheduleService struct {
	scheduleRepo scheduleStore
	logger       zerolog.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(scheduleRepo scheduleStore, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo, logger: logger}
}

// CreateSchedule publishes a new timetable entry. Entries start inactive
// unless the request says otherwise; the dashboard activates them once
// the route assignment is confirmed.
func (s *ScheduleService) CreateSchedule(ctx context.Context, req *dto.ScheduleCreateRequest) (*models.Schedule, error) {
	if req.BusID == "" || req.DriverID == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			"schedule must name a busId and a driverId")
	}
	if err := ValidateStops(req.Stops); err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		ScheduleID: req.ScheduleID,
		RouteName:  req.RouteName,
		BusID:      req.BusID,
		DriverID:   req.DriverID,
		Stops:      req.Stops,
		IsActive:   req.IsActive,
	}
	if schedule.ScheduleID == "" {
		schedule.ScheduleID = helpers.GenerateID("SCH")
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		if errors.Is(err, repositories.ErrScheduleIDExists) {
			return nil, apperrors.ErrResourceAlreadyExists
		}
		return nil, err
	}

	s.logger.Info().Str("scheduleId", schedule.ScheduleID).Msg("Schedule created")
	return schedule, nil
}

// GetSchedules returns every timetable entry
func (s *ScheduleService) GetSchedules(ctx context.Context) ([]*models.Schedule, error) {
	return s.scheduleRepo.GetAll(ctx)
}

// UpdateSchedule applies a partial update addressed by the public schedule id.
// When stops are supplied they replace the stored list wholesale.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, scheduleID string, req *dto.ScheduleUpdateRequest) (*models.Schedule, error) {
	if req.Stops != nil {
		if err := ValidateStops(req.Stops); err != nil {
			return nil, err
		}
	}

	patch := &models.Schedule{Stops: req.Stops}
	if req.RouteName != nil {
		patch.RouteName = *req.RouteName
	}
	if req.BusID != nil {
		patch.BusID = *req.BusID
	}
	if req.DriverID != nil {
		patch.DriverID = *req.DriverID
	}

	if err := s.scheduleRepo.UpdateByScheduleID(ctx, scheduleID, patch); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}

	return s.scheduleRepo.GetByScheduleID(ctx, scheduleID)
}

// DeleteSchedule removes a timetable entry
func (s *ScheduleService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	if err := s.scheduleRepo.DeleteByScheduleID(ctx, scheduleID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return err
	}
	s.logger.Info().Str("scheduleId", scheduleID).Msg("Schedule deleted")
	return nil
}
