package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
)

// fakeScheduleStore keeps timetable entries in memory keyed by their
// public schedule id.
type fakeScheduleStore struct {
	schedules []*models.Schedule
}

func (f *fakeScheduleStore) Create(ctx context.Context, schedule *models.Schedule) error {
	for _, s := range f.schedules {
		if s.ScheduleID == schedule.ScheduleID {
			return repositories.ErrScheduleIDExists
		}
	}
	schedule.ID = int64(len(f.schedules) + 1)
	f.schedules = append(f.schedules, schedule)
	return nil
}

func (f *fakeScheduleStore) GetByScheduleID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	for _, s := range f.schedules {
		if s.ScheduleID == scheduleID {
			return s, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeScheduleStore) GetAll(ctx context.Context) ([]*models.Schedule, error) {
	return f.schedules, nil
}

func (f *fakeScheduleStore) UpdateByScheduleID(ctx context.Context, scheduleID string, patch *models.Schedule) error {
	s, err := f.GetByScheduleID(ctx, scheduleID)
	if err != nil {
		return err
	}
	if patch.RouteName != "" {
		s.RouteName = patch.RouteName
	}
	if patch.BusID != "" {
		s.BusID = patch.BusID
	}
	if patch.DriverID != "" {
		s.DriverID = patch.DriverID
	}
	if patch.Stops != nil {
		s.Stops = patch.Stops
	}
	return nil
}

func (f *fakeScheduleStore) DeleteByScheduleID(ctx context.Context, scheduleID string) error {
	for i, s := range f.schedules {
		if s.ScheduleID == scheduleID {
			f.schedules = append(f.schedules[:i], f.schedules[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func scheduleRequest() *dto.ScheduleCreateRequest {
	return &dto.ScheduleCreateRequest{
		RouteName: "City Route",
		BusID:     "BUS-1",
		DriverID:  "DRV-1",
		Stops:     []models.Stop{{StopName: "Main Chowk", ArrivalTime: "08:00", DepartureTime: "08:05"}},
	}
}

func TestValidateStops(t *testing.T) {
	valid := models.Stop{StopName: "Main Chowk", ArrivalTime: "08:00", DepartureTime: "08:05"}

	cases := []struct {
		name    string
		stops   []models.Stop
		wantErr bool
	}{
		{"single valid stop", []models.Stop{valid}, false},
		{"multiple valid stops", []models.Stop{valid, {StopName: "Campus Gate", ArrivalTime: "08:20", DepartureTime: "08:22"}}, false},
		{"no stops", nil, true},
		{"empty list", []models.Stop{}, true},
		{"missing name", []models.Stop{{ArrivalTime: "08:00", DepartureTime: "08:05"}}, true},
		{"missing arrival", []models.Stop{{StopName: "Main Chowk", DepartureTime: "08:05"}}, true},
		{"missing departure", []models.Stop{{StopName: "Main Chowk", ArrivalTime: "08:00"}}, true},
		{"bad stop after valid one", []models.Stop{valid, {StopName: "Campus Gate"}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStops(tc.stops)
			if tc.wantErr {
				if !errors.Is(err, apperrors.ErrValidationFailed) {
					t.Errorf("ValidateStops err = %v, want ErrValidationFailed", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateStops unexpected error: %v", err)
			}
		})
	}
}

func TestCreateScheduleRequiresBusAndDriver(t *testing.T) {
	store := &fakeScheduleStore{}
	svc := NewScheduleService(store, zerolog.Nop())

	missingBus := scheduleRequest()
	missingBus.BusID = ""
	if _, err := svc.CreateSchedule(context.Background(), missingBus); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("create without busId err = %v, want ErrValidationFailed", err)
	}

	missingDriver := scheduleRequest()
	missingDriver.DriverID = ""
	if _, err := svc.CreateSchedule(context.Background(), missingDriver); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("create without driverId err = %v, want ErrValidationFailed", err)
	}

	if len(store.schedules) != 0 {
		t.Errorf("store holds %d schedules, want 0", len(store.schedules))
	}
}

func TestCreateScheduleIsActiveFromRequest(t *testing.T) {
	store := &fakeScheduleStore{}
	svc := NewScheduleService(store, zerolog.Nop())

	// Omitted isActive means the entry starts inactive
	pending, err := svc.CreateSchedule(context.Background(), scheduleRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if pending.IsActive {
		t.Error("schedule created without isActive is active, want inactive")
	}
	if pending.ScheduleID == "" {
		t.Error("schedule id was not generated")
	}

	active := scheduleRequest()
	active.IsActive = true
	created, err := svc.CreateSchedule(context.Background(), active)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !created.IsActive {
		t.Error("schedule created with isActive=true is inactive")
	}
}

func TestDeleteScheduleRemovesEntry(t *testing.T) {
	store := &fakeScheduleStore{}
	svc := NewScheduleService(store, zerolog.Nop())

	created, err := svc.CreateSchedule(context.Background(), scheduleRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteSchedule(context.Background(), created.ScheduleID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	all, err := svc.GetSchedules(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("list holds %d schedules after delete, want 0", len(all))
	}

	if err := svc.DeleteSchedule(context.Background(), created.ScheduleID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("second delete err = %v, want ErrResourceNotFound", err)
	}
}
