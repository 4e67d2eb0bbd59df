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

// fakeBusStore keeps buses in memory and enforces the bus number
// uniqueness the schema guarantees.
type fakeBusStore struct {
	buses []*models.Bus
}

func (f *fakeBusStore) Create(ctx context.Context, bus *models.Bus) error {
	for _, b := range f.buses {
		if b.BusNumber == bus.BusNumber {
			return repositories.ErrBusNumberExists
		}
	}
	bus.ID = int64(len(f.buses) + 1)
	f.buses = append(f.buses, bus)
	return nil
}

func (f *fakeBusStore) GetActive(ctx context.Context) ([]*models.Bus, error) {
	active := []*models.Bus{}
	for _, b := range f.buses {
		if b.IsActive {
			active = append(active, b)
		}
	}
	return active, nil
}

func (f *fakeBusStore) GetByID(ctx context.Context, id int64) (*models.Bus, error) {
	for _, b := range f.buses {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeBusStore) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	bus, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v, ok := updates["bus_number"]; ok {
		number := v.(string)
		for _, b := range f.buses {
			if b.ID != id && b.BusNumber == number {
				return repositories.ErrBusNumberExists
			}
		}
		bus.BusNumber = number
	}
	if v, ok := updates["bus_route"]; ok {
		bus.BusRoute = v.(string)
	}
	if v, ok := updates["bus_seats"]; ok {
		bus.BusSeats = v.(int)
	}
	if v, ok := updates["is_active"]; ok {
		bus.IsActive = v.(bool)
	}
	return nil
}

func (f *fakeBusStore) Deactivate(ctx context.Context, id int64) error {
	bus, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	bus.IsActive = false
	return nil
}

func TestCreateBusDuplicateNumber(t *testing.T) {
	store := &fakeBusStore{}
	svc := NewBusService(store, zerolog.Nop())

	first, err := svc.CreateBus(context.Background(), &models.Bus{BusNumber: "LEB-1234", BusSeats: 40})
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if first.BusID == "" {
		t.Error("bus id was not generated")
	}

	_, err = svc.CreateBus(context.Background(), &models.Bus{BusNumber: "LEB-1234", BusSeats: 52})
	if !errors.Is(err, apperrors.ErrBusNumberExists) {
		t.Fatalf("second create err = %v, want ErrBusNumberExists", err)
	}

	buses, err := svc.GetBuses(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(buses) != 1 {
		t.Errorf("list holds %d buses, want 1", len(buses))
	}
}

func TestDeleteBusHidesFromListKeepsFetchable(t *testing.T) {
	store := &fakeBusStore{}
	svc := NewBusService(store, zerolog.Nop())

	kept, err := svc.CreateBus(context.Background(), &models.Bus{BusNumber: "LEB-1111"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	removed, err := svc.CreateBus(context.Background(), &models.Bus{BusNumber: "LEB-2222"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteBus(context.Background(), removed.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	buses, err := svc.GetBuses(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(buses) != 1 || buses[0].ID != kept.ID {
		t.Errorf("list = %d buses, want only the kept one", len(buses))
	}

	fetched, err := svc.GetBusByID(context.Background(), removed.ID)
	if err != nil {
		t.Fatalf("fetch of removed bus failed: %v", err)
	}
	if fetched.IsActive {
		t.Error("removed bus is still active")
	}
}

func TestUpdateBusDuplicateNumber(t *testing.T) {
	store := &fakeBusStore{}
	svc := NewBusService(store, zerolog.Nop())

	if _, err := svc.CreateBus(context.Background(), &models.Bus{BusNumber: "LEB-1111"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.CreateBus(context.Background(), &models.Bus{BusNumber: "LEB-2222"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	taken := "LEB-1111"
	_, err = svc.UpdateBus(context.Background(), second.ID, &dto.BusUpdateRequest{BusNumber: &taken})
	if !errors.Is(err, apperrors.ErrBusNumberExists) {
		t.Fatalf("update to taken number err = %v, want ErrBusNumberExists", err)
	}
}

func TestDeleteBusNotFound(t *testing.T) {
	svc := NewBusService(&fakeBusStore{}, zerolog.Nop())

	if err := svc.DeleteBus(context.Background(), 99); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("delete err = %v, want ErrResourceNotFound", err)
	}
}
