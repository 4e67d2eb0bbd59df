package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
)

type fakeRouteStore struct {
	routes []*models.Route
}

func (f *fakeRouteStore) Create(ctx context.Context, route *models.Route) error {
	for _, r := range f.routes {
		if r.RouteID == route.RouteID {
			return repositories.ErrRouteIDExists
		}
	}
	route.ID = int64(len(f.routes) + 1)
	f.routes = append(f.routes, route)
	return nil
}

func (f *fakeRouteStore) GetActive(ctx context.Context) ([]*models.Route, error) {
	active := []*models.Route{}
	for _, r := range f.routes {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func (f *fakeRouteStore) GetByID(ctx context.Context, id int64) (*models.Route, error) {
	for _, r := range f.routes {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeRouteStore) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	route, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v, ok := updates["route_id"]; ok {
		routeID := v.(string)
		for _, r := range f.routes {
			if r.ID != id && r.RouteID == routeID {
				return repositories.ErrRouteIDExists
			}
		}
		route.RouteID = routeID
	}
	if v, ok := updates["route_name"]; ok {
		route.RouteName = v.(string)
	}
	if v, ok := updates["is_active"]; ok {
		route.IsActive = v.(bool)
	}
	return nil
}

func (f *fakeRouteStore) Deactivate(ctx context.Context, id int64) error {
	route, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	route.IsActive = false
	return nil
}

func TestCreateRouteDuplicateID(t *testing.T) {
	store := &fakeRouteStore{}
	svc := NewRouteService(store, zerolog.Nop())

	if _, err := svc.CreateRoute(context.Background(), &models.Route{RouteID: "RT-01", RouteName: "City Route"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateRoute(context.Background(), &models.Route{RouteID: "RT-01", RouteName: "North Route"})
	if !errors.Is(err, apperrors.ErrRouteIDExists) {
		t.Fatalf("second create err = %v, want ErrRouteIDExists", err)
	}

	routes, err := svc.GetRoutes(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(routes) != 1 {
		t.Errorf("list holds %d routes, want 1", len(routes))
	}
}

func TestDeleteRouteHidesFromListKeepsFetchable(t *testing.T) {
	store := &fakeRouteStore{}
	svc := NewRouteService(store, zerolog.Nop())

	kept, err := svc.CreateRoute(context.Background(), &models.Route{RouteName: "City Route"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	removed, err := svc.CreateRoute(context.Background(), &models.Route{RouteName: "North Route"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteRoute(context.Background(), removed.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	routes, err := svc.GetRoutes(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(routes) != 1 || routes[0].ID != kept.ID {
		t.Errorf("list = %d routes, want only the kept one", len(routes))
	}

	fetched, err := svc.GetRouteByID(context.Background(), removed.ID)
	if err != nil {
		t.Fatalf("fetch of removed route failed: %v", err)
	}
	if fetched.IsActive {
		t.Error("removed route is still active")
	}
}
