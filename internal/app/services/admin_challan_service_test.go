package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
)

type fakeAdminChallanStore struct {
	config *models.AdminChallan
}

func (f *fakeAdminChallanStore) GetLatest(ctx context.Context) (*models.AdminChallan, error) {
	if f.config == nil {
		return nil, repositories.ErrNotFound
	}
	return f.config, nil
}

func (f *fakeAdminChallanStore) GetOrCreate(ctx context.Context, def *models.AdminChallan) (*models.AdminChallan, bool, error) {
	if f.config != nil {
		return f.config, false, nil
	}
	f.config = def
	return def, true, nil
}

func (f *fakeAdminChallanStore) Create(ctx context.Context, ac *models.AdminChallan) error {
	f.config = ac
	return nil
}

func (f *fakeAdminChallanStore) UpdateLatest(ctx context.Context, updates map[string]interface{}) (*models.AdminChallan, error) {
	return f.applyUpdates(updates)
}

func (f *fakeAdminChallanStore) UpdateByID(ctx context.Context, id int64, updates map[string]interface{}) (*models.AdminChallan, error) {
	if f.config == nil || f.config.ID != id {
		return nil, repositories.ErrNotFound
	}
	return f.applyUpdates(updates)
}

func (f *fakeAdminChallanStore) applyUpdates(updates map[string]interface{}) (*models.AdminChallan, error) {
	if f.config == nil {
		return nil, repositories.ErrNotFound
	}
	for column, value := range updates {
		text := value.(string)
		switch column {
		case "account_no":
			f.config.AccountNo = text
		case "session":
			f.config.Session = text
		case "amount":
			f.config.Amount = text
		case "issue_date":
			f.config.IssueDate = text
		case "last_date":
			f.config.LastDate = text
		case "max_challan":
			f.config.MaxChallan = text
		}
	}
	return f.config, nil
}

func newTestAdminChallanService(store *fakeAdminChallanStore) *adminChallanServiceImpl {
	return &adminChallanServiceImpl{
		configRepo: store,
		now:        func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) },
		logger:     zerolog.Nop(),
	}
}

func stringPtr(s string) *string { return &s }

func TestGetConfigSeedsDefault(t *testing.T) {
	store := &fakeAdminChallanStore{}
	svc := newTestAdminChallanService(store)

	config, err := svc.GetConfig(context.Background())
	if err != nil {
		t.Fatalf("get config failed: %v", err)
	}
	if config.AccountNo != "1234567890" {
		t.Errorf("account no = %q, want default", config.AccountNo)
	}
	if config.MaxChallan != "10" {
		t.Errorf("max challan = %q, want 10", config.MaxChallan)
	}
	if config.IssueDate != "2024-03-01" {
		t.Errorf("issue date = %q, want 2024-03-01", config.IssueDate)
	}
	if config.LastDate != "2024-03-31" {
		t.Errorf("last date = %q, want 2024-03-31", config.LastDate)
	}
}

func TestGetConfigReturnsExisting(t *testing.T) {
	existing := &models.AdminChallan{AccountNo: "999", Session: "2024-2025", MaxChallan: "50"}
	store := &fakeAdminChallanStore{config: existing}
	svc := newTestAdminChallanService(store)

	config, err := svc.GetConfig(context.Background())
	if err != nil {
		t.Fatalf("get config failed: %v", err)
	}
	if config.AccountNo != "999" {
		t.Errorf("account no = %q, existing config was replaced", config.AccountNo)
	}
}

func TestCreateConfigAppliesRequestOverDefaults(t *testing.T) {
	store := &fakeAdminChallanStore{}
	svc := newTestAdminChallanService(store)

	config, err := svc.CreateConfig(context.Background(), &dto.AdminChallanRequest{
		Session:    stringPtr("2024-2025"),
		MaxChallan: stringPtr("40"),
	})
	if err != nil {
		t.Fatalf("create config failed: %v", err)
	}
	if config.Session != "2024-2025" {
		t.Errorf("session = %q, want 2024-2025", config.Session)
	}
	if config.MaxChallan != "40" {
		t.Errorf("max challan = %q, want 40", config.MaxChallan)
	}
	if config.AccountNo != "1234567890" {
		t.Errorf("account no = %q, want default kept", config.AccountNo)
	}
}

func TestCreateConfigRejectsSecond(t *testing.T) {
	store := &fakeAdminChallanStore{config: &models.AdminChallan{MaxChallan: "10"}}
	svc := newTestAdminChallanService(store)

	_, err := svc.CreateConfig(context.Background(), &dto.AdminChallanRequest{})
	if !errors.Is(err, apperrors.ErrChallanConfigExists) {
		t.Fatalf("create err = %v, want ErrChallanConfigExists", err)
	}
}

func TestCreateConfigRejectsBadMaxChallan(t *testing.T) {
	store := &fakeAdminChallanStore{}
	svc := newTestAdminChallanService(store)

	_, err := svc.CreateConfig(context.Background(), &dto.AdminChallanRequest{
		MaxChallan: stringPtr("unlimited"),
	})
	if !errors.Is(err, apperrors.ErrChallanConfigInvalid) {
		t.Fatalf("create err = %v, want ErrChallanConfigInvalid", err)
	}
	if store.config != nil {
		t.Error("bad configuration was stored")
	}
}

func TestUpdateConfigAppliesPartialChange(t *testing.T) {
	store := &fakeAdminChallanStore{config: &models.AdminChallan{
		AccountNo:  "1234567890",
		Session:    "2023-2024",
		Amount:     "15000",
		MaxChallan: "10",
	}}
	svc := newTestAdminChallanService(store)

	config, err := svc.UpdateConfig(context.Background(), &dto.AdminChallanRequest{
		Amount: stringPtr("18000"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if config.Amount != "18000" {
		t.Errorf("amount = %q, want 18000", config.Amount)
	}
	if config.Session != "2023-2024" {
		t.Errorf("session = %q, untouched field changed", config.Session)
	}
}

func TestUpdateConfigRejectsBadMaxChallan(t *testing.T) {
	store := &fakeAdminChallanStore{config: &models.AdminChallan{MaxChallan: "10"}}
	svc := newTestAdminChallanService(store)

	_, err := svc.UpdateConfig(context.Background(), &dto.AdminChallanRequest{
		MaxChallan: stringPtr("-1"),
	})
	if !errors.Is(err, apperrors.ErrChallanConfigInvalid) {
		t.Fatalf("update err = %v, want ErrChallanConfigInvalid", err)
	}
	if store.config.MaxChallan != "10" {
		t.Errorf("max challan = %q, bad value was stored", store.config.MaxChallan)
	}
}

func TestUpdateConfigByID(t *testing.T) {
	store := &fakeAdminChallanStore{config: &models.AdminChallan{ID: 3, MaxChallan: "10", Amount: "15000"}}
	svc := newTestAdminChallanService(store)

	config, err := svc.UpdateConfigByID(context.Background(), 3, &dto.AdminChallanRequest{
		Amount: stringPtr("20000"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if config.Amount != "20000" {
		t.Errorf("amount = %q, want 20000", config.Amount)
	}

	if _, err := svc.UpdateConfigByID(context.Background(), 9, &dto.AdminChallanRequest{
		Amount: stringPtr("20000"),
	}); !errors.Is(err, apperrors.ErrChallanConfigNotFound) {
		t.Fatalf("update unknown id err = %v, want ErrChallanConfigNotFound", err)
	}
}

func TestUpdateConfigWithoutExistingConfiguration(t *testing.T) {
	store := &fakeAdminChallanStore{}
	svc := newTestAdminChallanService(store)

	_, err := svc.UpdateConfig(context.Background(), &dto.AdminChallanRequest{
		Amount: stringPtr("18000"),
	})
	if !errors.Is(err, apperrors.ErrChallanConfigNotFound) {
		t.Fatalf("update err = %v, want ErrChallanConfigNotFound", err)
	}
}
