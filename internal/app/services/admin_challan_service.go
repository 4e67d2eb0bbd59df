package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
	"github.com/rao756/utms-backend/internal/pkg/helpers"
)

// Defaults seeded on the first configuration read
const (
	defaultChallanAccountNo = "1234567890"
	defaultChallanSession   = "2023-2024"
	defaultChallanAmount    = "15000"
	defaultChallanMax       = "10"
	defaultChallanDueDays   = 30
)

// adminChallanStore is the slice of configuration persistence
// AdminChallanService needs
type adminChallanStore interface {
	GetLatest(ctx context.Context) (*models.AdminChallan, error)
	GetOrCreate(ctx context.Context, def *models.AdminChallan) (*models.AdminChallan, bool, error)
	Create(ctx context.Context, ac *models.AdminChallan) error
	UpdateLatest(ctx context.Context, updates map[string]interface{}) (*models.AdminChallan, error)
	UpdateByID(ctx context.Context, id int64, updates map[string]interface{}) (*models.AdminChallan, error)
}

// AdminChallanService defines the interface for challan configuration
// operations
type AdminChallanService interface {
	GetConfig(ctx context.Context) (*models.AdminChallan, error)
	CreateConfig(ctx context.Context, req *dto.AdminChallanRequest) (*models.AdminChallan, error)
	UpdateConfig(ctx context.Context, req *dto.AdminChallanRequest) (*models.AdminChallan, error)
	UpdateConfigByID(ctx context.Context, id int64, req *dto.AdminChallanRequest) (*models.AdminChallan, error)
}

// adminChallanServiceImpl implements AdminChallanService
type adminChallanServiceImpl struct {
	configRepo adminChallanStore
	now        func() time.Time
	logger     zerolog.Logger
}

// NewAdminChallanService creates a new AdminChallanService
func NewAdminChallanService(configRepo adminChallanStore, logger zerolog.Logger) AdminChallanService {
	return &adminChallanServiceImpl{
		configRepo: configRepo,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *adminChallanServiceImpl) defaultConfig() *models.AdminChallan {
	issued := s.now()
	return &models.AdminChallan{
		AccountNo:  defaultChallanAccountNo,
		Session:    defaultChallanSession,
		Amount:     defaultChallanAmount,
		IssueDate:  helpers.DateString(issued),
		LastDate:   helpers.DateString(issued.AddDate(0, 0, defaultChallanDueDays)),
		MaxChallan: defaultChallanMax,
	}
}

// GetConfig returns the effective configuration, seeding the default one
// on the very first read so issuance always has parameters to work from
func (s *adminChallanServiceImpl) GetConfig(ctx context.Context) (*models.AdminChallan, error) {
	config, created, err := s.configRepo.GetOrCreate(ctx, s.defaultConfig())
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info().Msg("Seeded default challan configuration")
	}
	return config, nil
}

// CreateConfig stores the initial configuration. Only one configuration
// may exist through this path; later changes go through UpdateConfig.
func (s *adminChallanServiceImpl) CreateConfig(ctx context.Context, req *dto.AdminChallanRequest) (*models.AdminChallan, error) {
	if _, err := s.configRepo.GetLatest(ctx); err == nil {
		return nil, apperrors.ErrChallanConfigExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	config := s.defaultConfig()
	applyConfigRequest(config, req)

	if _, err := ParseMaxChallan(config.MaxChallan); err != nil {
		return nil, err
	}

	if err := s.configRepo.Create(ctx, config); err != nil {
		return nil, err
	}

	s.logger.Info().Str("session", config.Session).Msg("Challan configuration created")
	return config, nil
}

// UpdateConfig applies a partial update to the latest configuration
func (s *adminChallanServiceImpl) UpdateConfig(ctx context.Context, req *dto.AdminChallanRequest) (*models.AdminChallan, error) {
	updates, err := configUpdates(req)
	if err != nil {
		return nil, err
	}

	config, err := s.configRepo.UpdateLatest(ctx, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrChallanConfigNotFound
		}
		return nil, err
	}

	return config, nil
}

// UpdateConfigByID applies a partial update to one configuration row
func (s *adminChallanServiceImpl) UpdateConfigByID(ctx context.Context, id int64, req *dto.AdminChallanRequest) (*models.AdminChallan, error) {
	updates, err := configUpdates(req)
	if err != nil {
		return nil, err
	}

	config, err := s.configRepo.UpdateByID(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrChallanConfigNotFound
		}
		return nil, err
	}

	return config, nil
}

func configUpdates(req *dto.AdminChallanRequest) (map[string]interface{}, error) {
	if req.MaxChallan != nil {
		if _, err := ParseMaxChallan(*req.MaxChallan); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if req.AccountNo != nil {
		updates["account_no"] = *req.AccountNo
	}
	if req.Session != nil {
		updates["session"] = *req.Session
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.IssueDate != nil {
		updates["issue_date"] = *req.IssueDate
	}
	if req.LastDate != nil {
		updates["last_date"] = *req.LastDate
	}
	if req.MaxChallan != nil {
		updates["max_challan"] = *req.MaxChallan
	}
	return updates, nil
}

func applyConfigRequest(config *models.AdminChallan, req *dto.AdminChallanRequest) {
	if req.AccountNo != nil {
		config.AccountNo = *req.AccountNo
	}
	if req.Session != nil {
		config.Session = *req.Session
	}
	if req.Amount != nil {
		config.Amount = *req.Amount
	}
	if req.IssueDate != nil {
		config.IssueDate = *req.IssueDate
	}
	if req.LastDate != nil {
		config.LastDate = *req.LastDate
	}
	if req.MaxChallan != nil {
		config.MaxChallan = *req.MaxChallan
	}
}
