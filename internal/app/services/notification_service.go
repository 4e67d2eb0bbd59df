package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
)

// NotificationService handles transport announcement operations
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo *repositories.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo, logger: logger}
}

// CreateNotification publishes a new announcement
func (s *NotificationService) CreateNotification(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	notification.IsActive = true
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("id", notification.ID).Msg("Notification created")
	return notification, nil
}

// GetNotifications returns active announcements, newest first
func (s *NotificationService) GetNotifications(ctx context.Context) ([]*models.Notification, error) {
	return s.notificationRepo.GetActive(ctx)
}

// UpdateNotification applies a partial update and returns the updated announcement
func (s *NotificationService) UpdateNotification(ctx context.Context, id int64, req *dto.NotificationUpdateRequest) (*models.Notification, error) {
	updates := map[string]interface{}{}
	if req.NotificationMessage != nil {
		updates["notification_message"] = *req.NotificationMessage
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.notificationRepo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}

	return s.notificationRepo.GetByID(ctx, id)
}

// DeleteNotification soft-deletes an announcement
func (s *NotificationService) DeleteNotification(ctx context.Context, id int64) error {
	if err := s.notificationRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return err
	}
	return nil
}
