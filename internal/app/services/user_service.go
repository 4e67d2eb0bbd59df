package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
	"github.com/rao756/utms-backend/internal/pkg/filestorage"
)

// UserService handles student account administration
type UserService struct {
	userRepo    *repositories.UserRepository
	adminRepo   *repositories.AdminRepository
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo *repositories.UserRepository,
	adminRepo *repositories.AdminRepository,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		adminRepo:   adminRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// GetUsers lists every account, newest first, annotating each with
// whether an admin row exists for its email
func (s *UserService) GetUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	adminEmails, err := s.adminRepo.ListEmails(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserListItem, 0, len(users))
	for _, user := range users {
		items = append(items, dto.UserListItem{
			User:    user,
			IsAdmin: adminEmails[strings.ToLower(user.Email)],
		})
	}

	return &dto.UserListResponse{
		Users:      items,
		TotalUsers: len(items),
	}, nil
}

// GetUserByID returns one account
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ApproveUser activates a pending registration
func (s *UserService) ApproveUser(ctx context.Context, id int64) error {
	if err := s.userRepo.Approve(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	s.logger.Info().Int64("id", id).Msg("User approved")
	return nil
}

// DeleteUser removes an account and its stored profile image
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if user.Image != "" {
		if err := s.fileStorage.DeleteFile(user.Image); err != nil {
			s.logger.Warn().Err(err).Str("path", user.Image).Msg("Failed to remove profile image")
		}
	}

	s.logger.Info().Int64("id", id).Str("email", user.Email).Msg("User deleted")
	return nil
}
