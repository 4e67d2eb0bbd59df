package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/models/dto"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
	"github.com/rao756/utms-backend/internal/pkg/auth"
	"github.com/rao756/utms-backend/internal/pkg/filestorage"
	"github.com/rao756/utms-backend/internal/pkg/helpers"
)

// userStore is the slice of user persistence AuthService needs
type userStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// adminStore is the slice of admin persistence AuthService needs
type adminStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	CreateWithUser(ctx context.Context, user *models.User, admin *models.Admin) error
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, form *dto.RegisterForm, image *multipart.FileHeader) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.Admin, error)
	PromoteUser(ctx context.Context, userID int64, req *dto.PromoteAdminRequest) (*models.Admin, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo    userStore
	adminRepo   adminStore
	jwtService  *auth.JWTService
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo userStore,
	adminRepo adminStore,
	jwtService *auth.JWTService,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		adminRepo:   adminRepo,
		jwtService:  jwtService,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// Register creates a new student account. New accounts start inactive and
// must be approved by an admin before they can log in.
func (s *authServiceImpl) Register(ctx context.Context, form *dto.RegisterForm, image *multipart.FileHeader) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(form.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	imagePath := ""
	if image != nil {
		imagePath, err = s.fileStorage.SaveFileWithPath(image, "profiles")
		if err != nil {
			return nil, fmt.Errorf("failed to save profile image: %w", err)
		}
	}

	user := &models.User{
		UserName:       form.UserName,
		FatherName:     form.FatherName,
		RollNo:         form.RollNo,
		Email:          strings.ToLower(strings.TrimSpace(form.Email)),
		Password:       hashedPassword,
		DepartmentName: form.DepartmentName,
		Semester:       form.Semester,
		RouteName:      form.RouteName,
		PickupStop:     form.PickupStop,
		ChallanStatus:  models.ChallanStatusPending,
		Image:          imagePath,
		IsActive:       false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if imagePath != "" {
			if delErr := s.fileStorage.DeleteFile(imagePath); delErr != nil {
				s.logger.Warn().Err(delErr).Str("path", imagePath).Msg("Failed to remove orphaned profile image")
			}
		}
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Msg("User registered")
	return user, nil
}

// Login authenticates a student and issues a session token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	token, err := s.jwtService.GenerateToken(user, auth.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		Success: true,
		Token:   token,
		User:    user,
	}, nil
}

// AdminLogin authenticates an admin. The credentials live on the admin's
// user row; the admins table decides whether the account has admin access.
func (s *authServiceImpl) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrPermissionDenied
		}
		return nil, err
	}
	if !admin.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user, auth.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.LoginResponse{
		Message: "Admin login successful",
		Success: true,
		Token:   token,
		User:    user,
	}, nil
}

// ResetPassword changes a user's password after verifying the current one
func (s *authServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, email, hashedPassword); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("Password reset")
	return nil
}

// RegisterAdmin creates a user account and its admin row in one step.
// The role defaults to department_admin when not supplied.
func (s *authServiceImpl) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.Admin, error) {
	role := models.AdminRole(req.Role)
	if req.Role == "" {
		role = models.RoleDepartmentAdmin
	}
	if !role.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, fmt.Sprintf("unknown admin role: %s", req.Role))
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user := &models.User{
		UserName:       req.UserName,
		FatherName:     req.FatherName,
		RollNo:         req.RollNo,
		Email:          email,
		Password:       hashedPassword,
		DepartmentName: req.DepartmentName,
		ChallanStatus:  models.ChallanStatusPending,
		IsActive:       true,
	}

	admin := &models.Admin{
		AdminID:        helpers.GenerateID("admin"),
		DepartmentName: req.DepartmentName,
		Email:          email,
		Role:           role,
		IsActive:       req.IsActive,
	}

	if err := s.adminRepo.CreateWithUser(ctx, user, admin); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmailAlreadyExists):
			return nil, apperrors.ErrEmailAlreadyExists
		case errors.Is(err, repositories.ErrAdminAlreadyExists):
			return nil, apperrors.ErrAdminAlreadyExists
		}
		return nil, err
	}

	admin.User = user
	s.logger.Info().Str("email", email).Str("role", string(role)).Msg("Admin registered")
	return admin, nil
}

// PromoteUser grants admin access to an existing account
func (s *authServiceImpl) PromoteUser(ctx context.Context, userID int64, req *dto.PromoteAdminRequest) (*models.Admin, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.adminRepo.GetByEmail(ctx, user.Email); err == nil {
		return nil, apperrors.ErrAdminAlreadyExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	role := models.AdminRole(req.Role)
	if req.Role == "" {
		role = models.RoleDepartmentAdmin
	}
	if !role.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, fmt.Sprintf("unknown admin role: %s", req.Role))
	}

	department := req.DepartmentName
	if department == "" {
		department = user.DepartmentName
	}

	admin := &models.Admin{
		AdminID:        helpers.GenerateID("admin"),
		DepartmentName: department,
		Email:          user.Email,
		Role:           role,
		IsActive:       req.IsActive,
		UserID:         user.ID,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrAdminAlreadyExists) {
			return nil, apperrors.ErrAdminAlreadyExists
		}
		return nil, err
	}

	admin.User = user
	s.logger.Info().Str("email", user.Email).Str("role", string(role)).Msg("User promoted to admin")
	return admin, nil
}
