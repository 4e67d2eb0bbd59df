package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/pkg/apperrors"
	"github.com/rao756/utms-backend/internal/pkg/filestorage"
)

// UploadedChallanService handles student payment proof submissions
type UploadedChallanService struct {
	uploadedRepo *repositories.UploadedChallanRepository
	fileStorage  filestorage.FileStorage
	logger       zerolog.Logger
}

// NewUploadedChallanService creates a new UploadedChallanService
func NewUploadedChallanService(
	uploadedRepo *repositories.UploadedChallanRepository,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) *UploadedChallanService {
	return &UploadedChallanService{
		uploadedRepo: uploadedRepo,
		fileStorage:  fileStorage,
		logger:       logger,
	}
}

// Upload stores a proof-of-payment image submitted by a student. The
// upload starts in the pending state until an admin reviews it.
func (s *UploadedChallanService) Upload(ctx context.Context, userID int64, rollNo string, image *multipart.FileHeader) (*models.UploadedChallan, error) {
	if image == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "challan image is required")
	}

	imagePath, err := s.fileStorage.SaveFileWithPath(image, "challans")
	if err != nil {
		return nil, err
	}

	uc := &models.UploadedChallan{
		UserID:        userID,
		RollNo:        rollNo,
		ChallanStatus: models.ChallanStatusPending,
		Image:         imagePath,
		IsActive:      true,
	}

	if err := s.uploadedRepo.Create(ctx, uc); err != nil {
		if delErr := s.fileStorage.DeleteFile(imagePath); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", imagePath).Msg("Failed to remove orphaned challan image")
		}
		return nil, err
	}

	s.logger.Info().Int64("userId", userID).Str("rollNo", rollNo).Msg("Challan proof uploaded")
	return uc, nil
}

// GetUploads lists active submissions with the submitting user's profile
func (s *UploadedChallanService) GetUploads(ctx context.Context) ([]*models.UploadedChallan, error) {
	return s.uploadedRepo.GetActiveWithUser(ctx)
}

// ReviewUpload moves a submission to Paid or Not Paid. The student's own
// challan status follows the decision.
func (s *UploadedChallanService) ReviewUpload(ctx context.Context, id int64, status models.ChallanStatus) (*models.UploadedChallan, error) {
	if !status.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown challan status")
	}

	if err := s.uploadedRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}

	s.logger.Info().Int64("id", id).Str("status", string(status)).Msg("Challan proof reviewed")
	return s.uploadedRepo.GetByID(ctx, id)
}

// DeleteUpload soft-deletes a submission
func (s *UploadedChallanService) DeleteUpload(ctx context.Context, id int64) error {
	if err := s.uploadedRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return err
	}
	return nil
}
