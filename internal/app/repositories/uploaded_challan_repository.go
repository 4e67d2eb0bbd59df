package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rao756/utms-backend/internal/app/models"
)

// ErrUploadedChallanNotFound indicates the uploaded challan does not exist
var ErrUploadedChallanNotFound = ErrNotFound

// UploadedChallanRepository handles payment proof database operations
type UploadedChallanRepository struct {
	db *pgxpool.Pool
}

// NewUploadedChallanRepository creates a new UploadedChallanRepository
func NewUploadedChallanRepository(db *pgxpool.Pool) *UploadedChallanRepository {
	return &UploadedChallanRepository{db: db}
}

// Create persists a new uploaded challan
func (r *UploadedChallanRepository) Create(ctx context.Context, uc *models.UploadedChallan) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO uploaded_challans (user_id, roll_no, challan_status, image, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		uc.UserID, uc.RollNo, uc.ChallanStatus, uc.Image, uc.IsActive,
	).Scan(&uc.ID, &uc.CreatedAt, &uc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating uploaded challan: %w", err)
	}
	return nil
}

// GetByID retrieves an uploaded challan by id
func (r *UploadedChallanRepository) GetByID(ctx context.Context, id int64) (*models.UploadedChallan, error) {
	uc := &models.UploadedChallan{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, roll_no, challan_status, image, is_active, created_at, updated_at
		FROM uploaded_challans
		WHERE id = $1`, id,
	).Scan(&uc.ID, &uc.UserID, &uc.RollNo, &uc.ChallanStatus, &uc.Image, &uc.IsActive, &uc.CreatedAt, &uc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUploadedChallanNotFound
		}
		return nil, fmt.Errorf("error getting uploaded challan: %w", err)
	}
	return uc, nil
}

// GetActiveWithUser retrieves active uploads joined with the submitting
// user's profile, newest first
func (r *UploadedChallanRepository) GetActiveWithUser(ctx context.Context) ([]*models.UploadedChallan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT uc.id, uc.user_id, uc.roll_no, uc.challan_status, uc.image, uc.is_active, uc.created_at, uc.updated_at,
		       u.id, u.user_name, u.father_name, u.roll_no, u.email, u.department_name,
		       u.semester, u.route_name, u.pickup_stop, u.challan_status, u.image, u.is_active,
		       u.created_at, u.updated_at
		FROM uploaded_challans uc
		JOIN users u ON u.id = uc.user_id
		WHERE uc.is_active = TRUE
		ORDER BY uc.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying uploaded challans: %w", err)
	}
	defer rows.Close()

	uploads := []*models.UploadedChallan{}
	for rows.Next() {
		uc := &models.UploadedChallan{User: &models.User{}}
		u := uc.User
		if err := rows.Scan(
			&uc.ID, &uc.UserID, &uc.RollNo, &uc.ChallanStatus, &uc.Image, &uc.IsActive, &uc.CreatedAt, &uc.UpdatedAt,
			&u.ID, &u.UserName, &u.FatherName, &u.RollNo, &u.Email, &u.DepartmentName,
			&u.Semester, &u.RouteName, &u.PickupStop, &u.ChallanStatus, &u.Image, &u.IsActive,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		uploads = append(uploads, uc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return uploads, nil
}

// UpdateStatus moves an upload through the review states. The user's own
// challan_status is kept in step so their dashboard reflects the decision.
func (r *UploadedChallanRepository) UpdateStatus(ctx context.Context, id int64, status models.ChallanStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE uploaded_challans SET challan_status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("error updating uploaded challan status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrUploadedChallanNotFound
	}

	_, err = r.db.Exec(ctx, `
		UPDATE users SET challan_status = $2, updated_at = NOW()
		WHERE id = (SELECT user_id FROM uploaded_challans WHERE id = $1)`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("error syncing user challan status: %w", err)
	}

	return nil
}

// Deactivate soft-deletes an uploaded challan
func (r *UploadedChallanRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE uploaded_challans SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("error deactivating uploaded challan: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrUploadedChallanNotFound
	}
	return nil
}
