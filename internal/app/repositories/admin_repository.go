package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/db"
	"github.com/rao756/utms-backend/internal/pkg/dberrors"
)

// Admin error types
var (
	ErrAdminNotFound      = ErrNotFound
	ErrAdminAlreadyExists = errors.New("admin with this email already exists")
)

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// Create persists a new admin row
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (admin_id, department_name, email, role, is_active, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		admin.AdminID, admin.DepartmentName, admin.Email, admin.Role, admin.IsActive, admin.UserID,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrAdminAlreadyExists
		}
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// CreateWithUser inserts the user and its admin row in one transaction so
// a failed admin insert never leaves an orphan user behind.
func (r *AdminRepository) CreateWithUser(ctx context.Context, user *models.User, admin *models.Admin) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		userQuery := `
			INSERT INTO users (user_name, father_name, roll_no, email, password, department_name,
				semester, route_name, pickup_stop, challan_status, image, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id, created_at, updated_at
		`
		err := tx.QueryRow(ctx, userQuery,
			user.UserName, user.FatherName, user.RollNo, user.Email, user.Password,
			user.DepartmentName, user.Semester, user.RouteName, user.PickupStop,
			user.ChallanStatus, user.Image, user.IsActive,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating admin user: %w", err)
		}

		admin.UserID = user.ID
		adminQuery := `
			INSERT INTO admins (admin_id, department_name, email, role, is_active, user_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`
		err = tx.QueryRow(ctx, adminQuery,
			admin.AdminID, admin.DepartmentName, admin.Email, admin.Role, admin.IsActive, admin.UserID,
		).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateKeyError(err) {
				return ErrAdminAlreadyExists
			}
			return fmt.Errorf("error creating admin: %w", err)
		}

		return nil
	})
}

// GetByEmail retrieves an admin row by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT id, admin_id, department_name, email, role, is_active, user_id, created_at, updated_at
		FROM admins
		WHERE email = $1
	`

	var admin models.Admin
	err := r.db.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.AdminID,
		&admin.DepartmentName,
		&admin.Email,
		&admin.Role,
		&admin.IsActive,
		&admin.UserID,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin by email: %w", err)
	}

	return &admin, nil
}

// EmailExists reports whether an admin row exists for the email
func (r *AdminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}
	return exists, nil
}

// ListEmails returns the lowercase emails of all admins. Used to flag
// admin accounts in the user listing.
func (r *AdminRepository) ListEmails(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.Query(ctx, `SELECT LOWER(email) FROM admins`)
	if err != nil {
		return nil, fmt.Errorf("error listing admin emails: %w", err)
	}
	defer rows.Close()

	emails := make(map[string]bool)
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails[email] = true
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return emails, nil
}
