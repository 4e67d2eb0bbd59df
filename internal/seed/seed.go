package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/app/repositories"
	"github.com/rao756/utms-backend/internal/config"
	"github.com/rao756/utms-backend/internal/pkg/auth"
	"github.com/rao756/utms-backend/internal/pkg/helpers"
)

// CreateDefaultData seeds the super admin account so a fresh deployment
// has someone who can approve registrations. Seeding is idempotent; a
// duplicate email just means the admin already exists.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	adminRepo := repositories.NewAdminRepository(dbPool)

	email := strings.ToLower(strings.TrimSpace(cfg.Seed.AdminEmail))
	if email == "" {
		lgr.Warn().Msg("No seed admin email configured, skipping default admin")
		return nil
	}

	exists, err := adminRepo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Str("email", email).Msg("Default admin already present")
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	user := &models.User{
		UserName:      "Transport Admin",
		Email:         email,
		Password:      hashedPassword,
		ChallanStatus: models.ChallanStatusPending,
		IsActive:      true,
	}
	admin := &models.Admin{
		AdminID:  helpers.GenerateID("admin"),
		Email:    email,
		Role:     models.RoleSuperAdmin,
		IsActive: true,
	}

	if err := adminRepo.CreateWithUser(ctx, user, admin); err != nil {
		// A concurrent boot may have seeded first
		if errors.Is(err, repositories.ErrEmailAlreadyExists) || errors.Is(err, repositories.ErrAdminAlreadyExists) {
			lgr.Debug().Str("email", email).Msg("Default admin already present")
			return nil
		}
		return err
	}

	lgr.Info().Str("email", email).Msg("Default super admin seeded")
	return nil
}
