package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/db"
)

// ErrAdminChallanNotFound indicates no challan configuration row exists
var ErrAdminChallanNotFound = ErrNotFound

// adminChallanLockKey guards the create-if-absent path so two concurrent
// first reads cannot both insert a default configuration.
const adminChallanLockKey = 7561002

const adminChallanColumns = "id, account_no, session, amount, issue_date, last_date, max_challan, created_at"

// AdminChallanRepository handles challan configuration database operations
type AdminChallanRepository struct {
	db *pgxpool.Pool
}

// NewAdminChallanRepository creates a new AdminChallanRepository
func NewAdminChallanRepository(db *pgxpool.Pool) *AdminChallanRepository {
	return &AdminChallanRepository{db: db}
}

func scanAdminChallan(row pgx.Row) (*models.AdminChallan, error) {
	ac := &models.AdminChallan{}
	err := row.Scan(
		&ac.ID, &ac.AccountNo, &ac.Session, &ac.Amount,
		&ac.IssueDate, &ac.LastDate, &ac.MaxChallan, &ac.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ac, nil
}

// GetLatest retrieves the most recently created configuration
func (r *AdminChallanRepository) GetLatest(ctx context.Context) (*models.AdminChallan, error) {
	query := fmt.Sprintf(`SELECT %s FROM admin_challans ORDER BY created_at DESC, id DESC LIMIT 1`, adminChallanColumns)

	ac, err := scanAdminChallan(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminChallanNotFound
		}
		return nil, fmt.Errorf("error getting challan configuration: %w", err)
	}

	return ac, nil
}

// Create inserts a new configuration row
func (r *AdminChallanRepository) Create(ctx context.Context, ac *models.AdminChallan) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO admin_challans (account_no, session, amount, issue_date, last_date, max_challan)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		ac.AccountNo, ac.Session, ac.Amount, ac.IssueDate, ac.LastDate, ac.MaxChallan,
	).Scan(&ac.ID, &ac.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating challan configuration: %w", err)
	}
	return nil
}

// GetOrCreate returns the latest configuration, inserting the supplied
// default inside a locked transaction when none exists yet. The returned
// bool reports whether the default was inserted.
func (r *AdminChallanRepository) GetOrCreate(ctx context.Context, def *models.AdminChallan) (*models.AdminChallan, bool, error) {
	var result *models.AdminChallan
	var created bool

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, adminChallanLockKey); err != nil {
			return fmt.Errorf("error acquiring challan configuration lock: %w", err)
		}

		query := fmt.Sprintf(`SELECT %s FROM admin_challans ORDER BY created_at DESC, id DESC LIMIT 1`, adminChallanColumns)
		existing, err := scanAdminChallan(tx.QueryRow(ctx, query))
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("error getting challan configuration: %w", err)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO admin_challans (account_no, session, amount, issue_date, last_date, max_challan)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at`,
			def.AccountNo, def.Session, def.Amount, def.IssueDate, def.LastDate, def.MaxChallan,
		).Scan(&def.ID, &def.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating default challan configuration: %w", err)
		}

		result = def
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return result, created, nil
}

// UpdateLatest applies the given column updates to the most recent
// configuration row
func (r *AdminChallanRepository) UpdateLatest(ctx context.Context, updates map[string]interface{}) (*models.AdminChallan, error) {
	if len(updates) == 0 {
		return r.GetLatest(ctx)
	}

	setClause, args := buildSetClause(updates)
	query := fmt.Sprintf(`
		UPDATE admin_challans SET %s
		WHERE id = (SELECT id FROM admin_challans ORDER BY created_at DESC, id DESC LIMIT 1)
		RETURNING %s`, setClause, adminChallanColumns)

	ac, err := scanAdminChallan(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminChallanNotFound
		}
		return nil, fmt.Errorf("error updating challan configuration: %w", err)
	}

	return ac, nil
}

// UpdateByID applies the given column updates to one configuration row
func (r *AdminChallanRepository) UpdateByID(ctx context.Context, id int64, updates map[string]interface{}) (*models.AdminChallan, error) {
	if len(updates) == 0 {
		query := fmt.Sprintf(`SELECT %s FROM admin_challans WHERE id = $1`, adminChallanColumns)
		ac, err := scanAdminChallan(r.db.QueryRow(ctx, query, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrAdminChallanNotFound
			}
			return nil, fmt.Errorf("error getting challan configuration: %w", err)
		}
		return ac, nil
	}

	setClause, args := buildSetClause(updates)
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE admin_challans SET %s
		WHERE id = $%d
		RETURNING %s`, setClause, len(args), adminChallanColumns)

	ac, err := scanAdminChallan(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminChallanNotFound
		}
		return nil, fmt.Errorf("error updating challan configuration: %w", err)
	}

	return ac, nil
}

func buildSetClause(updates map[string]interface{}) (string, []interface{}) {
	setClause := ""
	args := []interface{}{}
	i := 1
	for col, val := range updates {
		if setClause != "" {
			setClause += ", "
		}
		setClause += fmt.Sprintf("%s = $%d", col, i)
		args = append(args, val)
		i++
	}
	return setClause, args
}
