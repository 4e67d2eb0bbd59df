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

// Challan error types
var (
	ErrChallanNotFound     = ErrNotFound
	ErrChallanRollNoExists = errors.New("a challan for this roll number already exists")
)

// challanIssueLockKey serializes challan issuance across connections so the
// serial number and quota checks cannot race.
const challanIssueLockKey = 7561001

const challanColumns = "id, sr_no, name, father_name, roll_no, contact_no, semester, program, department_name, route, bus_stop, download_status, created_at"

// ChallanRepository handles challan database operations
type ChallanRepository struct {
	db *pgxpool.Pool
}

// NewChallanRepository creates a new ChallanRepository
func NewChallanRepository(db *pgxpool.Pool) *ChallanRepository {
	return &ChallanRepository{db: db}
}

func scanChallan(row pgx.Row) (*models.Challan, error) {
	c := &models.Challan{}
	err := row.Scan(
		&c.ID, &c.SrNo, &c.Name, &c.FatherName, &c.RollNo, &c.ContactNo,
		&c.Semester, &c.Program, &c.DepartmentName, &c.Route, &c.BusStop,
		&c.DownloadStatus, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Issue creates a challan inside a single transaction holding an advisory
// lock, so that concurrent issuance requests observe consistent counts.
// A student who already holds a challan is rejected before the quota
// decision, so a full route still reports the duplicate. The decide
// callback receives the current totals and rejects the issuance by
// returning an error; on success the challan gets sr_no = total + 1.
func (r *ChallanRepository) Issue(ctx context.Context, challan *models.Challan, decide func(total, routeCount int) error) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, challanIssueLockKey); err != nil {
			return fmt.Errorf("error acquiring challan issue lock: %w", err)
		}

		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM challans WHERE roll_no = $1)`, challan.RollNo,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking challan existence: %w", err)
		}
		if exists {
			return ErrChallanRollNoExists
		}

		var total, routeCount int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*), COUNT(*) FILTER (WHERE route = $1) FROM challans`,
			challan.Route,
		).Scan(&total, &routeCount)
		if err != nil {
			return fmt.Errorf("error counting challans: %w", err)
		}

		if err := decide(total, routeCount); err != nil {
			return err
		}

		challan.SrNo = total + 1

		err = tx.QueryRow(ctx, `
			INSERT INTO challans (sr_no, name, father_name, roll_no, contact_no, semester, program, department_name, route, bus_stop, download_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at`,
			challan.SrNo, challan.Name, challan.FatherName, challan.RollNo,
			challan.ContactNo, challan.Semester, challan.Program,
			challan.DepartmentName, challan.Route, challan.BusStop,
			challan.DownloadStatus,
		).Scan(&challan.ID, &challan.CreatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "challans_roll_no_key") {
				return ErrChallanRollNoExists
			}
			return fmt.Errorf("error creating challan: %w", err)
		}

		return nil
	})
}

// GetByRollNo retrieves a challan by the student roll number
func (r *ChallanRepository) GetByRollNo(ctx context.Context, rollNo string) (*models.Challan, error) {
	query := fmt.Sprintf(`SELECT %s FROM challans WHERE roll_no = $1`, challanColumns)

	challan, err := scanChallan(r.db.QueryRow(ctx, query, rollNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChallanNotFound
		}
		return nil, fmt.Errorf("error getting challan: %w", err)
	}

	return challan, nil
}

// GetAll retrieves every issued challan in serial order
func (r *ChallanRepository) GetAll(ctx context.Context) ([]*models.Challan, error) {
	query := fmt.Sprintf(`SELECT %s FROM challans ORDER BY sr_no ASC`, challanColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying challans: %w", err)
	}
	defer rows.Close()

	challans := []*models.Challan{}
	for rows.Next() {
		challan, err := scanChallan(rows)
		if err != nil {
			return nil, err
		}
		challans = append(challans, challan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return challans, nil
}

// CountAll returns the total number of issued challans
func (r *ChallanRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM challans`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting challans: %w", err)
	}
	return count, nil
}

// CountByRoute returns per-route issuance counts
func (r *ChallanRepository) CountByRoute(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT route, COUNT(*) FROM challans GROUP BY route`)
	if err != nil {
		return nil, fmt.Errorf("error counting challans by route: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var route string
		var count int
		if err := rows.Scan(&route, &count); err != nil {
			return nil, err
		}
		counts[route] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// MarkDownloaded flags the challan as downloaded by its student
func (r *ChallanRepository) MarkDownloaded(ctx context.Context, rollNo string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE challans SET download_status = 'true' WHERE roll_no = $1`, rollNo,
	)
	if err != nil {
		return fmt.Errorf("error marking challan downloaded: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrChallanNotFound
	}

	return nil
}
