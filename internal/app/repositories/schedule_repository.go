package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rao756/utms-backend/internal/app/models"
	"github.com/rao756/utms-backend/internal/pkg/dberrors"
)

// Schedule error types
var (
	ErrScheduleNotFound = ErrNotFound
	ErrScheduleIDExists = errors.New("schedule with this id already exists")
)

const scheduleColumns = "id, schedule_id, route_name, bus_id, driver_id, stops, is_active, created_at, updated_at"

// ScheduleRepository handles schedule database operations.
// Stops are marshalled to a JSONB column so the stop ordering survives round trips.
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func scanSchedule(row pgx.Row) (*models.Schedule, error) {
	s := &models.Schedule{}
	var stopsJSON []byte
	err := row.Scan(
		&s.ID, &s.ScheduleID, &s.RouteName, &s.BusID, &s.DriverID,
		&stopsJSON, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(stopsJSON) > 0 {
		if err := json.Unmarshal(stopsJSON, &s.Stops); err != nil {
			return nil, fmt.Errorf("error decoding schedule stops: %w", err)
		}
	}
	return s, nil
}

// Create persists a new schedule
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	stopsJSON, err := json.Marshal(schedule.Stops)
	if err != nil {
		return fmt.Errorf("error encoding schedule stops: %w", err)
	}

	query := `
		INSERT INTO schedules (schedule_id, route_name, bus_id, driver_id, stops, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err = r.db.QueryRow(ctx, query,
		schedule.ScheduleID, schedule.RouteName, schedule.BusID,
		schedule.DriverID, stopsJSON, schedule.IsActive,
	).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "schedules_schedule_id_key") {
			return ErrScheduleIDExists
		}
		return fmt.Errorf("error creating schedule: %w", err)
	}

	return nil
}

// GetByScheduleID retrieves a schedule by its public schedule id
func (r *ScheduleRepository) GetByScheduleID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	query := fmt.Sprintf(`SELECT %s FROM schedules WHERE schedule_id = $1`, scheduleColumns)

	schedule, err := scanSchedule(r.db.QueryRow(ctx, query, scheduleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("error getting schedule: %w", err)
	}

	return schedule, nil
}

// GetAll retrieves every schedule, newest first. The timetable page shows
// inactive entries greyed out, so no is_active filter here.
func (r *ScheduleRepository) GetAll(ctx context.Context) ([]*models.Schedule, error) {
	query := fmt.Sprintf(`SELECT %s FROM schedules ORDER BY created_at DESC`, scheduleColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying schedules: %w", err)
	}
	defer rows.Close()

	schedules := []*models.Schedule{}
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// UpdateByScheduleID replaces the mutable fields of a schedule. A nil stops
// slice leaves the stored stops untouched.
func (r *ScheduleRepository) UpdateByScheduleID(ctx context.Context, scheduleID string, schedule *models.Schedule) error {
	var stopsJSON []byte
	if schedule.Stops != nil {
		var err error
		stopsJSON, err = json.Marshal(schedule.Stops)
		if err != nil {
			return fmt.Errorf("error encoding schedule stops: %w", err)
		}
	}

	query := `
		UPDATE schedules
		SET route_name = COALESCE(NULLIF($2, ''), route_name),
		    bus_id = COALESCE(NULLIF($3, ''), bus_id),
		    driver_id = COALESCE(NULLIF($4, ''), driver_id),
		    stops = COALESCE($5, stops),
		    updated_at = NOW()
		WHERE schedule_id = $1`

	cmdTag, err := r.db.Exec(ctx, query,
		scheduleID, schedule.RouteName, schedule.BusID, schedule.DriverID, stopsJSON,
	)
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// DeleteByScheduleID removes a schedule. Schedules delete hard, unlike the
// fleet entities, because an old timetable entry has nothing referencing it.
func (r *ScheduleRepository) DeleteByScheduleID(ctx context.Context, scheduleID string) error {
	query := `DELETE FROM schedules WHERE schedule_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, scheduleID)
	if err != nil {
		return fmt.Errorf("error deleting schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrScheduleNotFound
	}

	return nil
}
