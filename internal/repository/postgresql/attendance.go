package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/labourhub/labour-backend-go/internal/domain/attendance"
	"github.com/labourhub/labour-backend-go/internal/pkg/database"
	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.owner_id, a.labour_id, a.date, a.status, a.hours, a.notes,
		   a.created_at, a.updated_at, l.name
	FROM attendances a
	JOIN labours l ON l.id = a.labour_id`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.LabourID,
		&a.Date,
		&a.Status,
		&a.Hours,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.LabourName,
	)
	return a, err
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}
	return records, nil
}

// Upsert implements attendance.AttendanceRepository. A second mark for the
// same worker and day replaces the first.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return attendance.Attendance{}, err
	}

	query := `
		WITH saved AS (
			INSERT INTO attendances (id, owner_id, labour_id, date, status, hours, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (labour_id, date) DO UPDATE SET
				status = EXCLUDED.status,
				hours = EXCLUDED.hours,
				notes = EXCLUDED.notes,
				updated_at = NOW()
			RETURNING id, owner_id, labour_id, date, status, hours, notes, created_at, updated_at
		)
		SELECT s.id, s.owner_id, s.labour_id, s.date, s.status, s.hours, s.notes,
			   s.created_at, s.updated_at, l.name
		FROM saved s
		JOIN labours l ON l.id = s.labour_id`

	saved, err := scanAttendance(q.QueryRow(ctx, query,
		id, a.OwnerID, a.LabourID, a.Date, a.Status, a.Hours, a.Notes,
	))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return saved, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id, ownerID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1 AND a.owner_id = $2`, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}
	return a, nil
}

// ListByLabour implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByLabour(ctx context.Context, labourID, ownerID string, period *utils.Period) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.labour_id = $1 AND a.owner_id = $2`
	args := []interface{}{labourID, ownerID}
	if period != nil {
		query += ` AND a.date >= $3 AND a.date < $4`
		args = append(args, period.Start, period.End)
	}
	query += ` ORDER BY a.date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by labour: %w", err)
	}
	return collectAttendances(rows)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, ownerID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE a.owner_id = $1`
	args := []interface{}{ownerID}
	argIdx := 2

	if filter.LabourID != nil {
		where += fmt.Sprintf(" AND a.labour_id = $%d", argIdx)
		args = append(args, *filter.LabourID)
		argIdx++
	}
	if filter.Month != nil {
		period, err := utils.ParseMonth(*filter.Month)
		if err != nil {
			return nil, 0, err
		}
		where += fmt.Sprintf(" AND a.date >= $%d AND a.date < $%d", argIdx, argIdx+1)
		args = append(args, period.Start, period.End)
		argIdx += 2
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances a`+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`%s%s ORDER BY a.date DESC, l.name ASC LIMIT $%d OFFSET $%d`,
		attendanceSelect, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	records, err := collectAttendances(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, totalCount, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
