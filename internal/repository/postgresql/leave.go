package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/labourhub/labour-backend-go/internal/domain/leave"
	"github.com/labourhub/labour-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveSelect = `
	SELECT lv.id, lv.owner_id, lv.labour_id, lv.start_date, lv.end_date, lv.type, lv.reason,
		   lv.status, lv.created_at, lv.updated_at, l.name
	FROM leaves lv
	JOIN labours l ON l.id = lv.labour_id`

const leaveReturning = `
		SELECT s.id, s.owner_id, s.labour_id, s.start_date, s.end_date, s.type, s.reason,
			   s.status, s.created_at, s.updated_at, l.name
		FROM saved s
		JOIN labours l ON l.id = s.labour_id`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var lv leave.Leave
	err := row.Scan(
		&lv.ID,
		&lv.OwnerID,
		&lv.LabourID,
		&lv.StartDate,
		&lv.EndDate,
		&lv.Type,
		&lv.Reason,
		&lv.Status,
		&lv.CreatedAt,
		&lv.UpdatedAt,
		&lv.LabourName,
	)
	return lv, err
}

func (r *leaveRepositoryImpl) queryLeaves(ctx context.Context, query string, args ...interface{}) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		lv, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, lv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaves: %w", err)
	}
	return leaves, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return leave.Leave{}, err
	}

	query := `
		WITH saved AS (
			INSERT INTO leaves (id, owner_id, labour_id, start_date, end_date, type, reason, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)` + leaveReturning

	created, err := scanLeave(q.QueryRow(ctx, query,
		id, lv.OwnerID, lv.LabourID, lv.StartDate, lv.EndDate, lv.Type, lv.Reason, lv.Status,
	))
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}
	return created, nil
}

// ListByLabour implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByLabour(ctx context.Context, labourID, ownerID string) ([]leave.Leave, error) {
	return r.queryLeaves(ctx,
		leaveSelect+` WHERE lv.labour_id = $1 AND lv.owner_id = $2 ORDER BY lv.start_date DESC`,
		labourID, ownerID,
	)
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, ownerID string, status *leave.Status) ([]leave.Leave, error) {
	if status != nil {
		return r.queryLeaves(ctx,
			leaveSelect+` WHERE lv.owner_id = $1 AND lv.status = $2 ORDER BY lv.start_date DESC`,
			ownerID, *status,
		)
	}
	return r.queryLeaves(ctx, leaveSelect+` WHERE lv.owner_id = $1 ORDER BY lv.start_date DESC`, ownerID)
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id, ownerID string, status leave.Status) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH saved AS (
			UPDATE leaves SET status = $3, updated_at = NOW()
			WHERE id = $1 AND owner_id = $2
			RETURNING *
		)` + leaveReturning

	updated, err := scanLeave(q.QueryRow(ctx, query, id, ownerID, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave status: %w", err)
	}
	return updated, nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}
