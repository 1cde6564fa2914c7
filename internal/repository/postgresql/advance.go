package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/labourhub/labour-backend-go/internal/domain/advance"
	"github.com/labourhub/labour-backend-go/internal/pkg/database"
	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

const advanceSelect = `
	SELECT ad.id, ad.owner_id, ad.labour_id, ad.amount, ad.reason, ad.date, ad.due_date,
		   ad.status, ad.created_at, ad.updated_at, l.name
	FROM advances ad
	JOIN labours l ON l.id = ad.labour_id`

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var a advance.Advance
	err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.LabourID,
		&a.Amount,
		&a.Reason,
		&a.Date,
		&a.DueDate,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.LabourName,
	)
	return a, err
}

func (r *advanceRepositoryImpl) queryAdvances(ctx context.Context, query string, args ...interface{}) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate advances: %w", err)
	}
	return advances, nil
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return advance.Advance{}, err
	}

	query := `
		WITH saved AS (
			INSERT INTO advances (id, owner_id, labour_id, amount, reason, date, due_date, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT s.id, s.owner_id, s.labour_id, s.amount, s.reason, s.date, s.due_date,
			   s.status, s.created_at, s.updated_at, l.name
		FROM saved s
		JOIN labours l ON l.id = s.labour_id`

	created, err := scanAdvance(q.QueryRow(ctx, query,
		id, a.OwnerID, a.LabourID, a.Amount, a.Reason, a.Date, a.DueDate, a.Status,
	))
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}
	return created, nil
}

// ListByLabour implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) ListByLabour(ctx context.Context, labourID, ownerID string) ([]advance.Advance, error) {
	return r.queryAdvances(ctx,
		advanceSelect+` WHERE ad.labour_id = $1 AND ad.owner_id = $2 ORDER BY ad.date DESC`,
		labourID, ownerID,
	)
}

// List implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) List(ctx context.Context, ownerID string, filter advance.AdvanceFilter) ([]advance.Advance, error) {
	query := advanceSelect + ` WHERE ad.owner_id = $1`
	args := []interface{}{ownerID}
	argIdx := 2

	if filter.Status != nil {
		query += fmt.Sprintf(" AND ad.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Month != nil {
		period, err := utils.ParseMonth(*filter.Month)
		if err != nil {
			return nil, err
		}
		query += fmt.Sprintf(" AND ad.date >= $%d AND ad.date < $%d", argIdx, argIdx+1)
		args = append(args, period.Start, period.End)
	}
	query += ` ORDER BY ad.date DESC`

	return r.queryAdvances(ctx, query, args...)
}

// UpdateStatus implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) UpdateStatus(ctx context.Context, id, ownerID string, status advance.Status) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH saved AS (
			UPDATE advances SET status = $3, updated_at = NOW()
			WHERE id = $1 AND owner_id = $2
			RETURNING *
		)
		SELECT s.id, s.owner_id, s.labour_id, s.amount, s.reason, s.date, s.due_date,
			   s.status, s.created_at, s.updated_at, l.name
		FROM saved s
		JOIN labours l ON l.id = s.labour_id`

	updated, err := scanAdvance(q.QueryRow(ctx, query, id, ownerID, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to update advance status: %w", err)
	}
	return updated, nil
}

// Delete implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) Delete(ctx context.Context, id, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM advances WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}
	return nil
}

// SumPending implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) SumPending(ctx context.Context, labourID, ownerID string, period utils.Period) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM advances
		WHERE labour_id = $1 AND owner_id = $2 AND status = 'pending'
		  AND date >= $3 AND date < $4`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, labourID, ownerID, period.Start, period.End).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum pending advances: %w", err)
	}
	return total, nil
}
