package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/labourhub/labour-backend-go/internal/domain/deduction"
	"github.com/labourhub/labour-backend-go/internal/pkg/database"
	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type deductionRepositoryImpl struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepositoryImpl{db: db}
}

const deductionSelect = `
	SELECT d.id, d.owner_id, d.labour_id, d.amount, d.type, d.reason, d.date,
		   d.created_at, d.updated_at, l.name
	FROM deductions d
	JOIN labours l ON l.id = d.labour_id`

// deductionReturning wraps a data-modifying statement so the saved row comes
// back joined with the worker name.
const deductionReturning = `
		SELECT s.id, s.owner_id, s.labour_id, s.amount, s.type, s.reason, s.date,
			   s.created_at, s.updated_at, l.name
		FROM saved s
		JOIN labours l ON l.id = s.labour_id`

func scanDeduction(row pgx.Row) (deduction.Deduction, error) {
	var d deduction.Deduction
	err := row.Scan(
		&d.ID,
		&d.OwnerID,
		&d.LabourID,
		&d.Amount,
		&d.Type,
		&d.Reason,
		&d.Date,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.LabourName,
	)
	return d, err
}

func (r *deductionRepositoryImpl) queryDeductions(ctx context.Context, query string, args ...interface{}) ([]deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	var deductions []deduction.Deduction
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions = append(deductions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deductions: %w", err)
	}
	return deductions, nil
}

// Create implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) Create(ctx context.Context, d deduction.Deduction) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return deduction.Deduction{}, err
	}

	query := `
		WITH saved AS (
			INSERT INTO deductions (id, owner_id, labour_id, amount, type, reason, date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)` + deductionReturning

	created, err := scanDeduction(q.QueryRow(ctx, query,
		id, d.OwnerID, d.LabourID, d.Amount, d.Type, d.Reason, d.Date,
	))
	if err != nil {
		return deduction.Deduction{}, fmt.Errorf("failed to create deduction: %w", err)
	}
	return created, nil
}

// ListByLabour implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) ListByLabour(ctx context.Context, labourID, ownerID string) ([]deduction.Deduction, error) {
	return r.queryDeductions(ctx,
		deductionSelect+` WHERE d.labour_id = $1 AND d.owner_id = $2 ORDER BY d.date DESC`,
		labourID, ownerID,
	)
}

// List implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) List(ctx context.Context, ownerID string, month *string) ([]deduction.Deduction, error) {
	query := deductionSelect + ` WHERE d.owner_id = $1`
	args := []interface{}{ownerID}

	if month != nil {
		period, err := utils.ParseMonth(*month)
		if err != nil {
			return nil, err
		}
		query += ` AND d.date >= $2 AND d.date < $3`
		args = append(args, period.Start, period.End)
	}
	query += ` ORDER BY d.date DESC`

	return r.queryDeductions(ctx, query, args...)
}

// Update implements deduction.DeductionRepository. Nil fields are left unchanged.
func (r *deductionRepositoryImpl) Update(ctx context.Context, id, ownerID string, req deduction.UpdateDeductionRequest) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH saved AS (
			UPDATE deductions
			SET amount = COALESCE($3, amount),
				type = COALESCE($4, type),
				reason = COALESCE($5, reason),
				updated_at = NOW()
			WHERE id = $1 AND owner_id = $2
			RETURNING *
		)` + deductionReturning

	updated, err := scanDeduction(q.QueryRow(ctx, query, id, ownerID, req.Amount, req.Type, req.Reason))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deduction.Deduction{}, deduction.ErrDeductionNotFound
		}
		return deduction.Deduction{}, fmt.Errorf("failed to update deduction: %w", err)
	}
	return updated, nil
}

// Delete implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) Delete(ctx context.Context, id, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM deductions WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrDeductionNotFound
	}
	return nil
}

// SumForPeriod implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) SumForPeriod(ctx context.Context, labourID, ownerID string, period utils.Period) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM deductions
		WHERE labour_id = $1 AND owner_id = $2
		  AND date >= $3 AND date < $4`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, labourID, ownerID, period.Start, period.End).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum deductions: %w", err)
	}
	return total, nil
}
