package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/labourhub/labour-backend-go/internal/domain/salary"
	"github.com/labourhub/labour-backend-go/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salarySelect = `
	SELECT s.id, s.owner_id, s.labour_id, s.month, s.basic_salary, s.days_present,
		   s.overtime_hours, s.overtime_pay, s.total_advance, s.total_deductions,
		   s.net_salary, s.status, s.created_at, s.updated_at, l.name
	FROM salaries s
	JOIN labours l ON l.id = s.labour_id`

const salaryReturning = `
		SELECT s.id, s.owner_id, s.labour_id, s.month, s.basic_salary, s.days_present,
			   s.overtime_hours, s.overtime_pay, s.total_advance, s.total_deductions,
			   s.net_salary, s.status, s.created_at, s.updated_at, l.name
		FROM saved s
		JOIN labours l ON l.id = s.labour_id`

func scanSalary(row pgx.Row) (salary.Salary, error) {
	var s salary.Salary
	err := row.Scan(
		&s.ID,
		&s.OwnerID,
		&s.LabourID,
		&s.Month,
		&s.BasicSalary,
		&s.DaysPresent,
		&s.OvertimeHours,
		&s.OvertimePay,
		&s.TotalAdvance,
		&s.TotalDeductions,
		&s.NetSalary,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.LabourName,
	)
	return s, err
}

// Upsert implements salary.SalaryRepository. The conflict target is the
// (labour_id, month) unique key, so a recalculation replaces the stored
// figures instead of adding to them.
func (r *salaryRepositoryImpl) Upsert(ctx context.Context, s salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return salary.Salary{}, err
	}

	query := `
		WITH saved AS (
			INSERT INTO salaries (
				id, owner_id, labour_id, month, basic_salary, days_present, overtime_hours,
				overtime_pay, total_advance, total_deductions, net_salary, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'pending')
			ON CONFLICT (labour_id, month) DO UPDATE SET
				basic_salary = EXCLUDED.basic_salary,
				days_present = EXCLUDED.days_present,
				overtime_hours = EXCLUDED.overtime_hours,
				overtime_pay = EXCLUDED.overtime_pay,
				total_advance = EXCLUDED.total_advance,
				total_deductions = EXCLUDED.total_deductions,
				net_salary = EXCLUDED.net_salary,
				status = 'pending',
				updated_at = NOW()
			RETURNING *
		)` + salaryReturning

	saved, err := scanSalary(q.QueryRow(ctx, query,
		id, s.OwnerID, s.LabourID, s.Month, s.BasicSalary, s.DaysPresent, s.OvertimeHours,
		s.OvertimePay, s.TotalAdvance, s.TotalDeductions, s.NetSalary,
	))
	if err != nil {
		return salary.Salary{}, fmt.Errorf("failed to upsert salary: %w", err)
	}
	return saved, nil
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id, ownerID string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSalary(q.QueryRow(ctx, salarySelect+` WHERE s.id = $1 AND s.owner_id = $2`, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get salary by id: %w", err)
	}
	return s, nil
}

// List implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) List(ctx context.Context, ownerID string, filter salary.SalaryFilter) ([]salary.Salary, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE s.owner_id = $1`
	args := []interface{}{ownerID}
	argIdx := 2

	if filter.Month != nil {
		where += fmt.Sprintf(" AND s.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.LabourID != nil {
		where += fmt.Sprintf(" AND s.labour_id = $%d", argIdx)
		args = append(args, *filter.LabourID)
		argIdx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND s.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count query
	var totalCount int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM salaries s`+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count salaries: %w", err)
	}

	// Sort
	sortColumn := "s.month"
	if filter.SortBy != "" {
		allowedColumns := map[string]string{
			"month":       "s.month",
			"created_at":  "s.created_at",
			"labour_name": "l.name",
			"net_salary":  "s.net_salary",
		}
		if col, ok := allowedColumns[filter.SortBy]; ok {
			sortColumn = col
		}
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	// Pagination
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`%s%s ORDER BY %s %s, l.name ASC LIMIT $%d OFFSET $%d`,
		salarySelect, where, sortColumn, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer rows.Close()

	var salaries []salary.Salary
	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary: %w", err)
		}
		salaries = append(salaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate salaries: %w", err)
	}

	return salaries, totalCount, nil
}

// UpdateStatus implements salary.SalaryRepository. Computed figures are not touched.
func (r *salaryRepositoryImpl) UpdateStatus(ctx context.Context, id, ownerID string, status salary.Status) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH saved AS (
			UPDATE salaries SET status = $3, updated_at = NOW()
			WHERE id = $1 AND owner_id = $2
			RETURNING *
		)` + salaryReturning

	updated, err := scanSalary(q.QueryRow(ctx, query, id, ownerID, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to update salary status: %w", err)
	}
	return updated, nil
}

// Delete implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Delete(ctx context.Context, id, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salaries WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}
	return nil
}

// GetSummary implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetSummary(ctx context.Context, ownerID, month string) (salary.SalarySummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(basic_salary), 0),
			COALESCE(SUM(overtime_pay), 0),
			COALESCE(SUM(total_advance), 0),
			COALESCE(SUM(total_deductions), 0),
			COALESCE(SUM(net_salary), 0),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'paid')
		FROM salaries
		WHERE owner_id = $1 AND month = $2`

	summary := salary.SalarySummaryResponse{Month: month}
	err := q.QueryRow(ctx, query, ownerID, month).Scan(
		&summary.TotalLabours,
		&summary.TotalBasicSalary,
		&summary.TotalOvertimePay,
		&summary.TotalAdvance,
		&summary.TotalDeductions,
		&summary.TotalNetSalary,
		&summary.PendingCount,
		&summary.PaidCount,
	)
	if err != nil {
		return salary.SalarySummaryResponse{}, fmt.Errorf("failed to get salary summary: %w", err)
	}
	return summary, nil
}
