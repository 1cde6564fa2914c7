package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labourhub/labour-backend-go/internal/domain/labour"
	"github.com/labourhub/labour-backend-go/internal/pkg/database"
)

type labourRepositoryImpl struct {
	db *database.DB
}

func NewLabourRepository(db *database.DB) labour.LabourRepository {
	return &labourRepositoryImpl{db: db}
}

const labourColumns = `id, owner_id, name, email, phone, address, aadhar, bank_account,
		daily_rate, designation, photo_url, join_date, status, created_at, updated_at`

func scanLabour(row pgx.Row) (labour.Labour, error) {
	var l labour.Labour
	err := row.Scan(
		&l.ID,
		&l.OwnerID,
		&l.Name,
		&l.Email,
		&l.Phone,
		&l.Address,
		&l.Aadhar,
		&l.BankAccount,
		&l.DailyRate,
		&l.Designation,
		&l.PhotoURL,
		&l.JoinDate,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// Create implements labour.LabourRepository.
func (r *labourRepositoryImpl) Create(ctx context.Context, l labour.Labour) (labour.Labour, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return labour.Labour{}, err
	}

	query := `
		INSERT INTO labours (id, owner_id, name, email, phone, address, aadhar, bank_account,
			daily_rate, designation, photo_url, join_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + labourColumns

	created, err := scanLabour(q.QueryRow(ctx, query,
		id, l.OwnerID, l.Name, l.Email, l.Phone, l.Address, l.Aadhar, l.BankAccount,
		l.DailyRate, l.Designation, l.PhotoURL, l.JoinDate, l.Status,
	))
	if err != nil {
		return labour.Labour{}, fmt.Errorf("failed to create labour: %w", err)
	}
	return created, nil
}

// GetByID implements labour.LabourRepository.
func (r *labourRepositoryImpl) GetByID(ctx context.Context, id, ownerID string) (labour.Labour, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + labourColumns + ` FROM labours WHERE id = $1 AND owner_id = $2`

	l, err := scanLabour(q.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return labour.Labour{}, labour.ErrLabourNotFound
		}
		return labour.Labour{}, fmt.Errorf("failed to get labour by id: %w", err)
	}
	return l, nil
}

// List implements labour.LabourRepository.
func (r *labourRepositoryImpl) List(ctx context.Context, ownerID string, filter labour.LabourFilter) ([]labour.Labour, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM labours WHERE owner_id = $1`
	args := []interface{}{ownerID}
	argIdx := 2

	if filter.Search != nil && *filter.Search != "" {
		baseQuery += fmt.Sprintf(" AND (name ILIKE $%d OR phone ILIKE $%d OR designation ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count labours: %w", err)
	}

	sortColumn := "created_at"
	allowedColumns := map[string]string{
		"name":       "name",
		"daily_rate": "daily_rate",
		"join_date":  "join_date",
		"created_at": "created_at",
	}
	if col, ok := allowedColumns[filter.SortBy]; ok {
		sortColumn = col
	}
	sortDir := "DESC"
	if filter.SortDir == "asc" {
		sortDir = "ASC"
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`SELECT %s %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		labourColumns, baseQuery, sortColumn, sortDir, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list labours: %w", err)
	}
	defer rows.Close()

	var labours []labour.Labour
	for rows.Next() {
		l, err := scanLabour(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan labour: %w", err)
		}
		labours = append(labours, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate labours: %w", err)
	}

	return labours, totalCount, nil
}

// Update implements labour.LabourRepository. Nil fields are left unchanged.
func (r *labourRepositoryImpl) Update(ctx context.Context, id, ownerID string, req labour.UpdateLabourRequest) (labour.Labour, error) {
	q := GetQuerier(ctx, r.db)

	var joinDate *time.Time
	if req.JoinDate != nil {
		t, err := time.Parse("2006-01-02", *req.JoinDate)
		if err != nil {
			return labour.Labour{}, fmt.Errorf("failed to parse join_date: %w", err)
		}
		joinDate = &t
	}

	query := `
		UPDATE labours
		SET name = COALESCE($3, name),
			email = COALESCE($4, email),
			phone = COALESCE($5, phone),
			address = COALESCE($6, address),
			aadhar = COALESCE($7, aadhar),
			bank_account = COALESCE($8, bank_account),
			daily_rate = COALESCE($9, daily_rate),
			designation = COALESCE($10, designation),
			photo_url = COALESCE($11, photo_url),
			join_date = COALESCE($12, join_date),
			status = COALESCE($13, status),
			updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + labourColumns

	updated, err := scanLabour(q.QueryRow(ctx, query,
		id, ownerID, req.Name, req.Email, req.Phone, req.Address, req.Aadhar, req.BankAccount,
		req.DailyRate, req.Designation, req.PhotoURL, joinDate, req.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return labour.Labour{}, labour.ErrLabourNotFound
		}
		return labour.Labour{}, fmt.Errorf("failed to update labour: %w", err)
	}
	return updated, nil
}

// Delete implements labour.LabourRepository. Attendance, advances,
// deductions, leaves and salaries of the worker cascade.
func (r *labourRepositoryImpl) Delete(ctx context.Context, id, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM labours WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete labour: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return labour.ErrLabourNotFound
	}
	return nil
}
