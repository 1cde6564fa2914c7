package salary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labourhub/labour-backend-go/internal/domain/salary"
	"github.com/labourhub/labour-backend-go/internal/pkg/jwt"
	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
)

// Transactor runs fn in a single database transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SalaryServiceImpl struct {
	tx             Transactor
	salaryRepo     salary.SalaryRepository
	labourRepo     salary.LabourReader
	attendanceRepo salary.AttendanceReader
	advanceRepo    salary.AdvanceReader
	deductionRepo  salary.DeductionReader
	calculator     *SalaryCalculator
}

func NewSalaryService(
	tx Transactor,
	salaryRepo salary.SalaryRepository,
	labourRepo salary.LabourReader,
	attendanceRepo salary.AttendanceReader,
	advanceRepo salary.AdvanceReader,
	deductionRepo salary.DeductionReader,
) salary.SalaryService {
	return &SalaryServiceImpl{
		tx:             tx,
		salaryRepo:     salaryRepo,
		labourRepo:     labourRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		deductionRepo:  deductionRepo,
		calculator:     NewSalaryCalculator(),
	}
}

// Calculate runs attendance tally, pay pricing, adjustment sums and
// composition in order, then upserts the result. All reads and the write
// share one transaction; any failure leaves no record behind.
func (s *SalaryServiceImpl) Calculate(ctx context.Context, req salary.CalculateSalaryRequest) (salary.CalculateSalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.CalculateSalaryResponse{}, err
	}

	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return salary.CalculateSalaryResponse{}, err
	}

	period, err := utils.ParseMonth(req.Month)
	if err != nil {
		return salary.CalculateSalaryResponse{}, salary.ErrInvalidMonth
	}

	var (
		saved salary.Salary
		tally salary.AttendanceTally
		pay   salary.PayComponents
	)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		worker, err := s.labourRepo.GetByID(ctx, req.LabourID, ownerID)
		if err != nil {
			return err
		}

		records, err := s.attendanceRepo.ListByLabour(ctx, worker.ID, ownerID, &period)
		if err != nil {
			return err
		}
		tally = s.calculator.TallyAttendance(records)
		pay = s.calculator.ComputePay(tally, worker.DailyRate)

		var adj salary.Adjustments
		if adj.TotalAdvance, err = s.advanceRepo.SumPending(ctx, worker.ID, ownerID, period); err != nil {
			return err
		}
		if adj.TotalDeductions, err = s.deductionRepo.SumForPeriod(ctx, worker.ID, ownerID, period); err != nil {
			return err
		}

		record := s.calculator.Compose(worker.ID, ownerID, period.Month, tally, pay, adj)
		saved, err = s.salaryRepo.Upsert(ctx, record)
		if err != nil {
			return err
		}
		if saved.LabourName == nil {
			saved.LabourName = &worker.Name
		}
		return nil
	})
	if err != nil {
		return salary.CalculateSalaryResponse{}, err
	}

	slog.Info("salary calculated",
		"labour_id", saved.LabourID,
		"month", saved.Month,
		"net_salary", saved.NetSalary.String(),
	)

	return salary.CalculateSalaryResponse{
		SalaryResponse: mapToSalaryResponse(saved),
		Breakdown: salary.SalaryBreakdown{
			FullDays:   tally.FullDays,
			HalfDays:   tally.HalfDays,
			DailyRate:  pay.DailyRate,
			HourlyRate: pay.HourlyRate,
		},
	}, nil
}

func (s *SalaryServiceImpl) GetByID(ctx context.Context, id string) (salary.SalaryResponse, error) {
	if !validator.IsValidUUID(id) {
		return salary.SalaryResponse{}, salary.ErrSalaryNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	record, err := s.salaryRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	return mapToSalaryResponse(record), nil
}

func (s *SalaryServiceImpl) List(ctx context.Context, filter salary.SalaryFilter) (salary.ListSalaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return salary.ListSalaryResponse{}, err
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return salary.ListSalaryResponse{}, err
	}

	records, total, err := s.salaryRepo.List(ctx, ownerID, filter)
	if err != nil {
		return salary.ListSalaryResponse{}, err
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	return salary.ListSalaryResponse{
		Salaries:   mapToSalaryResponses(records),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *SalaryServiceImpl) ListByLabour(ctx context.Context, labourID string) ([]salary.SalaryResponse, error) {
	if !validator.IsValidUUID(labourID) {
		return nil, validator.ValidationErrors{{Field: "labour_id", Message: salary.ErrInvalidLabourID.Error()}}
	}
	return s.listAll(ctx, salary.SalaryFilter{LabourID: &labourID})
}

func (s *SalaryServiceImpl) ListByMonth(ctx context.Context, month string) ([]salary.SalaryResponse, error) {
	if _, err := utils.ParseMonth(month); err != nil {
		return nil, salary.ErrInvalidMonth
	}
	return s.listAll(ctx, salary.SalaryFilter{Month: &month, SortBy: "labour_name", SortOrder: "asc"})
}

// listAll pages through every matching record.
func (s *SalaryServiceImpl) listAll(ctx context.Context, filter salary.SalaryFilter) ([]salary.SalaryResponse, error) {
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter.Page = 1
	filter.Limit = 100
	responses := []salary.SalaryResponse{}
	for {
		records, total, err := s.salaryRepo.List(ctx, ownerID, filter)
		if err != nil {
			return nil, err
		}
		responses = append(responses, mapToSalaryResponses(records)...)
		if len(records) == 0 || int64(len(responses)) >= total {
			return responses, nil
		}
		filter.Page++
	}
}

func (s *SalaryServiceImpl) UpdateStatus(ctx context.Context, id string, req salary.UpdateSalaryStatusRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return salary.SalaryResponse{}, salary.ErrSalaryNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	updated, err := s.salaryRepo.UpdateStatus(ctx, id, ownerID, salary.Status(req.Status))
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	return mapToSalaryResponse(updated), nil
}

func (s *SalaryServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return salary.ErrSalaryNotFound
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.salaryRepo.Delete(ctx, id, ownerID)
}

func (s *SalaryServiceImpl) GetSummary(ctx context.Context, month string) (salary.SalarySummaryResponse, error) {
	if _, err := utils.ParseMonth(month); err != nil {
		return salary.SalarySummaryResponse{}, salary.ErrInvalidMonth
	}
	ownerID, err := jwt.OwnerIDFromContext(ctx)
	if err != nil {
		return salary.SalarySummaryResponse{}, err
	}

	summary, err := s.salaryRepo.GetSummary(ctx, ownerID, month)
	if err != nil {
		return salary.SalarySummaryResponse{}, fmt.Errorf("failed to get salary summary: %w", err)
	}
	return summary, nil
}

func mapToSalaryResponse(s salary.Salary) salary.SalaryResponse {
	return salary.SalaryResponse{
		ID:              s.ID,
		LabourID:        s.LabourID,
		LabourName:      s.LabourName,
		Month:           s.Month,
		BasicSalary:     s.BasicSalary,
		DaysPresent:     s.DaysPresent,
		OvertimeHours:   s.OvertimeHours,
		OvertimePay:     s.OvertimePay,
		TotalAdvance:    s.TotalAdvance,
		TotalDeductions: s.TotalDeductions,
		NetSalary:       s.NetSalary,
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToSalaryResponses(records []salary.Salary) []salary.SalaryResponse {
	responses := make([]salary.SalaryResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, mapToSalaryResponse(r))
	}
	return responses
}
