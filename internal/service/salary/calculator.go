package salary

import (
	"github.com/labourhub/labour-backend-go/internal/domain/attendance"
	"github.com/labourhub/labour-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// SalaryCalculator holds the pay rules. It does no I/O; every stage takes
// the previous stage's output.
type SalaryCalculator struct {
	standardHours decimal.Decimal
}

func NewSalaryCalculator() *SalaryCalculator {
	return &SalaryCalculator{standardHours: attendance.StandardHours}
}

// TallyAttendance reduces one worker's marks for a month. Present and
// overtime days count as full days, half-days as 0.5. Only hours beyond the
// standard day on overtime marks count as overtime. Absent marks and
// unknown statuses add nothing.
func (c *SalaryCalculator) TallyAttendance(records []attendance.Attendance) salary.AttendanceTally {
	tally := salary.AttendanceTally{OvertimeExtraHours: decimal.Zero}

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			tally.FullDays++
		case attendance.StatusOvertime:
			tally.FullDays++
			if extra := rec.Hours.Sub(c.standardHours); extra.IsPositive() {
				tally.OvertimeExtraHours = tally.OvertimeExtraHours.Add(extra)
			}
		case attendance.StatusHalfDay:
			tally.HalfDays++
		}
	}

	tally.WorkingDays = decimal.NewFromInt(int64(tally.FullDays)).
		Add(half.Mul(decimal.NewFromInt(int64(tally.HalfDays))))
	return tally
}

// ComputePay prices a tally at the worker's daily rate. Overtime hours are
// paid at the plain hourly rate.
func (c *SalaryCalculator) ComputePay(tally salary.AttendanceTally, dailyRate decimal.Decimal) salary.PayComponents {
	hourlyRate := dailyRate.Div(c.standardHours)

	return salary.PayComponents{
		DailyRate:   dailyRate,
		HourlyRate:  hourlyRate,
		BasicSalary: dailyRate.Mul(tally.WorkingDays),
		OvertimePay: tally.OvertimeExtraHours.Mul(hourlyRate),
	}
}

// Compose builds the record to store. Net salary may be negative.
func (c *SalaryCalculator) Compose(labourID, ownerID, month string, tally salary.AttendanceTally, pay salary.PayComponents, adj salary.Adjustments) salary.Salary {
	net := pay.BasicSalary.
		Add(pay.OvertimePay).
		Sub(adj.TotalAdvance).
		Sub(adj.TotalDeductions)

	return salary.Salary{
		OwnerID:         ownerID,
		LabourID:        labourID,
		Month:           month,
		BasicSalary:     pay.BasicSalary,
		DaysPresent:     tally.WorkingDays,
		OvertimeHours:   tally.OvertimeExtraHours,
		OvertimePay:     pay.OvertimePay,
		TotalAdvance:    adj.TotalAdvance,
		TotalDeductions: adj.TotalDeductions,
		NetSalary:       net,
		Status:          salary.StatusPending,
	}
}
