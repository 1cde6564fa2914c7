package salary

import (
	"testing"

	"github.com/labourhub/labour-backend-go/internal/domain/attendance"
	"github.com/labourhub/labour-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mark(status attendance.Status, hours int64) attendance.Attendance {
	return attendance.Attendance{Status: status, Hours: decimal.NewFromInt(hours)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTallyAttendance(t *testing.T) {
	c := NewSalaryCalculator()

	t.Run("no records", func(t *testing.T) {
		tally := c.TallyAttendance(nil)
		assert.Equal(t, 0, tally.FullDays)
		assert.Equal(t, 0, tally.HalfDays)
		assert.True(t, tally.WorkingDays.IsZero())
		assert.True(t, tally.OvertimeExtraHours.IsZero())
	})

	t.Run("overtime counts as a full day", func(t *testing.T) {
		tally := c.TallyAttendance([]attendance.Attendance{
			mark(attendance.StatusPresent, 8),
			mark(attendance.StatusOvertime, 11),
		})
		assert.Equal(t, 2, tally.FullDays)
		assert.True(t, tally.WorkingDays.Equal(dec("2")))
		assert.True(t, tally.OvertimeExtraHours.Equal(dec("3")), tally.OvertimeExtraHours.String())
	})

	t.Run("overtime at or below standard hours adds no extra", func(t *testing.T) {
		tally := c.TallyAttendance([]attendance.Attendance{
			mark(attendance.StatusOvertime, 8),
			mark(attendance.StatusOvertime, 6),
		})
		assert.Equal(t, 2, tally.FullDays)
		assert.True(t, tally.OvertimeExtraHours.IsZero())
	})

	t.Run("extra hours on present days are ignored", func(t *testing.T) {
		tally := c.TallyAttendance([]attendance.Attendance{mark(attendance.StatusPresent, 12)})
		assert.True(t, tally.OvertimeExtraHours.IsZero())
	})

	t.Run("fractional overtime", func(t *testing.T) {
		tally := c.TallyAttendance([]attendance.Attendance{
			{Status: attendance.StatusOvertime, Hours: dec("9.5")},
			{Status: attendance.StatusOvertime, Hours: dec("10.25")},
		})
		assert.True(t, tally.OvertimeExtraHours.Equal(dec("3.75")), tally.OvertimeExtraHours.String())
	})

	t.Run("half days and absences", func(t *testing.T) {
		tally := c.TallyAttendance([]attendance.Attendance{
			mark(attendance.StatusPresent, 8),
			mark(attendance.StatusHalfDay, 4),
			mark(attendance.StatusHalfDay, 4),
			mark(attendance.StatusHalfDay, 4),
			mark(attendance.StatusAbsent, 0),
			{Status: attendance.Status("holiday"), Hours: dec("8")},
		})
		assert.Equal(t, 1, tally.FullDays)
		assert.Equal(t, 3, tally.HalfDays)
		assert.True(t, tally.WorkingDays.Equal(dec("2.5")), tally.WorkingDays.String())
	})
}

func TestWorkingDaysIsLinear(t *testing.T) {
	c := NewSalaryCalculator()

	for full := 0; full <= 5; full++ {
		for halves := 0; halves <= 5; halves++ {
			var records []attendance.Attendance
			for i := 0; i < full; i++ {
				records = append(records, mark(attendance.StatusPresent, 8))
			}
			for i := 0; i < halves; i++ {
				records = append(records, mark(attendance.StatusHalfDay, 4))
			}

			want := decimal.NewFromInt(int64(full)).Add(decimal.NewFromInt(int64(halves)).Div(decimal.NewFromInt(2)))
			got := c.TallyAttendance(records).WorkingDays
			assert.True(t, got.Equal(want), "full=%d half=%d got=%s want=%s", full, halves, got, want)
		}
	}
}

func TestComputePay(t *testing.T) {
	c := NewSalaryCalculator()

	t.Run("zero daily rate earns nothing", func(t *testing.T) {
		pay := c.ComputePay(salary.AttendanceTally{
			FullDays:           20,
			WorkingDays:        dec("20"),
			OvertimeExtraHours: dec("15"),
		}, decimal.Zero)
		assert.True(t, pay.BasicSalary.IsZero())
		assert.True(t, pay.OvertimePay.IsZero())
		assert.True(t, pay.HourlyRate.IsZero())
	})

	t.Run("overtime at plain hourly rate", func(t *testing.T) {
		pay := c.ComputePay(salary.AttendanceTally{
			WorkingDays:        dec("6.5"),
			OvertimeExtraHours: dec("3"),
		}, dec("800"))
		assert.True(t, pay.HourlyRate.Equal(dec("100")))
		assert.True(t, pay.BasicSalary.Equal(dec("5200")))
		assert.True(t, pay.OvertimePay.Equal(dec("300")))
	})

	t.Run("no rounding of uneven rates", func(t *testing.T) {
		pay := c.ComputePay(salary.AttendanceTally{
			WorkingDays:        dec("1"),
			OvertimeExtraHours: dec("1"),
		}, dec("555"))
		assert.True(t, pay.HourlyRate.Equal(dec("69.375")), pay.HourlyRate.String())
		assert.True(t, pay.OvertimePay.Equal(dec("69.375")))
	})
}

func TestCompose(t *testing.T) {
	c := NewSalaryCalculator()

	tally := salary.AttendanceTally{FullDays: 6, HalfDays: 1, WorkingDays: dec("6.5"), OvertimeExtraHours: dec("3")}
	pay := salary.PayComponents{BasicSalary: dec("5200"), OvertimePay: dec("300")}

	t.Run("net is earnings less adjustments", func(t *testing.T) {
		s := c.Compose("labour-1", "owner-1", "2024-03", tally, pay, salary.Adjustments{
			TotalAdvance:    dec("200"),
			TotalDeductions: dec("150"),
		})
		assert.Equal(t, "labour-1", s.LabourID)
		assert.Equal(t, "owner-1", s.OwnerID)
		assert.Equal(t, "2024-03", s.Month)
		assert.True(t, s.DaysPresent.Equal(dec("6.5")))
		assert.True(t, s.OvertimeHours.Equal(dec("3")))
		assert.True(t, s.NetSalary.Equal(dec("5150")), s.NetSalary.String())
		assert.Equal(t, salary.StatusPending, s.Status)
	})

	t.Run("negative net is not clamped", func(t *testing.T) {
		s := c.Compose("labour-1", "owner-1", "2024-03", salary.AttendanceTally{}, salary.PayComponents{
			BasicSalary: decimal.Zero,
			OvertimePay: decimal.Zero,
		}, salary.Adjustments{TotalAdvance: dec("100"), TotalDeductions: decimal.Zero})
		assert.True(t, s.NetSalary.Equal(dec("-100")), s.NetSalary.String())
	})
}

func TestPipelineScenario(t *testing.T) {
	c := NewSalaryCalculator()

	records := []attendance.Attendance{
		mark(attendance.StatusPresent, 8),
		mark(attendance.StatusPresent, 8),
		mark(attendance.StatusPresent, 8),
		mark(attendance.StatusPresent, 8),
		mark(attendance.StatusPresent, 8),
		mark(attendance.StatusHalfDay, 4),
		mark(attendance.StatusOvertime, 11),
	}

	tally := c.TallyAttendance(records)
	pay := c.ComputePay(tally, dec("800"))
	s := c.Compose("labour-1", "owner-1", "2024-03", tally, pay, salary.Adjustments{
		TotalAdvance:    dec("200"),
		TotalDeductions: decimal.Zero,
	})

	assert.Equal(t, 6, tally.FullDays)
	assert.True(t, tally.WorkingDays.Equal(dec("6.5")))
	assert.True(t, pay.HourlyRate.Equal(dec("100")))
	assert.True(t, s.OvertimeHours.Equal(dec("3")))
	assert.True(t, s.OvertimePay.Equal(dec("300")))
	assert.True(t, s.BasicSalary.Equal(dec("5200")))
	assert.True(t, s.NetSalary.Equal(dec("5300")), s.NetSalary.String())
}
