package postgresql_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labourhub/labour-backend-go/internal/domain/advance"
	"github.com/labourhub/labour-backend-go/internal/domain/attendance"
	"github.com/labourhub/labour-backend-go/internal/domain/deduction"
	"github.com/labourhub/labour-backend-go/internal/domain/labour"
	"github.com/labourhub/labour-backend-go/internal/domain/salary"
	"github.com/labourhub/labour-backend-go/internal/domain/user"
	"github.com/labourhub/labour-backend-go/internal/pkg/database"
	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
	"github.com/labourhub/labour-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		ctx := context.Background()
		db, err := database.NewPostgreSQLDB(ctx, dsn)
		if err != nil {
			fmt.Println("Failed to connect to test database:", err)
			os.Exit(1)
		}
		if err := db.Migrate(ctx); err != nil {
			fmt.Println("Failed to migrate test database:", err)
			os.Exit(1)
		}
		testDB = db
	}

	code := m.Run()
	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

// requireDB skips integration tests when TEST_DATABASE_URL is unset and
// otherwise starts from empty tables.
func requireDB(t *testing.T) context.Context {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	_, err := testDB.Exec(ctx, "TRUNCATE TABLE salaries, leaves, deductions, advances, attendances, labours, users CASCADE")
	require.NoError(t, err)
	return ctx
}

type seed struct {
	owner  user.User
	worker labour.Labour
}

func seedOwnerAndLabour(t *testing.T, ctx context.Context, rate int64) seed {
	t.Helper()
	owner, err := postgresql.NewUserRepository(testDB).Create(ctx, user.User{
		Username:     "owner-" + uuid.NewString()[:8],
		PasswordHash: "hash",
		Role:         user.RoleAdmin,
	})
	require.NoError(t, err)

	worker, err := postgresql.NewLabourRepository(testDB).Create(ctx, labour.Labour{
		OwnerID:   owner.ID,
		Name:      "Ramesh",
		DailyRate: decimal.NewFromInt(rate),
		Status:    labour.StatusActive,
	})
	require.NoError(t, err)
	return seed{owner: owner, worker: worker}
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestUserRepository_UniqueUsername(t *testing.T) {
	ctx := requireDB(t)
	repo := postgresql.NewUserRepository(testDB)

	_, err := repo.Create(ctx, user.User{Username: "ramesh", PasswordHash: "x", Role: user.RoleAdmin})
	require.NoError(t, err)

	_, err = repo.Create(ctx, user.User{Username: "ramesh", PasswordHash: "y", Role: user.RoleAdmin})
	assert.ErrorIs(t, err, user.ErrUsernameExists)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestLabourRepository_OwnerScoping(t *testing.T) {
	ctx := requireDB(t)
	a := seedOwnerAndLabour(t, ctx, 800)
	b := seedOwnerAndLabour(t, ctx, 500)
	repo := postgresql.NewLabourRepository(testDB)

	_, err := repo.GetByID(ctx, a.worker.ID, b.owner.ID)
	assert.ErrorIs(t, err, labour.ErrLabourNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, a.worker.ID, b.owner.ID), labour.ErrLabourNotFound)

	labours, total, err := repo.List(ctx, a.owner.ID, labour.LabourFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, labours, 1)
	assert.True(t, labours[0].DailyRate.Equal(decimal.NewFromInt(800)))
}

func TestAttendanceRepository_UpsertSameDay(t *testing.T) {
	ctx := requireDB(t)
	s := seedOwnerAndLabour(t, ctx, 800)
	repo := postgresql.NewAttendanceRepository(testDB)

	first, err := repo.Upsert(ctx, attendance.Attendance{
		OwnerID: s.owner.ID, LabourID: s.worker.ID, Date: day("2024-01-15"),
		Status: attendance.StatusPresent, Hours: decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, attendance.Attendance{
		OwnerID: s.owner.ID, LabourID: s.worker.ID, Date: day("2024-01-15"),
		Status: attendance.StatusOvertime, Hours: decimal.NewFromInt(11),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusOvertime, second.Status)
	require.NotNil(t, second.LabourName)
	assert.Equal(t, "Ramesh", *second.LabourName)

	period, err := utils.ParseMonth("2024-01")
	require.NoError(t, err)
	records, err := repo.ListByLabour(ctx, s.worker.ID, s.owner.ID, &period)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAdjustmentSums(t *testing.T) {
	ctx := requireDB(t)
	s := seedOwnerAndLabour(t, ctx, 800)
	advances := postgresql.NewAdvanceRepository(testDB)
	deductions := postgresql.NewDeductionRepository(testDB)

	for _, a := range []advance.Advance{
		{Amount: decimal.NewFromInt(500), Date: day("2024-01-05"), Status: advance.StatusPending},
		{Amount: decimal.NewFromInt(200), Date: day("2024-01-10"), Status: advance.StatusPaid},
		{Amount: decimal.NewFromInt(300), Date: day("2024-02-01"), Status: advance.StatusPending},
	} {
		a.OwnerID = s.owner.ID
		a.LabourID = s.worker.ID
		_, err := advances.Create(ctx, a)
		require.NoError(t, err)
	}
	for _, d := range []deduction.Deduction{
		{Amount: decimal.NewFromInt(100), Type: "damage", Date: day("2024-01-31")},
		{Amount: decimal.NewFromInt(50), Type: "canteen", Date: day("2023-12-31")},
	} {
		d.OwnerID = s.owner.ID
		d.LabourID = s.worker.ID
		_, err := deductions.Create(ctx, d)
		require.NoError(t, err)
	}

	jan, err := utils.ParseMonth("2024-01")
	require.NoError(t, err)
	mar, err := utils.ParseMonth("2024-03")
	require.NoError(t, err)

	pending, err := advances.SumPending(ctx, s.worker.ID, s.owner.ID, jan)
	require.NoError(t, err)
	assert.True(t, pending.Equal(decimal.NewFromInt(500)), pending.String())

	withheld, err := deductions.SumForPeriod(ctx, s.worker.ID, s.owner.ID, jan)
	require.NoError(t, err)
	assert.True(t, withheld.Equal(decimal.NewFromInt(100)), withheld.String())

	none, err := advances.SumPending(ctx, s.worker.ID, s.owner.ID, mar)
	require.NoError(t, err)
	assert.True(t, none.IsZero())
}

func TestSalaryRepository_UpsertResetsStatus(t *testing.T) {
	ctx := requireDB(t)
	s := seedOwnerAndLabour(t, ctx, 800)
	repo := postgresql.NewSalaryRepository(testDB)

	record := salary.Salary{
		OwnerID:         s.owner.ID,
		LabourID:        s.worker.ID,
		Month:           "2024-01",
		BasicSalary:     decimal.NewFromInt(16000),
		DaysPresent:     decimal.NewFromInt(20),
		OvertimeHours:   decimal.Zero,
		OvertimePay:     decimal.Zero,
		TotalAdvance:    decimal.NewFromInt(500),
		TotalDeductions: decimal.Zero,
		NetSalary:       decimal.NewFromInt(15500),
		Status:          salary.StatusPending,
	}
	first, err := repo.Upsert(ctx, record)
	require.NoError(t, err)

	paid, err := repo.UpdateStatus(ctx, first.ID, s.owner.ID, salary.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, salary.StatusPaid, paid.Status)
	assert.True(t, paid.NetSalary.Equal(record.NetSalary))

	record.NetSalary = decimal.NewFromInt(16000)
	record.TotalAdvance = decimal.Zero
	second, err := repo.Upsert(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, salary.StatusPending, second.Status)
	assert.True(t, second.NetSalary.Equal(decimal.NewFromInt(16000)))

	summary, err := repo.GetSummary(ctx, s.owner.ID, "2024-01")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalLabours)
	assert.Equal(t, 1, summary.PendingCount)
	assert.True(t, summary.TotalNetSalary.Equal(decimal.NewFromInt(16000)))

	_, err = repo.GetByID(ctx, first.ID, uuid.NewString())
	assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
}

func TestTransactor_RollsBack(t *testing.T) {
	ctx := requireDB(t)
	s := seedOwnerAndLabour(t, ctx, 800)
	repo := postgresql.NewAttendanceRepository(testDB)
	tx := postgresql.NewTransactor(testDB)
	boom := errors.New("boom")

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := repo.Upsert(ctx, attendance.Attendance{
			OwnerID: s.owner.ID, LabourID: s.worker.ID, Date: day("2024-01-15"),
			Status: attendance.StatusPresent, Hours: decimal.NewFromInt(8),
		})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	records, err := repo.ListByLabour(ctx, s.worker.ID, s.owner.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}
