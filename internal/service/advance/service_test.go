package advance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labourhub/labour-backend-go/internal/domain/advance"
	"github.com/labourhub/labour-backend-go/internal/domain/labour"
	"github.com/labourhub/labour-backend-go/internal/domain/user"
	"github.com/labourhub/labour-backend-go/internal/pkg/jwt"
	"github.com/labourhub/labour-backend-go/internal/pkg/utils"
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLabourReader struct {
	getByIDFn func(ctx context.Context, id, ownerID string) (labour.Labour, error)
}

func (f *fakeLabourReader) GetByID(ctx context.Context, id, ownerID string) (labour.Labour, error) {
	return f.getByIDFn(ctx, id, ownerID)
}

type fakeAdvanceRepo struct {
	createFn       func(ctx context.Context, a advance.Advance) (advance.Advance, error)
	listByLabourFn func(ctx context.Context, labourID, ownerID string) ([]advance.Advance, error)
	listFn         func(ctx context.Context, ownerID string, filter advance.AdvanceFilter) ([]advance.Advance, error)
	updateStatusFn func(ctx context.Context, id, ownerID string, status advance.Status) (advance.Advance, error)
	deleteFn       func(ctx context.Context, id, ownerID string) error
}

func (f *fakeAdvanceRepo) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	return f.createFn(ctx, a)
}

func (f *fakeAdvanceRepo) ListByLabour(ctx context.Context, labourID, ownerID string) ([]advance.Advance, error) {
	return f.listByLabourFn(ctx, labourID, ownerID)
}

func (f *fakeAdvanceRepo) List(ctx context.Context, ownerID string, filter advance.AdvanceFilter) ([]advance.Advance, error) {
	return f.listFn(ctx, ownerID, filter)
}

func (f *fakeAdvanceRepo) UpdateStatus(ctx context.Context, id, ownerID string, status advance.Status) (advance.Advance, error) {
	return f.updateStatusFn(ctx, id, ownerID, status)
}

func (f *fakeAdvanceRepo) Delete(ctx context.Context, id, ownerID string) error {
	return f.deleteFn(ctx, id, ownerID)
}

func (f *fakeAdvanceRepo) SumPending(ctx context.Context, labourID, ownerID string, period utils.Period) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

var (
	testOwnerID  = uuid.NewString()
	testLabourID = uuid.NewString()
)

func ownedLabours() *fakeLabourReader {
	return &fakeLabourReader{
		getByIDFn: func(ctx context.Context, id, ownerID string) (labour.Labour, error) {
			if id == testLabourID && ownerID == testOwnerID {
				return labour.Labour{ID: id, OwnerID: ownerID}, nil
			}
			return labour.Labour{}, labour.ErrLabourNotFound
		},
	}
}

func ownerContext(t *testing.T) context.Context {
	t.Helper()
	ctx, err := jwt.NewJWTService("test-secret", time.Hour).NewContext(context.Background(), testOwnerID, "owner", user.RoleAdmin)
	require.NoError(t, err)
	return ctx
}

func echoCreate(captured *advance.Advance) func(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	return func(ctx context.Context, a advance.Advance) (advance.Advance, error) {
		*captured = a
		a.ID = uuid.NewString()
		return a, nil
	}
}

func TestAdvanceService_Create_DefaultsDateToToday(t *testing.T) {
	var captured advance.Advance
	svc := &AdvanceServiceImpl{
		advanceRepo: &fakeAdvanceRepo{createFn: echoCreate(&captured)},
		labourRepo:  ownedLabours(),
		now:         func() time.Time { return time.Date(2024, 1, 20, 15, 30, 0, 0, time.UTC) },
	}

	res, err := svc.Create(ownerContext(t), advance.CreateAdvanceRequest{
		LabourID: testLabourID,
		Amount:   decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-20", res.Date)
	assert.Equal(t, "pending", res.Status)
	assert.Equal(t, testOwnerID, captured.OwnerID)
	assert.True(t, captured.Amount.Equal(decimal.NewFromInt(500)))
}

func TestAdvanceService_Create_ExplicitDates(t *testing.T) {
	var captured advance.Advance
	svc := NewAdvanceService(&fakeAdvanceRepo{createFn: echoCreate(&captured)}, ownedLabours())

	date := "2024-01-10"
	due := "2024-02-10"
	res, err := svc.Create(ownerContext(t), advance.CreateAdvanceRequest{
		LabourID: testLabourID,
		Amount:   decimal.RequireFromString("250.50"),
		Date:     &date,
		DueDate:  &due,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", res.Date)
	require.NotNil(t, res.DueDate)
	assert.Equal(t, "2024-02-10", *res.DueDate)
}

func TestAdvanceService_Create_Rejects(t *testing.T) {
	svc := NewAdvanceService(&fakeAdvanceRepo{}, ownedLabours())
	ctx := ownerContext(t)

	_, err := svc.Create(ctx, advance.CreateAdvanceRequest{LabourID: testLabourID, Amount: decimal.Zero})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "amount")

	_, err = svc.Create(ctx, advance.CreateAdvanceRequest{LabourID: uuid.NewString(), Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, labour.ErrLabourNotFound)
}

func TestAdvanceService_UpdateStatus(t *testing.T) {
	id := uuid.NewString()
	repo := &fakeAdvanceRepo{
		updateStatusFn: func(ctx context.Context, gotID, ownerID string, status advance.Status) (advance.Advance, error) {
			if gotID != id {
				return advance.Advance{}, advance.ErrAdvanceNotFound
			}
			return advance.Advance{ID: id, OwnerID: ownerID, Status: status}, nil
		},
	}
	svc := NewAdvanceService(repo, ownedLabours())
	ctx := ownerContext(t)

	res, err := svc.UpdateStatus(ctx, id, advance.UpdateAdvanceStatusRequest{Status: "paid"})
	require.NoError(t, err)
	assert.Equal(t, "paid", res.Status)

	_, err = svc.UpdateStatus(ctx, id, advance.UpdateAdvanceStatusRequest{Status: "cleared"})
	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)

	_, err = svc.UpdateStatus(ctx, uuid.NewString(), advance.UpdateAdvanceStatusRequest{Status: "paid"})
	assert.ErrorIs(t, err, advance.ErrAdvanceNotFound)
}

func TestAdvanceService_List(t *testing.T) {
	repo := &fakeAdvanceRepo{
		listFn: func(ctx context.Context, ownerID string, filter advance.AdvanceFilter) ([]advance.Advance, error) {
			require.NotNil(t, filter.Status)
			assert.Equal(t, "pending", *filter.Status)
			return []advance.Advance{{ID: uuid.NewString(), Status: advance.StatusPending}}, nil
		},
		listByLabourFn: func(ctx context.Context, labourID, ownerID string) ([]advance.Advance, error) {
			return nil, nil
		},
	}
	svc := NewAdvanceService(repo, ownedLabours())
	ctx := ownerContext(t)

	status := "pending"
	records, err := svc.List(ctx, advance.AdvanceFilter{Status: &status})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	byLabour, err := svc.ListByLabour(ctx, testLabourID)
	require.NoError(t, err)
	assert.NotNil(t, byLabour)
	assert.Empty(t, byLabour)

	month := "2024-1"
	_, err = svc.List(ctx, advance.AdvanceFilter{Month: &month})
	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestAdvanceService_Delete(t *testing.T) {
	repo := &fakeAdvanceRepo{
		deleteFn: func(ctx context.Context, id, ownerID string) error { return nil },
	}
	svc := NewAdvanceService(repo, ownedLabours())

	assert.NoError(t, svc.Delete(ownerContext(t), uuid.NewString()))
	assert.ErrorIs(t, svc.Delete(ownerContext(t), "x"), advance.ErrAdvanceNotFound)
}
