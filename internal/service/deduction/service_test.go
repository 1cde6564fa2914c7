package deduction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labourhub/labour-backend-go/internal/domain/deduction"
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
	ownerID  string
	labourID string
}

func (f *fakeLabourReader) GetByID(ctx context.Context, id, ownerID string) (labour.Labour, error) {
	if id != f.labourID || ownerID != f.ownerID {
		return labour.Labour{}, labour.ErrLabourNotFound
	}
	return labour.Labour{ID: id, OwnerID: ownerID}, nil
}

type memoryDeductionRepo struct {
	records map[string]deduction.Deduction
}

func (m *memoryDeductionRepo) Create(ctx context.Context, d deduction.Deduction) (deduction.Deduction, error) {
	d.ID = uuid.NewString()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	m.records[d.ID] = d
	return d, nil
}

func (m *memoryDeductionRepo) ListByLabour(ctx context.Context, labourID, ownerID string) ([]deduction.Deduction, error) {
	var out []deduction.Deduction
	for _, d := range m.records {
		if d.LabourID == labourID && d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memoryDeductionRepo) List(ctx context.Context, ownerID string, month *string) ([]deduction.Deduction, error) {
	var out []deduction.Deduction
	for _, d := range m.records {
		if d.OwnerID != ownerID {
			continue
		}
		if month != nil && d.Date.Format("2006-01") != *month {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *memoryDeductionRepo) Update(ctx context.Context, id, ownerID string, req deduction.UpdateDeductionRequest) (deduction.Deduction, error) {
	d, ok := m.records[id]
	if !ok || d.OwnerID != ownerID {
		return deduction.Deduction{}, deduction.ErrDeductionNotFound
	}
	if req.Amount != nil {
		d.Amount = *req.Amount
	}
	if req.Type != nil {
		d.Type = *req.Type
	}
	if req.Reason != nil {
		d.Reason = req.Reason
	}
	m.records[id] = d
	return d, nil
}

func (m *memoryDeductionRepo) Delete(ctx context.Context, id, ownerID string) error {
	d, ok := m.records[id]
	if !ok || d.OwnerID != ownerID {
		return deduction.ErrDeductionNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *memoryDeductionRepo) SumForPeriod(ctx context.Context, labourID, ownerID string, period utils.Period) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, d := range m.records {
		if d.LabourID == labourID && d.OwnerID == ownerID && period.Contains(d.Date) {
			total = total.Add(d.Amount)
		}
	}
	return total, nil
}

func setup(t *testing.T) (context.Context, *memoryDeductionRepo, *DeductionServiceImpl, string) {
	t.Helper()
	ownerID := uuid.NewString()
	labourID := uuid.NewString()
	repo := &memoryDeductionRepo{records: make(map[string]deduction.Deduction)}
	svc := &DeductionServiceImpl{
		DeductionRepository: repo,
		labourRepo:          &fakeLabourReader{ownerID: ownerID, labourID: labourID},
		now:                 func() time.Time { return time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC) },
	}
	ctx, err := jwt.NewJWTService("test-secret", time.Hour).NewContext(context.Background(), ownerID, "owner", user.RoleAdmin)
	require.NoError(t, err)
	return ctx, repo, svc, labourID
}

func TestDeductionService_CreateAndSum(t *testing.T) {
	ctx, repo, svc, labourID := setup(t)

	jan := "2024-01-31"
	_, err := svc.Create(ctx, deduction.CreateDeductionRequest{LabourID: labourID, Amount: decimal.NewFromInt(100), Type: "damage", Date: &jan})
	require.NoError(t, err)

	res, err := svc.Create(ctx, deduction.CreateDeductionRequest{LabourID: labourID, Amount: decimal.NewFromInt(200), Type: "canteen"})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-14", res.Date)

	period, err := utils.ParseMonth("2024-02")
	require.NoError(t, err)
	total, err := repo.SumForPeriod(ctx, labourID, repo.records[res.ID].OwnerID, period)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(200)))

	month := "2024-01"
	janOnly, err := svc.List(ctx, &month)
	require.NoError(t, err)
	assert.Len(t, janOnly, 1)
}

func TestDeductionService_CreateValidation(t *testing.T) {
	ctx, _, svc, labourID := setup(t)

	_, err := svc.Create(ctx, deduction.CreateDeductionRequest{LabourID: labourID, Amount: decimal.NewFromInt(-5)})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "amount")
	assert.Contains(t, fields, "type")

	_, err = svc.Create(ctx, deduction.CreateDeductionRequest{LabourID: uuid.NewString(), Amount: decimal.NewFromInt(5), Type: "fine"})
	assert.ErrorIs(t, err, labour.ErrLabourNotFound)
}

func TestDeductionService_Update(t *testing.T) {
	ctx, _, svc, labourID := setup(t)

	created, err := svc.Create(ctx, deduction.CreateDeductionRequest{LabourID: labourID, Amount: decimal.NewFromInt(100), Type: "damage"})
	require.NoError(t, err)

	amount := decimal.NewFromInt(150)
	updated, err := svc.Update(ctx, created.ID, deduction.UpdateDeductionRequest{Amount: &amount})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(amount))
	assert.Equal(t, "damage", updated.Type)

	_, err = svc.Update(ctx, created.ID, deduction.UpdateDeductionRequest{})
	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)

	_, err = svc.Update(ctx, uuid.NewString(), deduction.UpdateDeductionRequest{Amount: &amount})
	assert.ErrorIs(t, err, deduction.ErrDeductionNotFound)
}

func TestDeductionService_ListByLabourAndDelete(t *testing.T) {
	ctx, _, svc, labourID := setup(t)

	created, err := svc.Create(ctx, deduction.CreateDeductionRequest{LabourID: labourID, Amount: decimal.NewFromInt(100), Type: "damage"})
	require.NoError(t, err)

	records, err := svc.ListByLabour(ctx, labourID)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	records, err = svc.ListByLabour(ctx, labourID)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = svc.ListByLabour(ctx, uuid.NewString())
	assert.ErrorIs(t, err, labour.ErrLabourNotFound)

	bad := "2024/01"
	_, err = svc.List(ctx, &bad)
	assert.ErrorIs(t, err, utils.ErrInvalidMonth)
}
