package leave

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labourhub/labour-backend-go/internal/domain/labour"
	"github.com/labourhub/labour-backend-go/internal/domain/leave"
	"github.com/labourhub/labour-backend-go/internal/domain/user"
	"github.com/labourhub/labour-backend-go/internal/pkg/jwt"
	"github.com/labourhub/labour-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLabourReader struct {
	getByIDFn func(ctx context.Context, id, ownerID string) (labour.Labour, error)
}

func (f *fakeLabourReader) GetByID(ctx context.Context, id, ownerID string) (labour.Labour, error) {
	return f.getByIDFn(ctx, id, ownerID)
}

type fakeLeaveRepo struct {
	createFn       func(ctx context.Context, l leave.Leave) (leave.Leave, error)
	listByLabourFn func(ctx context.Context, labourID, ownerID string) ([]leave.Leave, error)
	listFn         func(ctx context.Context, ownerID string, status *leave.Status) ([]leave.Leave, error)
	updateStatusFn func(ctx context.Context, id, ownerID string, status leave.Status) (leave.Leave, error)
	deleteFn       func(ctx context.Context, id, ownerID string) error
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	return f.createFn(ctx, l)
}

func (f *fakeLeaveRepo) ListByLabour(ctx context.Context, labourID, ownerID string) ([]leave.Leave, error) {
	return f.listByLabourFn(ctx, labourID, ownerID)
}

func (f *fakeLeaveRepo) List(ctx context.Context, ownerID string, status *leave.Status) ([]leave.Leave, error) {
	return f.listFn(ctx, ownerID, status)
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id, ownerID string, status leave.Status) (leave.Leave, error) {
	return f.updateStatusFn(ctx, id, ownerID, status)
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id, ownerID string) error {
	return f.deleteFn(ctx, id, ownerID)
}

func ownerContext(t *testing.T, ownerID string) context.Context {
	t.Helper()
	ctx, err := jwt.NewJWTService("test-secret", time.Hour).NewContext(context.Background(), ownerID, "owner", user.RoleAdmin)
	require.NoError(t, err)
	return ctx
}

func TestLeaveService_Create(t *testing.T) {
	ownerID := uuid.NewString()
	labourID := uuid.NewString()
	labours := &fakeLabourReader{
		getByIDFn: func(ctx context.Context, id, gotOwner string) (labour.Labour, error) {
			if id != labourID || gotOwner != ownerID {
				return labour.Labour{}, labour.ErrLabourNotFound
			}
			return labour.Labour{ID: id, OwnerID: gotOwner}, nil
		},
	}
	repo := &fakeLeaveRepo{
		createFn: func(ctx context.Context, l leave.Leave) (leave.Leave, error) {
			l.ID = uuid.NewString()
			return l, nil
		},
	}
	svc := NewLeaveService(repo, labours)
	ctx := ownerContext(t, ownerID)

	res, err := svc.Create(ctx, leave.CreateLeaveRequest{
		LabourID:  labourID,
		StartDate: "2024-02-27",
		EndDate:   "2024-03-01",
		Type:      "sick",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", res.Status)
	assert.Equal(t, 4, res.Days)

	t.Run("end before start", func(t *testing.T) {
		_, err := svc.Create(ctx, leave.CreateLeaveRequest{
			LabourID:  labourID,
			StartDate: "2024-03-02",
			EndDate:   "2024-03-01",
			Type:      "sick",
		})
		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "end_date")
	})

	t.Run("single day", func(t *testing.T) {
		res, err := svc.Create(ctx, leave.CreateLeaveRequest{
			LabourID:  labourID,
			StartDate: "2024-03-01",
			EndDate:   "2024-03-01",
			Type:      "casual",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Days)
	})

	t.Run("foreign labour", func(t *testing.T) {
		_, err := svc.Create(ownerContext(t, uuid.NewString()), leave.CreateLeaveRequest{
			LabourID:  labourID,
			StartDate: "2024-03-01",
			EndDate:   "2024-03-01",
			Type:      "casual",
		})
		assert.ErrorIs(t, err, labour.ErrLabourNotFound)
	})
}

func TestLeaveService_UpdateStatus(t *testing.T) {
	id := uuid.NewString()
	repo := &fakeLeaveRepo{
		updateStatusFn: func(ctx context.Context, gotID, ownerID string, status leave.Status) (leave.Leave, error) {
			start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
			return leave.Leave{ID: gotID, OwnerID: ownerID, StartDate: start, EndDate: start, Status: status}, nil
		},
	}
	svc := NewLeaveService(repo, &fakeLabourReader{})
	ctx := ownerContext(t, uuid.NewString())

	res, err := svc.UpdateStatus(ctx, id, leave.UpdateLeaveStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", res.Status)

	_, err = svc.UpdateStatus(ctx, id, leave.UpdateLeaveStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, leave.ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "bad-id", leave.UpdateLeaveStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestLeaveService_List(t *testing.T) {
	var gotStatus *leave.Status
	repo := &fakeLeaveRepo{
		listFn: func(ctx context.Context, ownerID string, status *leave.Status) ([]leave.Leave, error) {
			gotStatus = status
			return nil, nil
		},
	}
	svc := NewLeaveService(repo, &fakeLabourReader{})
	ctx := ownerContext(t, uuid.NewString())

	status := "approved"
	records, err := svc.List(ctx, &status)
	require.NoError(t, err)
	assert.Empty(t, records)
	require.NotNil(t, gotStatus)
	assert.Equal(t, leave.StatusApproved, *gotStatus)

	bad := "maybe"
	_, err = svc.List(ctx, &bad)
	assert.ErrorIs(t, err, leave.ErrInvalidStatus)
}

func TestLeaveService_Delete(t *testing.T) {
	repo := &fakeLeaveRepo{
		deleteFn: func(ctx context.Context, id, ownerID string) error { return leave.ErrLeaveNotFound },
	}
	svc := NewLeaveService(repo, &fakeLabourReader{})

	assert.ErrorIs(t, svc.Delete(ownerContext(t, uuid.NewString()), uuid.NewString()), leave.ErrLeaveNotFound)
}
