package face

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haergo/haergo-backend-go/internal/domain/face"
	"github.com/haergo/haergo-backend-go/internal/domain/user"
)

type fakeFaceRepo struct {
	mu       sync.Mutex
	profiles map[string]face.FaceProfile
}

func newFakeFaceRepo() *fakeFaceRepo {
	return &fakeFaceRepo{profiles: make(map[string]face.FaceProfile)}
}

func (f *fakeFaceRepo) Upsert(ctx context.Context, p face.FaceProfile) (face.FaceProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[p.EmployeeID] = p
	return p, nil
}

func (f *fakeFaceRepo) GetByEmployee(ctx context.Context, employeeID string) (face.FaceProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[employeeID]
	if !ok {
		return face.FaceProfile{}, face.ErrFaceProfileNotFound
	}
	return p, nil
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     "user-1",
		"email":       "test@haergo.com",
		"role":        string(user.RoleEmployee),
		"employee_id": employeeID,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *fakeFaceRepo) *FaceServiceImpl {
	return &FaceServiceImpl{
		FaceRepository: repo,
		now: func() time.Time {
			return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
		},
	}
}

func testDescriptor() []float64 {
	d := make([]float64, face.DescriptorSize)
	for i := range d {
		d[i] = float64(i) / 128
	}
	return d
}

func TestFaceService_Register(t *testing.T) {
	repo := newFakeFaceRepo()
	svc := newTestService(repo)
	ctx := authedContext(t, "emp-1")

	resp, err := svc.Register(ctx, face.RegisterFaceRequest{Descriptor: testDescriptor()})

	require.NoError(t, err)
	assert.True(t, resp.Registered)
	assert.NotNil(t, resp.UpdatedAt)

	stored, err := repo.GetByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Len(t, stored.Descriptor, face.DescriptorSize)
}

func TestFaceService_Register_WrongDescriptorLength(t *testing.T) {
	svc := newTestService(newFakeFaceRepo())
	ctx := authedContext(t, "emp-1")

	_, err := svc.Register(ctx, face.RegisterFaceRequest{Descriptor: []float64{1, 2, 3}})

	assert.Error(t, err)
}

func TestFaceService_Check_Unregistered(t *testing.T) {
	svc := newTestService(newFakeFaceRepo())
	ctx := authedContext(t, "emp-1")

	resp, err := svc.Check(ctx)

	require.NoError(t, err)
	assert.False(t, resp.Registered)
	assert.Nil(t, resp.UpdatedAt)
}

func TestFaceService_RegisterThenDescriptor(t *testing.T) {
	svc := newTestService(newFakeFaceRepo())
	ctx := authedContext(t, "emp-1")

	_, err := svc.Register(ctx, face.RegisterFaceRequest{Descriptor: testDescriptor()})
	require.NoError(t, err)

	resp, err := svc.Descriptor(ctx)

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, testDescriptor(), resp.Descriptor)
}

func TestFaceService_Descriptor_NotFound(t *testing.T) {
	svc := newTestService(newFakeFaceRepo())
	ctx := authedContext(t, "emp-1")

	_, err := svc.Descriptor(ctx)

	assert.ErrorIs(t, err, face.ErrFaceProfileNotFound)
}
