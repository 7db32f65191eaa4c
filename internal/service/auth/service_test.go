package auth

import (
	"context"
	"sync"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haergo/haergo-backend-go/internal/domain/auth"
	"github.com/haergo/haergo-backend-go/internal/domain/employee"
	"github.com/haergo/haergo-backend-go/internal/domain/user"
	"github.com/haergo/haergo-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]user.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) ListIDsByDepartment(ctx context.Context, department string) ([]string, error) {
	return nil, nil
}

func newTestService() (auth.AuthService, *fakeUserRepo, *fakeEmployeeRepo) {
	userRepo := newFakeUserRepo()
	empRepo := newFakeEmployeeRepo()
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(userRepo, empRepo, jwtService), userRepo, empRepo
}

func TestAuthService_Register(t *testing.T) {
	svc, userRepo, empRepo := newTestService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, auth.RegisterRequest{
		Name:       "Ana Wijaya",
		Email:      "Ana@Haergo.com",
		Password:   "password123",
		Department: "Engineering",
		Position:   "Backend Engineer",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	// Email is normalized and the role defaults to employee.
	assert.Equal(t, "ana@haergo.com", resp.User.Email)
	assert.Equal(t, string(user.RoleEmployee), resp.User.Role)
	require.NotNil(t, resp.User.EmployeeID)

	created, err := empRepo.GetByID(ctx, *resp.User.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Wijaya", created.FullName)
	require.NotNil(t, created.Department)
	assert.Equal(t, "Engineering", *created.Department)

	// The stored password hash never equals the plaintext.
	stored, err := userRepo.GetByEmail(ctx, "ana@haergo.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	req := auth.RegisterRequest{Name: "Ana Wijaya", Email: "ana@haergo.com", Password: "password123"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "Ana Wijaya",
		Email:    "ana@haergo.com",
		Password: "short",
	})

	assert.Error(t, err)
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, auth.RegisterRequest{
		Name: "Ana Wijaya", Email: "ana@haergo.com", Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "ana@haergo.com", Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "ana@haergo.com", resp.User.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, auth.RegisterRequest{
		Name: "Ana Wijaya", Email: "ana@haergo.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "ana@haergo.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@haergo.com",
		Password: "password123",
	})

	// Unknown accounts and bad passwords are indistinguishable.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Me(t *testing.T) {
	svc, userRepo, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, auth.RegisterRequest{
		Name: "Ana Wijaya", Email: "ana@haergo.com", Password: "password123",
	})
	require.NoError(t, err)

	stored, err := userRepo.GetByEmail(ctx, "ana@haergo.com")
	require.NoError(t, err)

	ja := jwtauth.New("HS256", []byte(testSecret), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     stored.ID,
		"email":       stored.Email,
		"role":        string(stored.Role),
		"employee_id": *resp.User.EmployeeID,
		"type":        "access",
	})
	require.NoError(t, err)
	authedCtx := jwtauth.NewContext(ctx, token, nil)

	me, err := svc.Me(authedCtx)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, me.ID)
	assert.Equal(t, "ana@haergo.com", me.Email)
}
