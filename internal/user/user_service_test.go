package user_test

import (
	"context"
	"testing"

	"go-ponto/internal/user"
	usererrors "go-ponto/internal/user/errors"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	createFn            func(ctx context.Context, u *user.User) error
	findByIDFn          func(ctx context.Context, id uint) (*user.User, error)
	findByLoginFn       func(ctx context.Context, login string) (*user.User, error)
	findEmployeesFn     func(ctx context.Context) ([]user.User, error)
	countByCPFOrLoginFn func(ctx context.Context, cpf, login string) (int64, error)
	countAdminsFn       func(ctx context.Context) (int64, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &user.User{ID: id}, nil
}

func (f *fakeUserRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	if f.findByLoginFn != nil {
		return f.findByLoginFn(ctx, login)
	}
	return &user.User{Login: login}, nil
}

func (f *fakeUserRepository) FindEmployees(ctx context.Context) ([]user.User, error) {
	if f.findEmployeesFn != nil {
		return f.findEmployeesFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserRepository) CountByCPFOrLogin(ctx context.Context, cpf, login string) (int64, error) {
	if f.countByCPFOrLoginFn != nil {
		return f.countByCPFOrLoginFn(ctx, cpf, login)
	}
	return 0, nil
}

func (f *fakeUserRepository) CountAdmins(ctx context.Context) (int64, error) {
	if f.countAdminsFn != nil {
		return f.countAdminsFn(ctx)
	}
	return 0, nil
}

func validCreateRequest() user.CreateUserRequest {
	return user.CreateUserRequest{
		Name:     "Ana Souza",
		CPF:      "123.456.789-09",
		Function: "Analista",
		Login:    "ana",
		Password: "segredo1",
	}
}

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "12345678909", user.NormalizeCPF("123.456.789-09"))
	assert.Equal(t, "12345678909", user.NormalizeCPF("12345678909"))
	assert.Equal(t, "", user.NormalizeCPF("abc"))
}

func TestCreate_StoresNormalizedCPFAndHashedPassword(t *testing.T) {
	var created *user.User
	repo := &fakeUserRepository{
		createFn: func(ctx context.Context, u *user.User) error {
			created = u
			u.ID = 10
			return nil
		},
	}
	svc := user.NewService(repo)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	assert.Equal(t, uint(10), resp.ID)
	assert.Equal(t, "12345678909", resp.CPF)

	assert.NotNil(t, created)
	assert.Equal(t, user.RoleEmployee, created.Role, "self-registered accounts never get admin")
	assert.NotEqual(t, "segredo1", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("segredo1")))
}

func TestCreate_MissingFields(t *testing.T) {
	svc := user.NewService(&fakeUserRepository{})

	req := validCreateRequest()
	req.Function = "   "

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, usererrors.ErrMissingRequiredFields)
}

func TestCreate_CPFMustHaveElevenDigits(t *testing.T) {
	svc := user.NewService(&fakeUserRepository{})

	req := validCreateRequest()
	req.CPF = "123.456.789-0"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, usererrors.ErrInvalidCPF)
}

func TestCreate_DuplicateIdentityRejected(t *testing.T) {
	repo := &fakeUserRepository{
		countByCPFOrLoginFn: func(ctx context.Context, cpf, login string) (int64, error) {
			assert.Equal(t, "12345678909", cpf)
			assert.Equal(t, "ana", login)
			return 1, nil
		},
		createFn: func(ctx context.Context, u *user.User) error {
			t.Fatal("create must not run when the identity already exists")
			return nil
		},
	}
	svc := user.NewService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, usererrors.ErrDuplicateIdentity)
}

func TestListEmployees_MapsToOptions(t *testing.T) {
	repo := &fakeUserRepository{
		findEmployeesFn: func(ctx context.Context) ([]user.User, error) {
			return []user.User{
				{ID: 2, Name: "Ana"},
				{ID: 5, Name: "Bruno"},
			}, nil
		},
	}
	svc := user.NewService(repo)

	opts, err := svc.ListEmployees(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []user.EmployeeOption{{ID: 2, Name: "Ana"}, {ID: 5, Name: "Bruno"}}, opts)
}

func TestEnsureAdmin_SeedsWhenNoAdminExists(t *testing.T) {
	var created *user.User
	repo := &fakeUserRepository{
		countAdminsFn: func(ctx context.Context) (int64, error) { return 0, nil },
		createFn: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}
	svc := user.NewService(repo)

	assert.NoError(t, svc.EnsureAdmin(context.Background()))
	if assert.NotNil(t, created) {
		assert.Equal(t, user.BootstrapAdminLogin, created.Login)
		assert.Equal(t, user.RoleAdmin, created.Role)
		assert.Equal(t, "00000000000", created.CPF)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("admin123")))
	}
}

func TestEnsureAdmin_NoopWhenAdminExists(t *testing.T) {
	repo := &fakeUserRepository{
		countAdminsFn: func(ctx context.Context) (int64, error) { return 1, nil },
		createFn: func(ctx context.Context, u *user.User) error {
			t.Fatal("seeding must not run twice")
			return nil
		},
	}
	svc := user.NewService(repo)

	assert.NoError(t, svc.EnsureAdmin(context.Background()))
}
