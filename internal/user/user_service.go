package user

import (
	"context"
	"regexp"
	"strings"

	"go-ponto/internal/shared/contextutil"
	usererrors "go-ponto/internal/user/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Bootstrap admin, created once when no admin-role row exists. The
// default credential is a deliberate operational caveat: deployments
// are expected to rotate it on first login.
const (
	BootstrapAdminLogin    = "admin"
	bootstrapAdminPassword = "admin123"
	bootstrapAdminCPF      = "00000000000"
	bootstrapAdminName     = "Administrador"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetByID(ctx context.Context, id uint) (UserResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeOption, error)
	EnsureAdmin(ctx context.Context) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// NormalizeCPF strips any non-digit characters from a national id.
func NormalizeCPF(cpf string) string {
	return nonDigits.ReplaceAllString(cpf, "")
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	name := strings.TrimSpace(req.Name)
	function := strings.TrimSpace(req.Function)
	login := strings.TrimSpace(req.Login)
	if name == "" || function == "" || login == "" || req.Password == "" || strings.TrimSpace(req.CPF) == "" {
		return UserResponse{}, usererrors.ErrMissingRequiredFields
	}

	cpf := NormalizeCPF(req.CPF)
	if len(cpf) != 11 {
		return UserResponse{}, usererrors.ErrInvalidCPF
	}

	// Pre-check is a friendly fast path; the unique indexes on cpf and
	// login are the actual guarantee and surface through the mapper.
	existing, err := s.repo.CountByCPFOrLogin(ctx, cpf, login)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	if existing > 0 {
		return UserResponse{}, usererrors.ErrDuplicateIdentity
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		Name:     name,
		CPF:      cpf,
		Function: function,
		Login:    login,
		Password: string(hashed),
		Role:     RoleEmployee,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		l.Error("failed to create user", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	l.Info("user created", zap.Uint("id", u.ID), zap.String("login", u.Login))
	return mapToResponse(*u), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) ListEmployees(ctx context.Context) ([]EmployeeOption, error) {
	users, err := s.repo.FindEmployees(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	opts := make([]EmployeeOption, len(users))
	for i, u := range users {
		opts[i] = EmployeeOption{ID: u.ID, Name: u.Name}
	}
	return opts, nil
}

// EnsureAdmin creates the bootstrap admin when the users table has no
// admin-role row yet. Called once at startup.
func (s *service) EnsureAdmin(ctx context.Context) error {
	l := contextutil.GetLogger(ctx, zap.L())

	admins, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return mapRepositoryError(err)
	}
	if admins > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(bootstrapAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &User{
		Name:     bootstrapAdminName,
		CPF:      bootstrapAdminCPF,
		Function: bootstrapAdminName,
		Login:    BootstrapAdminLogin,
		Password: string(hashed),
		Role:     RoleAdmin,
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return mapRepositoryError(err)
	}

	l.Warn("bootstrap admin created with default credential; rotate it",
		zap.String("login", BootstrapAdminLogin))
	return nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		CPF:       u.CPF,
		Function:  u.Function,
		Login:     u.Login,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
