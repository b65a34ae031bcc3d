package auth

import (
	"context"

	"go-ponto/internal/user"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	GetByLogin(ctx context.Context, login string) (*user.User, error)
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, "login = ?", login).Error
	return &u, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}
