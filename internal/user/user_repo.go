package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByLogin(ctx context.Context, login string) (*User, error)
	FindEmployees(ctx context.Context) ([]User, error)
	CountByCPFOrLogin(ctx context.Context, cpf, login string) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByLogin(ctx context.Context, login string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "login = ?", login).Error
	return &u, err
}

func (r *repository) FindEmployees(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("role = ?", RoleEmployee).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) CountByCPFOrLogin(ctx context.Context, cpf, login string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("cpf = ? OR login = ?", cpf, login).
		Count(&count).Error
	return count, err
}

func (r *repository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("role = ?", RoleAdmin).
		Count(&count).Error
	return count, err
}
