package user

import (
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type User struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	CPF       string    `gorm:"column:cpf;type:varchar(11);not null;uniqueIndex:uq_users_cpf"`
	Function  string    `gorm:"column:function;type:varchar(255);not null"`
	Login     string    `gorm:"column:login;type:varchar(100);not null;uniqueIndex:uq_users_login"`
	Password  string    `gorm:"column:password;type:text;not null"`
	Role      string    `gorm:"column:role;type:varchar(20);not null;default:employee"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
