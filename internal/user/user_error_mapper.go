package user

import (
	"errors"
	"strings"

	usererrors "go-ponto/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_users_cpf", "uq_users_login":
				return usererrors.ErrDuplicateIdentity
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") &&
		(strings.Contains(errMsg, "uq_users_cpf") || strings.Contains(errMsg, "uq_users_login")) {
		return usererrors.ErrDuplicateIdentity
	}

	return err
}
