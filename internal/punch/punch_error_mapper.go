package punch

import (
	"errors"
	"strings"

	puncherrors "go-ponto/internal/punch/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError turns the (user_id, date, type) unique violation,
// which backstops races past the sequencer gate, into the same
// already-recorded condition the gate raises.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return puncherrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_punches_user_date_type" {
			return puncherrors.ErrAlreadyRecorded
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_punches_user_date_type") {
		return puncherrors.ErrAlreadyRecorded
	}

	return err
}
