package puncherrors

import (
	"net/http"

	"go-ponto/internal/shared/apperror"
)

var (
	ErrDayComplete = apperror.New(
		apperror.CodeConflict,
		"All punches for today have already been recorded",
		http.StatusConflict,
	)

	// Raised when the unique index rejects a concurrent duplicate;
	// surfaced to the caller the same way as a completed step.
	ErrAlreadyRecorded = apperror.New(
		apperror.CodeConflict,
		"This punch has already been recorded for today",
		http.StatusConflict,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
