package reporterrors

import (
	"net/http"

	"go-ponto/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrEmployeeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"An employee must be selected for this report",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date filter; want YYYY-MM-DD or DD-MM-YYYY",
		http.StatusBadRequest,
	)

	ErrInvalidFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid export format",
		http.StatusBadRequest,
	)

	ErrNoExportData = apperror.New(
		apperror.CodeNotFound,
		"No data found to export",
		http.StatusNotFound,
	)
)
