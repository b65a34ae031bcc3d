package usererrors

import (
	"net/http"

	"go-ponto/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrDuplicateIdentity = apperror.New(
		apperror.CodeConflict,
		"CPF or login already registered",
		http.StatusConflict,
	)

	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields",
		http.StatusBadRequest,
	)

	ErrInvalidCPF = apperror.New(
		apperror.CodeInvalidInput,
		"CPF must have exactly 11 digits",
		http.StatusBadRequest,
	)
)
