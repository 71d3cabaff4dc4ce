package fieldmaperrors

import (
	"net/http"

	"github.com/cg-tech-git/pmo-v2/internal/shared/apperror"
)

var (
	ErrUnknownCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown field category",
		http.StatusBadRequest,
	)
	ErrUnknownField = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown field for category",
		http.StatusBadRequest,
	)
	ErrDuplicateField = apperror.New(
		apperror.CodeInvalidInput,
		"Field selected more than once in a category",
		http.StatusBadRequest,
	)
)
