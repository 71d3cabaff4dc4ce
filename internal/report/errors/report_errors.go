package reporterrors

import (
	"net/http"

	"github.com/cg-tech-git/pmo-v2/internal/shared/apperror"
)

var (
	ErrEmptySelection = apperror.New(
		apperror.CodeEmptySelection,
		"Select at least one employee, one field and one format",
		http.StatusBadRequest,
	)
	ErrUnknownFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown report format",
		http.StatusBadRequest,
	)
	ErrInvalidReportDate = apperror.New(
		apperror.CodeInvalidInput,
		"Report date must be YYYY-MM-DD or DD-MM-YYYY",
		http.StatusBadRequest,
	)
	ErrEncodingFailed = apperror.New(
		apperror.CodeEncodingFailed,
		"Report could not be encoded",
		http.StatusInternalServerError,
	)
	ErrPartialFailure = apperror.New(
		apperror.CodePartialFailure,
		"Some report formats could not be generated",
		http.StatusMultiStatus,
	)
	ErrNamingExhausted = apperror.New(
		apperror.CodeNamingExhausted,
		"No free report name is left for this customer and date",
		http.StatusConflict,
	)
)
