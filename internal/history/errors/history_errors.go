package historyerrors

import (
	"net/http"

	"github.com/cg-tech-git/pmo-v2/internal/shared/apperror"
)

var (
	ErrHistoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Report history entry not found",
		http.StatusNotFound,
	)
	ErrInvalidHistoryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid report history ID",
		http.StatusBadRequest,
	)
	ErrHistoryUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Report history store is unavailable",
		http.StatusServiceUnavailable,
	)
)
