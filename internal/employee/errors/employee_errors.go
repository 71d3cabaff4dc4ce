package employeeerrors

import (
	"net/http"

	"github.com/cg-tech-git/pmo-v2/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrWarehouseUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Employee warehouse is unavailable",
		http.StatusServiceUnavailable,
	)
)
