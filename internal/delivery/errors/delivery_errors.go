package deliveryerrors

import (
	"net/http"

	"github.com/cg-tech-git/pmo-v2/internal/shared/apperror"
)

var (
	ErrQueueUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"E-mail queue is unavailable",
		http.StatusServiceUnavailable,
	)
	ErrSendFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"E-mail could not be sent",
		http.StatusBadGateway,
	)
)
