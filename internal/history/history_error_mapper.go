package history

import (
	"errors"
	"strings"

	historyerrors "github.com/cg-tech-git/pmo-v2/internal/history/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError translates report_history store errors into API errors.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return historyerrors.ErrHistoryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "22P02":
			return historyerrors.ErrInvalidHistoryID
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P0"):
			return historyerrors.ErrHistoryUnavailable.WithCause(err)
		}
	}

	return err
}
