package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/cg-tech-git/pmo-v2/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError translates warehouse read errors. The report feature reuses it for employee_documents.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08xxx connection exceptions, 57P0x shutdown, 42P01 mirror table missing
		if strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P0") || pgErr.Code == "42P01" {
			return employeeerrors.ErrWarehouseUnavailable.WithCause(err)
		}
	}

	return err
}
