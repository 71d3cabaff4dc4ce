package history_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/cg-tech-git/pmo-v2/internal/history"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

func TestRepository_ListNames(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := history.NewRepository(gdb)

	mock.ExpectQuery(`SELECT .*report_name.* FROM "report_history" WHERE report_name LIKE \$1`).
		WithArgs(`Acme\_Corp\_01-02-2025%`).
		WillReturnRows(sqlmock.NewRows([]string{"report_name"}).
			AddRow("Acme_Corp_01-02-2025.pdf").
			AddRow("Acme_Corp_01-02-2025_(1).pdf"))

	names, err := repo.ListNames(context.Background(), "Acme_Corp_01-02-2025")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Acme_Corp_01-02-2025.pdf", "Acme_Corp_01-02-2025_(1).pdf"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateBatch(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := history.NewRepository(gdb)

	rows := []history.ReportHistory{
		{ID: uuid.New(), ReportName: "a.pdf", GenerationParams: datatypes.NewJSONType(history.GenerationParams{ReportFormat: "pdf"})},
		{ID: uuid.New(), ReportName: "a.xlsx", GenerationParams: datatypes.NewJSONType(history.GenerationParams{ReportFormat: "xlsx"})},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "report_history"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	assert.NoError(t, repo.CreateBatch(context.Background(), rows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	t.Run("missing row is not found", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		repo := history.NewRepository(gdb)
		id := uuid.NewString()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "report_history" WHERE id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), id)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
