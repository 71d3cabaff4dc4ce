package kafka_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/cg-tech-git/pmo-v2/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
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

func TestOutboxRepository_Create(t *testing.T) {
	t.Run("inserts pending event", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		repo := kafka.NewOutboxRepository(gdb)
		ev, err := kafka.NewOutboxEvent("topic", "type", "report_history", "h-1", "rid", map[string]string{"a": "b"})
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "outbox_events"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Create(context.Background(), &ev))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects invalid event without touching the db", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		repo := kafka.NewOutboxRepository(gdb)

		err := repo.Create(context.Background(), &kafka.OutboxEvent{ID: uuid.New(), Topic: "t", Payload: []byte(`{}`), Status: "weird"})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := kafka.NewOutboxRepository(gdb)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "outbox_events" WHERE status IN \(\$1,\$2\) AND \(next_retry_at IS NULL OR next_retry_at <= NOW\(\)\) ORDER BY created_at ASC LIMIT \$3`).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "topic", "status", "payload"}).
			AddRow(id.String(), "topic", kafka.OutboxStatusPending, []byte(`{}`)))

	events, err := repo.ListPending(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, id, events[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	ev, err := kafka.NewOutboxEvent("topic", "type", "agg", "1", "", struct{}{})
	assert.NoError(t, err)
	assert.NoError(t, kafka.ValidateOutboxEvent(ev))

	ev.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(ev))
}
