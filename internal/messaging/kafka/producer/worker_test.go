package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/cg-tech-git/pmo-v2/internal/events"
	"github.com/cg-tech-git/pmo-v2/internal/messaging/kafka"
	kafkaMock "github.com/cg-tech-git/pmo-v2/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	failFor string
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failFor {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func newEvent(t *testing.T, historyID string) kafka.OutboxEvent {
	t.Helper()
	e, err := kafka.NewOutboxEvent(
		events.ReportEmailRequestedTopic,
		events.ReportEmailRequestedType,
		"report_history",
		historyID,
		"rid-1",
		events.ReportEmailRequestedEvent{HistoryID: historyID},
	)
	assert.NoError(t, err)
	return e
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}
		ev := newEvent(t, "h-1")

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{ev}, nil)
		repo.EXPECT().MarkSent(ctx, ev.ID.String()).Return(nil)

		sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.written, 1)
		msg := writer.written[0]
		assert.Equal(t, events.ReportEmailRequestedTopic, msg.Topic)
		assert.Equal(t, "h-1", string(msg.Key))
		assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("rid-1")})
	})

	t.Run("failed publish is marked failed and the batch continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: "h-1"}
		bad, good := newEvent(t, "h-1"), newEvent(t, "h-2")

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{bad, good}, nil)
		repo.EXPECT().MarkFailed(ctx, bad.ID.String(), "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, good.ID.String()).Return(nil)

		sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, errors.New("db down"))

		_, err := processPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.Error(t, err)
	})
}
