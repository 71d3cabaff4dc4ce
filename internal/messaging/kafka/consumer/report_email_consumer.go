package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cg-tech-git/pmo-v2/internal/delivery"
	"github.com/cg-tech-git/pmo-v2/internal/events"
	"github.com/cg-tech-git/pmo-v2/internal/shared/apperror"
	"github.com/cg-tech-git/pmo-v2/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func ConsumeReportEmailRequested(
	ctx context.Context,
	reader MessageReader,
	deliveryService delivery.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.report_email")
	log.Info("report email consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("report email consumer stopped")
				return
			}
			log.Error("fetch report email message failed", zap.Error(err))
			continue
		}

		handleReportEmail(ctx, reader, msg, deliveryService, log)
	}
}

func handleReportEmail(
	ctx context.Context,
	reader MessageReader,
	msg kafkago.Message,
	deliveryService delivery.Service,
	log *zap.Logger,
) {
	var event events.ReportEmailRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode report email event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	reqCtx := contextutil.WithRequestID(ctx, event.RequestID)
	reqCtx = contextutil.WithUserEmail(reqCtx, event.RequestedBy)

	if err := deliveryService.Deliver(reqCtx, event); err != nil {
		if isPermanent(err) {
			log.Warn("report email dropped",
				zap.String("history_id", event.HistoryID),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			return
		}

		log.Error("deliver report email failed",
			zap.String("history_id", event.HistoryID),
			zap.String("request_id", event.RequestID),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit report email message failed", zap.Error(err))
		return
	}

	log.Info("report email delivered",
		zap.String("history_id", event.HistoryID),
		zap.Strings("recipients", event.Recipients),
		zap.String("requested_by", event.RequestedBy),
	)
}

// isPermanent reports errors a retry cannot fix, such as a deleted history row.
func isPermanent(err error) bool {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus >= 400 && appErr.HTTPStatus < 500
	}
	return false
}
