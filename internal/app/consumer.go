package app

import (
	"context"

	"github.com/cg-tech-git/pmo-v2/internal/bootstrap"
	"github.com/cg-tech-git/pmo-v2/internal/events"
	"github.com/cg-tech-git/pmo-v2/internal/messaging/kafka/consumer"
	"github.com/cg-tech-git/pmo-v2/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const reportEmailGroupID = "pmo-report-email"

// RunConsumer delivers queued report e-mails until SIGINT/SIGTERM.
func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")
	if err := cfg.requireKafka(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, 5, logger)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	reportService, historyRepo := newReportService(cfg, gormDB, zap.L())
	deliveryService, err := newDeliveryService(cfg, gormDB, reportService, historyRepo, zap.L())
	if err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.ReportEmailRequestedTopic,
		GroupID:        reportEmailGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeReportEmailRequested(ctx, reader, deliveryService, logger)
	}()

	<-bootstrap.ShutdownSignal()
	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
