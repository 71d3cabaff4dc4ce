package app

import (
	"context"
	"time"

	"github.com/cg-tech-git/pmo-v2/internal/bootstrap"
	"github.com/cg-tech-git/pmo-v2/internal/messaging/kafka"
	"github.com/cg-tech-git/pmo-v2/internal/messaging/kafka/producer"
	"github.com/cg-tech-git/pmo-v2/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays pending outbox rows to Kafka until SIGINT/SIGTERM.
func RunWorker(cfg Config) error {
	logger := zap.L().Named("app.worker")
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

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, 3*time.Second)
	}()

	<-bootstrap.ShutdownSignal()
	logger.Info("worker shutting down")
	cancel()
	<-done

	return nil
}
