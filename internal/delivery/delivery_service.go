package delivery

import (
	"context"
	"strings"
	"time"

	deliveryerrors "github.com/cg-tech-git/pmo-v2/internal/delivery/errors"
	"github.com/cg-tech-git/pmo-v2/internal/events"
	"github.com/cg-tech-git/pmo-v2/internal/history"
	historyerrors "github.com/cg-tech-git/pmo-v2/internal/history/errors"
	"github.com/cg-tech-git/pmo-v2/internal/messaging/kafka"
	"github.com/cg-tech-git/pmo-v2/internal/report"
	"github.com/cg-tech-git/pmo-v2/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const aggregateReportHistory = "report_history"

//go:generate mockgen -source=delivery_service.go -destination=mock/delivery_service_mock.go -package=mock
type Service interface {
	// RequestEmail queues delivery of a recorded report.
	RequestEmail(ctx context.Context, historyID string, req SendReportEmailRequest) (SendReportEmailResponse, error)
	// Deliver rebuilds the report and sends it.
	Deliver(ctx context.Context, event events.ReportEmailRequestedEvent) error
}

type service struct {
	histories history.Repository
	outbox    kafka.OutboxRepository
	reports   report.Service
	mailer    Mailer
	title     string
	logger    *zap.Logger
}

func NewService(
	histories history.Repository,
	outbox kafka.OutboxRepository,
	reports report.Service,
	mailer Mailer,
	title string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("delivery.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("delivery.service")
	}
	if title == "" {
		title = report.DefaultTitle
	}
	return &service{
		histories: histories,
		outbox:    outbox,
		reports:   reports,
		mailer:    mailer,
		title:     title,
		logger:    l,
	}
}

func (s *service) RequestEmail(ctx context.Context, historyID string, req SendReportEmailRequest) (SendReportEmailResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(historyID); err != nil {
		return SendReportEmailResponse{}, historyerrors.ErrInvalidHistoryID
	}
	row, err := s.histories.FindByID(ctx, historyID)
	if err != nil {
		return SendReportEmailResponse{}, history.MapRepositoryError(err)
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = DefaultSubject(s.title, row.ReportName)
	}
	body := req.Body
	if strings.TrimSpace(body) == "" {
		body = DefaultBody(s.title, row.ReportName)
	}

	meta := contextutil.ExtractMetadata(ctx)
	payload := events.ReportEmailRequestedEvent{
		EventType:   events.ReportEmailRequestedType,
		HistoryID:   historyID,
		ReportName:  row.ReportName,
		Recipients:  dedupe(req.Recipients),
		Cc:          dedupe(req.Cc),
		Subject:     subject,
		Body:        body,
		RequestedBy: meta.UserEmail,
		RequestID:   meta.RequestID,
		OccurredAt:  time.Now().UTC(),
	}
	event, err := kafka.NewOutboxEvent(
		events.ReportEmailRequestedTopic,
		events.ReportEmailRequestedType,
		aggregateReportHistory,
		historyID,
		meta.RequestID,
		payload,
	)
	if err != nil {
		return SendReportEmailResponse{}, err
	}

	if err := s.outbox.Create(ctx, &event); err != nil {
		log.Error("queue report email failed", zap.String("history_id", historyID), zap.Error(err))
		return SendReportEmailResponse{}, deliveryerrors.ErrQueueUnavailable.WithCause(err)
	}

	log.Info("report email queued",
		zap.String("history_id", historyID),
		zap.String("outbox_id", event.ID.String()),
		zap.Int("recipients", len(payload.Recipients)),
	)
	return SendReportEmailResponse{HistoryID: historyID, OutboxID: event.ID.String(), Queued: true}, nil
}

func (s *service) Deliver(ctx context.Context, event events.ReportEmailRequestedEvent) error {
	log := contextutil.GetLogger(ctx, s.logger)

	artifact, err := s.reports.Download(ctx, event.HistoryID)
	if err != nil {
		return err
	}

	msg := Message{
		To:      event.Recipients,
		Cc:      event.Cc,
		Subject: event.Subject,
		Body:    event.Body,
		Attachment: &Attachment{
			FileName:    artifact.FileName,
			ContentType: artifact.ContentType,
			Content:     artifact.Content,
		},
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Error("send report email failed", zap.String("history_id", event.HistoryID), zap.Error(err))
		return deliveryerrors.ErrSendFailed.WithCause(err)
	}
	return nil
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
