package history

import (
	"context"

	historyerrors "github.com/cg-tech-git/pmo-v2/internal/history/errors"
	"github.com/cg-tech-git/pmo-v2/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=history_service.go -destination=mock/history_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]ReportHistoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("history.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context) ([]ReportHistoryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("list report history requested")

	rows, err := s.repo.FindAll(ctx, MaxListed)
	if err != nil {
		log.Error("list report history failed", zap.Error(err))
		return nil, MapRepositoryError(err)
	}

	return mapToListResponse(rows), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete report history requested", zap.String("history_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return historyerrors.ErrInvalidHistoryID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("delete report history failed", zap.String("history_id", id), zap.Error(err))
		return MapRepositoryError(err)
	}

	log.Info("delete report history success",
		zap.String("history_id", id),
		zap.String("deleted_by", contextutil.GetUserEmail(ctx)),
	)
	return nil
}

func mapToResponse(h ReportHistory) ReportHistoryResponse {
	return ReportHistoryResponse{
		ID:               h.ID.String(),
		Name:             h.ReportName,
		FileType:         h.FileType,
		Size:             h.FileSize,
		SizeBytes:        h.SizeBytes,
		CreatedAt:        h.CreatedAt,
		UploadedAt:       h.CreatedAt.Format("Jan 2, 2006"),
		UploadedBy:       h.CreatedByEmail,
		UploadedByName:   h.CreatedByName,
		CustomerName:     h.CustomerName,
		ReportDate:       h.ReportDate,
		EmployeeCount:    h.EmployeeCount,
		GenerationParams: h.GenerationParams.Data(),
	}
}

func mapToListResponse(rows []ReportHistory) []ReportHistoryResponse {
	res := make([]ReportHistoryResponse, len(rows))
	for i, h := range rows {
		res[i] = mapToResponse(h)
	}
	return res
}
