package report

import (
	"context"
	"strings"
	"time"

	"github.com/cg-tech-git/pmo-v2/internal/document"
	"github.com/cg-tech-git/pmo-v2/internal/employee"
	employeeerrors "github.com/cg-tech-git/pmo-v2/internal/employee/errors"
	"github.com/cg-tech-git/pmo-v2/internal/fieldmap"
	"github.com/cg-tech-git/pmo-v2/internal/history"
	historyerrors "github.com/cg-tech-git/pmo-v2/internal/history/errors"
	reporterrors "github.com/cg-tech-git/pmo-v2/internal/report/errors"
	"github.com/cg-tech-git/pmo-v2/internal/shared/apperror"
	"github.com/cg-tech-git/pmo-v2/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GenerateReportRequest) (GenerateReportResponse, error)
	Download(ctx context.Context, historyID string) (Artifact, error)
}

type service struct {
	engine    *Engine
	employees employee.Repository
	documents document.Repository
	histories history.Repository
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	engine *Engine,
	employees employee.Repository,
	documents document.Repository,
	histories history.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		engine:    engine,
		employees: employees,
		documents: documents,
		histories: histories,
		now:       time.Now,
		logger:    l,
	}
}

type encoded struct {
	format Format
	body   []byte
}

func (s *service) Generate(ctx context.Context, req GenerateReportRequest) (GenerateReportResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	r, err := s.toRequest(req)
	if err != nil {
		return GenerateReportResponse{}, err
	}
	log.Debug("report generation requested",
		zap.String("customer", r.CustomerName),
		zap.Int("employees", len(r.EmployeeCodes)),
		zap.Int("fields", r.Selection.Count()),
		zap.Any("formats", r.Formats),
	)

	ds, err := s.load(ctx, r.CustomerName, r.ReportDate, r.EmployeeCodes, r.Selection)
	if err != nil {
		log.Error("report data load failed", zap.Error(err))
		return GenerateReportResponse{}, err
	}

	var (
		done     []encoded
		failures []FormatFailure
	)
	for _, f := range r.Formats {
		body, err := s.engine.Encode(ds, f)
		if err != nil {
			log.Error("report encoding failed", zap.String("format", string(f)), zap.Error(err))
			failures = append(failures, FormatFailure{Format: f, Reason: err.Error()})
			continue
		}
		done = append(done, encoded{format: f, body: body})
	}
	if len(done) == 0 {
		return GenerateReportResponse{}, reporterrors.ErrEncodingFailed.WithDetails(failures)
	}

	existing, err := s.histories.ListNames(ctx, ds.BaseName)
	if err != nil {
		log.Error("list report names failed", zap.Error(err))
		return GenerateReportResponse{}, history.MapRepositoryError(err)
	}
	taken := NewNameSet(existing...)

	createdAt := s.now()
	meta := contextutil.ExtractMetadata(ctx)
	rows := make([]history.ReportHistory, 0, len(done))
	resp := GenerateReportResponse{
		CustomerName:  ds.CustomerName,
		ReportDate:    ds.DateStamp,
		EmployeeCount: len(ds.Employees),
		Artifacts:     make([]ArtifactResponse, 0, len(done)),
		Failed:        failures,
	}
	for _, e := range done {
		name, err := ResolveName(ds.BaseName, e.format.Extension(), taken)
		if err != nil {
			log.Warn("report naming exhausted", zap.String("base", ds.BaseName))
			return GenerateReportResponse{}, err
		}
		taken.Add(name)

		id := uuid.New()
		size := int64(len(e.body))
		rows = append(rows, history.ReportHistory{
			ID:             id,
			ReportName:     name,
			FileType:       e.format.Extension(),
			FileSize:       history.FormatSize(size),
			SizeBytes:      size,
			CreatedAt:      createdAt,
			CreatedByEmail: meta.UserEmail,
			CreatedByName:  meta.UserName,
			CustomerName:   ds.CustomerName,
			ReportDate:     ds.DateStamp,
			EmployeeCount:  len(ds.Employees),
			GenerationParams: datatypes.NewJSONType(history.GenerationParams{
				CustomerName:       ds.CustomerName,
				ReportDate:         ds.DateStamp,
				SelectedEmployees:  r.EmployeeCodes,
				SelectedCategories: r.Selection,
				ReportFormat:       string(e.format),
			}),
		})
		resp.Artifacts = append(resp.Artifacts, ArtifactResponse{
			HistoryID:   id.String(),
			Format:      e.format,
			FileName:    name,
			ContentType: e.format.ContentType(),
			Size:        history.FormatSize(size),
			SizeBytes:   size,
			Content:     e.body,
		})
	}

	if err := s.histories.CreateBatch(ctx, rows); err != nil {
		log.Error("record report history failed", zap.Error(err))
		return GenerateReportResponse{}, history.MapRepositoryError(err)
	}

	log.Info("report generated",
		zap.String("customer", ds.CustomerName),
		zap.Int("employees", len(ds.Employees)),
		zap.Int("artifacts", len(resp.Artifacts)),
		zap.Int("failed", len(failures)),
		zap.String("created_by", meta.UserEmail),
	)

	if len(failures) > 0 {
		return resp, reporterrors.ErrPartialFailure.WithDetails(failures)
	}
	return resp, nil
}

// Download rebuilds a recorded artifact from its generation parameters
// against current warehouse data.
func (s *service) Download(ctx context.Context, historyID string) (Artifact, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("report download requested", zap.String("history_id", historyID))

	if _, err := uuid.Parse(historyID); err != nil {
		return Artifact{}, historyerrors.ErrInvalidHistoryID
	}

	row, err := s.histories.FindByID(ctx, historyID)
	if err != nil {
		return Artifact{}, history.MapRepositoryError(err)
	}
	params := row.GenerationParams.Data()

	f, ok := ParseFormat(params.ReportFormat)
	if !ok {
		return Artifact{}, reporterrors.ErrUnknownFormat.WithDetails(map[string]string{"format": params.ReportFormat})
	}
	date, err := time.Parse(DateLayout, params.ReportDate)
	if err != nil {
		return Artifact{}, reporterrors.ErrInvalidReportDate.WithCause(err)
	}

	ds, err := s.load(ctx, params.CustomerName, date, params.SelectedEmployees, params.SelectedCategories)
	if err != nil {
		log.Error("report data load failed", zap.String("history_id", historyID), zap.Error(err))
		return Artifact{}, err
	}
	body, err := s.engine.Encode(ds, f)
	if err != nil {
		log.Error("report encoding failed", zap.String("history_id", historyID), zap.Error(err))
		return Artifact{}, err
	}

	return Artifact{
		HistoryID:   historyID,
		Format:      f,
		FileName:    row.ReportName,
		ContentType: f.ContentType(),
		Content:     body,
	}, nil
}

// toRequest validates everything that can be checked before any I/O.
func (s *service) toRequest(req GenerateReportRequest) (Request, error) {
	codes := uniqueTrimmed(req.SelectedEmployees)

	formats := make([]Format, 0, len(req.Formats))
	seen := make(map[Format]struct{}, len(req.Formats))
	for _, raw := range req.Formats {
		f, ok := ParseFormat(raw)
		if !ok {
			return Request{}, reporterrors.ErrUnknownFormat.WithDetails(map[string]string{"format": raw})
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		formats = append(formats, f)
	}

	if len(codes) == 0 || req.SelectedCategories.IsEmpty() || len(formats) == 0 {
		return Request{}, reporterrors.ErrEmptySelection
	}
	if err := s.engine.Registry().Validate(req.SelectedCategories); err != nil {
		return Request{}, err
	}
	if SanitizeCustomer(req.CustomerName) == "" {
		return Request{}, apperror.RequiredField("Customer Name")
	}

	date, err := s.parseDate(req.ReportDate)
	if err != nil {
		return Request{}, err
	}

	return Request{
		CustomerName:  req.CustomerName,
		ReportDate:    date,
		EmployeeCodes: codes,
		Selection:     req.SelectedCategories,
		Formats:       formats,
	}, nil
}

func (s *service) parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		now := s.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	for _, layout := range []string{time.DateOnly, DateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, reporterrors.ErrInvalidReportDate.WithDetails(map[string]string{"reportDate": raw})
}

// load fetches employees and documents concurrently and builds the dataset.
// Employees keep the order of codes; codes missing from the warehouse are skipped.
func (s *service) load(
	ctx context.Context,
	customer string,
	date time.Time,
	codes []string,
	sel fieldmap.Selection,
) (*Dataset, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	var (
		emps []employee.Employee
		docs []document.Document
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.employees.FindByCodes(gctx, codes)
		if err != nil {
			return employee.MapRepositoryError(err)
		}
		emps = rows
		return nil
	})
	if s.needsDocuments(sel) {
		g.Go(func() error {
			rows, err := s.documents.FindByEmployeeCodes(gctx, codes)
			if err != nil {
				return employee.MapRepositoryError(err)
			}
			docs = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCode := make(map[string]employee.Employee, len(emps))
	for _, e := range emps {
		byCode[e.Code] = e
	}
	ordered := make([]employee.Employee, 0, len(codes))
	for _, c := range codes {
		e, ok := byCode[c]
		if !ok {
			log.Warn("employee missing from warehouse", zap.String("employee_code", c))
			continue
		}
		ordered = append(ordered, e)
	}
	if len(ordered) == 0 {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	return s.engine.Build(customer, date, ordered, docs, sel)
}

func (s *service) needsDocuments(sel fieldmap.Selection) bool {
	reg := s.engine.Registry()
	for _, c := range fieldmap.Order {
		if sel.Has(c) && reg.Scope(c) == fieldmap.ScopeDocument {
			return true
		}
	}
	return false
}

func uniqueTrimmed(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
