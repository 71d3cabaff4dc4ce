package report

import (
	"strings"
	"time"

	"github.com/cg-tech-git/pmo-v2/internal/document"
	"github.com/cg-tech-git/pmo-v2/internal/employee"
	"github.com/cg-tech-git/pmo-v2/internal/fieldmap"
	reporterrors "github.com/cg-tech-git/pmo-v2/internal/report/errors"
)

// Engine turns warehouse rows into encoded artifacts. It holds no
// per-request state and is safe for concurrent use.
type Engine struct {
	registry   *fieldmap.Registry
	classifier *document.Classifier
	projector  *Projector
	opts       PDFOptions
}

func NewEngine(registry *fieldmap.Registry, classifier *document.Classifier, opts PDFOptions) *Engine {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	return &Engine{
		registry:   registry,
		classifier: classifier,
		projector:  NewProjector(registry),
		opts:       opts,
	}
}

func (e *Engine) Registry() *fieldmap.Registry { return e.registry }

// Build groups the documents and projects the table.
func (e *Engine) Build(
	customer string,
	date time.Time,
	employees []employee.Employee,
	documents []document.Document,
	sel fieldmap.Selection,
) (*Dataset, error) {
	grouped := e.classifier.Group(documents).ByEmployee()

	table, err := e.projector.Project(employees, grouped, sel)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		CustomerName: strings.TrimSpace(customer),
		BaseName:     BaseName(customer, date),
		DateStamp:    DateStamp(date),
		ReportDate:   date,
		Employees:    employees,
		Documents:    grouped,
		Selection:    sel,
		Table:        table,
	}, nil
}

// Encode renders one format. Failures carry the format in their details.
func (e *Engine) Encode(d *Dataset, f Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch f {
	case FormatPDF:
		out, err = EncodeDocument(d.documentMeta(), d.Table, e.opts)
	case FormatXLSX:
		out, err = EncodeSpreadsheet(d.spreadsheetMeta(e.opts.Title), d.Table)
	case FormatZIP:
		out, err = EncodeBundle(d, e.opts)
	default:
		return nil, reporterrors.ErrUnknownFormat.WithDetails(map[string]string{"format": string(f)})
	}
	if err != nil {
		return nil, reporterrors.ErrEncodingFailed.
			WithDetails(map[string]string{"format": string(f)}).
			WithCause(err)
	}
	return out, nil
}
