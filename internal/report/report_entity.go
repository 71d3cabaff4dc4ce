package report

import (
	"strings"
	"time"

	"github.com/cg-tech-git/pmo-v2/internal/document"
	"github.com/cg-tech-git/pmo-v2/internal/employee"
	"github.com/cg-tech-git/pmo-v2/internal/fieldmap"
)

// DefaultTitle heads every artifact unless configured otherwise.
const DefaultTitle = "Site Accreditation Report"

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatZIP  Format = "zip"
)

func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatXLSX, FormatZIP:
		return f, true
	}
	return "", false
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatZIP:
		return "application/zip"
	}
	return "application/octet-stream"
}

// Table is the projection every encoder consumes. Each row has len(Headers) cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Request is a validated generation request.
type Request struct {
	CustomerName  string
	ReportDate    time.Time
	EmployeeCodes []string
	Selection     fieldmap.Selection
	Formats       []Format
}

// Dataset is everything the encoders need for one request.
type Dataset struct {
	CustomerName string // trimmed, as typed by the user
	BaseName     string // sanitized customer and date stamp, used for file names
	DateStamp    string
	ReportDate   time.Time
	Employees    []employee.Employee
	Documents    map[string]document.Grouped
	Selection    fieldmap.Selection
	Table        Table
}

type Artifact struct {
	HistoryID   string
	Format      Format
	FileName    string
	ContentType string
	Content     []byte
}

// FormatFailure names a format that could not be produced and why.
type FormatFailure struct {
	Format Format `json:"format"`
	Reason string `json:"reason"`
}

// Snapshot is the JSON document stored in a bundle next to the rendered artifacts.
type Snapshot struct {
	CustomerName       string                      `json:"customerName"`
	ReportDate         string                      `json:"reportDate"`
	TotalEmployees     int                         `json:"totalEmployees"`
	Employees          []employee.Employee         `json:"employees"`
	SelectedCategories fieldmap.Selection          `json:"selectedCategories"`
	Documents          map[string]document.Grouped `json:"documents"`
}

func (d *Dataset) Snapshot() Snapshot {
	return Snapshot{
		CustomerName:       d.CustomerName,
		ReportDate:         d.DateStamp,
		TotalEmployees:     len(d.Employees),
		Employees:          d.Employees,
		SelectedCategories: d.Selection,
		Documents:          d.Documents,
	}
}
