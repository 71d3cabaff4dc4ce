package report_test

import (
	"testing"
	"time"

	"github.com/cg-tech-git/pmo-v2/internal/document"
	"github.com/cg-tech-git/pmo-v2/internal/employee"
	"github.com/cg-tech-git/pmo-v2/internal/fieldmap"
	"github.com/cg-tech-git/pmo-v2/internal/report"
)

var reportDate = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

func sampleEmployees() []employee.Employee {
	return []employee.Employee{
		{Code: "E001", Name: "Jane Doe", Nationality: "British", Department: "Ops"},
		{Code: "E002", Name: "John Roe", Nationality: "Indian", Department: "HR"},
	}
}

func sampleDocuments() []document.Document {
	return []document.Document{
		{ID: 1, EmployeeCode: "E001", Name: "PASSPORT", Number: "A1234567", EntryDate: "2020-01-01", DueDate: "2030-01-01"},
		{ID: 2, EmployeeCode: "E001", Name: "HEALTH INSURANCE CARD", Number: "HI-9", EntryDate: "2024-01-01", DueDate: "2025-01-01"},
	}
}

func sampleSelection() fieldmap.Selection {
	return fieldmap.NewSelection(map[fieldmap.Category][]string{
		fieldmap.CategoryPersonal: {"full-name-english"},
		fieldmap.CategoryPassport: {"passport-no"},
	})
}

func newEngine(opts ...report.PDFOptions) *report.Engine {
	o := report.PDFOptions{}
	if len(opts) > 0 {
		o = opts[0]
	}
	return report.NewEngine(fieldmap.Default(), document.DefaultClassifier(), o)
}

func sampleDataset(t *testing.T) *report.Dataset {
	t.Helper()
	ds, err := newEngine().Build("Acme  Corp", reportDate, sampleEmployees(), sampleDocuments(), sampleSelection())
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}
	return ds
}
