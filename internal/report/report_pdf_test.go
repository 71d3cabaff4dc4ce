package report_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/cg-tech-git/pmo-v2/internal/report"

	"github.com/stretchr/testify/assert"
)

func documentMeta(ds *report.Dataset) report.DocumentMeta {
	return report.DocumentMeta{
		CustomerName:  ds.CustomerName,
		DateStamp:     ds.DateStamp,
		EmployeeCount: len(ds.Employees),
		Created:       ds.ReportDate,
	}
}

func TestEncodeDocument(t *testing.T) {
	ds := sampleDataset(t)

	out, err := report.EncodeDocument(documentMeta(ds), ds.Table, report.PDFOptions{})

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestEncodeDocument_IsReproducible(t *testing.T) {
	ds := sampleDataset(t)

	a, err := report.EncodeDocument(documentMeta(ds), ds.Table, report.PDFOptions{})
	assert.NoError(t, err)
	b, err := report.EncodeDocument(documentMeta(ds), ds.Table, report.PDFOptions{})
	assert.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEncodeDocument_WideAndLongTables(t *testing.T) {
	headers := []string{"Employee Code", "Employee Name"}
	for i := 0; i < 20; i++ {
		headers = append(headers, fmt.Sprintf("A fairly long column heading %d", i))
	}
	table := report.Table{Headers: headers}
	for r := 0; r < 120; r++ {
		row := []string{fmt.Sprintf("E%03d", r), "Some Employee With A Long Name"}
		for i := 2; i < len(headers); i++ {
			row = append(row, "value that is long enough to wrap inside a clamped column width")
		}
		table.Rows = append(table.Rows, row)
	}

	out, err := report.EncodeDocument(report.DocumentMeta{CustomerName: "Acme", DateStamp: "01-02-2025", EmployeeCount: 120}, table, report.PDFOptions{})

	assert.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestEncodeDocument_MissingFontFails(t *testing.T) {
	ds := sampleDataset(t)

	_, err := report.EncodeDocument(documentMeta(ds), ds.Table, report.PDFOptions{FontPath: "/nonexistent/arabic.ttf"})

	assert.Error(t, err)
}
