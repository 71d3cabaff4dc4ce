package report_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/cg-tech-git/pmo-v2/internal/report"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
)

func TestEncodeBundle(t *testing.T) {
	ds := sampleDataset(t)

	out, err := report.EncodeBundle(ds, report.PDFOptions{})
	assert.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	assert.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"Acme_Corp_01-02-2025_report.pdf",
		"Acme_Corp_01-02-2025_report.xlsx",
		"Acme_Corp_01-02-2025_data.json",
	}, names)

	rc, err := zr.File[2].Open()
	assert.NoError(t, err)
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	assert.NoError(t, err)

	var snap report.Snapshot
	assert.NoError(t, json.Unmarshal(raw, &snap))
	assert.Equal(t, "Acme  Corp", snap.CustomerName)
	assert.Equal(t, "01-02-2025", snap.ReportDate)
	assert.Equal(t, 2, snap.TotalEmployees)
	assert.Len(t, snap.Documents["E001"]["passportInfo"], 1)
	assert.Contains(t, string(raw), "\n  \"customerName\"")
}

func TestEncodeBundle_FailsWhenAMemberFails(t *testing.T) {
	ds := sampleDataset(t)

	out, err := report.EncodeBundle(ds, report.PDFOptions{FontPath: "/nonexistent/arabic.ttf"})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "bundle pdf")
}
