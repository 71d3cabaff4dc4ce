package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zip"
)

// BundleEntries lists the archive members for base, in write order.
func BundleEntries(base string) []string {
	return []string{
		base + "_report.pdf",
		base + "_report.xlsx",
		base + "_data.json",
	}
}

// bundlePart is one archive member that failed to render.
type bundlePart struct {
	name string
	err  error
}

func (p *bundlePart) Error() string {
	return fmt.Sprintf("bundle %s: %v", p.name, p.err)
}

func (p *bundlePart) Unwrap() error { return p.err }

// EncodeBundle zips the PDF, the spreadsheet and a JSON snapshot of the
// same data. Any member failing fails the whole bundle.
func EncodeBundle(d *Dataset, opts PDFOptions) ([]byte, error) {
	pdfBytes, err := EncodeDocument(d.documentMeta(), d.Table, opts)
	if err != nil {
		return nil, &bundlePart{name: "pdf", err: err}
	}
	xlsxBytes, err := EncodeSpreadsheet(d.spreadsheetMeta(opts.Title), d.Table)
	if err != nil {
		return nil, &bundlePart{name: "xlsx", err: err}
	}
	jsonBytes, err := json.MarshalIndent(d.Snapshot(), "", "  ")
	if err != nil {
		return nil, &bundlePart{name: "json", err: err}
	}

	names := BundleEntries(d.BaseName)
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, body := range [][]byte{pdfBytes, xlsxBytes, jsonBytes} {
		if err := writeEntry(zw, names[i], body, d.ReportDate); err != nil {
			return nil, &bundlePart{name: names[i], err: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeEntry(zw *zip.Writer, name string, body []byte, modified time.Time) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: modified,
	})
	if err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

func (d *Dataset) documentMeta() DocumentMeta {
	return DocumentMeta{
		CustomerName:  d.CustomerName,
		DateStamp:     d.DateStamp,
		EmployeeCount: len(d.Employees),
		Created:       d.ReportDate,
	}
}

func (d *Dataset) spreadsheetMeta(title string) SpreadsheetMeta {
	return SpreadsheetMeta{
		Title:         title,
		CustomerName:  d.CustomerName,
		DateStamp:     d.DateStamp,
		EmployeeCount: len(d.Employees),
	}
}
