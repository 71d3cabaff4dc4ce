package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin      = 10.0
	pdfFontSize    = 8.0
	pdfLineHeight  = 4.0
	pdfCellPadding = 1.0
	codeColWidth   = 25.0
	nameColWidth   = 40.0
	minColWidth    = 18.0
	maxColWidth    = 60.0
	identityCols   = 2
	utf8Family     = "report"
	coreFamily     = "Helvetica"
)

// PDFOptions tunes the paginated encoder.
type PDFOptions struct {
	Title string
	// FontPath points at a TTF with Arabic glyphs. Without it the core
	// Helvetica font is used and text is translated to cp1252.
	FontPath string
}

// DocumentMeta is the content of the title block on page one.
type DocumentMeta struct {
	CustomerName  string
	DateStamp     string
	EmployeeCount int
	// Created fixes the PDF creation date so identical inputs give identical bytes.
	Created time.Time
}

type pdfWriter struct {
	pdf    *fpdf.Fpdf
	family string
	utf8   bool
	tr     func(string) string
}

// EncodeDocument renders the table on landscape A4 pages. Columns that do
// not fit the page width continue on following pages, each group repeating
// the employee code and name columns.
func EncodeDocument(meta DocumentMeta, t Table, opts PDFOptions) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render pdf: %v", r)
		}
	}()

	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(meta.Created)
	pdf.SetModificationDate(meta.Created)

	w := &pdfWriter{pdf: pdf, family: coreFamily, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if opts.FontPath != "" {
		pdf.AddUTF8Font(utf8Family, "", opts.FontPath)
		pdf.AddUTF8Font(utf8Family, "B", opts.FontPath)
		w.family, w.utf8 = utf8Family, true
		w.tr = func(s string) string { return s }
	}
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator(opts.Title, true)

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() <= 1 {
			return
		}
		pdf.SetFont(w.family, "B", 10)
		pdf.CellFormat(0, 8, w.tr(fmt.Sprintf("%s - %s (Page %d)", opts.Title, meta.CustomerName, pdf.PageNo())), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	})

	pdf.AddPage()
	w.titleBlock(opts.Title, meta)

	pdf.SetFont(w.family, "", pdfFontSize)
	widths := w.columnWidths(t)
	for i, group := range groupColumns(widths, w.usableWidth()) {
		if i > 0 {
			pdf.AddPage()
			pdf.SetFont(w.family, "", pdfFontSize)
		}
		w.table(t, group, widths)
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *pdfWriter) titleBlock(title string, meta DocumentMeta) {
	pdf := w.pdf
	pdf.SetFont(w.family, "B", 20)
	pdf.CellFormat(0, 12, w.tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont(w.family, "", 12)
	pdf.CellFormat(0, 7, w.tr("Customer: "+meta.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, w.tr("Date: "+meta.DateStamp), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, w.tr("Total Employees: "+strconv.Itoa(meta.EmployeeCount)), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (w *pdfWriter) usableWidth() float64 {
	pageW, _ := w.pdf.GetPageSize()
	return pageW - 2*pdfMargin
}

// columnWidths fits every data column to its widest cell, clamped.
// The identity columns keep fixed widths.
func (w *pdfWriter) columnWidths(t Table) []float64 {
	widths := make([]float64, len(t.Headers))
	for j, h := range t.Headers {
		switch j {
		case 0:
			widths[j] = codeColWidth
			continue
		case 1:
			widths[j] = nameColWidth
			continue
		}
		widest := w.pdf.GetStringWidth(w.tr(h))
		for _, row := range t.Rows {
			if j < len(row) {
				if sw := w.pdf.GetStringWidth(w.tr(row[j])); sw > widest {
					widest = sw
				}
			}
		}
		widest += 2 * pdfCellPadding
		if widest < minColWidth {
			widest = minColWidth
		}
		if widest > maxColWidth {
			widest = maxColWidth
		}
		widths[j] = widest
	}
	return widths
}

// groupColumns packs data columns left to right into page-wide groups,
// each prefixed with the identity columns.
func groupColumns(widths []float64, usable float64) [][]int {
	if len(widths) <= identityCols {
		ids := make([]int, len(widths))
		for i := range ids {
			ids[i] = i
		}
		return [][]int{ids}
	}

	identity := 0.0
	for i := 0; i < identityCols; i++ {
		identity += widths[i]
	}

	var groups [][]int
	current := []int{0, 1}
	used := identity
	for j := identityCols; j < len(widths); j++ {
		if used+widths[j] > usable && len(current) > identityCols {
			groups = append(groups, current)
			current = []int{0, 1}
			used = identity
		}
		current = append(current, j)
		used += widths[j]
	}
	return append(groups, current)
}

func (w *pdfWriter) table(t Table, cols []int, widths []float64) {
	w.drawRow(w.cellLines(t.Headers, cols, widths), cols, widths, true)
	fresh := true
	for _, r := range t.Rows {
		lines := w.cellLines(r, cols, widths)
		for {
			fit := w.linesThatFit()
			if maxLines(lines) <= fit {
				w.drawRow(lines, cols, widths, false)
				break
			}
			if !fresh {
				w.newTablePage(t.Headers, cols, widths)
				fresh = true
				continue
			}
			// Taller than a whole page: draw what fits and carry the rest over.
			var head [][]string
			head, lines = splitLines(lines, fit)
			w.drawRow(head, cols, widths, false)
			w.newTablePage(t.Headers, cols, widths)
		}
		fresh = false
	}
}

func (w *pdfWriter) newTablePage(headers []string, cols []int, widths []float64) {
	w.pdf.AddPage()
	w.pdf.SetFont(w.family, "", pdfFontSize)
	w.drawRow(w.cellLines(headers, cols, widths), cols, widths, true)
}

// linesThatFit is the number of text lines a row can still hold on this page.
func (w *pdfWriter) linesThatFit() int {
	n := int((w.pageBottom() - w.pdf.GetY() - 2*pdfCellPadding) / pdfLineHeight)
	return max(n, 1)
}

func (w *pdfWriter) pageBottom() float64 {
	_, pageH := w.pdf.GetPageSize()
	return pageH - pdfMargin
}

func (w *pdfWriter) lines(s string, width float64) []string {
	s = w.tr(s)
	inner := width - 2*pdfCellPadding
	if w.utf8 {
		if out := w.pdf.SplitText(s, inner); len(out) > 0 {
			return out
		}
		return []string{""}
	}
	raw := w.pdf.SplitLines([]byte(s), inner)
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		out = append(out, string(l))
	}
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}

// cellLines wraps every cell of the group; out[k] belongs to cols[k].
func (w *pdfWriter) cellLines(cells []string, cols []int, widths []float64) [][]string {
	out := make([][]string, len(cols))
	for k, j := range cols {
		text := ""
		if j < len(cells) {
			text = cells[j]
		}
		out[k] = w.lines(text, widths[j])
	}
	return out
}

func maxLines(lines [][]string) int {
	n := 1
	for _, l := range lines {
		n = max(n, len(l))
	}
	return n
}

// splitLines cuts every cell after n lines.
func splitLines(lines [][]string, n int) (head, rest [][]string) {
	head = make([][]string, len(lines))
	rest = make([][]string, len(lines))
	for k, l := range lines {
		cut := min(n, len(l))
		head[k], rest[k] = l[:cut], l[cut:]
	}
	return head, rest
}

func (w *pdfWriter) drawRow(lines [][]string, cols []int, widths []float64, header bool) {
	pdf := w.pdf
	h := float64(maxLines(lines))*pdfLineHeight + 2*pdfCellPadding
	x, y := pdf.GetX(), pdf.GetY()

	style := "D"
	if header {
		pdf.SetFont(w.family, "B", pdfFontSize)
		pdf.SetFillColor(86, 179, 229)
		style = "FD"
	}

	for k, j := range cols {
		cw := widths[j]
		pdf.Rect(x, y, cw, h, style)
		for i, line := range lines[k] {
			pdf.SetXY(x+pdfCellPadding, y+pdfCellPadding+float64(i)*pdfLineHeight)
			pdf.CellFormat(cw-2*pdfCellPadding, pdfLineHeight, line, "", 0, "L", false, 0, "")
		}
		x += cw
	}

	if header {
		pdf.SetFont(w.family, "", pdfFontSize)
	}
	pdf.SetXY(pdfMargin, y+h)
}
