package report

import (
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
)

func TestGroupColumns(t *testing.T) {
	t.Run("identity only", func(t *testing.T) {
		assert.Equal(t, [][]int{{0, 1}}, groupColumns([]float64{25, 40}, 277))
	})

	t.Run("fits on one page", func(t *testing.T) {
		assert.Equal(t, [][]int{{0, 1, 2, 3}}, groupColumns([]float64{25, 40, 30, 30}, 277))
	})

	t.Run("overflow repeats identity columns", func(t *testing.T) {
		widths := []float64{25, 40, 60, 60, 60, 60, 60}

		groups := groupColumns(widths, 277)

		assert.Equal(t, [][]int{{0, 1, 2, 3, 4}, {0, 1, 5, 6}}, groups)
	})
}

func TestSplitLines(t *testing.T) {
	lines := [][]string{{"a", "b", "c"}, {"x"}}

	head, rest := splitLines(lines, 2)

	assert.Equal(t, [][]string{{"a", "b"}, {"x"}}, head)
	assert.Equal(t, [][]string{{"c"}, {}}, rest)
	assert.Equal(t, 3, maxLines(lines))
	assert.Equal(t, 1, maxLines(rest[1:]))
}

func TestTable_RowTallerThanPageContinues(t *testing.T) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	w := &pdfWriter{pdf: pdf, family: coreFamily, tr: func(s string) string { return s }}
	pdf.AddPage()
	pdf.SetFont(w.family, "", pdfFontSize)

	long := strings.Repeat("remark ", 2000)
	table := Table{
		Headers: []string{"Employee Code", "Employee Name", "Remarks"},
		Rows:    [][]string{{"E001", "Jane Doe", long}, {"E002", "John Roe", "short"}},
	}
	widths := []float64{25, 40, 60}
	total := len(w.lines(long, widths[2]))

	w.table(table, []int{0, 1, 2}, widths)

	assert.NoError(t, pdf.Error())
	assert.Greater(t, total, w.linesThatFit()*2, "fixture must span several pages")
	assert.GreaterOrEqual(t, pdf.PageNo(), 3)
	assert.LessOrEqual(t, pdf.GetY(), w.pageBottom())
}
