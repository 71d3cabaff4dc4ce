package report

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	DetailSheet  = "Employee Details"

	minColumnWidth = 10
	maxColumnWidth = 50
)

// SpreadsheetMeta is the content of the Summary sheet.
type SpreadsheetMeta struct {
	Title         string
	CustomerName  string
	DateStamp     string
	EmployeeCount int
}

// EncodeSpreadsheet writes a Summary sheet and an Employee Details sheet
// holding the table verbatim, every cell as a string.
func EncodeSpreadsheet(meta SpreadsheetMeta, t Table) (out []byte, err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if meta.Title == "" {
		meta.Title = DefaultTitle
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, err
	}
	summary := [][]string{
		{meta.Title},
		{},
		{"Customer:", meta.CustomerName},
		{"Date:", meta.DateStamp},
		{"Total Employees:", strconv.Itoa(meta.EmployeeCount)},
	}
	if err := writeRows(f, SummarySheet, summary); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "A1", bold); err != nil {
		return nil, err
	}
	if err := fitColumns(f, SummarySheet, summary); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(DetailSheet); err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(t.Rows)+1)
	rows = append(rows, t.Headers)
	rows = append(rows, t.Rows...)
	if err := writeRows(f, DetailSheet, rows); err != nil {
		return nil, err
	}
	if len(t.Headers) > 0 {
		last, err := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(DetailSheet, "A1", last, bold); err != nil {
			return nil, err
		}
	}
	if err := f.SetPanes(DetailSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}
	if err := fitColumns(f, DetailSheet, rows); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadDetailTable parses the Employee Details sheet back into a Table.
func ReadDetailTable(f *excelize.File) (Table, error) {
	rows, err := f.GetRows(DetailSheet)
	if err != nil {
		return Table{}, err
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("sheet %q is empty", DetailSheet)
	}
	return Table{Headers: rows[0], Rows: rows[1:]}, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]string) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func fitColumns(f *excelize.File, sheet string, rows [][]string) error {
	widths := map[int]int{}
	for _, row := range rows {
		for j, v := range row {
			if n := utf8.RuneCountInString(v); n > widths[j] {
				widths[j] = n
			}
		}
	}
	for j, w := range widths {
		w += 2
		if w < minColumnWidth {
			w = minColumnWidth
		}
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, float64(w)); err != nil {
			return err
		}
	}
	return nil
}
