package report

import (
	"strings"
	"unicode"

	"github.com/cg-tech-git/pmo-v2/internal/document"
	"github.com/cg-tech-git/pmo-v2/internal/employee"
	"github.com/cg-tech-git/pmo-v2/internal/fieldmap"
)

const (
	HeaderEmployeeCode = "Employee Code"
	HeaderEmployeeName = "Employee Name"
)

// Projector flattens employees and their documents into a Table.
type Projector struct {
	registry *fieldmap.Registry
}

func NewProjector(registry *fieldmap.Registry) *Projector {
	return &Projector{registry: registry}
}

type column struct {
	category fieldmap.Category
	fieldID  string
}

// Project emits one row per employee in input order. Columns follow
// fieldmap.Order, then the selection order inside each category.
func (p *Projector) Project(
	employees []employee.Employee,
	documents map[string]document.Grouped,
	sel fieldmap.Selection,
) (Table, error) {
	if err := p.registry.Validate(sel); err != nil {
		return Table{}, err
	}

	cols := make([]column, 0, sel.Count())
	headers := make([]string, 0, 2+sel.Count())
	headers = append(headers, HeaderEmployeeCode, HeaderEmployeeName)
	for _, c := range fieldmap.Order {
		for _, id := range sel.Fields(c) {
			cols = append(cols, column{category: c, fieldID: id})
			headers = append(headers, p.registry.Label(c, id))
		}
	}

	rows := make([][]string, 0, len(employees))
	for _, emp := range employees {
		picked := p.pickDocuments(documents[emp.Code], sel)

		row := make([]string, 0, len(headers))
		row = append(row, cellText(emp.Code), cellText(emp.Name))
		for _, col := range cols {
			var doc *document.Document
			if p.registry.Scope(col.category) == fieldmap.ScopeDocument {
				doc = picked[col.category]
			}
			row = append(row, cellText(p.registry.Resolve(col.category, col.fieldID, emp, doc)))
		}
		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows}, nil
}

// pickDocuments disambiguates once per selected document category.
func (p *Projector) pickDocuments(grouped document.Grouped, sel fieldmap.Selection) map[fieldmap.Category]*document.Document {
	out := make(map[fieldmap.Category]*document.Document)
	for _, c := range fieldmap.Order {
		if !sel.Has(c) || p.registry.Scope(c) != fieldmap.ScopeDocument {
			continue
		}
		if best, ok := document.PickBest(grouped[document.Category(c)], p.registry.Matcher(c)); ok {
			out[c] = &best
		}
	}
	return out
}

// cellText keeps a warehouse value representable in every encoder: invalid
// UTF-8 becomes U+FFFD and control characters other than tab and newline
// are dropped.
func cellText(v string) string {
	v = strings.ToValidUTF8(v, "\uFFFD")
	v = strings.Map(func(r rune) rune {
		if r != '\t' && r != '\n' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, v)
	return orFallback(v)
}

func orFallback(v string) string {
	if v == "" {
		return fieldmap.Fallback
	}
	return v
}
