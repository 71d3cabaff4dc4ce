package fieldmap

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cg-tech-git/pmo-v2/internal/document"
	"github.com/cg-tech-git/pmo-v2/internal/employee"
	fieldmaperrors "github.com/cg-tech-git/pmo-v2/internal/fieldmap/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback is rendered for every value that cannot be resolved.
const Fallback = "N/A"

type Category string

const (
	CategoryPersonal    Category = "personalInfo"
	CategoryEmployment  Category = "employmentInfo"
	CategoryPassport    Category = Category(document.CategoryPassport)
	CategoryVisa        Category = Category(document.CategoryVisa)
	CategoryEmiratesID  Category = Category(document.CategoryEmiratesID)
	CategoryMOL         Category = Category(document.CategoryMOL)
	CategoryCertificate Category = Category(document.CategoryCertificate)
	CategoryInsurance   Category = Category(document.CategoryInsurance)
)

// Order is the fixed column order of categories in every report.
var Order = []Category{
	CategoryPersonal,
	CategoryEmployment,
	CategoryPassport,
	CategoryVisa,
	CategoryEmiratesID,
	CategoryMOL,
	CategoryCertificate,
	CategoryInsurance,
}

type Scope int

const (
	ScopeEmployee Scope = iota
	ScopeDocument
)

// ResolveFunc extracts one display value. doc is nil for employee-scope fields.
type ResolveFunc func(emp employee.Employee, doc *document.Document) string

type Field struct {
	ID      string
	Label   string
	resolve ResolveFunc
}

type categoryDef struct {
	scope   Scope
	matcher document.Matcher
	fields  []Field
	byID    map[string]int
}

// Registry is read-only after construction and safe for concurrent use.
type Registry struct {
	categories map[Category]*categoryDef
}

// Default builds the registry with the warehouse document naming conventions.
func Default() *Registry {
	return NewRegistry(document.DefaultClassifier())
}

// NewRegistry takes the per-category document matchers from classifier.
func NewRegistry(classifier *document.Classifier) *Registry {
	r := &Registry{categories: make(map[Category]*categoryDef, len(Order))}

	r.add(CategoryPersonal, ScopeEmployee, nil, personalFields())
	r.add(CategoryEmployment, ScopeEmployee, nil, employmentFields())
	for _, c := range Order[2:] {
		r.add(c, ScopeDocument, classifier.Matcher(document.Category(c)), documentFields(c))
	}
	return r
}

func (r *Registry) add(c Category, scope Scope, m document.Matcher, fields []Field) {
	def := &categoryDef{scope: scope, matcher: m, fields: fields, byID: make(map[string]int, len(fields))}
	for i, f := range fields {
		def.byID[f.ID] = i
	}
	r.categories[c] = def
}

// Fields lists the fields of c in registry order.
func (r *Registry) Fields(c Category) []Field {
	def, ok := r.categories[c]
	if !ok {
		return nil
	}
	return append([]Field(nil), def.fields...)
}

func (r *Registry) Scope(c Category) Scope {
	if def, ok := r.categories[c]; ok {
		return def.scope
	}
	return ScopeEmployee
}

// Matcher returns the document matcher of a document-scope category.
func (r *Registry) Matcher(c Category) document.Matcher {
	if def, ok := r.categories[c]; ok {
		return def.matcher
	}
	return nil
}

// Label returns the column header for a field. Call Validate first.
func (r *Registry) Label(c Category, fieldID string) string {
	def, ok := r.categories[c]
	if !ok {
		return fieldID
	}
	i, ok := def.byID[fieldID]
	if !ok {
		return fieldID
	}
	return def.fields[i].Label
}

// Validate rejects unknown categories, unknown field ids and duplicates.
func (r *Registry) Validate(sel Selection) error {
	for c, ids := range sel.fields {
		def, ok := r.categories[c]
		if !ok {
			return fieldmaperrors.ErrUnknownCategory.WithDetails(map[string]string{"category": string(c)})
		}
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, ok := def.byID[id]; !ok {
				return fieldmaperrors.ErrUnknownField.WithDetails(map[string]string{"category": string(c), "field": id})
			}
			if _, dup := seen[id]; dup {
				return fieldmaperrors.ErrDuplicateField.WithDetails(map[string]string{"category": string(c), "field": id})
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

// Resolve never fails: unknown fields, a nil document for a document-scope
// category and any panic inside a mapping all yield Fallback.
func (r *Registry) Resolve(c Category, fieldID string, emp employee.Employee, doc *document.Document) (out string) {
	def, ok := r.categories[c]
	if !ok {
		return Fallback
	}
	i, ok := def.byID[fieldID]
	if !ok {
		return Fallback
	}
	if def.scope == ScopeDocument && doc == nil {
		return Fallback
	}

	defer func() {
		if recover() != nil {
			out = Fallback
		}
	}()
	return orFallback(def.fields[i].resolve(emp, doc))
}

func orFallback(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == document.PendingNumber {
		return Fallback
	}
	return v
}

func personalFields() []Field {
	return []Field{
		{ID: "first-name", Label: "First Name", resolve: func(e employee.Employee, _ *document.Document) string {
			return ParseName(e.Name).First
		}},
		{ID: "second-name", Label: "Second Name", resolve: func(e employee.Employee, _ *document.Document) string {
			return ParseName(e.Name).Second
		}},
		{ID: "last-name", Label: "Last Name", resolve: func(e employee.Employee, _ *document.Document) string {
			return ParseName(e.Name).Last
		}},
		{ID: "full-name-english", Label: "Full Name English", resolve: func(e employee.Employee, _ *document.Document) string {
			return e.Name
		}},
		{ID: "full-name-arabic", Label: "Full Name Arabic", resolve: func(e employee.Employee, _ *document.Document) string {
			return Transliterate(e.Name)
		}},
		{ID: "date-of-birth", Label: "Date of Birth", resolve: func(e employee.Employee, _ *document.Document) string {
			return e.BirthDate
		}},
		{ID: "place-of-birth", Label: "Place Of Birth", resolve: noSource},
		{ID: "nationality", Label: "Nationality", resolve: func(e employee.Employee, _ *document.Document) string {
			return e.Nationality
		}},
		{ID: "gender", Label: "Gender", resolve: func(e employee.Employee, _ *document.Document) string {
			return e.Gender
		}},
		{ID: "language", Label: "Language", resolve: noSource},
		{ID: "photo", Label: "Photo", resolve: noSource},
	}
}

func employmentFields() []Field {
	return []Field{
		{ID: "employee-id", Label: "Employee ID", resolve: func(e employee.Employee, _ *document.Document) string {
			return e.Code
		}},
		{ID: "job-title", Label: "Job Title", resolve: func(e employee.Employee, _ *document.Document) string {
			return e.Designation
		}},
		{ID: "department", Label: "Department", resolve: func(e employee.Employee, _ *document.Document) string {
			return e.Department
		}},
		{ID: "date-of-joining", Label: "Date of Joining", resolve: func(e employee.Employee, _ *document.Document) string {
			return e.DateOfJoining
		}},
		{ID: "contact-no", Label: "Contact No", resolve: func(e employee.Employee, _ *document.Document) string {
			return e.MobileNo
		}},
		{ID: "residence-location", Label: "Residence Location", resolve: residence},
	}
}

// documentFields builds the number/issue/expiry trio shared by most document categories.
func documentFields(c Category) []Field {
	switch c {
	case CategoryPassport:
		return []Field{
			{ID: "passport-no", Label: "Passport Number", resolve: docNumber},
			{ID: "passport-issue-country", Label: "Passport Issue Country", resolve: func(e employee.Employee, _ *document.Document) string {
				return e.Nationality
			}},
			{ID: "passport-issue-date", Label: "Passport Issue Date", resolve: docIssued},
			{ID: "passport-expiry-date", Label: "Passport Expiry Date", resolve: docExpires},
		}
	case CategoryVisa:
		return []Field{
			{ID: "visa-no", Label: "Visa Number", resolve: docNumber},
			{ID: "visa-issue-place", Label: "Visa Issue Place", resolve: func(_ employee.Employee, d *document.Document) string {
				return VisaIssuePlace(d.VisaType)
			}},
			{ID: "visa-issue-date", Label: "Visa Issue Date", resolve: docIssued},
			{ID: "visa-expiry-date", Label: "Visa Expiry Date", resolve: docExpires},
		}
	case CategoryEmiratesID:
		return []Field{
			{ID: "emirates-id-no", Label: "Emirates ID Number", resolve: docNumber},
			{ID: "emirates-id-issue-date", Label: "Emirates ID Issue Date", resolve: docIssued},
			{ID: "emirates-id-expiry-date", Label: "Emirates ID Expiry Date", resolve: docExpires},
		}
	case CategoryMOL:
		return []Field{
			{ID: "mol-number", Label: "MOL Number", resolve: docNumber},
			{ID: "mol-issue-date", Label: "MOL Issue Date", resolve: docIssued},
			{ID: "mol-expiry-date", Label: "MOL Expiry Date", resolve: docExpires},
		}
	case CategoryCertificate:
		return []Field{
			{ID: "certificate-type", Label: "Certificate Type", resolve: func(_ employee.Employee, d *document.Document) string {
				return d.Name
			}},
			{ID: "certificate-no", Label: "Certificate No", resolve: docNumber},
			{ID: "certificate-start-date", Label: "Certificate Start Date", resolve: docIssued},
			{ID: "certificate-expiry-date", Label: "Certificate Expiry Date", resolve: docExpires},
		}
	case CategoryInsurance:
		return []Field{
			{ID: "insurance-type", Label: "Insurance Type", resolve: func(_ employee.Employee, d *document.Document) string {
				return InsuranceType(d.Name)
			}},
			{ID: "insurance-issue-date", Label: "Insurance Issue Date", resolve: docIssued},
			{ID: "insurance-expiry-date", Label: "Insurance Expiry Date", resolve: docExpires},
		}
	}
	panic(fmt.Sprintf("fieldmap: no fields for category %q", c))
}

func noSource(employee.Employee, *document.Document) string { return Fallback }

func docNumber(_ employee.Employee, d *document.Document) string  { return d.Number }
func docIssued(_ employee.Employee, d *document.Document) string  { return d.EntryDate }
func docExpires(_ employee.Employee, d *document.Document) string { return d.DueDate }

func residence(e employee.Employee, _ *document.Document) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{e.Address1, e.Address2, e.Address3, e.Address4} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

var emirateCode = regexp.MustCompile(`(?i)\b(DXB|AUH|SHJ|AJM|RAK|FUJ|UAQ)\b`)

// VisaIssuePlace reads the issuing emirate from a visa sub-type such as
// "EMPLOYMENT VISA - DXB".
func VisaIssuePlace(visaType string) string {
	if strings.TrimSpace(visaType) == "" {
		return Fallback
	}
	if i := strings.LastIndex(visaType, " - "); i >= 0 {
		if place := strings.TrimSpace(visaType[i+3:]); place != "" {
			return place
		}
	}
	if m := emirateCode.FindString(visaType); m != "" {
		return strings.ToUpper(m)
	}
	return visaType
}

var insuranceSuffix = regexp.MustCompile(`(?i)(CARD|CERTIFICATE)$`)

// InsuranceType turns "HEALTH INSURANCE CARD" into "Health Insurance".
func InsuranceType(documentName string) string {
	name := strings.TrimSpace(insuranceSuffix.ReplaceAllString(strings.TrimSpace(documentName), ""))
	if name == "" {
		return Fallback
	}
	return cases.Title(language.English).String(strings.ToLower(name))
}
