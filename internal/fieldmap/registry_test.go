package fieldmap_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/cg-tech-git/pmo-v2/internal/document"
	"github.com/cg-tech-git/pmo-v2/internal/employee"
	"github.com/cg-tech-git/pmo-v2/internal/fieldmap"
	fieldmaperrors "github.com/cg-tech-git/pmo-v2/internal/fieldmap/errors"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Validate(t *testing.T) {
	reg := fieldmap.Default()

	t.Run("valid", func(t *testing.T) {
		sel := fieldmap.NewSelection(map[fieldmap.Category][]string{
			fieldmap.CategoryPersonal: {"full-name-english", "first-name"},
			fieldmap.CategoryPassport: {"passport-no"},
		})
		assert.NoError(t, reg.Validate(sel))
	})

	t.Run("unknown category", func(t *testing.T) {
		sel := fieldmap.NewSelection(map[fieldmap.Category][]string{"bankInfo": {"iban"}})
		assert.True(t, errors.Is(reg.Validate(sel), fieldmaperrors.ErrUnknownCategory))
	})

	t.Run("unknown field", func(t *testing.T) {
		sel := fieldmap.NewSelection(map[fieldmap.Category][]string{fieldmap.CategoryVisa: {"passport-no"}})
		assert.True(t, errors.Is(reg.Validate(sel), fieldmaperrors.ErrUnknownField))
	})

	t.Run("duplicate field", func(t *testing.T) {
		sel := fieldmap.NewSelection(map[fieldmap.Category][]string{fieldmap.CategoryVisa: {"visa-no", "visa-no"}})
		assert.True(t, errors.Is(reg.Validate(sel), fieldmaperrors.ErrDuplicateField))
	})
}

func TestRegistry_ResolveEmployeeScope(t *testing.T) {
	reg := fieldmap.Default()
	emp := employee.Employee{
		Code:        "E001",
		Name:        "Jane Doe",
		Nationality: "Jordan",
		Address1:    "Villa 3",
		Address2:    "  ",
		Address4:    "Dubai",
	}

	assert.Equal(t, "Jane", reg.Resolve(fieldmap.CategoryPersonal, "first-name", emp, nil))
	assert.Equal(t, fieldmap.Fallback, reg.Resolve(fieldmap.CategoryPersonal, "second-name", emp, nil))
	assert.Equal(t, "Jane Doe", reg.Resolve(fieldmap.CategoryPersonal, "full-name-english", emp, nil))
	assert.Equal(t, fieldmap.Transliterate("Jane Doe"), reg.Resolve(fieldmap.CategoryPersonal, "full-name-arabic", emp, nil))
	assert.Equal(t, fieldmap.Fallback, reg.Resolve(fieldmap.CategoryPersonal, "date-of-birth", emp, nil))
	assert.Equal(t, fieldmap.Fallback, reg.Resolve(fieldmap.CategoryPersonal, "photo", emp, nil))
	assert.Equal(t, "Villa 3, Dubai", reg.Resolve(fieldmap.CategoryEmployment, "residence-location", emp, nil))
	assert.Equal(t, "E001", reg.Resolve(fieldmap.CategoryEmployment, "employee-id", emp, nil))
	assert.Equal(t, fieldmap.Fallback, reg.Resolve(fieldmap.CategoryEmployment, "no-such-field", emp, nil))
}

func TestRegistry_ResolveDocumentScope(t *testing.T) {
	reg := fieldmap.Default()
	emp := employee.Employee{Code: "E001", Nationality: "India"}

	t.Run("no document means fallback for every field", func(t *testing.T) {
		for _, f := range reg.Fields(fieldmap.CategoryPassport) {
			assert.Equal(t, fieldmap.Fallback, reg.Resolve(fieldmap.CategoryPassport, f.ID, emp, nil), f.ID)
		}
	})

	t.Run("passport", func(t *testing.T) {
		doc := &document.Document{Name: "PASSPORT", Number: "A1234567", EntryDate: "2019-05-01", DueDate: ""}

		assert.Equal(t, "A1234567", reg.Resolve(fieldmap.CategoryPassport, "passport-no", emp, doc))
		assert.Equal(t, "India", reg.Resolve(fieldmap.CategoryPassport, "passport-issue-country", emp, doc))
		assert.Equal(t, "2019-05-01", reg.Resolve(fieldmap.CategoryPassport, "passport-issue-date", emp, doc))
		assert.Equal(t, fieldmap.Fallback, reg.Resolve(fieldmap.CategoryPassport, "passport-expiry-date", emp, doc))
	})

	t.Run("placeholder number", func(t *testing.T) {
		doc := &document.Document{Name: "EMIRATES ID", Number: document.PendingNumber}
		assert.Equal(t, fieldmap.Fallback, reg.Resolve(fieldmap.CategoryEmiratesID, "emirates-id-no", emp, doc))
	})

	t.Run("certificate and insurance", func(t *testing.T) {
		cert := &document.Document{Name: "FIRST AID CERTIFICATE", Number: "C-9"}
		ins := &document.Document{Name: "HEALTH INSURANCE CARD", EntryDate: "2024-01-01"}

		assert.Equal(t, "FIRST AID CERTIFICATE", reg.Resolve(fieldmap.CategoryCertificate, "certificate-type", emp, cert))
		assert.Equal(t, "Health Insurance", reg.Resolve(fieldmap.CategoryInsurance, "insurance-type", emp, ins))
		assert.Equal(t, "2024-01-01", reg.Resolve(fieldmap.CategoryInsurance, "insurance-issue-date", emp, ins))
	})
}

func TestRegistry_InjectedMatcher(t *testing.T) {
	classifier := document.NewClassifier(
		document.Rule{Category: document.CategoryMOL, Matcher: document.Contains("WORK PERMIT")},
	)
	reg := fieldmap.NewRegistry(classifier)

	assert.True(t, reg.Matcher(fieldmap.CategoryMOL).Match("work permit"))
	assert.Nil(t, reg.Matcher(fieldmap.CategoryPassport))
}

func TestVisaIssuePlace(t *testing.T) {
	assert.Equal(t, "DXB", fieldmap.VisaIssuePlace("EMPLOYMENT VISA - DXB"))
	assert.Equal(t, "Abu Dhabi", fieldmap.VisaIssuePlace("RESIDENCE - VISA - Abu Dhabi"))
	assert.Equal(t, "SHJ", fieldmap.VisaIssuePlace("residence visa shj"))
	assert.Equal(t, "RESIDENCE VISA", fieldmap.VisaIssuePlace("RESIDENCE VISA"))
	assert.Equal(t, fieldmap.Fallback, fieldmap.VisaIssuePlace(""))
	assert.Equal(t, "RESIDENCE VISA DXBX", fieldmap.VisaIssuePlace("RESIDENCE VISA DXBX"))
}

func TestInsuranceType(t *testing.T) {
	assert.Equal(t, "Health Insurance", fieldmap.InsuranceType("HEALTH INSURANCE CARD"))
	assert.Equal(t, "Medical Insurance", fieldmap.InsuranceType("medical insurance certificate"))
	assert.Equal(t, fieldmap.Fallback, fieldmap.InsuranceType("CARD"))
}

func TestSelection(t *testing.T) {
	src := map[fieldmap.Category][]string{fieldmap.CategoryPersonal: {"first-name", "last-name"}}
	sel := fieldmap.NewSelection(src)
	src[fieldmap.CategoryPersonal][0] = "mutated"

	assert.Equal(t, []string{"first-name", "last-name"}, sel.Fields(fieldmap.CategoryPersonal))
	assert.Equal(t, 2, sel.Count())
	assert.True(t, sel.Has(fieldmap.CategoryPersonal))
	assert.False(t, sel.Has(fieldmap.CategoryVisa))

	raw, err := json.Marshal(sel)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"personalInfo":["first-name","last-name"]}`, string(raw))

	var back fieldmap.Selection
	assert.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, sel, back)
	assert.True(t, fieldmap.NewSelection(nil).IsEmpty())
}
