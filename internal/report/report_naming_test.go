package report_test

import (
	"fmt"
	"testing"

	"github.com/cg-tech-git/pmo-v2/internal/report"
	reporterrors "github.com/cg-tech-git/pmo-v2/internal/report/errors"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCustomer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "collapses whitespace", in: "  Acme \t Corp  ", want: "Acme_Corp"},
		{name: "collapses no-break space", in: "Acme\u00a0Corp", want: "Acme_Corp"},
		{name: "collapses mixed unicode spaces", in: "Acme \u00a0\u2003 Corp\u3000", want: "Acme_Corp"},
		{name: "replaces separators", in: `A/B\C`, want: "A-B-C"},
		{name: "normalizes to NFC", in: "Cafe\u0301", want: "Caf\u00e9"},
		{name: "blank", in: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.SanitizeCustomer(tt.in))
		})
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "Acme_Corp_01-02-2025", report.BaseName(" Acme Corp", reportDate))
}

func TestResolveName(t *testing.T) {
	t.Run("unicode spaced customer collides with plain spaced one", func(t *testing.T) {
		existing := report.NewNameSet(report.BaseName("Acme Corp", reportDate) + ".xlsx")

		name, err := report.ResolveName(report.BaseName("Acme\u00a0Corp", reportDate), ".xlsx", existing)

		assert.NoError(t, err)
		assert.Equal(t, "Acme_Corp_01-02-2025_(1).xlsx", name)
	})

	t.Run("free name is kept", func(t *testing.T) {
		name, err := report.ResolveName("Acme_01-02-2025", ".pdf", report.NewNameSet())

		assert.NoError(t, err)
		assert.Equal(t, "Acme_01-02-2025.pdf", name)
	})

	t.Run("suffixes count up", func(t *testing.T) {
		taken := report.NewNameSet("Acme_01-02-2025.pdf")

		first, err := report.ResolveName("Acme_01-02-2025", ".pdf", taken)
		assert.NoError(t, err)
		taken.Add(first)
		second, err := report.ResolveName("Acme_01-02-2025", ".pdf", taken)
		assert.NoError(t, err)

		assert.Equal(t, "Acme_01-02-2025_(1).pdf", first)
		assert.Equal(t, "Acme_01-02-2025_(2).pdf", second)
	})

	t.Run("other extensions do not collide", func(t *testing.T) {
		name, err := report.ResolveName("Acme_01-02-2025", ".xlsx", report.NewNameSet("Acme_01-02-2025.pdf"))

		assert.NoError(t, err)
		assert.Equal(t, "Acme_01-02-2025.xlsx", name)
	})

	t.Run("exhausted", func(t *testing.T) {
		taken := report.NewNameSet("A.pdf")
		for n := 1; n < 1000; n++ {
			taken.Add(fmt.Sprintf("A_(%d).pdf", n))
		}

		_, err := report.ResolveName("A", ".pdf", taken)

		assert.ErrorIs(t, err, reporterrors.ErrNamingExhausted)
	})
}
