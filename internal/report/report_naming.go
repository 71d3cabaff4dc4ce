package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	reporterrors "github.com/cg-tech-git/pmo-v2/internal/report/errors"

	"golang.org/x/text/unicode/norm"
)

// DateLayout is the DD-MM-YYYY stamp used in file names and report headers.
const DateLayout = "02-01-2006"

const maxNameAttempts = 1000

var (
	whitespaceRun  = regexp.MustCompile(`[\s\p{Zs}]+`)
	pathSeparators = strings.NewReplacer("/", "-", `\`, "-")
)

// SanitizeCustomer makes a customer name safe to embed in a file name.
func SanitizeCustomer(name string) string {
	s := strings.TrimSpace(norm.NFC.String(name))
	s = whitespaceRun.ReplaceAllString(s, "_")
	return pathSeparators.Replace(s)
}

func DateStamp(t time.Time) string {
	return t.Format(DateLayout)
}

// BaseName is the collision-free stem shared by every artifact of a request.
func BaseName(customer string, date time.Time) string {
	return SanitizeCustomer(customer) + "_" + DateStamp(date)
}

// NameSet is the set of names a new artifact must not take.
type NameSet map[string]struct{}

func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// ResolveName returns base+ext, or base_(n)+ext with the smallest free n.
// The caller adds the returned name to existing before resolving the next one.
func ResolveName(base, ext string, existing NameSet) (string, error) {
	name := base + ext
	if !existing.Has(name) {
		return name, nil
	}
	for n := 1; n < maxNameAttempts; n++ {
		name = fmt.Sprintf("%s_(%d)%s", base, n, ext)
		if !existing.Has(name) {
			return name, nil
		}
	}
	return "", reporterrors.ErrNamingExhausted.WithDetails(map[string]string{"name": base + ext})
}
