package document

import (
	"regexp"
	"strings"
)

// Matcher classifies a free-text warehouse document name.
type Matcher interface {
	Match(documentName string) bool
}

type MatcherFunc func(documentName string) bool

func (f MatcherFunc) Match(documentName string) bool {
	return f(documentName)
}

// Contains matches when the upper-cased name contains any keyword.
func Contains(keywords ...string) Matcher {
	upper := make([]string, len(keywords))
	for i, k := range keywords {
		upper[i] = strings.ToUpper(k)
	}
	return MatcherFunc(func(name string) bool {
		name = strings.ToUpper(name)
		for _, k := range upper {
			if strings.Contains(name, k) {
				return true
			}
		}
		return false
	})
}

// Pattern matches the name against a case-insensitive regular expression.
func Pattern(expr string) Matcher {
	re := regexp.MustCompile("(?i)" + expr)
	return MatcherFunc(re.MatchString)
}
