package document

import "sort"

// Category keys double as the keys of the grouped JSON snapshot.
type Category string

const (
	CategoryPassport    Category = "passportInfo"
	CategoryVisa        Category = "visaInfo"
	CategoryEmiratesID  Category = "eidInfo"
	CategoryMOL         Category = "molInfo"
	CategoryCertificate Category = "certificateInfo"
	CategoryInsurance   Category = "insuranceInfo"
)

// Grouped holds warehouse documents bucketed by category, warehouse order preserved.
type Grouped map[Category][]Document

type Rule struct {
	Category Category
	Matcher  Matcher
}

// Classifier assigns each document to the first rule that matches it.
type Classifier struct {
	rules []Rule
}

func NewClassifier(rules ...Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// DefaultClassifier returns the warehouse naming conventions, most specific first.
func DefaultClassifier() *Classifier {
	return NewClassifier(
		Rule{Category: CategoryPassport, Matcher: Contains("PASSPORT")},
		Rule{Category: CategoryVisa, Matcher: Contains("VISA")},
		Rule{Category: CategoryEmiratesID, Matcher: Contains("EMIRATES")},
		Rule{Category: CategoryMOL, Matcher: Pattern(`MOL|LABOR|LABOUR`)},
		Rule{Category: CategoryCertificate, Matcher: Pattern(`CERTIFICATE|LICENSE`)},
		Rule{Category: CategoryInsurance, Matcher: Pattern(`INSURANCE|MEDICAL|HEALTH`)},
	)
}

// Matcher returns the matcher registered for category, or nil.
func (c *Classifier) Matcher(category Category) Matcher {
	for _, r := range c.rules {
		if r.Category == category {
			return r.Matcher
		}
	}
	return nil
}

// Group classifies every document once. Unmatched documents are dropped.
func (c *Classifier) Group(docs []Document) Grouped {
	out := make(Grouped)
	for _, d := range docs {
		for _, r := range c.rules {
			if r.Matcher.Match(d.Name) {
				out[r.Category] = append(out[r.Category], d)
				break
			}
		}
	}
	return out
}

// ByEmployee splits grouped documents per owning employee code.
func (g Grouped) ByEmployee() map[string]Grouped {
	out := make(map[string]Grouped)
	for category, docs := range g {
		for _, d := range docs {
			perEmployee, ok := out[d.EmployeeCode]
			if !ok {
				perEmployee = make(Grouped)
				out[d.EmployeeCode] = perEmployee
			}
			perEmployee[category] = append(perEmployee[category], d)
		}
	}
	return out
}

// PickBest returns the most complete document matching m.
// Documents with a real number come first; otherwise input order is kept.
// Two issued documents are not compared by date.
func PickBest(docs []Document, m Matcher) (Document, bool) {
	candidates := make([]Document, 0, len(docs))
	for _, d := range docs {
		if m == nil || m.Match(d.Name) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return Document{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].HasNumber() && !candidates[j].HasNumber()
	})
	return candidates[0], true
}
