package fieldmap

import "strings"

// Name is a whitespace decomposition of a full name.
type Name struct {
	First  string
	Second string
	Last   string
	Full   string
}

// ParseName splits on whitespace runs. Every token between the first and the
// last becomes the second name, so "Cher" has no second or last name.
func ParseName(full string) Name {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return Name{First: Fallback, Second: Fallback, Last: Fallback, Full: Fallback}
	}

	n := Name{First: parts[0], Second: Fallback, Last: Fallback, Full: full}
	if len(parts) > 1 {
		n.Last = parts[len(parts)-1]
	}
	if len(parts) > 2 {
		n.Second = strings.Join(parts[1:len(parts)-1], " ")
	}
	return n
}
