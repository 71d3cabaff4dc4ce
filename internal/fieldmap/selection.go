package fieldmap

import "encoding/json"

// Selection is the immutable set of fields a user picked, per category.
// Field order within a category is column order.
type Selection struct {
	fields map[Category][]string
}

// NewSelection copies fields; later changes to the argument do not leak in.
func NewSelection(fields map[Category][]string) Selection {
	cp := make(map[Category][]string, len(fields))
	for c, ids := range fields {
		if len(ids) == 0 {
			continue
		}
		cp[c] = append([]string(nil), ids...)
	}
	return Selection{fields: cp}
}

// Fields returns a copy of the field ids selected for c.
func (s Selection) Fields(c Category) []string {
	return append([]string(nil), s.fields[c]...)
}

// Count is the total number of selected fields over all categories.
func (s Selection) Count() int {
	n := 0
	for _, ids := range s.fields {
		n += len(ids)
	}
	return n
}

func (s Selection) IsEmpty() bool {
	return s.Count() == 0
}

// Has reports whether at least one field of c is selected.
func (s Selection) Has(c Category) bool {
	return len(s.fields[c]) > 0
}

func (s Selection) MarshalJSON() ([]byte, error) {
	if s.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.fields)
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var raw map[Category][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NewSelection(raw)
	return nil
}
