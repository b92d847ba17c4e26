package schema

import "errors"

// ErrUnknownSource is returned when no known format's required fields are all
// present in the input columns.
var ErrUnknownSource = errors.New("unable to determine the source file")

// Detect matches a table's column set against the known formats in priority
// order. Every required field must be present; there is no fuzzy matching.
func (r *Registry) Detect(columns []string) (Source, error) {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	for _, f := range r.Formats {
		matched := true
		for _, field := range f.RequiredFields {
			if !present[field] {
				matched = false
				break
			}
		}
		if matched {
			return f.Source, nil
		}
	}
	return "", ErrUnknownSource
}
