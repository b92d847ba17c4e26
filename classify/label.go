package classify

import (
	"context"
	"fmt"
	"strings"
)

// LabelTriple is the theme hierarchy predicted for one message.
type LabelTriple struct {
	Theme    string
	Subtheme string
	// Subsubtheme stays empty when a keyword rule supplied the label.
	Subsubtheme string
}

// Classifier predicts a label triple for a cleaned message. Implementations
// (local model, remote API) are interchangeable behind this interface.
type Classifier interface {
	Predict(ctx context.Context, text string) (LabelTriple, error)
}

const labelDelimiter = "||"

// ParseLabel splits a raw model label into its three segments. Anything other
// than exactly three parts is malformed and fails the batch.
func ParseLabel(raw string) (LabelTriple, error) {
	parts := strings.Split(strings.TrimSpace(raw), labelDelimiter)
	if len(parts) != 3 {
		return LabelTriple{}, fmt.Errorf("malformed label %q: want 3 segments, got %d", raw, len(parts))
	}
	return LabelTriple{
		Theme:       strings.TrimSpace(parts[0]),
		Subtheme:    strings.TrimSpace(parts[1]),
		Subsubtheme: strings.TrimSpace(parts[2]),
	}, nil
}
