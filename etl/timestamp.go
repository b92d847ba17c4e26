package etl

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrBadTimestamp is returned when a publish timestamp matches none of the
// known layouts and the general-purpose parser fails too.
var ErrBadTimestamp = errors.New("unable to determine timestamp format")

// CanonicalTimeLayout is the single output format for publish timestamps.
const CanonicalTimeLayout = "02-01-2006 15:04:05"

// timeLayouts are tried in order before falling back to dateparse. Go's
// parser accepts an optional fractional second after any seconds field, so
// the ISO layout also covers inputs like 2024-03-11T10:15:30.123Z.
var timeLayouts = []string{
	"2006-01-02T15:04:05Z",
	"01/02/2006 15:04",
	"01/02/2006 15:04:05",
	"02-01-2006 15:04",
	"02-01-2006 15:04:05",
	"2006-01-02 15:04:05",
}

// FormatTimestamp normalizes a raw timestamp string to CanonicalTimeLayout.
// Empty and NaN inputs yield an empty result without error.
func FormatTimestamp(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "nan") {
		return "", nil
	}

	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, input); err == nil {
			return ts.Format(CanonicalTimeLayout), nil
		}
	}

	ts, err := dateparse.ParseAny(input)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadTimestamp, input)
	}
	return ts.Format(CanonicalTimeLayout), nil
}
