package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money fields go on the wire as JSON numbers, as the API docs describe them.
// Decoding still accepts both numbers and quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ParseDate parses an optional YYYY-MM-DD value.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
