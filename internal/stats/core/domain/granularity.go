package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedGranularity = errors.New("unsupported granularity")

// Granularity is the calendar unit periods are aligned to.
type Granularity string

const (
	Hour  Granularity = "hour"
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
	Year  Granularity = "year"
)

func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	if err := g.Validate(); err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedGranularity, s)
	}
	return g, nil
}

func (g Granularity) Validate() error {
	switch g {
	case Hour, Day, Week, Month, Year:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedGranularity, string(g))
	}
}

func (g Granularity) String() string { return string(g) }
