package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownKind = errors.New("unknown event kind")

// Kind tells how an event's Value is applied to the counter.
type Kind string

const (
	// KindSet adopts Value as the absolute counter value.
	KindSet Kind = "set"
	// KindChange adds Value (a signed delta) to the counter.
	KindChange Kind = "change"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSet, KindChange:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

func (k Kind) String() string { return string(k) }

// Event is one immutable entry of a statistic's append-only log.
type Event struct {
	ID           uuid.UUID
	StatisticKey string
	Kind         Kind
	Value        int64
	Timestamp    time.Time

	// Seq is assigned by the store on append and orders events
	// that share a timestamp (oldest first).
	Seq int64
}

func (e Event) IsSet() bool    { return e.Kind == KindSet }
func (e Event) IsChange() bool { return e.Kind == KindChange }
