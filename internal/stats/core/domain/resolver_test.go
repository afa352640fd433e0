package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueAt(t *testing.T) {
	t.Run("resolves the value at a given time", func(t *testing.T) {
		var l eventLog
		l.set(3, daysAgo(19))
		l.decrease(1, daysAgo(4))
		l.increase(3, daysAgo(2))
		events := l.sorted()

		assert.Equal(t, int64(0), ValueAt(events, daysAgo(30)))
		assert.Equal(t, int64(3), ValueAt(events, daysAgo(18)))
		assert.Equal(t, int64(5), ValueAt(events, now))
	})

	t.Run("no events resolves to zero", func(t *testing.T) {
		assert.Equal(t, int64(0), ValueAt(nil, now))
	})

	t.Run("changes without a set start from zero", func(t *testing.T) {
		var l eventLog
		l.increase(100, daysAgo(30))
		l.decrease(1, daysAgo(13))

		assert.Equal(t, int64(99), ValueAt(l.sorted(), now))
	})

	t.Run("bound is inclusive", func(t *testing.T) {
		var l eventLog
		l.set(3, daysAgo(2))
		l.increase(2, daysAgo(1))
		events := l.sorted()

		assert.Equal(t, int64(5), ValueAt(events, daysAgo(1)))
		assert.Equal(t, int64(3), ValueBefore(events, daysAgo(1)))
		assert.Equal(t, int64(0), ValueBefore(events, daysAgo(2)))
	})

	t.Run("set discards everything before it", func(t *testing.T) {
		var l eventLog
		l.increase(10, daysAgo(10))
		l.set(1, daysAgo(5))
		l.increase(2, daysAgo(3))
		l.set(7, daysAgo(2))
		l.decrease(3, daysAgo(1))

		events := l.sorted()
		assert.Equal(t, int64(10), ValueAt(events, daysAgo(6)))
		assert.Equal(t, int64(3), ValueAt(events, daysAgo(3)))
		assert.Equal(t, int64(4), ValueAt(events, now))
	})

	t.Run("latest inserted set wins on equal timestamps", func(t *testing.T) {
		var l eventLog
		l.set(1, daysAgo(5))
		l.set(9, daysAgo(5))

		assert.Equal(t, int64(9), ValueAt(l.sorted(), now))
	})

	t.Run("change sharing the set's timestamp is superseded", func(t *testing.T) {
		var l eventLog
		l.set(4, daysAgo(5))
		l.increase(2, daysAgo(5))
		l.increase(1, daysAgo(4))

		assert.Equal(t, int64(5), ValueAt(l.sorted(), now))
	})

	t.Run("backdated inserts follow timestamp order", func(t *testing.T) {
		var l eventLog
		l.set(10, daysAgo(1))
		l.increase(5, daysAgo(3)) // inserted later, happened earlier
		l.set(2, daysAgo(4))      // inserted last, oldest

		events := l.sorted()
		assert.Equal(t, int64(7), ValueAt(events, daysAgo(2)))
		assert.Equal(t, int64(10), ValueAt(events, now))
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		var l eventLog
		l.set(3, daysAgo(19))
		l.decrease(1, daysAgo(4))
		events := l.sorted()

		assert.Equal(t, ValueAt(events, now), ValueAt(events, now))
	})
}
