package httpdate

import (
	"time"

	"go.uber.org/atomic"

	"github.com/shapestone/shape-httpdate/internal/cache"
)

// Clock produces the current date for Date headers. The formatted string is
// computed at most once per second and kept in a cache, so a busy server
// formats each second once no matter how many responses it writes.
// A Clock is safe for concurrent use.
type Clock struct {
	now   func() time.Time
	cache *cache.Cache

	last   atomic.Value // *stamp for the most recent second
	hits   atomic.Uint64
	misses atomic.Uint64
}

type stamp struct {
	sec  int64
	date string
}

// ClockStats counts how often Clock found the current second already
// formatted.
type ClockStats struct {
	Hits   uint64
	Misses uint64
}

// NewClock creates a clock reading the time from now, or time.Now if now is
// nil. size bounds the number of seconds cached; size <= 0 uses a default.
// Close the clock when done.
func NewClock(now func() time.Time, size int64) (*Clock, error) {
	if now == nil {
		now = time.Now
	}
	c, err := cache.New(size)
	if err != nil {
		return nil, err
	}
	return &Clock{now: now, cache: c}, nil
}

// String returns the current time as an IMF-fixdate. Times outside the
// representable range are clamped to its ends.
func (c *Clock) String() string {
	sec := c.now().Unix()
	if sec < 0 {
		sec = 0
	} else if sec >= MaxUnix {
		sec = MaxUnix - 1
	}

	if s, ok := c.last.Load().(*stamp); ok && s.sec == sec {
		c.hits.Inc()
		return s.date
	}
	date, ok := c.cache.Get(sec)
	if ok {
		c.hits.Inc()
	} else {
		c.misses.Inc()
		date = FormatUnix(sec)
		c.cache.Set(sec, date)
	}
	c.last.Store(&stamp{sec: sec, date: date})
	return date
}

// Append appends the current time as an IMF-fixdate to buf.
func (c *Clock) Append(buf []byte) []byte {
	return append(buf, c.String()...)
}

// Stats returns the hit and miss counts so far.
func (c *Clock) Stats() ClockStats {
	return ClockStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// Metrics reports the statistics of the underlying cache.
func (c *Clock) Metrics() map[string]interface{} {
	return c.cache.Metrics()
}

// Close releases the clock's cache.
func (c *Clock) Close() {
	c.cache.Close()
}
