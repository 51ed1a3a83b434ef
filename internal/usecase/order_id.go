package usecase

import (
	"strconv"
	"sync"
	"time"
)

// orderIDGenerator issues millisecond timestamps as ids, bumping by one when the clock
// has not advanced so two orders created in the same millisecond never collide in-process.
type orderIDGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *orderIDGenerator) next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := now.UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
