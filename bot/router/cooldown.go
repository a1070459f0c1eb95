package router

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxTrackedUsers bounds the limiter map before idle limiters are dropped
const maxTrackedUsers = 10000

// Cooldowns is a per-user token bucket for command invocations
type Cooldowns struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[int64]*rate.Limiter
	now      func() time.Time
}

// NewCooldowns allows perSecond commands per user with the given burst.
// A non-positive rate disables the cooldown.
func NewCooldowns(perSecond float64, burst int) *Cooldowns {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	return &Cooldowns{
		limit:    limit,
		burst:    burst,
		limiters: make(map[int64]*rate.Limiter),
		now:      time.Now,
	}
}

// Allow takes a token for userID. When none is left it reports how long
// until the next one.
func (c *Cooldowns) Allow(userID int64) (bool, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	lim, ok := c.limiters[userID]
	if !ok {
		if len(c.limiters) >= maxTrackedUsers {
			c.prune(now)
		}
		lim = rate.NewLimiter(c.limit, c.burst)
		c.limiters[userID] = lim
	}

	r := lim.ReserveN(now, 1)
	if !r.OK() {
		return false, 0
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// prune drops limiters that have refilled completely
func (c *Cooldowns) prune(now time.Time) {
	for id, lim := range c.limiters {
		if lim.TokensAt(now) >= float64(c.burst) {
			delete(c.limiters, id)
		}
	}
}
