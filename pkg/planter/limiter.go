package planter

import (
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiters throttles writes per client (sensor device id or remote
// address). Every client gets its own token bucket on first use.
type ClientLimiters struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewClientLimiters(r rate.Limit, burst int) *ClientLimiters {
	return &ClientLimiters{
		limiters: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    burst,
	}
}

func (s *ClientLimiters) GetLimiter(clientID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[clientID]
	if !exists {
		limiter = rate.NewLimiter(s.rate, s.burst)
		s.limiters[clientID] = limiter
	}
	return limiter
}

// Allow is true when a nil store is used, so limiting stays optional.
func (s *ClientLimiters) Allow(clientID string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(clientID).Allow()
}

func (s *ClientLimiters) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}
