package home

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore hands out one token bucket per device id. Unknown ids
// lazily get a bucket with the store defaults.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(deviceID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limiter, ok := s.limiters[deviceID]; ok {
		return limiter
	}

	limiter := rate.NewLimiter(s.defaultRate, s.defaultBurst)
	s.limiters[deviceID] = limiter
	return limiter
}

// SetLimiter replaces a device's bucket, dropping any accumulated tokens.
func (s *RateLimiterStore) SetLimiter(deviceID string, deviceRate rate.Limit, deviceBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[deviceID] = rate.NewLimiter(deviceRate, deviceBurst)
}
