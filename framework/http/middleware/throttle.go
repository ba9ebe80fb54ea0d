package middleware

import (
	"fmt"
	"net/http"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	gohttp "github.com/km-arc/go-curp/framework/http"
)

// DefaultThrottleClients bounds how many per-client limiters are kept.
const DefaultThrottleClients = 4096

// Throttler hands out one token bucket per client address. Limiters for
// clients that have gone quiet are evicted least-recently-used first.
type Throttler struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
}

// NewThrottler creates a Throttler allowing rps requests per second with the
// given burst per client. clients bounds the limiter cache.
func NewThrottler(rps float64, burst, clients int) (*Throttler, error) {
	if rps <= 0 {
		return nil, fmt.Errorf("throttle: rps must be positive, got %v", rps)
	}
	if burst < 1 {
		return nil, fmt.Errorf("throttle: burst must be at least 1, got %d", burst)
	}
	if clients <= 0 {
		clients = DefaultThrottleClients
	}
	cache, err := lru.New[string, *rate.Limiter](clients)
	if err != nil {
		return nil, err
	}
	return &Throttler{limit: rate.Limit(rps), burst: burst, limiters: cache}, nil
}

// Allow reports whether client may make a request now.
func (t *Throttler) Allow(client string) bool {
	return t.limiter(client).Allow()
}

func (t *Throttler) limiter(client string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()
	if l, ok := t.limiters.Get(client); ok {
		return l
	}
	l := rate.NewLimiter(t.limit, t.burst)
	t.limiters.Add(client, l)
	return l
}

// Handler rejects requests over the client's budget with 429.
func (t *Throttler) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !t.Allow(gohttp.NewRequest(r).IP()) {
			gohttp.NewResponse(w).TooManyRequests()
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Throttle returns throttling middleware, or a pass-through when rps is 0.
func Throttle(rps float64, burst int) (func(http.Handler) http.Handler, error) {
	if rps == 0 {
		return func(next http.Handler) http.Handler { return next }, nil
	}
	t, err := NewThrottler(rps, burst, DefaultThrottleClients)
	if err != nil {
		return nil, err
	}
	return t.Handler, nil
}

