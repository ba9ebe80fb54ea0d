package services

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/km-arc/go-curp/app/metrics"
	"github.com/km-arc/go-curp/curp"
)

// Analyzer runs CURP analyses for the HTTP and console layers, memoizing
// results by normalized input. It is safe for concurrent use.
type Analyzer struct {
	cache   *lru.Cache[string, curp.Result]
	size    int
	metrics *metrics.Metrics
}

// NewAnalyzer creates an Analyzer remembering up to cacheSize results.
// A cacheSize of 0 disables memoization; m may be nil.
func NewAnalyzer(cacheSize int, m *metrics.Metrics) (*Analyzer, error) {
	if cacheSize < 0 {
		return nil, fmt.Errorf("analyzer: cache size must not be negative, got %d", cacheSize)
	}
	a := &Analyzer{size: cacheSize, metrics: m}
	if cacheSize > 0 {
		cache, err := lru.New[string, curp.Result](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("analyzer: %w", err)
		}
		a.cache = cache
	}
	return a, nil
}

// Normalize trims surrounding whitespace and uppercases s.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Analyze normalizes input and returns its analysis. Results served from
// the cache are shared and must not be modified.
func (a *Analyzer) Analyze(input string) curp.Result {
	key := Normalize(input)

	if a.cache != nil {
		if res, ok := a.cache.Get(key); ok {
			a.metrics.RecordCacheHit()
			a.metrics.RecordAnalysis(res)
			return res
		}
	}

	res := curp.Analyze(key)
	if a.cache != nil {
		a.cache.Add(key, res)
	}
	a.metrics.RecordAnalysis(res)
	return res
}

// CacheSize returns the configured memo capacity.
func (a *Analyzer) CacheSize() int { return a.size }

// Cached returns how many results are currently memoized.
func (a *Analyzer) Cached() int {
	if a.cache == nil {
		return 0
	}
	return a.cache.Len()
}
