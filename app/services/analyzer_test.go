package services_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-curp/app/metrics"
	"github.com/km-arc/go-curp/app/services"
	"github.com/km-arc/go-curp/curp"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"  gomc800101hdflrs09\n": "GOMC800101HDFLRS09",
		"GOMC800101HDFLRS09":     "GOMC800101HDFLRS09",
		"":                       "",
		" ñ ":                    "Ñ",
		"gomc 800101":            "GOMC 800101",
	}
	for in, want := range tests {
		assert.Equal(t, want, services.Normalize(in), "%q", in)
	}
}

func TestAnalyzer_NormalizesInput(t *testing.T) {
	a, err := services.NewAnalyzer(8, nil)
	require.NoError(t, err)

	res := a.Analyze(" gomc800101hdflrs09 ")
	assert.Equal(t, "GOMC800101HDFLRS09", res.Input)
	assert.True(t, res.IsValid())
	assert.Equal(t, curp.Analyze("GOMC800101HDFLRS09"), res)
}

func TestAnalyzer_TrimsOnlyAtTheServiceLayer(t *testing.T) {
	a, err := services.NewAnalyzer(0, nil)
	require.NoError(t, err)

	assert.False(t, curp.Analyze(" GOMC800101HDFLRS09").IsValid(), "core keeps surrounding spaces")
	assert.True(t, a.Analyze(" GOMC800101HDFLRS09").IsValid())
	assert.False(t, a.Analyze("GOMC 800101HDFLRS09").IsValid(), "inner spaces are not removed")
}

func TestAnalyzer_Memoizes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	a, err := services.NewAnalyzer(2, m)
	require.NoError(t, err)

	first := a.Analyze("GOMC800101HDFLRS09")
	second := a.Analyze("gomc800101hdflrs09")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, a.Cached())

	a.Analyze("A")
	a.Analyze("B")
	assert.Equal(t, 2, a.Cached(), "LRU stays bounded")

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if c := metric.GetCounter(); c != nil {
				values[mf.GetName()] += c.GetValue()
			}
		}
	}
	assert.Equal(t, 1.0, values["curp_cache_hits_total"])
	assert.Equal(t, 4.0, values["curp_analyses_total"], "cache hits still count as analyses")
}

func TestAnalyzer_NoCache(t *testing.T) {
	a, err := services.NewAnalyzer(0, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, a.CacheSize())
	res := a.Analyze("GOMC800101XDFLRS09")
	assert.False(t, res.IsValid())
	assert.Equal(t, 0, a.Cached())
}

func TestNewAnalyzer_Negative(t *testing.T) {
	_, err := services.NewAnalyzer(-1, nil)
	assert.Error(t, err)
}
