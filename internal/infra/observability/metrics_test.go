package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_RegistersOnGivenRegistry(t *testing.T) {
	reg := NewRegistry()
	m := NewMetrics(reg)

	m.Deliveries.WithLabelValues("telegram", "delivered").Inc()
	m.Resolutions.WithLabelValues("exact").Add(2)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["alertacordon_alert_deliveries_total"])
	assert.True(t, names["alertacordon_location_resolutions_total"])
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Resolutions.WithLabelValues("exact")))
}

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.ReportsCreated.WithLabelValues("robo").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(a.ReportsCreated.WithLabelValues("robo")))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.ReportsCreated.WithLabelValues("robo")))
}
