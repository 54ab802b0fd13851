package telemetry_test

import (
	"errors"
	"testing"

	"logistics/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, telemetry.ParseLevel(tt.in))
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := telemetry.NewLogger("debug")

	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.NotPanics(t, func() {
		logger.Ctx(t.Context()).Debug("context logger is usable without a span")
	})
}

func TestMetrics_RecordTransition(t *testing.T) {
	m := telemetry.NewMetrics(prometheus.NewRegistry())

	m.RecordTransition("shipment", "dispatch", nil)
	m.RecordTransition("shipment", "dispatch", nil)
	m.RecordTransition("shipment", "dispatch", errors.New("boom"))

	assert.InDelta(t, 2, testutil.ToFloat64(
		m.TransitionsTotal.WithLabelValues("shipment", "dispatch", telemetry.OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(
		m.TransitionsTotal.WithLabelValues("shipment", "dispatch", telemetry.OutcomeFailure)), 0)
}

func TestMetrics_RecordRequestAndPublish(t *testing.T) {
	m := telemetry.NewMetrics(prometheus.NewRegistry())

	m.RecordRequest("GET", "/api/v1/shipments/:id", "200", 0.01)
	m.RecordPublish(3, nil)

	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/v1/shipments/:id", "200")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.EventsPublishTotal.WithLabelValues(telemetry.OutcomeSuccess)), 0)
}

func TestNewMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		telemetry.NewMetrics(prometheus.NewRegistry())
		telemetry.NewMetrics(prometheus.NewRegistry())
	})
}
