package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "logistics.events", cfg.KafkaTopic)
	assert.Equal(t, "0 */5 * * * *", cfg.RouteStatsSchedule)
	assert.False(t, cfg.OTelEnabled)
	assert.False(t, cfg.KafkaEnabled())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=logistics sslmode=disable", cfg.DSN())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("ROUTE_STATS_SCHEDULE", "0 0 * * * *")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.KafkaEnabled())
	assert.True(t, cfg.OTelEnabled)
	assert.Equal(t, "0 0 * * * *", cfg.RouteStatsSchedule)
}

func TestLoadConfig_RejectsMalformedValue(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "maybe")

	_, err := LoadConfig()

	assert.Error(t, err)
}
