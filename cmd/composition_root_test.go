package cmd

import (
	"context"
	"errors"
	"testing"

	"logistics/internal/pkg/ddd"
	"logistics/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type publisherFunc func(ctx context.Context, events []ddd.Event) error

func (f publisherFunc) Publish(ctx context.Context, events []ddd.Event) error {
	return f(ctx, events)
}

func TestMeteredPublisher_CountsOutcomes(t *testing.T) {
	metrics := telemetry.NewMetrics(prometheus.NewRegistry())
	events := []ddd.Event{{Name: "ShipmentConfirmed"}, {Name: "TrackingEventRecorded"}}

	ok := meteredPublisher{inner: publisherFunc(func(context.Context, []ddd.Event) error { return nil }), metrics: metrics}
	assert.NoError(t, ok.Publish(context.Background(), events))

	failing := meteredPublisher{inner: publisherFunc(func(context.Context, []ddd.Event) error {
		return errors.New("broker unavailable")
	}), metrics: metrics}
	assert.Error(t, failing.Publish(context.Background(), events[:1]))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.EventsPublishTotal.WithLabelValues(telemetry.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.EventsPublishTotal.WithLabelValues(telemetry.OutcomeFailure)))
}

func TestMeteredPublisher_SkipsEmptyBatches(t *testing.T) {
	metrics := telemetry.NewMetrics(prometheus.NewRegistry())
	called := false
	p := meteredPublisher{inner: publisherFunc(func(context.Context, []ddd.Event) error {
		called = true
		return nil
	}), metrics: metrics}

	assert.NoError(t, p.Publish(context.Background(), nil))
	assert.False(t, called)
}
