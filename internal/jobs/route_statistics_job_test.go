package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"logistics/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type refresherFunc func(ctx context.Context) (int, error)

func (f refresherFunc) Handle(ctx context.Context) (int, error) {
	return f(ctx)
}

func newTestMetrics() *telemetry.Metrics {
	return telemetry.NewMetrics(prometheus.NewRegistry())
}

func TestRouteStatisticsJob_Run_Success(t *testing.T) {
	var calls atomic.Int32
	metrics := newTestMetrics()
	job := NewRouteStatisticsJob(refresherFunc(func(context.Context) (int, error) {
		calls.Add(1)
		return 3, nil
	}), "0 */5 * * * *", metrics, zap.NewNop())

	job.Run(context.Background())

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.JobRunsTotal.WithLabelValues(routeStatisticsJobName, telemetry.OutcomeSuccess)))
}

func TestRouteStatisticsJob_Run_FailureIsLoggedAndCounted(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	metrics := newTestMetrics()
	job := NewRouteStatisticsJob(refresherFunc(func(context.Context) (int, error) {
		return 0, errors.New("database is unavailable")
	}), "0 */5 * * * *", metrics, zap.New(core))

	job.Run(context.Background())

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.JobRunsTotal.WithLabelValues(routeStatisticsJobName, telemetry.OutcomeFailure)))
	entries := logs.FilterMessage("route statistics refresh failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "route_statistics_job", entries[0].ContextMap()["component"])
}

func TestRouteStatisticsJob_Start_RejectsInvalidSchedule(t *testing.T) {
	job := NewRouteStatisticsJob(refresherFunc(func(context.Context) (int, error) {
		return 0, nil
	}), "every five minutes", newTestMetrics(), zap.NewNop())

	assert.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	job := NewRouteStatisticsJob(refresherFunc(func(context.Context) (int, error) {
		return 0, nil
	}), "0 0 3 * * *", newTestMetrics(), zap.NewNop())
	manager := NewJobManager(job)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartAll_ReportsFailingJob(t *testing.T) {
	job := NewRouteStatisticsJob(refresherFunc(func(context.Context) (int, error) {
		return 0, nil
	}), "61 * * * * *", newTestMetrics(), zap.NewNop())
	manager := NewJobManager(job)

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), routeStatisticsJobName)
}
