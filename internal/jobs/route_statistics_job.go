package jobs

import (
	"context"

	"logistics/internal/telemetry"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const routeStatisticsJobName = "route_statistics"

// RouteStatisticsRefresher recomputes the completed-trip statistics of every route and
// reports how many routes changed.
type RouteStatisticsRefresher interface {
	Handle(ctx context.Context) (int, error)
}

// RouteStatisticsJob refreshes route statistics on a cron schedule.
type RouteStatisticsJob struct {
	handler  RouteStatisticsRefresher
	schedule string
	metrics  *telemetry.Metrics
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewRouteStatisticsJob creates the job. schedule is a six-field cron spec (with seconds).
func NewRouteStatisticsJob(
	handler RouteStatisticsRefresher,
	schedule string,
	metrics *telemetry.Metrics,
	logger *zap.Logger,
) *RouteStatisticsJob {
	logger = logger.With(zap.String("component", "route_statistics_job"))
	return &RouteStatisticsJob{
		handler:  handler,
		schedule: schedule,
		metrics:  metrics,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger{logger.Sugar()}),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger.Sugar()})),
		),
		logger: logger,
	}
}

func (j *RouteStatisticsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("route statistics job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs one refresh. Failures are logged and counted; the next tick retries.
func (j *RouteStatisticsJob) Run(ctx context.Context) {
	updated, err := j.handler.Handle(ctx)
	j.metrics.RecordJobRun(routeStatisticsJobName, err)
	if err != nil {
		j.logger.Error("route statistics refresh failed", zap.Error(err))
		return
	}
	j.logger.Debug("route statistics refreshed", zap.Int("routes", updated))
}

// Stop waits for a running refresh to finish.
func (j *RouteStatisticsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("route statistics job stopped")
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
