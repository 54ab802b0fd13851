package jobs

import (
	"fmt"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs []namedJob
}

type namedJob struct {
	name string
	job  Job
}

func NewJobManager(routeStatistics *RouteStatisticsJob) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: routeStatisticsJobName, job: routeStatistics},
		},
	}
}

// StartAll starts every job. If one fails to start, the jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs {
		j.job.Stop()
	}
}
