package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []job
	started []job
}

// NewJobManager creates a job manager over the given jobs. They start in
// order and stop in reverse.
func NewJobManager(outboxRelay *OutboxRelayJob) *JobManager {
	return &JobManager{jobs: []job{outboxRelay}}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already running are stopped.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start job: %w", err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops the running jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
