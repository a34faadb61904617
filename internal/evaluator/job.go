package evaluator

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments of an evaluation job submitted to River.
// The scan is the unique key so a scan is never evaluated twice at once.
type JobArgs struct {
	// Domain is the normalized domain of the scan.
	Domain string `json:"domain" river:"unique"`
	// DateOfScan identifies the scan of Domain.
	DateOfScan string `json:"dateOfScan" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewJobArgs returns the job arguments of an evaluation of the given scan,
// retried at most maxAttempts times. Zero keeps River's default.
func NewJobArgs(domainName, dateOfScan string, maxAttempts int) JobArgs {
	return JobArgs{
		Domain:      domainName,
		DateOfScan:  dateOfScan,
		maxAttempts: maxAttempts,
	}
}

// Kind returns the River job kind used to register and dispatch the evaluation worker.
func (args JobArgs) Kind() string { return "EvaluateScanJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// A scan may be evaluated again once its previous job finished, so completed
// jobs are not part of the uniqueness check.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
