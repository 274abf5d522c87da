package executor

import "github.com/vk/sdfc/internal/compile"

// Outcome is the result of one job. Err is nil on success.
type Outcome struct {
	Job *compile.Job
	Err error
}

// Report collects the outcome of every job run for one shader, in run order.
type Report struct {
	Source   string
	Basename string
	Outcomes []Outcome
}

// Failed returns the outcomes whose job did not succeed.
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Artifacts returns the destinations of the jobs that succeeded.
func (r *Report) Artifacts() []string {
	var paths []string
	for _, o := range r.Outcomes {
		if o.Err == nil {
			paths = append(paths, o.Job.Destination())
		}
	}
	return paths
}
