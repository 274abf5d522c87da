package compile

// Job is one validated compiler invocation. It is immutable once built.
type Job struct {
	source      string
	destination string
	stage       Stage
	target      Target
	profile     Profile
}

// JobOption configures the optional parts of a Job.
type JobOption func(*Job)

// WithTarget sets the output format. SpirV is used otherwise.
func WithTarget(target Target) JobOption {
	return func(j *Job) {
		j.target = target
	}
}

// WithProfile sets the compiler profile. DefaultProfile is used otherwise;
// an empty profile keeps the default.
func WithProfile(profile Profile) JobOption {
	return func(j *Job) {
		if profile != "" {
			j.profile = profile
		}
	}
}

// NewJob creates a job from its required parameters. It returns the same
// sentinel errors as Builder.Build when one of them is empty.
func NewJob(source, destination string, stage Stage, opts ...JobOption) (*Job, error) {
	j := &Job{
		source:      source,
		destination: destination,
		stage:       stage,
		profile:     DefaultProfile,
	}
	for _, opt := range opts {
		opt(j)
	}
	if err := j.validate(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *Job) validate() error {
	switch {
	case j.source == "":
		return ErrMissingSourcePath
	case j.destination == "":
		return ErrMissingDestPath
	case !j.stage.Valid():
		return ErrMissingShaderStage
	}
	return nil
}

func (j *Job) Source() string      { return j.source }
func (j *Job) Destination() string { return j.destination }
func (j *Job) Stage() Stage        { return j.stage }
func (j *Job) Target() Target      { return j.target }
func (j *Job) Profile() Profile    { return j.profile }

// Args returns the compiler arguments for the job. Include directories are
// passed in the given order.
func (j *Job) Args(includes []string) []string {
	args := make([]string, 0, 10+2*len(includes))
	args = append(args,
		j.source,
		"-profile", string(j.profile),
		"-target", j.target.Flag(),
		"-o", j.destination,
		"-entry", j.stage.Entry(),
	)
	for _, dir := range includes {
		args = append(args, "-I", dir)
	}
	return append(args, "-fvk-use-entrypoint-name")
}
