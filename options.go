package dvec

// DefaultName labels containers created without WithName.
const DefaultName = "dvec"

// Option configures a container at construction time.
type Option func(o *options)

type options struct {
	capacity int
	name     string
	recorder Recorder
}

func buildOptions(opts []Option) options {
	o := options{name: DefaultName, recorder: nopRecorder{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCapacity sets the initial capacity of the backing slice.
// Values <= 0 are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithName sets the label used for the container in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithRecorder installs a metrics recorder. A nil recorder disables metrics.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r == nil {
			r = nopRecorder{}
		}
		o.recorder = r
	}
}
