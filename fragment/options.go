package fragment

// Option configures a Dispatcher.
//
// Example:
//
//	d := fragment.NewDispatcher(fragment.WithWorkers(4), fragment.WithBandHeight(16))
//	defer d.Close()
type Option func(*options)

type options struct {
	workers    int
	bandHeight int
}

// defaultBandHeight is the number of quad rows (pairs of pixel rows) per
// task.
const defaultBandHeight = 8

func defaultOptions() options {
	return options{
		workers:    0, // GOMAXPROCS
		bandHeight: defaultBandHeight,
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or a negative value uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBandHeight sets how many quad rows one task covers.
// Values below 1 are ignored.
func WithBandHeight(quadRows int) Option {
	return func(o *options) {
		if quadRows >= 1 {
			o.bandHeight = quadRows
		}
	}
}
