package stegobook

// options holds the tunable, non-format-affecting knobs of Encode and
// Decode. Parameters that affect the wire format itself (QIM strength,
// coefficient position, parity count, repetition factor, header width) are
// deliberately not exposed here: changing any of them would make an image
// encoded by one caller unreadable by another.
type options struct {
	parallelism int
}

func defaultOptions() *options {
	return &options{parallelism: 0}
}

// Option configures Encode or Decode.
type Option func(*options) error

// WithParallelism bounds the number of goroutines used for the per-block
// DCT/QIM pass. n<=0 means "use runtime.GOMAXPROCS(0)", which is also the
// default when this option is not supplied.
func WithParallelism(n int) Option {
	return func(o *options) error {
		o.parallelism = n
		return nil
	}
}

func applyOptions(opts []Option) (*options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
