package image

// Config holds the builder configuration.
type Config struct {
	// RangeLo and RangeHi bound accepted addresses (inclusive) when
	// HasRange is set. Writes outside the range are rejected.
	RangeLo  uint32
	RangeHi  uint32
	HasRange bool

	// Logger is used for logging operations (optional)
	Logger Logger
}

// Option is a functional option for configuring the Builder.
type Option func(*Config)

// WithAddressRange restricts the builder to addresses in [lo, hi]
// inclusive. A decoded byte outside the range is dropped and reported
// through the data callback as ihex.StatusVerificationError.
//
// Example:
//
//	builder := image.NewBuilder(image.WithAddressRange(0x08000000, 0x0807FFFF))
func WithAddressRange(lo, hi uint32) Option {
	return func(c *Config) {
		if lo > hi {
			lo, hi = hi, lo
		}
		c.RangeLo = lo
		c.RangeHi = hi
		c.HasRange = true
	}
}

// WithLogger sets a logger for builder operations.
//
// Example:
//
//	builder := image.NewBuilder(image.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
