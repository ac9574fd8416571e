package broodrep

import "time"

// Config holds the recognized decompression-guard limits.
// The zero value is not valid on its own; use DefaultConfig or Parse's
// functional options, which layer on top of DefaultConfig.
type Config struct {
	// MaxDecompressedSize caps the total bytes any single section may
	// decompress to. Defaults to 100 MiB.
	MaxDecompressedSize uint64
	// MaxCompressionRatio caps produced-bytes / consumed-bytes once at
	// least 1 KiB has been produced. Defaults to 500.0.
	MaxCompressionRatio float64
	// MaxElapsed caps wall-clock time spent decompressing a section. Zero
	// disables the check. A positive value is always enforced using
	// time.Now; the guard does not detect whether a monotonic clock is
	// available and does not switch the check off on its own. Defaults to 5s.
	MaxElapsed time.Duration
}

// DefaultConfig returns the default decompression-guard limits.
func DefaultConfig() Config {
	return Config{
		MaxDecompressedSize: 100 * 1024 * 1024,
		MaxCompressionRatio: 500.0,
		MaxElapsed:          5 * time.Second,
	}
}

// Option customizes a Config passed to Parse. Unrecognized configuration
// has no Option in this API, so there is nothing to silently ignore; every
// Option that exists is always honored.
type Option func(*Config)

// WithMaxDecompressedSize overrides the default maximum decompressed size.
func WithMaxDecompressedSize(n uint64) Option {
	return func(c *Config) { c.MaxDecompressedSize = n }
}

// WithMaxCompressionRatio overrides the default maximum compression ratio.
func WithMaxCompressionRatio(ratio float64) Option {
	return func(c *Config) { c.MaxCompressionRatio = ratio }
}

// WithMaxElapsed overrides the default wall-clock budget. Pass 0 to disable
// the time limit entirely.
func WithMaxElapsed(d time.Duration) Option {
	return func(c *Config) { c.MaxElapsed = d }
}

func resolveConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
