package dbotjson

// config collects the behavior switches both Decode and Get accept,
// set once per call via functional options rather than mutating a
// persistent decoder object between calls.
type config struct {
	ordered        bool
	utf8FastScan   bool
	strictTrailing bool
}

// Option configures Decode or Get.
type Option func(*config)

// WithOrderedObjects selects the duplicate-key-preserving, order-
// preserving object representation (Value.AsPairs) instead of the
// default last-key-wins map (Value.AsObject). Both modes share the
// same object scanning state machine.
func WithOrderedObjects() Option {
	return func(c *config) { c.ordered = true }
}

// WithUTF8FastScan selects the UTF-8-aware string fast-path scanner,
// which advances 1-4 bytes per step using continuation-byte tests
// instead of one byte at a time. It produces identical output to the
// default scanner; it exists purely for throughput on multi-byte-heavy
// input.
func WithUTF8FastScan() Option {
	return func(c *config) { c.utf8FastScan = true }
}

// WithStrictTrailing makes Decode reject any non-whitespace bytes
// following the decoded root value. By default Decode is lenient and
// ignores trailing bytes.
func WithStrictTrailing() Option {
	return func(c *config) { c.strictTrailing = true }
}

func applyOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
