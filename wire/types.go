package wire

// DefaultMaxDepth bounds recursive decode of self-referential schemas when
// the caller does not supply a cap of their own.
const DefaultMaxDepth = 256

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	// MaxDepth caps nesting during decode; zero means DefaultMaxDepth.
	MaxDepth int
	// FailFast stops at the first issue instead of aggregating all of them.
	FailFast bool
}
