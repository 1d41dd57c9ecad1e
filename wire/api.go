// Package wire is the entity schema engine: it turns a declarative per-entity
// field table into decode, encode, structural equality and copy-with-changes
// operations over raw JSON maps. All operations are pure and allocation-only;
// decode failures are returned as Issues, never panics.
package wire

import "context"

// Codec performs bidirectional conversion between a wire representation
// (a raw JSON value: string, json.Number, float64, bool, nil, []any,
// map[string]any) and a typed field value T.
//
// Decode fails with Issues on malformed input. Encode cannot fail on a value
// produced by Decode or Clone; a nil result means "no value" and the
// enclosing field decides between omitting the key and emitting an explicit
// null. Equal is structural and never consults identity. Clone returns a
// deep, independent copy.
type Codec[T any] interface {
	Decode(ctx context.Context, v any) (T, error)
	Encode(t T) any
	Equal(a, b T) bool
	Clone(t T) T
}

// NullDecoder is an optional hook for codecs that distinguish an explicit
// JSON null from an absent key (the tri-state Opt codec). Codecs that do not
// implement it have nulls handled by the field's default/required policy.
type NullDecoder[T any] interface {
	DecodeNull() T
}

// jsonNull marks an explicit JSON null in encoded field output, as opposed to
// a nil result meaning "omit the key". It never leaks out of EncodeMap.
type jsonNull struct{}

// JSONNull is returned by codecs whose value must render as an explicit null.
var JSONNull any = jsonNull{}

// Decode applies decoding options and runs the codec against an
// already-parsed JSON value. It is the primary entry point.
func Decode[T any](ctx context.Context, c Codec[T], v any, opts ...DecodeOpt) (T, error) {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	if opt.MaxDepth > 0 {
		ctx = WithMaxDepth(ctx, opt.MaxDepth)
	}
	return c.Decode(ctx, v)
}
