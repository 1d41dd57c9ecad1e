package codec

import (
	"context"
	"fmt"

	"github.com/leafbook/leafbook-go/wire"
)

// Enum returns the codec for a string-backed enum whose constants are the
// fixed wire tokens. Decoding an unlisted token fails with
// unknown_enum_variant carrying the raw value; it never guesses a fallback
// variant (defaults come only from the field declaration).
func Enum[T ~string](variants ...T) wire.Codec[T] {
	set := make(map[T]struct{}, len(variants))
	for _, v := range variants {
		set[v] = struct{}{}
	}
	return enumCodec[T]{set: set}
}

type enumCodec[T ~string] struct {
	set map[T]struct{}
}

func (c enumCodec[T]) Decode(ctx context.Context, v any) (T, error) {
	var zero T
	s, ok := v.(string)
	if !ok {
		return zero, wire.Issues{{Path: "/", Code: wire.CodeMalformedField, Message: "expected enum string"}}
	}
	if _, ok := c.set[T(s)]; !ok {
		return zero, wire.Issues{{
			Path:    "/",
			Code:    wire.CodeUnknownEnum,
			Message: fmt.Sprintf("unknown variant %q", s),
			Params:  map[string]any{"value": s},
		}}
	}
	return T(s), nil
}

func (c enumCodec[T]) Encode(t T) any    { return string(t) }
func (c enumCodec[T]) Equal(a, b T) bool { return a == b }
func (c enumCodec[T]) Clone(t T) T       { return t }
