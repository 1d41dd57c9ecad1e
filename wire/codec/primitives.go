// Package codec provides the field codec primitives: bidirectional, total
// (for well-formed input) conversions between raw JSON values and typed field
// values. Every codec implements wire.Codec and reports failures as
// wire.Issues with the raw value's position.
package codec

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	"github.com/leafbook/leafbook-go/wire"
)

// String returns the codec for plain JSON strings.
func String() wire.Codec[string] { return stringCodec{} }

type stringCodec struct{}

func (stringCodec) Decode(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", wire.Issues{{Path: "/", Code: wire.CodeMalformedField, Message: "expected string"}}
	}
	return s, nil
}

func (stringCodec) Encode(s string) any    { return s }
func (stringCodec) Equal(a, b string) bool { return a == b }
func (stringCodec) Clone(s string) string  { return s }

// Bool returns the codec for JSON booleans.
func Bool() wire.Codec[bool] { return boolCodec{} }

type boolCodec struct{}

func (boolCodec) Decode(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, wire.Issues{{Path: "/", Code: wire.CodeMalformedField, Message: "expected boolean"}}
	}
	return b, nil
}

func (boolCodec) Encode(b bool) any    { return b }
func (boolCodec) Equal(a, b bool) bool { return a == b }
func (boolCodec) Clone(b bool) bool    { return b }

// Int returns the codec for integer-valued JSON numbers. It accepts Go ints
// (for defaults and locally built values), json.Number, and integral
// float64; a fractional number is malformed, never truncated.
func Int() wire.Codec[int] { return intCodec{} }

type intCodec struct{}

func (intCodec) Decode(ctx context.Context, v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case json.Number:
		i64, err := t.Int64()
		if err != nil {
			return 0, wire.Issues{{Path: "/", Code: wire.CodeMalformedField, Message: "expected integer", Cause: err}}
		}
		return int(i64), nil
	case float64:
		if math.Trunc(t) != t {
			return 0, wire.Issues{{Path: "/", Code: wire.CodeMalformedField, Message: "fractional part not allowed for integer"}}
		}
		return int(t), nil
	default:
		return 0, wire.Issues{{Path: "/", Code: wire.CodeMalformedField, Message: "expected integer"}}
	}
}

func (intCodec) Encode(i int) any    { return i }
func (intCodec) Equal(a, b int) bool { return a == b }
func (intCodec) Clone(i int) int     { return i }

// Float returns the codec for JSON numbers decoded to float64.
func Float() wire.Codec[float64] { return floatCodec{} }

type floatCodec struct{}

func (floatCodec) Decode(ctx context.Context, v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0, wire.Issues{{Path: "/", Code: wire.CodeMalformedField, Message: "expected number", Cause: err}}
		}
		return f, nil
	default:
		return 0, wire.Issues{{Path: "/", Code: wire.CodeMalformedField, Message: "expected number"}}
	}
}

func (floatCodec) Encode(f float64) any    { return f }
func (floatCodec) Equal(a, b float64) bool { return a == b }
func (floatCodec) Clone(f float64) float64 { return f }
