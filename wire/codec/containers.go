package codec

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/leafbook/leafbook-go/wire"
)

// Ptr wraps a codec into an absent-or-value optional. A JSON null (or an
// absent key, handled by the field) decodes to nil; nil encodes as "no
// value", which the field renders as an omitted key unless it declares
// explicit nulls.
func Ptr[T any](inner wire.Codec[T]) wire.Codec[*T] {
	return ptrCodec[T]{inner: inner}
}

type ptrCodec[T any] struct {
	inner wire.Codec[T]
}

func (c ptrCodec[T]) Decode(ctx context.Context, v any) (*T, error) {
	if v == nil {
		return nil, nil
	}
	t, err := c.inner.Decode(ctx, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (c ptrCodec[T]) Encode(t *T) any {
	if t == nil {
		return nil
	}
	return c.inner.Encode(*t)
}

func (c ptrCodec[T]) Equal(a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return c.inner.Equal(*a, *b)
}

func (c ptrCodec[T]) Clone(t *T) *T {
	if t == nil {
		return nil
	}
	v := c.inner.Clone(*t)
	return &v
}

// Seq wraps an element codec into an ordered-sequence codec. Every element is
// decoded individually; element failures are aggregated under their index
// path. A nil slice and an empty slice compare equal and both encode to an
// empty array only when non-nil (fields declare Default of an empty slice
// where "absent means empty" is wanted).
func Seq[T any](elem wire.Codec[T]) wire.Codec[[]T] {
	return seqCodec[T]{elem: elem}
}

type seqCodec[T any] struct {
	elem wire.Codec[T]
}

func (c seqCodec[T]) Decode(ctx context.Context, v any) ([]T, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, wire.Issues{{Path: "/", Code: wire.CodeMalformedField, Message: "expected array"}}
	}
	out := make([]T, 0, len(src))
	var iss wire.Issues
	for i := range src {
		ev, err := c.elem.Decode(ctx, src[i])
		if err != nil {
			iss = wire.AppendIssues(iss, wire.PrefixIssues("/"+strconv.Itoa(i), err)...)
			if wire.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out = append(out, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (c seqCodec[T]) Encode(t []T) any {
	if t == nil {
		return nil
	}
	out := make([]any, 0, len(t))
	for i := range t {
		out = append(out, c.elem.Encode(t[i]))
	}
	return out
}

func (c seqCodec[T]) Equal(a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !c.elem.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (c seqCodec[T]) Clone(t []T) []T {
	if t == nil {
		return nil
	}
	out := make([]T, 0, len(t))
	for i := range t {
		out = append(out, c.elem.Clone(t[i]))
	}
	return out
}

// RawMap returns the codec for untyped string-keyed payloads (message
// metadata, identification raw responses). Values are deep-copied on decode
// and clone so records never alias caller-owned maps.
func RawMap() wire.Codec[map[string]any] { return rawMapCodec{} }

type rawMapCodec struct{}

func (rawMapCodec) Decode(ctx context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, wire.Issues{{Path: "/", Code: wire.CodeMalformedField, Message: "expected object"}}
	}
	return cloneAnyMap(m), nil
}

func (rawMapCodec) Encode(t map[string]any) any {
	if t == nil {
		return nil
	}
	return cloneAnyMap(t)
}

func (rawMapCodec) Equal(a, b map[string]any) bool { return equalAnyMap(a, b) }

func (rawMapCodec) Clone(t map[string]any) map[string]any {
	if t == nil {
		return nil
	}
	return cloneAnyMap(t)
}

// OptOf wraps a codec into the tri-state optional used by request bodies:
// absent key, explicit null, or value. Absent encodes to an omitted key and
// explicit null to a JSON null, so partial updates can distinguish "leave
// unchanged" from "clear this field".
func OptOf[T any](inner wire.Codec[T]) wire.Codec[wire.Opt[T]] {
	return optCodec[T]{inner: inner}
}

type optCodec[T any] struct {
	inner wire.Codec[T]
}

// DecodeNull implements wire.NullDecoder so the field engine maps an
// explicit null to the null state instead of the default/required policy.
func (c optCodec[T]) DecodeNull() wire.Opt[T] { return wire.OptNull[T]() }

func (c optCodec[T]) Decode(ctx context.Context, v any) (wire.Opt[T], error) {
	if v == nil {
		return wire.OptNull[T](), nil
	}
	t, err := c.inner.Decode(ctx, v)
	if err != nil {
		return wire.Opt[T]{}, err
	}
	return wire.OptValue(t), nil
}

func (c optCodec[T]) Encode(t wire.Opt[T]) any {
	switch t.State() {
	case wire.PresenceSet:
		v, _ := t.Get()
		return c.inner.Encode(v)
	case wire.PresenceNull:
		return wire.JSONNull
	default:
		return nil
	}
}

func (c optCodec[T]) Equal(a, b wire.Opt[T]) bool {
	if a.State() != b.State() {
		return false
	}
	if a.State() != wire.PresenceSet {
		return true
	}
	av, _ := a.Get()
	bv, _ := b.Get()
	return c.inner.Equal(av, bv)
}

func (c optCodec[T]) Clone(t wire.Opt[T]) wire.Opt[T] {
	if v, ok := t.Get(); ok {
		return wire.OptValue(c.inner.Clone(v))
	}
	return t
}

// ---- untyped value helpers ----

func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneAnyMap(t)
	case []any:
		out := make([]any, 0, len(t))
		for i := range t {
			out = append(out, cloneAny(t[i]))
		}
		return out
	default:
		// scalars (string, bool, float64, json.Number, nil) are immutable
		return v
	}
}

func cloneAnyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneAny(v)
	}
	return out
}

func equalAny(a, b any) bool {
	switch at := a.(type) {
	case map[string]any:
		bt, ok := b.(map[string]any)
		return ok && equalAnyMap(at, bt)
	case []any:
		bt, ok := b.([]any)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !equalAny(at[i], bt[i]) {
				return false
			}
		}
		return true
	case json.Number:
		bt, ok := b.(json.Number)
		return ok && at == bt
	default:
		return a == b
	}
}

func equalAnyMap(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !equalAny(av, bv) {
			return false
		}
	}
	return true
}
