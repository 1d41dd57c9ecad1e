package wire

import "context"

// Object is the declarative schema for one entity type E. Fields are applied
// in declaration order for decode and encode, which keeps issue ordering and
// serialized output deterministic.
type Object[E any] struct {
	name   string
	fields []*fieldDef[E]
	byKey  map[string]*fieldDef[E]
}

// fieldDef holds the type-erased per-field operations produced by Field.
type fieldDef[E any] struct {
	key      string
	required bool
	emitNull bool

	decodeInto func(ctx context.Context, dst *E, raw any, present bool) error
	encodeFrom func(src *E) (any, bool)
	equal      func(a, b *E) bool
	clone      func(dst, src *E)
}

// NewObject creates an empty schema for entity type E. The name appears in
// diagnostics only.
func NewObject[E any](name string) *Object[E] {
	return &Object[E]{name: name, byKey: map[string]*fieldDef[E]{}}
}

// Name returns the entity name used in diagnostics.
func (o *Object[E]) Name() string { return o.name }

// Keys returns the wire keys in declaration order.
func (o *Object[E]) Keys() []string {
	out := make([]string, 0, len(o.fields))
	for _, f := range o.fields {
		out = append(out, f.key)
	}
	return out
}

// FieldOpt configures the field registered by the enclosing Field call.
type FieldOpt[E, T any] struct {
	o *Object[E]
	f *fieldDef[E]
	c Codec[T]
	at func(*E) *T

	hasDefault bool
	def        T
}

// Field registers one field on o: its wire key, the codec converting the raw
// JSON value, and an accessor resolving the struct field. The wire key is the
// only key consulted; it may differ freely from the Go field name.
func Field[E, T any](o *Object[E], key string, c Codec[T], at func(*E) *T) *FieldOpt[E, T] {
	fo := &FieldOpt[E, T]{o: o, c: c, at: at}
	f := &fieldDef[E]{key: key}
	f.decodeInto = fo.decodeInto
	f.encodeFrom = func(src *E) (any, bool) {
		enc := c.Encode(*at(src))
		if enc == nil {
			return nil, f.emitNull
		}
		if enc == JSONNull {
			return nil, true
		}
		return enc, true
	}
	f.equal = func(a, b *E) bool { return c.Equal(*at(a), *at(b)) }
	f.clone = func(dst, src *E) { *at(dst) = c.Clone(*at(src)) }
	fo.f = f
	o.fields = append(o.fields, f)
	o.byKey[key] = f
	return fo
}

// Required marks the field as required: an absent or null value is a
// missing_required_field failure.
func (fo *FieldOpt[E, T]) Required() *FieldOpt[E, T] {
	fo.f.required = true
	return fo
}

// Default declares the value substituted when the field is absent or null.
// The default is deep-copied per decode and is never used to mask malformed
// non-null input.
func (fo *FieldOpt[E, T]) Default(v T) *FieldOpt[E, T] {
	fo.hasDefault = true
	fo.def = v
	return fo
}

// EmitNull renders an absent optional as an explicit JSON null on encode
// instead of omitting the key.
func (fo *FieldOpt[E, T]) EmitNull() *FieldOpt[E, T] {
	fo.f.emitNull = true
	return fo
}

func (fo *FieldOpt[E, T]) decodeInto(ctx context.Context, dst *E, raw any, present bool) error {
	ptr := fo.at(dst)
	if present && raw == nil {
		if nd, ok := any(fo.c).(NullDecoder[T]); ok {
			*ptr = nd.DecodeNull()
			return nil
		}
	}
	if !present || raw == nil {
		if fo.hasDefault {
			*ptr = fo.c.Clone(fo.def)
			return nil
		}
		if fo.f.required {
			return Issues{Issue{Path: "/" + fo.f.key, Code: CodeMissingRequired, Message: "required field missing"}}
		}
		// optional without default: leave the zero value (nil pointer, absent Opt)
		var zero T
		*ptr = zero
		return nil
	}
	v, err := fo.c.Decode(ctx, raw)
	if err != nil {
		return PrefixIssues("/"+fo.f.key, err)
	}
	*ptr = v
	return nil
}

// Decode parses a raw JSON map into E, applying every field codec in
// declaration order. All per-field failures are aggregated into one Issues
// value unless fail-fast was requested; on failure the zero E is returned,
// never a partially populated record.
func (o *Object[E]) Decode(ctx context.Context, v any) (E, error) {
	var zero E
	src, ok := v.(map[string]any)
	if !ok {
		return zero, Issues{Issue{Path: "/", Code: CodeMalformedField, Message: "expected object", Hint: o.name}}
	}
	ctx, err := pushDepth(ctx)
	if err != nil {
		return zero, err
	}
	var out E
	var iss Issues
	for _, f := range o.fields {
		raw, present := src[f.key]
		if err := f.decodeInto(ctx, &out, raw, present); err != nil {
			if child, ok := AsIssues(err); ok {
				iss = AppendIssues(iss, child...)
			} else {
				iss = AppendIssues(iss, Issue{Path: "/" + f.key, Code: CodeMalformedField, Message: err.Error(), Cause: err})
			}
			if IsFailFast(ctx) {
				return zero, iss
			}
		}
	}
	if len(iss) > 0 {
		return zero, iss
	}
	return out, nil
}

// EncodeMap renders e back into a raw JSON map. It is total for any
// well-formed entity: every declared field is exported, absent optionals are
// omitted (or rendered as explicit null where the field declares it).
func (o *Object[E]) EncodeMap(e E) map[string]any {
	out := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		if v, include := f.encodeFrom(&e); include {
			out[f.key] = v
		}
	}
	return out
}

// Encode implements Codec[E] for nesting this schema inside another.
func (o *Object[E]) Encode(e E) any { return o.EncodeMap(e) }

// Equal reports field-wise structural equality. It never consults identity:
// two separately decoded records from identical input compare equal.
func (o *Object[E]) Equal(a, b E) bool {
	for _, f := range o.fields {
		if !f.equal(&a, &b) {
			return false
		}
	}
	return true
}

// Clone returns a deep, fully independent copy of e.
func (o *Object[E]) Clone(e E) E {
	out := e
	for _, f := range o.fields {
		f.clone(&out, &e)
	}
	return out
}

// With is the copy-with-changes operation: it deep-clones e, applies mutate
// to the clone, and returns it. e itself is never modified, and the result
// shares no mutable memory with it. Nested entities are replaced wholesale;
// to change a nested sub-field, read the nested value, build a replacement,
// and assign it.
func (o *Object[E]) With(e E, mutate func(*E)) E {
	out := o.Clone(e)
	mutate(&out)
	return out
}
