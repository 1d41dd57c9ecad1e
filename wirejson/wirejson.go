// Package wirejson is the bytes boundary: it parses raw JSON text into the
// string-keyed maps the schema engine consumes, and renders encoded entities
// back to bytes with deterministic key order for snapshot tests. Transport
// stays outside; nothing here performs I/O beyond the supplied bytes.
package wirejson

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/leafbook/leafbook-go/wire"
)

// Unmarshal parses a JSON object into a raw map. Numbers are preserved as
// json.Number so integer fields are not forced through float64.
func Unmarshal(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, wire.Issues{{Path: "/", Code: wire.CodeParseError, Message: err.Error(), Cause: err}}
	}
	return m, nil
}

// Marshal renders an entity to JSON bytes with top-level keys in the schema's
// declared field order. Nested objects marshal with sorted keys, so the full
// output is deterministic.
func Marshal[E any](o *wire.Object[E], e E) ([]byte, error) {
	m := o.EncodeMap(e)
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, k := range o.Keys() {
		v, ok := m[k]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
