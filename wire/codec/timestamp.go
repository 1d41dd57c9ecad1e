package codec

import (
	"context"
	"time"

	"github.com/leafbook/leafbook-go/wire"
)

// Timestamp returns the codec converting between ISO-8601 strings and
// time.Time. Decode accepts RFC3339 with or without fractional seconds;
// encode keeps the UTC offset the source string carried, applying no
// timezone normalization of its own. Equality compares instants.
func Timestamp() wire.Codec[time.Time] { return timestampCodec{} }

type timestampCodec struct{}

func (timestampCodec) Decode(ctx context.Context, v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, wire.Issues{{Path: "/", Code: wire.CodeMalformedField, Message: "expected ISO-8601 string"}}
	}
	t, err := parseISO8601(s)
	if err != nil {
		return time.Time{}, wire.Issues{{Path: "/", Code: wire.CodeMalformedField, Message: "invalid ISO-8601 time", Cause: err}}
	}
	return t, nil
}

func (timestampCodec) Encode(t time.Time) any { return t.Format(time.RFC3339Nano) }

func (timestampCodec) Equal(a, b time.Time) bool { return a.Equal(b) }

func (timestampCodec) Clone(t time.Time) time.Time { return t }

func parseISO8601(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
