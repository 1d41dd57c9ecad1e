package wire

import "context"

// ---- Decode-time context options (internal wiring, exported for subpackages) ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
	_ctxKeyMaxDepth
	_ctxKeyDepth
)

// WithFailFast returns a child context that marks fail-fast decoding behavior.
// This is set by Decode based on DecodeOpt and consumed by schema implementations.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current decode should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}

// WithMaxDepth returns a child context carrying the nesting cap for decode.
func WithMaxDepth(ctx context.Context, max int) context.Context {
	return context.WithValue(ctx, _ctxKeyMaxDepth, max)
}

func maxDepthFrom(ctx context.Context) int {
	if v, ok := ctx.Value(_ctxKeyMaxDepth).(int); ok && v > 0 {
		return v
	}
	return DefaultMaxDepth
}

// pushDepth records one more level of record nesting and fails once the cap
// is exceeded, so adversarial self-referential payloads cannot overflow the
// call stack.
func pushDepth(ctx context.Context) (context.Context, error) {
	d, _ := ctx.Value(_ctxKeyDepth).(int)
	d++
	if d > maxDepthFrom(ctx) {
		return ctx, Issues{Issue{Path: "/", Code: CodeExcessiveDepth, Message: "nesting depth cap exceeded"}}
	}
	return context.WithValue(ctx, _ctxKeyDepth, d), nil
}
