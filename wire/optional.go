package wire

// Presence distinguishes the three states an optional wire field can be in.
// Domain entities only need absent-or-value (*T); request bodies need all
// three so that "clear this field" (explicit null) and "leave unchanged"
// (absent) stay distinguishable.
type Presence uint8

const (
	PresenceAbsent Presence = iota // Key missing from the input.
	PresenceNull                   // Key present with an explicit null.
	PresenceSet                    // Key present with a value.
)

// Opt is a tri-state optional field value. The zero value is absent.
type Opt[T any] struct {
	value T
	state Presence
}

// OptValue returns an Opt carrying v.
func OptValue[T any](v T) Opt[T] { return Opt[T]{value: v, state: PresenceSet} }

// OptNull returns an Opt representing an explicit null.
func OptNull[T any]() Opt[T] { return Opt[T]{state: PresenceNull} }

// State reports which of the three states the Opt is in.
func (o Opt[T]) State() Presence { return o.state }

// IsSet reports whether a value is present.
func (o Opt[T]) IsSet() bool { return o.state == PresenceSet }

// IsNull reports whether the field was an explicit null.
func (o Opt[T]) IsNull() bool { return o.state == PresenceNull }

// IsAbsent reports whether the field was missing entirely.
func (o Opt[T]) IsAbsent() bool { return o.state == PresenceAbsent }

// Get returns the value and whether one is present.
func (o Opt[T]) Get() (T, bool) {
	if o.state != PresenceSet {
		var zero T
		return zero, false
	}
	return o.value, true
}

// OrElse returns the value when set, def otherwise.
func (o Opt[T]) OrElse(def T) T {
	if o.state == PresenceSet {
		return o.value
	}
	return def
}
