// Package forward implements a single-slot value holder that accepts any
// source whose type is alike its own declared type, and later hands the
// held value back out under an ownership-transferring handle.
package forward

import (
	"reflect"

	"github.com/cottand/fwd/fwderr"
	"github.com/cottand/fwd/internal/log"
	"github.com/cottand/fwd/typedesc"
)

var logger = log.DefaultLogger.With("section", "forward")

// Forwarder holds exactly one value of its declared type T for its entire
// lifetime. It is built through New, Convert, ConvertMove, Move, Clone or
// Of — never re-bound afterwards — and read through Forward.
//
// A zero Forwarder holds T's zero value under T's own description; it is
// indistinguishable from a moved-from one.
type Forwarder[T any] struct {
	arg  T
	desc typedesc.Desc
}

// isForwarder marks the Forwarder family for IsForwarder; no type outside
// this package can carry the marker.
func (Forwarder[T]) isForwarder() {}

type forwarderMarker interface{ isForwarder() }

var markerType = reflect.TypeOf((*forwarderMarker)(nil)).Elem()

// IsForwarder reports whether t is an instantiation of Forwarder.
func IsForwarder(t reflect.Type) bool {
	return t != nil && t.Implements(markerType)
}

// IsForwarderType is the generic shorthand for IsForwarder.
func IsForwarderType[X any]() bool {
	return IsForwarder(reflect.TypeFor[X]())
}

// New builds a forwarder over T from a raw source value of type U. The
// source's declared description must be alike T; a borrowed source is
// copied into the slot and an owned one is consumed on success.
//
// Rejections happen at this boundary, before any instance exists: the error
// carries fwderr.NotAlike when the gate fails, or fwderr.NotConstructible
// when the gate passes but a T cannot be built from a U value.
func New[T, U any](src Value[U]) (Forwarder[T], error) {
	target := typedesc.For[T]()
	if !typedesc.Alike(src.desc, target) {
		logger.Debug("construction rejected",
			"from", src.desc.String(), "to", target.String(), "mode", src.mode.String())
		return Forwarder[T]{}, fwderr.New(fwderr.NewNotAlike{From: src.desc.String(), To: target.String()})
	}
	arg, err := construct[T](src.arg)
	if err != nil {
		return Forwarder[T]{}, err
	}
	// only now may an owned source be consumed: rejection must leave the
	// caller's value alone
	src.consume()
	return Forwarder[T]{arg: arg, desc: target}, nil
}

// Of is the deduction shorthand: it wraps a bare value under the value's
// own type. It refuses to nest forwarders; construct from an existing
// forwarder with Clone, Move, Convert or ConvertMove instead.
func Of[T any](v T) (Forwarder[T], error) {
	if IsForwarderType[T]() {
		logger.Debug("shorthand rejected", "type", reflect.TypeFor[T]().String())
		return Forwarder[T]{}, fwderr.New(fwderr.NewNestedForwarder{Type: reflect.TypeFor[T]()})
	}
	return Forwarder[T]{arg: v, desc: typedesc.For[T]()}, nil
}

// Clone builds a forwarder over the same T by copying the slot.
func (f Forwarder[T]) Clone() Forwarder[T] {
	return Forwarder[T]{arg: f.arg, desc: f.declared()}
}

// Move builds a forwarder over the same T by transferring the slot out of
// other, which is left holding T's zero value but remains usable.
func Move[T any](other *Forwarder[T]) Forwarder[T] {
	var zero T
	moved := Forwarder[T]{arg: other.arg, desc: other.declared()}
	other.arg = zero
	return moved
}

// Convert builds a forwarder over T by copying the slot of a forwarder
// over a different but alike U.
func Convert[T, U any](other Forwarder[U]) (Forwarder[T], error) {
	target := typedesc.For[T]()
	from := other.declared()
	if !typedesc.Alike(from, target) {
		logger.Debug("conversion rejected", "from", from.String(), "to", target.String())
		return Forwarder[T]{}, fwderr.New(fwderr.NewNotAlike{From: from.String(), To: target.String()})
	}
	arg, err := construct[T](other.arg)
	if err != nil {
		return Forwarder[T]{}, err
	}
	return Forwarder[T]{arg: arg, desc: target}, nil
}

// ConvertMove is Convert with the slot transferred out of other rather
// than copied.
func ConvertMove[T, U any](other *Forwarder[U]) (Forwarder[T], error) {
	converted, err := Convert[T](*other)
	if err != nil {
		return converted, err
	}
	var zero U
	other.arg = zero
	return converted, nil
}

// Forward hands out an ownership-transferring handle to the held value.
// The slot itself is untouched: calling Forward repeatedly is well defined
// and every handle is equally valid, but actually taking the value through
// two separate handles is the caller's own double-move to answer for.
func (f *Forwarder[T]) Forward() Handle[T] {
	return Handle[T]{p: &f.arg}
}

// Desc returns the description of the declared type T.
func (f *Forwarder[T]) Desc() typedesc.Desc {
	return f.declared()
}

func (f *Forwarder[T]) declared() typedesc.Desc {
	if f.desc != nil {
		return f.desc
	}
	return typedesc.For[T]()
}

// Handle is an ownership-transferring reference to a held value: the
// receiver may take the value over rather than duplicate it.
type Handle[T any] struct {
	p *T
}

// Ref observes the value without transferring it.
func (h Handle[T]) Ref() *T { return h.p }

// Take transfers the value out, leaving the slot it came from at T's zero
// value. Taking from a second handle to the same slot yields that zero.
func (h Handle[T]) Take() T {
	var zero T
	v := *h.p
	*h.p = zero
	return v
}

// construct builds a T from a source value, falling back to a Go
// conversion when the types differ. CanConvert rather than ConvertibleTo:
// a slice converts to an array type only when it is long enough, and a
// too-short source must surface as the boundary error, not a panic.
func construct[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	target := reflect.TypeFor[T]()
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.CanConvert(target) {
		return rv.Convert(target).Interface().(T), nil
	}
	var zero T
	return zero, fwderr.New(fwderr.NewNotConstructible{From: reflect.TypeOf(v), To: target})
}
