package forward

import (
	"github.com/cottand/fwd/typedesc"
)

// Mode is how a source value is bound when handed to a constructor.
type Mode uint8

const (
	// ModeBorrowed sources are merely referenced: constructing from one
	// copies it and the caller keeps it.
	ModeBorrowed Mode = iota
	// ModeOwned sources are transferable: constructing from one consumes
	// it.
	ModeOwned
)

func (m Mode) String() string {
	switch m {
	case ModeBorrowed:
		return "borrowed"
	case ModeOwned:
		return "owned"
	default:
		return "invalid"
	}
}

// Value couples a source value with its binding mode and the description of
// its declared type. The description defaults to the value's own Go type;
// WithDesc narrows it when the declared type carries information Go cannot
// spell, such as qualifiers.
type Value[U any] struct {
	arg  U
	src  *U // owned sources only, consumed once a construction succeeds
	mode Mode
	desc typedesc.Desc
}

// Borrowed binds v by reference: a forwarder constructed from it copies it.
func Borrowed[U any](v U) Value[U] {
	return Value[U]{
		arg:  v,
		mode: ModeBorrowed,
		desc: &typedesc.Ref{Elem: typedesc.For[U]()},
	}
}

// Moved binds the value at p as owned. A successful construction from it
// consumes the source, leaving *p at its zero value the way a moved-from
// source is left behind; a rejected construction leaves *p untouched.
func Moved[U any](p *U) Value[U] {
	return Value[U]{
		arg:  *p,
		src:  p,
		mode: ModeOwned,
		desc: &typedesc.Ref{Elem: typedesc.For[U](), Transfer: true},
	}
}

// consume zeroes an owned source once its value has moved into a slot;
// borrowed sources stay with the caller.
func (v Value[U]) consume() {
	if v.src != nil {
		var zero U
		*v.src = zero
	}
}

// WithDesc overrides the declared description of the source. The binding
// mode layer is kept: d describes the value itself, not how it is bound.
func (v Value[U]) WithDesc(d typedesc.Desc) Value[U] {
	v.desc = &typedesc.Ref{Elem: d, Transfer: v.mode == ModeOwned}
	return v
}

func (v Value[U]) Mode() Mode { return v.mode }

func (v Value[U]) Desc() typedesc.Desc { return v.desc }
