package typedesc

// Similar reports whether two descriptions have the same shape once
// qualifiers are ignored at every nesting level.
//
// Cases are tried in order, first match wins:
//  1. either side qualified: strip qualifiers from both, recurse
//  2. pointer vs pointer: recurse on the pointee
//  3. member pointer vs member pointer of the same host class: recurse on
//     the member type
//  4. fixed arrays of equal length: recurse on the element
//  5. unknown-bound vs unknown-bound array: recurse on the element
//  6. unknown-bound vs fixed array, either order: recurse on the element,
//     ignoring the fixed length. An unknown-bound array is similar to a
//     fixed array of ANY length with a matching element. See the note on
//     Alike before relying on this.
//  7. otherwise: identical unqualified non-decomposable type
//
// Similar is total over all description pairs and reflexive by construction.
func Similar(t, u Desc) bool {
	if qualOf(t) != 0 || qualOf(u) != 0 {
		return Similar(stripQual(t), stripQual(u))
	}
	switch t := t.(type) {
	case *Pointer:
		if u, ok := u.(*Pointer); ok {
			return Similar(t.Elem, u.Elem)
		}
	case *Member:
		if u, ok := u.(*Member); ok && t.Class == u.Class {
			return Similar(t.Elem, u.Elem)
		}
	case *Array:
		if u, ok := u.(*Array); ok && t.Len == u.Len {
			return Similar(t.Elem, u.Elem)
		}
		if u, ok := u.(*Slice); ok {
			return Similar(t.Elem, u.Elem)
		}
	case *Slice:
		if u, ok := u.(*Slice); ok {
			return Similar(t.Elem, u.Elem)
		}
		if u, ok := u.(*Array); ok {
			return Similar(t.Elem, u.Elem)
		}
	}
	// mismatched shapes, mismatched host classes, and references all end
	// up here: similar only when the descriptions are identical
	return Equal(t, u)
}

// Decay strips binding-mode information from a description, keeping only
// the value's intrinsic type: the outer Ref layer goes first, then arrays
// of either kind decay to a pointer to their element, and otherwise
// top-level qualifiers are dropped.
func Decay(d Desc) Desc {
	if ref, ok := d.(*Ref); ok {
		d = ref.Elem
	}
	switch d := d.(type) {
	case *Array:
		return &Pointer{Elem: d.Elem}
	case *Slice:
		return &Pointer{Elem: d.Elem}
	}
	return stripQual(d)
}

// Alike reports whether two descriptions denote the same value identity
// regardless of how each is currently bound: both sides are decayed, then
// required to be Similar in both argument orders.
//
// The two-directional check makes Alike symmetric by construction; it is
// also reflexive. It is the sole gate on every forwarder constructor.
func Alike(t, u Desc) bool {
	td, ud := Decay(t), Decay(u)
	return Similar(td, ud) && Similar(ud, td)
}

func qualOf(d Desc) Qual {
	switch d := d.(type) {
	case *Named:
		return d.Qual
	case *Pointer:
		return d.Qual
	case *Member:
		return d.Qual
	case *Array:
		return d.Qual
	case *Slice:
		return d.Qual
	}
	return 0
}

// stripQual removes one layer of qualification, returning d unchanged when
// it carries none.
func stripQual(d Desc) Desc {
	switch d := d.(type) {
	case *Named:
		if d.Qual == 0 {
			return d
		}
		c := *d
		c.Qual = 0
		return &c
	case *Pointer:
		if d.Qual == 0 {
			return d
		}
		c := *d
		c.Qual = 0
		return &c
	case *Member:
		if d.Qual == 0 {
			return d
		}
		c := *d
		c.Qual = 0
		return &c
	case *Array:
		if d.Qual == 0 {
			return d
		}
		c := *d
		c.Qual = 0
		return &c
	case *Slice:
		if d.Qual == 0 {
			return d
		}
		c := *d
		c.Qual = 0
		return &c
	}
	return d
}
