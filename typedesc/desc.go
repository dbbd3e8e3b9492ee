package typedesc

import (
	"encoding/binary"
	"hash/fnv"
	"iter"
	"strconv"
	"strings"

	"github.com/cottand/fwd/util"
	"github.com/hashicorp/go-set/v3"
)

// Qual is a bit set of type qualifiers attached to a single nesting level of
// a description.
type Qual uint8

const (
	QualConst Qual = 1 << iota
	QualVolatile
)

func (q Qual) String() string {
	var parts []string
	if q&QualConst != 0 {
		parts = append(parts, "const")
	}
	if q&QualVolatile != 0 {
		parts = append(parts, "volatile")
	}
	return strings.Join(parts, " ")
}

// Desc is the structural shape of a type: a base identity plus
// pointer/array/member-pointer nesting, with qualifier flags at each level.
//
// The set of implementations is closed; Similar and Decay switch over it
// exhaustively.
type Desc interface {
	Hash() uint64
	String() string

	// children yields the element descriptions nested directly under this
	// one (zero for Named, one for everything else)
	children() iter.Seq[Desc]
}

var (
	_ Desc = (*Named)(nil)
	_ Desc = (*Pointer)(nil)
	_ Desc = (*Member)(nil)
	_ Desc = (*Array)(nil)
	_ Desc = (*Slice)(nil)
	_ Desc = (*Ref)(nil)
)

// Equal compares two descriptions for exact structural identity, qualifiers
// included. Like the rest of the module it goes through Hash rather than
// per-type Equals methods.
func Equal[H, HH set.Hasher[uint64]](this H, other HH) bool {
	return this.Hash() == other.Hash()
}

// Named is a non-decomposable base identity, like "int" or "main.Foo".
type Named struct {
	Name string
	Qual Qual
}

func (d *Named) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Named"))
	_, _ = h.Write([]byte{byte(d.Qual)})
	_, _ = h.Write([]byte(d.Name))
	return h.Sum64()
}

func (d *Named) String() string {
	if d.Qual != 0 {
		return d.Qual.String() + " " + d.Name
	}
	return d.Name
}

func (d *Named) children() iter.Seq[Desc] {
	return func(yield func(Desc) bool) {}
}

// Pointer is a pointer to Elem.
type Pointer struct {
	Elem Desc
	Qual Qual
}

func (d *Pointer) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Pointer"))
	_, _ = h.Write([]byte{byte(d.Qual)})
	arr := binary.LittleEndian.AppendUint64(nil, d.Elem.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (d *Pointer) String() string {
	return d.Elem.String() + "*" + qualSuffix(d.Qual)
}

func (d *Pointer) children() iter.Seq[Desc] {
	return util.SingleIter(d.Elem)
}

// Member is a pointer to a member of type Elem inside host class Class.
type Member struct {
	Class string
	Elem  Desc
	Qual  Qual
}

func (d *Member) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Member"))
	_, _ = h.Write([]byte{byte(d.Qual)})
	_, _ = h.Write([]byte(d.Class))
	arr := binary.LittleEndian.AppendUint64(nil, d.Elem.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (d *Member) String() string {
	return d.Elem.String() + " " + d.Class + "::*" + qualSuffix(d.Qual)
}

func (d *Member) children() iter.Seq[Desc] {
	return util.SingleIter(d.Elem)
}

// Array is a fixed-size array of Len elements of Elem.
type Array struct {
	Len  int
	Elem Desc
	Qual Qual
}

func (d *Array) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Array"))
	_, _ = h.Write([]byte{byte(d.Qual)})
	arr := binary.LittleEndian.AppendUint64(nil, uint64(d.Len))
	arr = binary.LittleEndian.AppendUint64(arr, d.Elem.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (d *Array) String() string {
	return d.Elem.String() + "[" + strconv.Itoa(d.Len) + "]" + qualSuffix(d.Qual)
}

func (d *Array) children() iter.Seq[Desc] {
	return util.SingleIter(d.Elem)
}

// Slice is an array of unknown bound over Elem.
type Slice struct {
	Elem Desc
	Qual Qual
}

func (d *Slice) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Slice"))
	_, _ = h.Write([]byte{byte(d.Qual)})
	arr := binary.LittleEndian.AppendUint64(nil, d.Elem.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (d *Slice) String() string {
	return d.Elem.String() + "[]" + qualSuffix(d.Qual)
}

func (d *Slice) children() iter.Seq[Desc] {
	return util.SingleIter(d.Elem)
}

// Ref is the binding-mode layer over a description: a borrowed reference
// when Transfer is false, an ownership-transferring one when true.
// It only makes sense as the outermost level and Decay removes it first.
type Ref struct {
	Elem     Desc
	Transfer bool
}

func (d *Ref) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Ref"))
	if d.Transfer {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	arr := binary.LittleEndian.AppendUint64(nil, d.Elem.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (d *Ref) String() string {
	if d.Transfer {
		return d.Elem.String() + "&&"
	}
	return d.Elem.String() + "&"
}

func (d *Ref) children() iter.Seq[Desc] {
	return util.SingleIter(d.Elem)
}

func qualSuffix(q Qual) string {
	if q == 0 {
		return ""
	}
	return " " + q.String()
}

// Components yields d and every description nested under it, outermost
// first.
func Components(d Desc) iter.Seq[Desc] {
	return func(yield func(Desc) bool) {
		remaining := []Desc{d}
		for len(remaining) > 0 {
			first := remaining[0]
			remaining = remaining[1:]
			if !yield(first) {
				return
			}
			for child := range first.children() {
				remaining = append(remaining, child)
			}
		}
	}
}
