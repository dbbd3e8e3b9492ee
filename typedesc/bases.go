package typedesc

import (
	"slices"

	"github.com/cottand/fwd/util"
	"github.com/cottand/fwd/util/hset"
)

// Hasher adapts description hashing to immutable-style collections.
type Hasher[D Desc] struct{}

func (Hasher[D]) Hash(d D) uint32   { return uint32(d.Hash()) }
func (Hasher[D]) Equal(a, b D) bool { return a.Hash() == b.Hash() }

// Bases collects the distinct base identities mentioned at any nesting
// level of d, ignoring qualifiers, in a deterministic order.
func Bases(d Desc) []*Named {
	found := hset.Empty[*Named](Hasher[*Named]{})
	for c := range Components(d) {
		if named, ok := stripQual(c).(*Named); ok {
			found.Add(named)
		}
	}
	out := slices.Collect(found.All())
	slices.SortFunc(out, util.ComparingHashable[*Named, uint64])
	return out
}
