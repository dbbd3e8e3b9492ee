package util

import (
	"cmp"
	"iter"
	"slices"

	"github.com/hashicorp/go-set/v3"
)

func SingleIter[A any](elem A) iter.Seq[A] {
	return func(yield func(A) bool) {
		yield(elem)
	}
}

func MapIter[A, B any](iter iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range iter {
			if !yield(f(v)) {
				return
			}
		}
	}
}

func SetFromSeq[V comparable](s iter.Seq[V], size int) *set.Set[V] {
	newSet := set.New[V](size)
	for item := range s {
		newSet.Insert(item)
	}
	return newSet
}

func SlicesEquivalent[A set.Hash, B, BB set.Hasher[A]](fst []B, snd []BB) bool {
	return slices.EqualFunc(fst, snd, func(e1 B, e2 BB) bool {
		return e1.Hash() == e2.Hash()
	})
}

func ComparingHashable[A set.Hasher[B], B set.Hash](a, b A) int {
	return cmp.Compare(a.Hash(), b.Hash())
}
