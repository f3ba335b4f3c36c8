// File: nary_pullback.go
// Role: the n-ary pullback, §4.1.4, used during backward propagation
// for every ancestor, with one cospan per already-rewritten successor
// (a single cospan reduces to one Pullback).
package category

import (
	"sort"

	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
)

// Cospan is one leg B -bd-> D <-cd- C of an n-ary pullback family.
type Cospan struct {
	C, D *graph.Graph
	BD   hom.Hom
	CD   hom.Hom
}

// NaryPullback computes pairwise pullbacks of b against every cospan in
// cospans, then pulls those pullbacks together over b, iteratively. It
// returns the apex a, its projection ab: A->B, and one projection per
// cospan key ac[key]: A -> cospans[key].C.
func NaryPullback(b *graph.Graph, cospans map[string]Cospan) (a *graph.Graph, ab hom.Hom, ac map[string]hom.Hom, err error) {
	keys := make([]string, 0, len(cospans))
	for k := range cospans {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		identity := make(hom.Hom, len(b.NodeIDs()))
		for _, n := range b.NodeIDs() {
			identity[n] = n
		}
		return b.Clone(), identity, map[string]hom.Hom{}, nil
	}

	type pb struct {
		apex   *graph.Graph
		toB    hom.Hom
		toLeaf hom.Hom
	}
	pullbacks := make(map[string]pb, len(keys))
	for _, k := range keys {
		cs := cospans[k]
		apex, toB, toLeaf, err := Pullback(b, cs.C, cs.D, cs.BD, cs.CD)
		if err != nil {
			return nil, nil, nil, err
		}
		pullbacks[k] = pb{apex: apex, toB: toB, toLeaf: toLeaf}
	}

	first := pullbacks[keys[0]]
	a = first.apex
	ab = first.toB
	ac = map[string]hom.Hom{keys[0]: first.toLeaf}

	for _, k := range keys[1:] {
		next := pullbacks[k]
		merged, mergedOld, mergedNext, err := Pullback(a, next.apex, b, ab, next.toB)
		if err != nil {
			return nil, nil, nil, err
		}
		newAB := hom.Compose(ab, mergedOld)
		newAC := make(map[string]hom.Hom, len(ac)+1)
		for name, oldAC := range ac {
			newAC[name] = hom.Compose(oldAC, mergedOld)
		}
		newAC[k] = hom.Compose(next.toLeaf, mergedNext)

		a = merged
		ab = newAB
		ac = newAC
	}

	if err := hom.CheckHom(a, b, ab, false); err != nil {
		return nil, nil, nil, err
	}
	for name, m := range ac {
		if err := hom.CheckHom(a, cospans[name].C, m, false); err != nil {
			return nil, nil, nil, err
		}
	}

	return a, ab, ac, nil
}
