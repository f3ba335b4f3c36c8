// File: pushout.go
// Role: the pushout construction, §4.1.2. Resolves Design Note (a) —
// every A-preimage of a merged node is mapped through b_d, not only
// the last one visited — per the mathematical contract rather than the
// reference implementation's literal (buggy) loop.
package category

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
)

// Pushout computes the pushout of the span B <-ab- A -ac-> C: a graph D
// with homomorphisms bd: B->D, cd: C->D such that bd∘ab == cd∘ac and
// the square is universal.
func Pushout(a, b, c *graph.Graph, ab, ac hom.Hom) (d *graph.Graph, bd, cd hom.Hom, err error) {
	if err := hom.CheckHom(a, b, ab, false); err != nil {
		return nil, nil, nil, err
	}
	if err := hom.CheckHom(a, c, ac, false); err != nil {
		return nil, nil, nil, err
	}

	d = graph.NewLike(b)
	bd = make(hom.Hom)
	cd = make(hom.Hom)

	abImage := make(map[graph.ID]bool)
	for _, av := range a.NodeIDs() {
		abImage[ab[av]] = true
	}

	for _, n := range c.NodeIDs() {
		aKeys := hom.KeysByValue(ac, n)
		switch {
		case len(aKeys) == 0:
			// fresh node contributed only by C
			newName := n
			for i := 1; d.HasNode(newName); i++ {
				newName = graph.ID(string(n) + "_" + strconv.Itoa(i))
			}
			_ = d.AddNode(newName, c.NodeAttrs(n).Clone())
			cd[n] = newName
		case len(aKeys) == 1:
			aKey := aKeys[0]
			bImage := ab[aKey]
			if !d.HasNode(bImage) {
				_ = d.AddNode(bImage, attrs.Union(b.NodeAttrs(bImage), attrs.Difference(c.NodeAttrs(n), a.NodeAttrs(aKey))))
			} else {
				_ = d.AddNodeAttrs(bImage, attrs.Difference(c.NodeAttrs(n), a.NodeAttrs(aKey)))
			}
			bd[bImage] = bImage
			cd[n] = bImage
		default:
			sort.Slice(aKeys, func(i, j int) bool { return aKeys[i] < aKeys[j] })
			names := make([]string, 0, len(aKeys))
			mergedAttrs := attrs.Bag{}
			for _, aKey := range aKeys {
				names = append(names, string(ab[aKey]))
				mergedAttrs = attrs.Union(mergedAttrs, b.NodeAttrs(ab[aKey]))
			}
			mergedName := graph.ID(strings.Join(names, "_"))
			if !d.HasNode(mergedName) {
				_ = d.AddNode(mergedName, attrs.Union(mergedAttrs, attrs.Difference(c.NodeAttrs(n), mergedAttrs)))
			}
			for _, aKey := range aKeys {
				bd[ab[aKey]] = mergedName
			}
			cd[n] = mergedName
		}
	}

	for _, bn := range b.NodeIDs() {
		if abImage[bn] {
			continue
		}
		_ = d.AddNode(bn, b.NodeAttrs(bn).Clone())
		bd[bn] = bn
	}

	mergeEdgeAttrs(d, c, a, b, ab, ac, cd)
	mergeRemainingEdges(d, b, ab, bd)

	if err := hom.CheckHom(b, d, bd, false); err != nil {
		return nil, nil, nil, err
	}
	if err := hom.CheckHom(c, d, cd, false); err != nil {
		return nil, nil, nil, err
	}

	return d, bd, cd, nil
}

// mergeEdgeAttrs walks C's edges first so that preserved/merged edges
// pick up the delta-on-top-of-preserved-core attribute rule described
// in §4.1.2.
func mergeEdgeAttrs(d, c, a, b *graph.Graph, ab, ac hom.Hom, cd hom.Hom) {
	for _, e := range c.Edges() {
		n1, n2 := e.From, e.To
		aKeys1 := hom.KeysByValue(ac, n1)
		aKeys2 := hom.KeysByValue(ac, n2)
		cBag, _ := c.EdgeAttrs(n1, n2)
		if len(aKeys1) == 0 || len(aKeys2) == 0 {
			addOrExtendEdge(d, cd[n1], cd[n2], cBag)
			continue
		}
		for _, k1 := range aKeys1 {
			for _, k2 := range aKeys2 {
				if b.HasEdge(ab[k1], ab[k2]) {
					bBag, _ := b.EdgeAttrs(ab[k1], ab[k2])
					aBag, _ := a.EdgeAttrs(k1, k2)
					delta := attrs.Difference(cBag, aBag)
					addOrExtendEdge(d, cd[n1], cd[n2], attrs.Union(bBag, delta))
				} else if !d.HasEdge(cd[n1], cd[n2]) {
					addOrExtendEdge(d, cd[n1], cd[n2], cBag)
				}
			}
		}
	}
}

// mergeRemainingEdges adds any B edge not already present in D,
// verbatim, per the second walk of §4.1.2.
func mergeRemainingEdges(d, b *graph.Graph, ab, bd hom.Hom) {
	for _, e := range b.Edges() {
		n1, n2 := e.From, e.To
		aKeys1 := hom.KeysByValue(ab, n1)
		aKeys2 := hom.KeysByValue(ab, n2)
		bBag, _ := b.EdgeAttrs(n1, n2)
		if len(aKeys1) == 0 || len(aKeys2) == 0 {
			addOrExtendEdge(d, bd[n1], bd[n2], bBag)
			continue
		}
		if !d.HasEdge(bd[n1], bd[n2]) {
			addOrExtendEdge(d, bd[n1], bd[n2], bBag)
		}
	}
}

// addOrExtendEdge adds (u,v) to d with bag if absent, else unions bag
// into the existing edge's attributes.
func addOrExtendEdge(d *graph.Graph, u, v graph.ID, bag attrs.Bag) {
	if d.HasEdge(u, v) {
		_ = d.AddEdgeAttrs(u, v, bag)
		return
	}
	_ = d.AddEdge(u, v, bag.Clone())
}
