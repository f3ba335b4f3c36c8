// File: pullback_complement.go
// Role: the pullback-complement construction, §4.1.3.
package category

import (
	"strconv"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
)

// PullbackComplement computes the pullback complement of the composable
// span A -ab-> B -bd-> D, where bd must be monic: a graph C with
// ac: A->C, cd: C->D such that cd∘ac == bd∘ab and the square is
// universal. Returns ErrNotMonic if bd is not injective.
func PullbackComplement(a, b, d *graph.Graph, ab, bd hom.Hom) (c *graph.Graph, ac, cd hom.Hom, err error) {
	if err := hom.CheckHom(a, b, ab, false); err != nil {
		return nil, nil, nil, err
	}
	if err := hom.CheckHom(b, d, bd, false); err != nil {
		return nil, nil, nil, err
	}
	if !hom.Monic(bd) {
		return nil, nil, nil, ErrNotMonic
	}

	c = graph.NewLike(b)
	ac = make(hom.Hom)
	cd = make(hom.Hom)

	imageBD := make(map[graph.ID]bool, len(b.NodeIDs()))
	for _, bn := range b.NodeIDs() {
		imageBD[bd[bn]] = true
	}

	// clonesOf[t] collects every C-node whose cd image is t, in the
	// order created: the first entry is always the non-cloned "home"
	// node; later entries are clones created when multiple A-nodes
	// share the same D-target through bd∘ab.
	clonesOf := make(map[graph.ID][]graph.ID)

	for _, n := range a.NodeIDs() {
		t := bd[ab[n]]
		if !c.HasNode(t) {
			bag := attrs.Union(attrs.Difference(d.NodeAttrs(t), b.NodeAttrs(ab[n])), a.NodeAttrs(n))
			_ = c.AddNode(t, bag)
			ac[n] = t
			cd[t] = t
			clonesOf[t] = append(clonesOf[t], t)
		} else {
			newName := t
			for i := 1; c.HasNode(newName); i++ {
				newName = graph.ID(string(t) + strconv.Itoa(i))
			}
			bag := attrs.Union(attrs.Difference(d.NodeAttrs(t), b.NodeAttrs(ab[n])), a.NodeAttrs(n))
			_ = c.AddNode(newName, bag)
			ac[n] = newName
			cd[newName] = t
			clonesOf[t] = append(clonesOf[t], newName)
		}
	}

	for _, n := range d.NodeIDs() {
		if imageBD[n] || c.HasNode(n) {
			continue
		}
		_ = c.AddNode(n, d.NodeAttrs(n).Clone())
		cd[n] = n
	}

	// Preserved edges, carried from A through the delta-on-top-of-B rule.
	for _, e := range a.Edges() {
		dBag, _ := d.EdgeAttrs(bd[ab[e.From]], bd[ab[e.To]])
		bBag, _ := b.EdgeAttrs(ab[e.From], ab[e.To])
		aBag, _ := a.EdgeAttrs(e.From, e.To)
		bag := attrs.Union(attrs.Difference(dBag, bBag), aBag)
		if !c.HasEdge(ac[e.From], ac[e.To]) {
			_ = c.AddEdge(ac[e.From], ac[e.To], bag)
		} else {
			_ = c.AddEdgeAttrs(ac[e.From], ac[e.To], bag)
		}
	}

	// Remaining D edges: verbatim when at least one endpoint is outside
	// image(bd); one copy per clone×clone combination when both
	// endpoints are images but the preimage edge is absent from B.
	for _, e := range d.Edges() {
		bKeys1 := hom.KeysByValue(bd, e.From)
		bKeys2 := hom.KeysByValue(bd, e.To)
		dBag, _ := d.EdgeAttrs(e.From, e.To)
		if len(bKeys1) == 0 || len(bKeys2) == 0 {
			if !c.HasEdge(e.From, e.To) {
				_ = c.AddEdge(e.From, e.To, dBag.Clone())
			}
			continue
		}
		if b.HasEdge(bKeys1[0], bKeys2[0]) {
			continue
		}
		for _, c1 := range clonesOf[e.From] {
			for _, c2 := range clonesOf[e.To] {
				if !c.HasEdge(c1, c2) {
					_ = c.AddEdge(c1, c2, dBag.Clone())
				}
			}
		}
	}

	if err := hom.CheckHom(a, c, ac, false); err != nil {
		return nil, nil, nil, err
	}
	if err := hom.CheckHom(c, d, cd, false); err != nil {
		return nil, nil, nil, err
	}

	return c, ac, cd, nil
}
