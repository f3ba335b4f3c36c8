// File: pullback.go
// Role: the pullback construction, §4.1.1.
package category

import (
	"strconv"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
)

// Pullback computes the pullback of the cospan B -bd-> D <-cd- C: a
// graph A with homomorphisms ab: A->B, ac: A->C such that the square
// commutes and is universal (every pair (n1,n2) with bd(n1)==cd(n2)
// contributes one A-node).
func Pullback(b, c, d *graph.Graph, bd, cd hom.Hom) (a *graph.Graph, ab, ac hom.Hom, err error) {
	if err := hom.CheckHom(b, d, bd, false); err != nil {
		return nil, nil, nil, err
	}
	if err := hom.CheckHom(c, d, cd, false); err != nil {
		return nil, nil, nil, err
	}

	a = graph.NewLike(b)
	ab = make(hom.Hom)
	ac = make(hom.Hom)

	for _, n1 := range b.NodeIDs() {
		for _, n2 := range c.NodeIDs() {
			if bd[n1] != cd[n2] {
				continue
			}
			name := n1
			if a.HasNode(name) {
				for i := 1; ; i++ {
					candidate := graph.ID(string(n1) + strconv.Itoa(i))
					if !a.HasNode(candidate) {
						name = candidate
						break
					}
				}
			}
			bag := attrs.Intersection(b.NodeAttrs(n1), c.NodeAttrs(n2))
			_ = a.AddNode(name, bag)
			ab[name] = n1
			ac[name] = n2
		}
	}

	nodeIDs := a.NodeIDs()
	for _, x := range nodeIDs {
		for _, y := range nodeIDs {
			if !b.HasEdge(ab[x], ab[y]) || !c.HasEdge(ac[x], ac[y]) {
				continue
			}
			bBag, _ := b.EdgeAttrs(ab[x], ab[y])
			cBag, _ := c.EdgeAttrs(ac[x], ac[y])
			if a.HasEdge(x, y) {
				continue
			}
			_ = a.AddEdge(x, y, attrs.Intersection(bBag, cBag))
		}
	}

	if err := hom.CheckHom(a, b, ab, false); err != nil {
		return nil, nil, nil, err
	}
	if err := hom.CheckHom(a, c, ac, false); err != nil {
		return nil, nil, nil, err
	}

	return a, ab, ac, nil
}
