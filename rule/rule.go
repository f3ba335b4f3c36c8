// File: rule.go
// Role: the Rule span type and its two constructors.
package rule

import (
	"strconv"

	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
)

// Rule is a DPO rewrite rule: a span L <- P -> R of attributed graphs.
// PL and PR remain valid homomorphisms after every injection
// operation. InjectCloneNode gives an L-node a second P-preimage, so
// PL is no longer monic after a clone; New rejects a non-monic PL.
type Rule struct {
	L, P, R *graph.Graph
	PL, PR  hom.Hom
}

// Identity builds the identity rule on pattern: L=P=R=pattern (deep
// copies) with pL=pR=id. from_transform(pattern) with no script is
// exactly this.
func Identity(pattern *graph.Graph) *Rule {
	l := pattern.Clone()
	p := pattern.Clone()
	r := pattern.Clone()

	pl := make(hom.Hom, len(pattern.NodeIDs()))
	pr := make(hom.Hom, len(pattern.NodeIDs()))
	for _, n := range pattern.NodeIDs() {
		pl[n] = n
		pr[n] = n
	}

	return &Rule{L: l, P: p, R: r, PL: pl, PR: pr}
}

// New builds a Rule from an explicit span, validating that pL and pR
// are homomorphisms and that pL is monic. Used when a rule arrives
// already fully formed, e.g. from hierarchy deserialization.
func New(l, p, r *graph.Graph, pl, pr hom.Hom) (*Rule, error) {
	if err := hom.CheckHom(p, l, pl, false); err != nil {
		return nil, err
	}
	if err := hom.CheckHom(p, r, pr, false); err != nil {
		return nil, err
	}
	if !hom.Monic(pl) {
		return nil, ErrPLNotMonic
	}

	return &Rule{L: l, P: p, R: r, PL: pl, PR: pr}, nil
}

// freshID returns base if it is unused in g, else the first
// base_1, base_2, ... suffix that is.
func freshID(g *graph.Graph, base string) graph.ID {
	if !g.HasNode(graph.ID(base)) {
		return graph.ID(base)
	}
	for i := 1; ; i++ {
		cand := graph.ID(base + "_" + strconv.Itoa(i))
		if !g.HasNode(cand) {
			return cand
		}
	}
}
