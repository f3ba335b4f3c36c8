// File: attrs_ops.go
// Role: the *_node_attrs/*_edge_attrs mutators of §4.2. Removals apply
// to P and L; additions apply only to R; Update* sets a bag directly
// on one named side.
package rule

import (
	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
)

// Side names one leg of the span for the Update* operations.
type Side int

const (
	SideL Side = iota
	SideP
	SideR
)

func (r *Rule) graphFor(s Side) *graph.Graph {
	switch s {
	case SideL:
		return r.L
	case SideP:
		return r.P
	default:
		return r.R
	}
}

// RemoveNodeAttrsLHS removes toRemove from nLHS in L and from every one
// of its surviving P-preimages.
func (r *Rule) RemoveNodeAttrsLHS(nLHS graph.ID, toRemove attrs.Bag) error {
	if err := r.L.RemoveNodeAttrs(nLHS, toRemove); err != nil {
		return err
	}
	for _, p := range hom.KeysByValue(r.PL, nLHS) {
		_ = r.P.RemoveNodeAttrs(p, toRemove)
	}

	return nil
}

// RemoveEdgeAttrsLHS removes toRemove from the L-edge (uLHS,vLHS) and
// from its image in every preimage pair of P.
func (r *Rule) RemoveEdgeAttrsLHS(uLHS, vLHS graph.ID, toRemove attrs.Bag) error {
	if err := r.L.RemoveEdgeAttrs(uLHS, vLHS, toRemove); err != nil {
		return err
	}
	for _, a := range hom.KeysByValue(r.PL, uLHS) {
		for _, b := range hom.KeysByValue(r.PL, vLHS) {
			if r.P.HasEdge(a, b) {
				_ = r.P.RemoveEdgeAttrs(a, b, toRemove)
			}
		}
	}

	return nil
}

// AddNodeAttrsRHS adds extra to the R-node nRHS only.
func (r *Rule) AddNodeAttrsRHS(nRHS graph.ID, extra attrs.Bag) error {
	return r.R.AddNodeAttrs(nRHS, extra)
}

// AddEdgeAttrsRHS adds extra to the R-edge (uRHS,vRHS) only.
func (r *Rule) AddEdgeAttrsRHS(uRHS, vRHS graph.ID, extra attrs.Bag) error {
	return r.R.AddEdgeAttrs(uRHS, vRHS, extra)
}

// UpdateNodeAttrs overwrites the attribute bag of n on the named side
// directly, with no propagation to the other legs of the span.
func (r *Rule) UpdateNodeAttrs(side Side, n graph.ID, bag attrs.Bag) error {
	return r.graphFor(side).SetNodeAttrs(n, bag)
}

// UpdateEdgeAttrs overwrites the attribute bag of (u,v) on the named
// side directly, with no propagation to the other legs of the span.
func (r *Rule) UpdateEdgeAttrs(side Side, u, v graph.ID, bag attrs.Bag) error {
	return r.graphFor(side).SetEdgeAttrs(u, v, bag)
}
