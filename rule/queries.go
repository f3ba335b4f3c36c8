// File: queries.go
// Role: the read-only derived queries of §4.2, computed from the
// current span rather than tracked as mutation history.
package rule

import (
	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
)

// RemovedNodes returns the L-nodes with no surviving P-preimage.
func (r *Rule) RemovedNodes() []graph.ID {
	var out []graph.ID
	for _, n := range r.L.NodeIDs() {
		if len(hom.KeysByValue(r.PL, n)) == 0 {
			out = append(out, n)
		}
	}

	return out
}

// RemovedEdges returns the L-edges with no surviving image in P across
// every preimage pair of their endpoints.
func (r *Rule) RemovedEdges() []graph.EdgePair {
	removedNode := make(map[graph.ID]bool)
	for _, n := range r.RemovedNodes() {
		removedNode[n] = true
	}

	var out []graph.EdgePair
	for _, e := range r.L.Edges() {
		if removedNode[e.From] || removedNode[e.To] {
			continue
		}
		survives := false
		for _, a := range hom.KeysByValue(r.PL, e.From) {
			for _, b := range hom.KeysByValue(r.PL, e.To) {
				if r.P.HasEdge(a, b) {
					survives = true
				}
			}
		}
		if !survives {
			out = append(out, e)
		}
	}

	return out
}

// ClonedNodes returns, for every L-node with more than one P-preimage,
// the sorted list of those preimages.
func (r *Rule) ClonedNodes() map[graph.ID][]graph.ID {
	out := make(map[graph.ID][]graph.ID)
	for _, n := range r.L.NodeIDs() {
		ps := hom.KeysByValue(r.PL, n)
		if len(ps) > 1 {
			out[n] = ps
		}
	}

	return out
}

// MergedNodes returns the R-nodes with more than one P-preimage.
func (r *Rule) MergedNodes() []graph.ID {
	var out []graph.ID
	for _, n := range r.R.NodeIDs() {
		if len(hom.KeysByValue(r.PR, n)) > 1 {
			out = append(out, n)
		}
	}

	return out
}

// AddedNodes returns the R-nodes with no P-preimage.
func (r *Rule) AddedNodes() []graph.ID {
	var out []graph.ID
	for _, n := range r.R.NodeIDs() {
		if len(hom.KeysByValue(r.PR, n)) == 0 {
			out = append(out, n)
		}
	}

	return out
}

// AddedEdges returns the R-edges with no corresponding P-edge across
// every preimage pair of their endpoints (an edge with an endpoint
// that is itself an added node trivially counts).
func (r *Rule) AddedEdges() []graph.EdgePair {
	var out []graph.EdgePair
	for _, e := range r.R.Edges() {
		pu := hom.KeysByValue(r.PR, e.From)
		pv := hom.KeysByValue(r.PR, e.To)
		if len(pu) == 0 || len(pv) == 0 {
			out = append(out, e)
			continue
		}
		found := false
		for _, a := range pu {
			for _, b := range pv {
				if r.P.HasEdge(a, b) {
					found = true
				}
			}
		}
		if !found {
			out = append(out, e)
		}
	}

	return out
}

// AddedNodeAttrs returns the attribute values present on the R-node
// nRHS but absent from every one of its P-preimages (the full bag if
// the node has none, i.e. it was itself added).
func (r *Rule) AddedNodeAttrs(nRHS graph.ID) attrs.Bag {
	preimages := hom.KeysByValue(r.PR, nRHS)
	if len(preimages) == 0 {
		return r.R.NodeAttrs(nRHS).Clone()
	}
	base := attrs.Bag{}
	for _, p := range preimages {
		base = attrs.Union(base, r.P.NodeAttrs(p))
	}

	return attrs.Difference(r.R.NodeAttrs(nRHS), base)
}

// RemovedNodeAttrs returns the attribute values present on the L-node
// nLHS but absent from every one of its P-preimages (the full bag if
// the node was itself removed).
func (r *Rule) RemovedNodeAttrs(nLHS graph.ID) attrs.Bag {
	preimages := hom.KeysByValue(r.PL, nLHS)
	if len(preimages) == 0 {
		return r.L.NodeAttrs(nLHS).Clone()
	}
	remaining := attrs.Bag{}
	for _, p := range preimages {
		remaining = attrs.Union(remaining, r.P.NodeAttrs(p))
	}

	return attrs.Difference(r.L.NodeAttrs(nLHS), remaining)
}

// IsRestrictive reports whether applying r can remove structure: any
// node, edge, or attribute value absent from the result.
func (r *Rule) IsRestrictive() bool {
	if len(r.RemovedNodes()) > 0 || len(r.RemovedEdges()) > 0 {
		return true
	}
	for _, n := range r.L.NodeIDs() {
		if len(r.RemovedNodeAttrs(n)) > 0 {
			return true
		}
	}

	return false
}

// IsRelaxing reports whether applying r can add structure: any node,
// edge, or attribute value absent from the pattern.
func (r *Rule) IsRelaxing() bool {
	if len(r.AddedNodes()) > 0 || len(r.AddedEdges()) > 0 {
		return true
	}
	for _, n := range r.R.NodeIDs() {
		if len(r.AddedNodeAttrs(n)) > 0 {
			return true
		}
	}

	return false
}
