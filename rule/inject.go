// File: inject.go
// Role: the node/edge injection operations of §4.2: remove, clone,
// merge, and the R-only additions.
package rule

import (
	"fmt"
	"sort"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
)

// InjectRemoveNode drops every P-preimage of nLHS from P and R, along
// with every edge incident to those preimages.
func (r *Rule) InjectRemoveNode(nLHS graph.ID) error {
	preimages := hom.KeysByValue(r.PL, nLHS)
	if len(preimages) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownNode, nLHS)
	}

	for _, p := range preimages {
		rImg := r.PR[p]
		delete(r.PL, p)
		delete(r.PR, p)
		_ = r.P.RemoveNode(p)
		if len(hom.KeysByValue(r.PR, rImg)) == 0 && r.R.HasNode(rImg) {
			_ = r.R.RemoveNode(rImg)
		}
	}

	return nil
}

// InjectCloneNode clones the (first, sorted) P-preimage of nLHS: a
// fresh P-node duplicating every incident P-edge, and a fresh R-node
// duplicating every incident R-edge of the original's R-image. If
// newName is non-empty it names the new P-node (falling back to a
// fresh suffix on collision).
func (r *Rule) InjectCloneNode(nLHS, newName graph.ID) (newP, newR graph.ID, err error) {
	preimages := hom.KeysByValue(r.PL, nLHS)
	if len(preimages) == 0 {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownNode, nLHS)
	}
	orig := preimages[0]

	base := string(newName)
	if base == "" {
		base = string(orig)
	}
	newP = freshID(r.P, base)
	if err := r.P.CloneNodeAs(orig, newP); err != nil {
		return "", "", err
	}
	r.PL[newP] = nLHS

	origR := r.PR[orig]
	newR = freshID(r.R, string(origR))
	if err := r.R.CloneNodeAs(origR, newR); err != nil {
		return "", "", err
	}
	r.PR[newP] = newR

	return newP, newR, nil
}

// InjectMergeNodes adds one new R-node representing the union of the
// R-images of every P-preimage of the listed L-nodes, redirects pR for
// those preimages onto it, and unions the incident R-edges (a pair
// collapsing onto itself becomes a self-loop). Fails with
// ErrNodeAlreadyRemoved if any listed node has no remaining preimage.
func (r *Rule) InjectMergeNodes(lhsNodes []graph.ID) (graph.ID, error) {
	if len(lhsNodes) < 2 {
		return "", ErrMergeTooFew
	}

	var preimages []graph.ID
	for _, l := range lhsNodes {
		ps := hom.KeysByValue(r.PL, l)
		if len(ps) == 0 {
			return "", fmt.Errorf("%w: %q", ErrNodeAlreadyRemoved, l)
		}
		preimages = append(preimages, ps...)
	}

	rList := distinctSorted(r.PR, preimages)
	newR := mergedName(r.R, rList)

	mergedAttrs := attrs.Bag{}
	for _, x := range rList {
		mergedAttrs = attrs.Union(mergedAttrs, r.R.NodeAttrs(x))
	}
	if !r.R.HasNode(newR) {
		_ = r.R.AddNode(newR, mergedAttrs)
	} else {
		_ = r.R.AddNodeAttrs(newR, mergedAttrs)
	}

	for _, x := range rList {
		if x == newR {
			continue
		}
		for _, e := range r.R.Edges() {
			if e.From != x && e.To != x {
				continue
			}
			from, to := e.From, e.To
			if from == x {
				from = newR
			}
			if to == x {
				to = newR
			}
			bag, _ := r.R.EdgeAttrs(e.From, e.To)
			addOrUnionEdge(r.R, from, to, bag)
		}
	}
	for _, x := range rList {
		if x != newR {
			_ = r.R.RemoveNode(x)
		}
	}

	for _, p := range preimages {
		r.PR[p] = newR
	}

	return newR, nil
}

// InjectRemoveEdge removes the edge between every P-preimage pair of
// (uLHS, vLHS) from P, and its image from R.
func (r *Rule) InjectRemoveEdge(uLHS, vLHS graph.ID) error {
	pu := hom.KeysByValue(r.PL, uLHS)
	pv := hom.KeysByValue(r.PL, vLHS)
	if len(pu) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownNode, uLHS)
	}
	if len(pv) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownNode, vLHS)
	}

	removed := false
	for _, a := range pu {
		for _, b := range pv {
			if !r.P.HasEdge(a, b) {
				continue
			}
			_ = r.P.RemoveEdge(a, b)
			removed = true
			ra, rb := r.PR[a], r.PR[b]
			if r.R.HasEdge(ra, rb) {
				_ = r.R.RemoveEdge(ra, rb)
			}
		}
	}
	if !removed {
		return fmt.Errorf("%w: (%q,%q)", graph.ErrNoSuchEdge, uLHS, vLHS)
	}

	return nil
}

// InjectAddNode creates n in R only.
func (r *Rule) InjectAddNode(n graph.ID, bag attrs.Bag) error {
	return r.R.AddNode(n, bag)
}

// InjectAddEdge creates edge (u,v) in R only.
func (r *Rule) InjectAddEdge(u, v graph.ID, bag attrs.Bag) error {
	return r.R.AddEdge(u, v, bag)
}

// distinctSorted returns the distinct, sorted images of ids under m.
func distinctSorted(m hom.Hom, ids []graph.ID) []graph.ID {
	seen := make(map[graph.ID]bool, len(ids))
	var out []graph.ID
	for _, id := range ids {
		img := m[id]
		if !seen[img] {
			seen[img] = true
			out = append(out, img)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// mergedName joins the given node names with "_", extended until the
// result does not collide with an R-node outside the merge set.
func mergedName(g *graph.Graph, ids []graph.ID) graph.ID {
	joined := ""
	for i, id := range ids {
		if i > 0 {
			joined += "_"
		}
		joined += string(id)
	}
	inSet := make(map[graph.ID]bool, len(ids))
	for _, id := range ids {
		inSet[id] = true
	}
	name := graph.ID(joined)
	for g.HasNode(name) && !inSet[name] {
		name += "_m"
	}

	return name
}

// addOrUnionEdge adds (u,v) to g with bag, or unions bag into an
// existing edge's attributes.
func addOrUnionEdge(g *graph.Graph, u, v graph.ID, bag attrs.Bag) {
	if g.HasEdge(u, v) {
		_ = g.AddEdgeAttrs(u, v, bag)
		return
	}
	_ = g.AddEdge(u, v, bag.Clone())
}
