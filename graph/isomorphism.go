// File: isomorphism.go
// Role: subgraph isomorphism with attribute subsumption, the pattern-
// matching contract §6 of the module names as an external collaborator
// but which no pack example exposes as a ready-made library — it is
// implemented here directly, grounded on the reference implementation's
// find_matching combinatorial approach (candidate filtering by
// attribute subsumption, then isomorphism search restricted to the
// filtered node set). As in the reference implementation, the search
// itself runs over a canonically relabeled copy of host rather than
// host's own (caller-chosen, possibly sparse or string-heavy) ids, via
// Relabel; results are translated back through the inverse mapping
// before being returned.
package graph

import (
	"strconv"

	"github.com/lvlath-rewrite/regraph/attrs"
)

// FindSubgraphs returns every injective mapping from pattern's nodes to
// host's nodes such that:
//   - node attributes are subsumed: pattern.NodeAttrs(p) ⊑ host.NodeAttrs(mapping[p])
//   - edge attributes are subsumed for every pattern edge
//   - every pattern edge (u,v) maps to an existing host edge (mapping[u], mapping[v])
//
// allowed, if non-nil, additionally restricts which host node a given
// pattern node may map to. Hierarchy.FindMatching passes every host
// node as the pool and applies pattern_typing to the results
// afterwards.
func FindSubgraphs(pattern, host *Graph, allowed map[ID][]ID) []map[ID]ID {
	canonical, toCanonical, fromCanonical := canonicalize(host)

	canonicalAllowed := allowed
	if allowed != nil {
		canonicalAllowed = make(map[ID][]ID, len(allowed))
		for p, pool := range allowed {
			mapped := make([]ID, len(pool))
			for i, h := range pool {
				mapped[i] = toCanonical[h]
			}
			canonicalAllowed[p] = mapped
		}
	}

	patternNodes := pattern.NodeIDs()
	candidates := make(map[ID][]ID, len(patternNodes))
	for _, p := range patternNodes {
		var cands []ID
		pool := canonical.NodeIDs()
		if canonicalAllowed != nil {
			pool = canonicalAllowed[p]
		}
		for _, h := range pool {
			if attrs.Subsumes(pattern.NodeAttrs(p), canonical.NodeAttrs(h)) {
				cands = append(cands, h)
			}
		}
		candidates[p] = cands
	}

	var results []map[ID]ID
	assignment := make(map[ID]ID, len(patternNodes))
	used := make(map[ID]bool, len(patternNodes))

	var backtrack func(idx int)
	backtrack = func(idx int) {
		if idx == len(patternNodes) {
			if checkEdges(pattern, canonical, assignment) {
				out := make(map[ID]ID, len(assignment))
				for k, v := range assignment {
					out[k] = fromCanonical[v]
				}
				results = append(results, out)
			}
			return
		}
		p := patternNodes[idx]
		for _, h := range candidates[p] {
			if used[h] {
				continue
			}
			assignment[p] = h
			used[h] = true
			backtrack(idx + 1)
			delete(assignment, p)
			used[h] = false
		}
	}
	backtrack(0)

	return results
}

// canonicalize relabels host to sequential ids n0..n(K-1) in NodeIDs()
// order (the reference implementation's get_relabeled_graph technique
// for find_matching, which canonicalizes the host before searching so
// the search never depends on a caller's own id scheme). Returns the
// relabeled graph along with both directions of the mapping.
func canonicalize(host *Graph) (canonical *Graph, toCanonical, fromCanonical map[ID]ID) {
	ids := host.NodeIDs()
	toCanonical = make(map[ID]ID, len(ids))
	fromCanonical = make(map[ID]ID, len(ids))
	for i, id := range ids {
		newID := ID("n" + strconv.Itoa(i))
		toCanonical[id] = newID
		fromCanonical[newID] = id
	}

	return host.Relabel(toCanonical), toCanonical, fromCanonical
}

// checkEdges verifies every pattern edge is realized by an attribute-
// subsuming host edge under assignment.
func checkEdges(pattern, host *Graph, assignment map[ID]ID) bool {
	for _, e := range pattern.Edges() {
		hu, hv := assignment[e.From], assignment[e.To]
		hostBag, ok := host.EdgeAttrs(hu, hv)
		if !ok {
			return false
		}
		patBag, _ := pattern.EdgeAttrs(e.From, e.To)
		if !attrs.Subsumes(patBag, hostBag) {
			return false
		}
	}

	return true
}
