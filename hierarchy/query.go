// File: query.go
// Role: node_type, get_ancestors, find_matching (§4.3).
package hierarchy

import (
	"fmt"
	"sort"

	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
)

// NodeType returns, for nodeID in the graph at graphID, the list of
// immediate type images: one per outgoing Typing edge of graphID.
func (h *Hierarchy) NodeType(graphID, nodeID graph.ID) ([]graph.ID, error) {
	if _, ok := h.Graph(graphID); !ok {
		return nil, fmt.Errorf("%w: %q is not a graph", ErrWrongNodeKind, graphID)
	}

	var out []graph.ID
	for _, t := range sortedKeys(h.typings[graphID]) {
		if img, ok := h.typings[graphID][t].Mapping[nodeID]; ok {
			out = append(out, img)
		}
	}

	return out, nil
}

// GetAncestors returns every graph reachable from graphID by outgoing
// Typing edges, each mapped to the total composed homomorphism
// graphID -> ancestor. Results are memoized until the next mutation.
func (h *Hierarchy) GetAncestors(graphID graph.ID) (map[graph.ID]hom.Hom, error) {
	g, ok := h.Graph(graphID)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a graph", ErrWrongNodeKind, graphID)
	}
	if cached, ok := h.ancestors.Get(graphID); ok {
		return cached, nil
	}

	visited := make(map[graph.ID]hom.Hom)
	var dfs func(cur graph.ID, composed hom.Hom)
	dfs = func(cur graph.ID, composed hom.Hom) {
		for _, t := range sortedKeys(h.typings[cur]) {
			next := hom.Compose(h.typings[cur][t].Mapping, composed)
			if _, seen := visited[t]; seen {
				continue
			}
			visited[t] = next
			dfs(t, next)
		}
	}
	dfs(graphID, identityOn(g))
	h.ancestors.Add(graphID, visited)

	return visited, nil
}

// FindMatching returns every match of pattern in graphID's graph, as a
// node mapping V(pattern) -> V(graph), filtered by patternTyping: for
// every parent T listed and every pattern node p, the candidate node's
// current typing to T must equal patternTyping[T][p]. If graphID has
// any outgoing typing and patternTyping is empty, returns
// ErrPatternTypingRequired.
func (h *Hierarchy) FindMatching(graphID graph.ID, pattern *graph.Graph, patternTyping map[graph.ID]hom.Hom) ([]hom.Hom, error) {
	g, ok := h.Graph(graphID)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a graph", ErrWrongNodeKind, graphID)
	}
	if len(patternTyping) == 0 && len(h.typings[graphID]) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrPatternTypingRequired, graphID)
	}

	var allowed map[graph.ID][]graph.ID
	if len(patternTyping) > 0 {
		allowed = make(map[graph.ID][]graph.ID, len(pattern.NodeIDs()))
		for _, p := range pattern.NodeIDs() {
			allowed[p] = g.NodeIDs()
		}
	}

	raw := graph.FindSubgraphs(pattern, g, allowed)

	var out []hom.Hom
	for _, m := range raw {
		candidate := hom.Hom(m)
		if matchesTyping(h, graphID, candidate, patternTyping) {
			out = append(out, candidate)
		}
	}

	return out, nil
}

func matchesTyping(h *Hierarchy, graphID graph.ID, candidate hom.Hom, patternTyping map[graph.ID]hom.Hom) bool {
	for t, want := range patternTyping {
		edge, ok := h.typings[graphID][t]
		if !ok {
			return false
		}
		for p, hostNode := range candidate {
			wantImg, required := want[p]
			if !required {
				continue
			}
			gotImg, ok := edge.Mapping[hostNode]
			if !ok || gotImg != wantImg {
				return false
			}
		}
	}

	return true
}

func sortedKeys[V any](m map[graph.ID]V) []graph.ID {
	out := make([]graph.ID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
