// File: hierarchy.go
// Role: the Hierarchy type, its constructor, and the private DAG
// traversal helpers (predecessors/successors/path enumeration/cycle
// detection) shared by typing.go, query.go, and rewrite.go.
package hierarchy

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
	"github.com/lvlath-rewrite/regraph/rule"
)

// Hierarchy is a DAG of graphs and rules linked by typing
// homomorphisms. The zero value is not usable; construct with New.
type Hierarchy struct {
	directed bool

	nodes map[graph.ID]*node

	// typings[src][tgt] is the Typing edge src->tgt (both graphs).
	typings map[graph.ID]map[graph.ID]*Typing
	// ruleTypings[src][tgt] is the RuleTyping edge src->tgt (rule->graph).
	ruleTypings map[graph.ID]map[graph.ID]*RuleTyping

	// ancestors memoizes GetAncestors, invalidated on every mutation.
	ancestors *lru.Cache[graph.ID, map[graph.ID]hom.Hom]
}

// New returns an empty Hierarchy. directed fixes the directedness
// every added graph/rule graph must match.
func New(directed bool) *Hierarchy {
	cache, _ := lru.New[graph.ID, map[graph.ID]hom.Hom](256)

	return &Hierarchy{
		directed:    directed,
		nodes:       make(map[graph.ID]*node),
		typings:     make(map[graph.ID]map[graph.ID]*Typing),
		ruleTypings: make(map[graph.ID]map[graph.ID]*RuleTyping),
		ancestors:   cache,
	}
}

// Directed reports the hierarchy's fixed directedness.
func (h *Hierarchy) Directed() bool { return h.directed }

// HasNode reports whether id names a graph or rule node.
func (h *Hierarchy) HasNode(id graph.ID) bool {
	_, ok := h.nodes[id]
	return ok
}

// Graph returns the graph stored at id, or nil and false if id is
// absent or names a rule.
func (h *Hierarchy) Graph(id graph.ID) (*graph.Graph, bool) {
	n, ok := h.nodes[id]
	if !ok || n.kind != KindGraph {
		return nil, false
	}

	return n.graph, true
}

// Rule returns the rule stored at id, or nil and false if id is
// absent or names a graph.
func (h *Hierarchy) Rule(id graph.ID) (*rule.Rule, bool) {
	n, ok := h.nodes[id]
	if !ok || n.kind != KindRule {
		return nil, false
	}

	return n.rule, true
}

// NodeIDs returns every node id in sorted order.
func (h *Hierarchy) NodeIDs() []graph.ID {
	out := make([]graph.ID, 0, len(h.nodes))
	for id := range h.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func (h *Hierarchy) invalidateCache() {
	h.ancestors.Purge()
}

// successorIDs returns every node id that id types, via Typing or
// RuleTyping, sorted.
func (h *Hierarchy) successorIDs(id graph.ID) []graph.ID {
	seen := make(map[graph.ID]bool)
	for t := range h.typings[id] {
		seen[t] = true
	}
	for t := range h.ruleTypings[id] {
		seen[t] = true
	}
	out := make([]graph.ID, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// predecessorIDs returns every node id typed onto id, sorted.
func (h *Hierarchy) predecessorIDs(id graph.ID) []graph.ID {
	var out []graph.ID
	for src, edges := range h.typings {
		if _, ok := edges[id]; ok {
			out = append(out, src)
		}
	}
	for src, edges := range h.ruleTypings {
		if _, ok := edges[id]; ok {
			out = append(out, src)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// hasPath reports whether a directed path from -> to exists using the
// edges currently present.
func (h *Hierarchy) hasPath(from, to graph.ID) bool {
	if from == to {
		return true
	}
	visited := map[graph.ID]bool{from: true}
	stack := []graph.ID{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range h.successorIDs(cur) {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}

	return false
}

// allPathMappings enumerates every simple directed path src=>tgt using
// only Typing edges (graph-to-graph) and returns the composed mapping
// of each, leaf-to-root (the mapping closest to src applied first).
func (h *Hierarchy) allPathMappings(src, tgt graph.ID) []hom.Hom {
	var out []hom.Hom
	var walk func(cur graph.ID, composed hom.Hom, visiting map[graph.ID]bool)
	walk = func(cur graph.ID, composed hom.Hom, visiting map[graph.ID]bool) {
		if cur == tgt {
			out = append(out, composed)
		}
		for next, edge := range h.typings[cur] {
			if visiting[next] {
				continue
			}
			nv := make(map[graph.ID]bool, len(visiting)+1)
			for k := range visiting {
				nv[k] = true
			}
			nv[next] = true
			walk(next, hom.Compose(edge.Mapping, composed), nv)
		}
	}

	srcGraph, ok := h.Graph(src)
	if !ok {
		return nil
	}
	identity := make(hom.Hom, len(srcGraph.NodeIDs()))
	for _, n := range srcGraph.NodeIDs() {
		identity[n] = n
	}
	walk(src, identity, map[graph.ID]bool{src: true})

	return out
}

// homEqual reports whether two homomorphisms agree on every key
// present in either.
func homEqual(a, b hom.Hom) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}

	return true
}

// identityOn returns the identity homomorphism over g's nodes.
func identityOn(g *graph.Graph) hom.Hom {
	out := make(hom.Hom, len(g.NodeIDs()))
	for _, n := range g.NodeIDs() {
		out[n] = n
	}

	return out
}
