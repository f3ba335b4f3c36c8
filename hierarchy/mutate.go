// File: mutate.go
// Role: add_graph, add_rule, remove_graph (§4.3).
package hierarchy

import (
	"fmt"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
	"github.com/lvlath-rewrite/regraph/rule"
)

// AddGraph inserts a GraphNode at id.
func (h *Hierarchy) AddGraph(id graph.ID, g *graph.Graph, bag attrs.Bag) error {
	if h.HasNode(id) {
		return fmt.Errorf("%w: %q", ErrIDConflict, id)
	}
	if g.Directed() != h.directed {
		return fmt.Errorf("%w: graph %q", ErrDirectednessMismatch, id)
	}

	h.nodes[id] = &node{kind: KindGraph, graph: g, attrs: bag}
	h.invalidateCache()

	return nil
}

// AddRule inserts a RuleNode at id.
func (h *Hierarchy) AddRule(id graph.ID, r *rule.Rule, bag attrs.Bag) error {
	if h.HasNode(id) {
		return fmt.Errorf("%w: %q", ErrIDConflict, id)
	}
	if r.L.Directed() != h.directed || r.P.Directed() != h.directed || r.R.Directed() != h.directed {
		return fmt.Errorf("%w: rule %q", ErrDirectednessMismatch, id)
	}

	h.nodes[id] = &node{kind: KindRule, rule: r, attrs: bag}
	h.invalidateCache()

	return nil
}

// RemoveGraph deletes id and its incident edges. If reconnect is true,
// for every (pred, id) and (id, succ) pair a composed edge pred->succ
// is added first (unless one already exists): Typing if pred is a
// graph, RuleTyping if pred is a rule, with ignore_attrs the logical OR
// of the two composed edges.
func (h *Hierarchy) RemoveGraph(id graph.ID, reconnect bool) error {
	if !h.HasNode(id) {
		return fmt.Errorf("%w: %q", ErrUnknownID, id)
	}

	if reconnect {
		preds := h.predecessorIDs(id)
		succs := h.successorIDs(id)
		for _, p := range preds {
			for _, s := range succs {
				if err := h.reconnectThrough(p, id, s); err != nil {
					return err
				}
			}
		}
	}

	delete(h.nodes, id)
	delete(h.typings, id)
	delete(h.ruleTypings, id)
	for _, edges := range h.typings {
		delete(edges, id)
	}
	for _, edges := range h.ruleTypings {
		delete(edges, id)
	}
	h.invalidateCache()

	return nil
}

func (h *Hierarchy) reconnectThrough(p, mid, s graph.ID) error {
	idEdge, ok := h.typings[mid][s]
	if !ok {
		return nil
	}
	idEdgeIgnore := idEdge.IgnoreAttrs

	if rt, ok := h.ruleTypings[p][mid]; ok {
		if _, exists := h.ruleTypings[p][s]; exists {
			return nil
		}
		lhs := hom.Compose(idEdge.Mapping, rt.LHSMapping)
		rhs := hom.Compose(idEdge.Mapping, rt.RHSMapping)
		return h.AddRuleTyping(p, s, lhs, rhs, rt.IgnoreAttrs || idEdgeIgnore, nil)
	}

	pt, ok := h.typings[p][mid]
	if !ok {
		return nil
	}
	if _, exists := h.typings[p][s]; exists {
		return nil
	}
	composed := hom.Compose(idEdge.Mapping, pt.Mapping)

	return h.AddTyping(p, s, composed, pt.IgnoreAttrs || idEdgeIgnore, nil)
}
