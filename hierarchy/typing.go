// File: typing.go
// Role: add_typing, add_rule_typing, add_partial_typing (§4.3).
package hierarchy

import (
	"fmt"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
)

// AddTyping adds a Typing edge src->tgt, both of which must be graphs.
// The mapping is validated, the edge is checked against acyclicity and
// against every existing src=>tgt path's composed mapping (I3); on any
// violation nothing is mutated.
func (h *Hierarchy) AddTyping(src, tgt graph.ID, mapping hom.Hom, ignoreAttrs bool, bag attrs.Bag) error {
	srcGraph, ok := h.Graph(src)
	if !ok {
		if !h.HasNode(src) {
			return fmt.Errorf("%w: %q", ErrUnknownID, src)
		}
		return fmt.Errorf("%w: %q is not a graph", ErrWrongNodeKind, src)
	}
	tgtGraph, ok := h.Graph(tgt)
	if !ok {
		if !h.HasNode(tgt) {
			return fmt.Errorf("%w: %q", ErrUnknownID, tgt)
		}
		return fmt.Errorf("%w: %q is not a graph", ErrWrongNodeKind, tgt)
	}

	if err := hom.CheckHom(srcGraph, tgtGraph, mapping, ignoreAttrs); err != nil {
		return err
	}
	if h.hasPath(tgt, src) {
		return fmt.Errorf("%w: %q -> %q", ErrHierarchyCycle, src, tgt)
	}
	for _, existing := range h.allPathMappings(src, tgt) {
		if !homEqual(existing, mapping) {
			return fmt.Errorf("%w: %q -> %q", ErrCommutationViolation, src, tgt)
		}
	}

	if h.typings[src] == nil {
		h.typings[src] = make(map[graph.ID]*Typing)
	}
	h.typings[src][tgt] = &Typing{Mapping: mapping, IgnoreAttrs: ignoreAttrs, Attrs: bag}
	h.invalidateCache()

	return nil
}

// AddRuleTyping adds a RuleTyping edge ruleID->graphID. Commutation is
// not enforced for rule edges (I4: a RuleNode has no outgoing Typing,
// so no path can pass back through it).
func (h *Hierarchy) AddRuleTyping(ruleID, graphID graph.ID, lhsMapping, rhsMapping hom.Hom, ignoreAttrs bool, bag attrs.Bag) error {
	r, ok := h.Rule(ruleID)
	if !ok {
		if !h.HasNode(ruleID) {
			return fmt.Errorf("%w: %q", ErrUnknownID, ruleID)
		}
		return fmt.Errorf("%w: %q is not a rule", ErrWrongNodeKind, ruleID)
	}
	g, ok := h.Graph(graphID)
	if !ok {
		if !h.HasNode(graphID) {
			return fmt.Errorf("%w: %q", ErrUnknownID, graphID)
		}
		return fmt.Errorf("%w: %q is not a graph", ErrWrongNodeKind, graphID)
	}

	if err := hom.CheckHom(r.L, g, lhsMapping, ignoreAttrs); err != nil {
		return err
	}
	if err := hom.CheckHom(r.R, g, rhsMapping, ignoreAttrs); err != nil {
		return err
	}
	if h.hasPath(graphID, ruleID) {
		return fmt.Errorf("%w: %q -> %q", ErrHierarchyCycle, ruleID, graphID)
	}

	if h.ruleTypings[ruleID] == nil {
		h.ruleTypings[ruleID] = make(map[graph.ID]*RuleTyping)
	}
	h.ruleTypings[ruleID][graphID] = &RuleTyping{
		LHSMapping: lhsMapping, RHSMapping: rhsMapping, IgnoreAttrs: ignoreAttrs, Attrs: bag,
	}
	h.invalidateCache()

	return nil
}

// AddPartialTyping synthesizes a fresh subgraph src' of src restricted
// to dom(partial), then adds it with two typings: src'->src
// (inclusion) and src'->tgt (partial).
func (h *Hierarchy) AddPartialTyping(src, tgt graph.ID, partial hom.Hom, ignoreAttrs bool, bag attrs.Bag) error {
	srcGraph, ok := h.Graph(src)
	if !ok {
		return fmt.Errorf("%w: %q is not a graph", ErrWrongNodeKind, src)
	}

	sub := graph.NewLike(srcGraph)
	for n := range partial {
		if srcGraph.HasNode(n) {
			_ = sub.AddNode(n, srcGraph.NodeAttrs(n).Clone())
		}
	}
	for _, e := range srcGraph.Edges() {
		if sub.HasNode(e.From) && sub.HasNode(e.To) {
			bagE, _ := srcGraph.EdgeAttrs(e.From, e.To)
			_ = sub.AddEdge(e.From, e.To, bagE.Clone())
		}
	}

	subID := freshHierarchyID(h, string(src)+"_partial")
	if err := h.AddGraph(subID, sub, nil); err != nil {
		return err
	}

	inclusion := identityOn(sub)
	if err := h.AddTyping(subID, src, inclusion, false, nil); err != nil {
		_ = h.RemoveGraph(subID, false)
		return err
	}
	restricted := make(hom.Hom, len(sub.NodeIDs()))
	for _, n := range sub.NodeIDs() {
		restricted[n] = partial[n]
	}
	if err := h.AddTyping(subID, tgt, restricted, ignoreAttrs, bag); err != nil {
		_ = h.RemoveGraph(subID, false)
		return err
	}

	return nil
}

func freshHierarchyID(h *Hierarchy, base string) graph.ID {
	if !h.HasNode(graph.ID(base)) {
		return graph.ID(base)
	}
	for i := 1; ; i++ {
		cand := graph.ID(fmt.Sprintf("%s_%d", base, i))
		if !h.HasNode(cand) {
			return cand
		}
	}
}
