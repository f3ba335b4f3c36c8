// File: rewrite.go
// Role: the rewrite driver (§4.4): local DPO rewrite at graph_id
// followed by reverse-BFS backward propagation through every ancestor,
// committed all-or-nothing via the shadow map (§4.5).
package hierarchy

import (
	"fmt"
	"sort"

	"github.com/lvlath-rewrite/regraph/category"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
	"github.com/lvlath-rewrite/regraph/internal/logging"
	"github.com/lvlath-rewrite/regraph/rule"
)

var rewriteLog = logging.With("hierarchy")

// cospanEndpoint is one already-propagated node's contribution to its
// predecessors' pullback: its new (trimmed) graph and the projection
// back into that node's graph as it stood on entry to Rewrite.
type cospanEndpoint struct {
	graph     *graph.Graph
	mapToOrig hom.Hom
}

// Rewrite applies rl at instance (a homomorphism rl.L -> graph(graphID))
// and propagates the change backward through every ancestor so that
// every remaining typing still commutes. graphID must name a GraphNode.
//
// lhsTyping is accepted for API symmetry with §6.1's signature but is
// not consulted: ancestor RuleTyping edges are reconstructed from the
// existing edge data (§4.4's "simple case"/"cospan case" walk), and
// graph_id itself has no LHS of its own to retype. rhsTyping drives the
// only per-call typing decision the algorithm actually makes: which of
// graph_id's outgoing typings survive the rewrite and what they become.
func (h *Hierarchy) Rewrite(graphID graph.ID, instance hom.Hom, rl *rule.Rule, lhsTyping, rhsTyping map[graph.ID]TypingUpdate) error {
	_ = lhsTyping

	g, ok := h.Graph(graphID)
	if !ok {
		if !h.HasNode(graphID) {
			return fmt.Errorf("%w: %q", ErrUnknownID, graphID)
		}
		return fmt.Errorf("%w: rewrite cannot target a rule node %q", ErrWrongNodeKind, graphID)
	}

	gMinus, pGMinus, gMinusG, err := category.PullbackComplement(rl.P, rl.L, g, rl.PL, instance)
	if err != nil {
		return err
	}
	gPrime, gMinusGPrime, rGPrime, err := category.Pushout(rl.P, gMinus, rl.R, pGMinus, rl.PR)
	if err != nil {
		return err
	}

	shadow := newShadow()
	shadow.setGraph(graphID, gPrime)

	cospanLeg := map[graph.ID]cospanEndpoint{
		graphID: {graph: gMinus, mapToOrig: gMinusG},
	}

	for _, t := range sortedKeys(h.typings[graphID]) {
		old := h.typings[graphID][t]
		upd, ok := rhsTyping[t]
		if !ok {
			shadow.removeTyping(graphID, t)
			continue
		}
		newMapping := typingAfterRewrite(old.Mapping, gMinusG, gMinusGPrime, rGPrime, upd.Mapping)
		shadow.setTyping(graphID, t, newMapping, upd.IgnoreAttrs, old.Attrs)
	}

	if err := h.propagate(graphID, cospanLeg, shadow); err != nil {
		rewriteLog.Debug().Str("graph_id", string(graphID)).Err(err).Msg("rewrite aborted during propagation")
		return err
	}

	shadow.commit(h)
	rewriteLog.Debug().Str("graph_id", string(graphID)).Int("graph_ancestors_rewritten", len(cospanLeg)-1).Msg("rewrite committed")

	return nil
}

// typingAfterRewrite rebuilds an outgoing typing graph_id->T across the
// rewrite: survivors are carried from G⁻ through to G' (nodes with no
// surviving preimage drop out naturally), additions/clones come from
// rhs's declared mapping for the R-nodes that created them.
func typingAfterRewrite(old, gMinusG, gMinusGPrime, rGPrime, rhs hom.Hom) hom.Hom {
	out := make(hom.Hom, len(old))
	for gm, origG := range gMinusG {
		if img, ok := old[origG]; ok {
			out[gMinusGPrime[gm]] = img
		}
	}
	for rn, img := range rhs {
		out[rGPrime[rn]] = img
	}

	return out
}

// propagate runs §4.4 Step 2 over every node from which graphID is
// reachable, in an order that guarantees a node is only processed once
// every one of its relevant successors has already been processed
// (subsuming the spec's "simple"/"cospan" split: NaryPullback computes
// a single pullback when given exactly one cospan).
func (h *Hierarchy) propagate(graphID graph.ID, cospanLeg map[graph.ID]cospanEndpoint, shadow *shadowState) error {
	affected := h.predecessorClosure(graphID)
	sortedAffected := make([]graph.ID, 0, len(affected))
	for x := range affected {
		sortedAffected = append(sortedAffected, x)
	}
	sort.Slice(sortedAffected, func(i, j int) bool { return sortedAffected[i] < sortedAffected[j] })

	successorsInSet := make(map[graph.ID][]graph.ID, len(sortedAffected))
	listeners := make(map[graph.ID][]graph.ID)
	for _, x := range sortedAffected {
		var succs []graph.ID
		for _, s := range h.successorIDs(x) {
			if s == graphID || affected[s] {
				succs = append(succs, s)
			}
		}
		successorsInSet[x] = succs
		for _, s := range succs {
			listeners[s] = append(listeners[s], x)
		}
	}

	doneCount := make(map[graph.ID]int, len(sortedAffected))
	queue := []graph.ID{graphID}
	for len(queue) > 0 {
		y := queue[0]
		queue = queue[1:]
		for _, x := range listeners[y] {
			doneCount[x]++
			if doneCount[x] != len(successorsInSet[x]) {
				continue
			}
			if err := h.processAncestor(x, successorsInSet[x], cospanLeg, shadow); err != nil {
				return err
			}
			queue = append(queue, x)
		}
	}

	return nil
}

// predecessorClosure returns every node (excluding id) from which id is
// reachable by Typing/RuleTyping edges.
func (h *Hierarchy) predecessorClosure(id graph.ID) map[graph.ID]bool {
	visited := make(map[graph.ID]bool)
	queue := h.predecessorIDs(id)
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		if visited[x] {
			continue
		}
		visited[x] = true
		queue = append(queue, h.predecessorIDs(x)...)
	}

	return visited
}

func (h *Hierarchy) processAncestor(x graph.ID, succs []graph.ID, cospanLeg map[graph.ID]cospanEndpoint, shadow *shadowState) error {
	if _, ok := h.Graph(x); ok {
		return h.processGraphAncestor(x, succs, cospanLeg, shadow)
	}

	return h.processRuleAncestor(x, succs, cospanLeg, shadow)
}

func (h *Hierarchy) processGraphAncestor(x graph.ID, succs []graph.ID, cospanLeg map[graph.ID]cospanEndpoint, shadow *shadowState) error {
	cospans := make(map[string]category.Cospan, len(succs))
	for _, s := range succs {
		leg := cospanLeg[s]
		sGraph, _ := h.Graph(s)
		edge := h.typings[x][s]
		cospans[string(s)] = category.Cospan{C: leg.graph, D: sGraph, BD: edge.Mapping, CD: leg.mapToOrig}
	}

	xGraph, _ := h.Graph(x)
	apex, ab, ac, err := category.NaryPullback(xGraph, cospans)
	if err != nil {
		return err
	}

	cospanLeg[x] = cospanEndpoint{graph: apex, mapToOrig: ab}
	shadow.setGraph(x, apex)
	for _, s := range succs {
		old := h.typings[x][s]
		shadow.setTyping(x, s, ac[string(s)], old.IgnoreAttrs, old.Attrs)
	}

	return nil
}

// processRuleAncestor rebuilds a rule ancestor's L, P, and R against the
// collected cospans, then reconstructs pL⁻/pR⁻ by matching each P⁻ node
// to the L⁻/R⁻ node sharing the same base image and the same leaf
// assignment in every cospan. A P⁻ node with no such match means the
// clone structure of P no longer lines up with L or R after trimming:
// ErrPropagationInconsistent. Rule nodes have no predecessors of their
// own (nothing ever types into a rule), so no cospanLeg entry is
// recorded for x.
func (h *Hierarchy) processRuleAncestor(x graph.ID, succs []graph.ID, cospanLeg map[graph.ID]cospanEndpoint, shadow *shadowState) error {
	r, _ := h.Rule(x)

	lCospans := make(map[string]category.Cospan, len(succs))
	rCospans := make(map[string]category.Cospan, len(succs))
	pCospans := make(map[string]category.Cospan, len(succs))
	for _, s := range succs {
		rt := h.ruleTypings[x][s]
		leg := cospanLeg[s]
		sGraph, _ := h.Graph(s)
		lCospans[string(s)] = category.Cospan{C: leg.graph, D: sGraph, BD: rt.LHSMapping, CD: leg.mapToOrig}
		rCospans[string(s)] = category.Cospan{C: leg.graph, D: sGraph, BD: rt.RHSMapping, CD: leg.mapToOrig}
		pCospans[string(s)] = category.Cospan{C: leg.graph, D: sGraph, BD: hom.Compose(rt.LHSMapping, r.PL), CD: leg.mapToOrig}
	}

	lApex, lAb, lAc, err := category.NaryPullback(r.L, lCospans)
	if err != nil {
		return err
	}
	rApex, rAb, rAc, err := category.NaryPullback(r.R, rCospans)
	if err != nil {
		return err
	}
	pApex, pAb, pAc, err := category.NaryPullback(r.P, pCospans)
	if err != nil {
		return err
	}

	plMinus, err := buildInducedMapping(pApex, pAb, pAc, lApex, lAb, lAc, r.PL)
	if err != nil {
		return err
	}
	prMinus, err := buildInducedMapping(pApex, pAb, pAc, rApex, rAb, rAc, r.PR)
	if err != nil {
		return err
	}

	newRule, err := rule.New(lApex, pApex, rApex, plMinus, prMinus)
	if err != nil {
		return err
	}

	shadow.setRule(x, newRule)
	for _, s := range succs {
		old := h.ruleTypings[x][s]
		shadow.setRuleTyping(x, s, lAc[string(s)], rAc[string(s)], old.IgnoreAttrs, old.Attrs)
	}

	return nil
}

// buildInducedMapping matches each node of pApex to the node of xApex
// sharing the same image under plOrPr and the same per-cospan leaf
// assignment, producing the P->{L,R} component of a rule rebuilt by
// propagation.
func buildInducedMapping(pApex *graph.Graph, pAb hom.Hom, pAc map[string]hom.Hom, xApex *graph.Graph, xAb hom.Hom, xAc map[string]hom.Hom, plOrPr hom.Hom) (hom.Hom, error) {
	out := make(hom.Hom, len(pApex.NodeIDs()))
	for _, pm := range pApex.NodeIDs() {
		target := plOrPr[pAb[pm]]
		found := false
		for _, xm := range xApex.NodeIDs() {
			if xAb[xm] != target {
				continue
			}
			match := true
			for key, pacKey := range pAc {
				if xAc[key][xm] != pacKey[pm] {
					match = false
					break
				}
			}
			if match {
				out[pm] = xm
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: no clone-consistent match for P-node %q", ErrPropagationInconsistent, pm)
		}
	}

	return out, nil
}
