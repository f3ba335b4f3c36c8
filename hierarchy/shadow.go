// File: shadow.go
// Role: the per-call shadow map of pending updates (§4.5): Rewrite
// stages every mutation here and only touches the live Hierarchy in
// commit, once every check along the way has passed.
package hierarchy

import (
	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
	"github.com/lvlath-rewrite/regraph/rule"
)

type shadowState struct {
	graphs          map[graph.ID]*graph.Graph
	rules           map[graph.ID]*rule.Rule
	typingSet       map[graph.ID]map[graph.ID]*Typing
	typingRemove    map[graph.ID]map[graph.ID]bool
	ruleTypingSet   map[graph.ID]map[graph.ID]*RuleTyping
}

func newShadow() *shadowState {
	return &shadowState{
		graphs:        make(map[graph.ID]*graph.Graph),
		rules:         make(map[graph.ID]*rule.Rule),
		typingSet:     make(map[graph.ID]map[graph.ID]*Typing),
		typingRemove:  make(map[graph.ID]map[graph.ID]bool),
		ruleTypingSet: make(map[graph.ID]map[graph.ID]*RuleTyping),
	}
}

func (s *shadowState) setGraph(id graph.ID, g *graph.Graph) { s.graphs[id] = g }
func (s *shadowState) setRule(id graph.ID, r *rule.Rule)     { s.rules[id] = r }

func (s *shadowState) setTyping(src, tgt graph.ID, mapping hom.Hom, ignoreAttrs bool, bag attrs.Bag) {
	if s.typingSet[src] == nil {
		s.typingSet[src] = make(map[graph.ID]*Typing)
	}
	s.typingSet[src][tgt] = &Typing{Mapping: mapping, IgnoreAttrs: ignoreAttrs, Attrs: bag}
}

func (s *shadowState) removeTyping(src, tgt graph.ID) {
	if s.typingRemove[src] == nil {
		s.typingRemove[src] = make(map[graph.ID]bool)
	}
	s.typingRemove[src][tgt] = true
}

func (s *shadowState) setRuleTyping(src, tgt graph.ID, lhs, rhs hom.Hom, ignoreAttrs bool, bag attrs.Bag) {
	if s.ruleTypingSet[src] == nil {
		s.ruleTypingSet[src] = make(map[graph.ID]*RuleTyping)
	}
	s.ruleTypingSet[src][tgt] = &RuleTyping{LHSMapping: lhs, RHSMapping: rhs, IgnoreAttrs: ignoreAttrs, Attrs: bag}
}

// commit applies every staged update to h. Called only after every
// check in Rewrite has passed.
func (s *shadowState) commit(h *Hierarchy) {
	for id, g := range s.graphs {
		h.nodes[id].graph = g
	}
	for id, r := range s.rules {
		h.nodes[id].rule = r
	}
	for src, tgts := range s.typingRemove {
		for tgt := range tgts {
			delete(h.typings[src], tgt)
		}
	}
	for src, tgts := range s.typingSet {
		if h.typings[src] == nil {
			h.typings[src] = make(map[graph.ID]*Typing)
		}
		for tgt, edge := range tgts {
			h.typings[src][tgt] = edge
		}
	}
	for src, tgts := range s.ruleTypingSet {
		if h.ruleTypings[src] == nil {
			h.ruleTypings[src] = make(map[graph.ID]*RuleTyping)
		}
		for tgt, edge := range tgts {
			h.ruleTypings[src][tgt] = edge
		}
	}
	h.invalidateCache()
}
