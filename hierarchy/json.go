// File: json.go
// Role: the §6.2 wire format (to_json/load/export), kept on
// encoding/json for the same reason graph's own wire format is: no pack
// example reaches for a faster/alternate codec for structural
// (de)serialization of a whole document; see DESIGN.md.
package hierarchy

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
	"github.com/lvlath-rewrite/regraph/rule"
)

type wireGraphNode struct {
	ID    string                      `json:"id"`
	Graph *graph.Graph                `json:"graph"`
	Attrs map[string][]any            `json:"attrs,omitempty"`
}

type wireRuleNode struct {
	ID    string           `json:"id"`
	L     *graph.Graph     `json:"l"`
	P     *graph.Graph     `json:"p"`
	R     *graph.Graph     `json:"r"`
	PL    map[string]string `json:"pl"`
	PR    map[string]string `json:"pr"`
	Attrs map[string][]any `json:"attrs,omitempty"`
}

type wireTyping struct {
	From        string            `json:"from"`
	To          string            `json:"to"`
	Mapping     map[string]string `json:"mapping"`
	IgnoreAttrs bool              `json:"ignore_attrs"`
	Attrs       map[string][]any  `json:"attrs,omitempty"`
}

type wireRuleTyping struct {
	From        string            `json:"from"`
	To          string            `json:"to"`
	LHSMapping  map[string]string `json:"lhs_mapping"`
	RHSMapping  map[string]string `json:"rhs_mapping"`
	IgnoreAttrs bool              `json:"ignore_attrs"`
	Attrs       map[string][]any  `json:"attrs,omitempty"`
}

type wireHierarchy struct {
	Directed    bool             `json:"directed"`
	Graphs      []wireGraphNode  `json:"graphs"`
	Rules       []wireRuleNode   `json:"rules,omitempty"`
	Typing      []wireTyping     `json:"typing"`
	RuleTyping  []wireRuleTyping `json:"rule_typing,omitempty"`
}

func homToWire(m hom.Hom) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[string(k)] = string(v)
	}

	return out
}

func wireToHom(m map[string]string) hom.Hom {
	out := make(hom.Hom, len(m))
	for k, v := range m {
		out[graph.ID(k)] = graph.ID(v)
	}

	return out
}

func flattenBag(b attrs.Bag) map[string][]any {
	if len(b) == 0 {
		return nil
	}
	out := make(map[string][]any, len(b))
	for _, k := range b.Keys() {
		set := b.Get(k)
		if len(set) == 0 {
			continue
		}
		vals := make([]any, 0, len(set))
		for v := range set {
			vals = append(vals, v)
		}
		sort.Slice(vals, func(i, j int) bool {
			return fmt.Sprint(vals[i]) < fmt.Sprint(vals[j])
		})
		out[k] = vals
	}

	return out
}

func unflattenBag(m map[string][]any) attrs.Bag {
	raw := make(map[string]any, len(m))
	for k, v := range m {
		raw[k] = v
	}

	return attrs.Normalize(raw)
}

// ToJSON renders the hierarchy as the §6.2 wire document.
func (h *Hierarchy) ToJSON() ([]byte, error) {
	w := wireHierarchy{Directed: h.directed}

	for _, id := range h.NodeIDs() {
		n := h.nodes[id]
		switch n.kind {
		case KindGraph:
			w.Graphs = append(w.Graphs, wireGraphNode{ID: string(id), Graph: n.graph, Attrs: flattenBag(n.attrs)})
		case KindRule:
			w.Rules = append(w.Rules, wireRuleNode{
				ID: string(id), L: n.rule.L, P: n.rule.P, R: n.rule.R,
				PL: homToWire(n.rule.PL), PR: homToWire(n.rule.PR), Attrs: flattenBag(n.attrs),
			})
		}
	}

	for _, src := range h.NodeIDs() {
		for _, tgt := range sortedKeys(h.typings[src]) {
			t := h.typings[src][tgt]
			w.Typing = append(w.Typing, wireTyping{
				From: string(src), To: string(tgt), Mapping: homToWire(t.Mapping),
				IgnoreAttrs: t.IgnoreAttrs, Attrs: flattenBag(t.Attrs),
			})
		}
		for _, tgt := range sortedKeys(h.ruleTypings[src]) {
			rt := h.ruleTypings[src][tgt]
			w.RuleTyping = append(w.RuleTyping, wireRuleTyping{
				From: string(src), To: string(tgt), LHSMapping: homToWire(rt.LHSMapping), RHSMapping: homToWire(rt.RHSMapping),
				IgnoreAttrs: rt.IgnoreAttrs, Attrs: flattenBag(rt.Attrs),
			})
		}
	}

	return json.Marshal(w)
}

// Load builds a Hierarchy from the §6.2 wire document read from
// filename. I/O and parse faults are wrapped in ErrIO.
func Load(filename string) (*Hierarchy, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	return FromJSON(data)
}

// FromJSON is Load's in-memory counterpart, used directly by tests and
// by Load.
func FromJSON(data []byte) (*Hierarchy, error) {
	var w wireHierarchy
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	h := New(w.Directed)
	for _, g := range w.Graphs {
		if err := h.AddGraph(graph.ID(g.ID), g.Graph, unflattenBag(g.Attrs)); err != nil {
			return nil, err
		}
	}
	for _, r := range w.Rules {
		rl, err := rule.New(r.L, r.P, r.R, wireToHom(r.PL), wireToHom(r.PR))
		if err != nil {
			return nil, err
		}
		if err := h.AddRule(graph.ID(r.ID), rl, unflattenBag(r.Attrs)); err != nil {
			return nil, err
		}
	}
	for _, t := range w.Typing {
		if err := h.AddTyping(graph.ID(t.From), graph.ID(t.To), wireToHom(t.Mapping), t.IgnoreAttrs, unflattenBag(t.Attrs)); err != nil {
			return nil, err
		}
	}
	for _, rt := range w.RuleTyping {
		if err := h.AddRuleTyping(graph.ID(rt.From), graph.ID(rt.To), wireToHom(rt.LHSMapping), wireToHom(rt.RHSMapping), rt.IgnoreAttrs, unflattenBag(rt.Attrs)); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Export writes the §6.2 wire document for h to filename.
func (h *Hierarchy) Export(filename string) error {
	data, err := h.ToJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}
