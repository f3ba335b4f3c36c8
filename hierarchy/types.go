// File: types.go
// Role: the tagged node/edge variants of §3's data model.
package hierarchy

import (
	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
	"github.com/lvlath-rewrite/regraph/rule"
)

// Kind tags a hierarchy node as carrying a graph or a rule.
type Kind int

const (
	KindGraph Kind = iota
	KindRule
)

// node is the internal representation of a GraphNode/RuleNode.
type node struct {
	kind  Kind
	graph *graph.Graph
	rule  *rule.Rule
	attrs attrs.Bag
}

// Typing is an edge from a graph to a graph.
type Typing struct {
	Mapping     hom.Hom
	IgnoreAttrs bool
	Attrs       attrs.Bag
}

// RuleTyping is an edge from a rule to a graph; both mappings must be
// valid homomorphisms on L and R respectively.
type RuleTyping struct {
	LHSMapping  hom.Hom
	RHSMapping  hom.Hom
	IgnoreAttrs bool
	Attrs       attrs.Bag
}

// TypingUpdate carries a mapping plus its ignore_attrs flag, the shape
// rhs_typing/lhs_typing entries take as Rewrite parameters (§4.4).
type TypingUpdate struct {
	Mapping     hom.Hom
	IgnoreAttrs bool
}
