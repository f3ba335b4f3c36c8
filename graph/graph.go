// SPDX-License-Identifier: MIT
// Package graph implements the attributed graph primitive the engine
// rewrites: node/edge storage, attribute bags, cloning, relabeling, and
// JSON (de)serialization. It is the promoted, concrete form of the
// "external collaborator" graph layer described for this module — the
// category, rule, and hierarchy packages build entirely on top of it.
//
// Unlike a general-purpose graph library, Graph carries no internal
// locking: the hierarchy above this package owns all mutation and is
// itself documented as single-threaded (callers serialize access to a
// Hierarchy externally). Category operations never mutate their graph
// inputs; they allocate fresh graphs via NewLike/Clone.
package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lvlath-rewrite/regraph/attrs"
)

// ID identifies a node or edge. Identifiers are opaque and hashable;
// heterogeneous caller identifiers are interned to ID at the boundary
// (see Intern) with a side table of display names.
type ID string

// Sentinel errors for graph operations.
var (
	ErrEmptyID     = errors.New("graph: empty node id")
	ErrNodeExists  = errors.New("graph: node already exists")
	ErrNoSuchNode  = errors.New("graph: node not found")
	ErrEdgeExists  = errors.New("graph: edge already exists")
	ErrNoSuchEdge  = errors.New("graph: edge not found")
	ErrSelfLoop    = errors.New("graph: self-loop not permitted")
	ErrMixedDirect = errors.New("graph: directedness mismatch between graphs")
)

// Graph is a directed or undirected attributed graph. Node identity is
// an ID; edges are stored as an adjacency map keyed by endpoint IDs so
// that attribute lookup by (from, to) is O(1).
type Graph struct {
	directed bool

	nodes map[ID]attrs.Bag
	// adj[from][to] holds the edge's attribute bag. For undirected
	// graphs every non-loop edge is mirrored under both orderings so
	// that HasEdge/EdgeAttrs are order-independent, matching the
	// reference implementation's use of an undirected adjacency view.
	adj map[ID]map[ID]attrs.Bag
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected sets the graph's directedness. Graphs default to
// undirected when no option is supplied, matching the teacher
// library's default.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// New creates an empty Graph configured by opts.
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes: make(map[ID]attrs.Bag),
		adj:   make(map[ID]map[ID]attrs.Bag),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewLike returns a fresh empty graph with the same directedness as g.
// Category operations use this instead of depending on a concrete
// source graph's contents, mirroring the reference implementation's
// `type(b)()` construction of a fresh apex.
func NewLike(g *Graph) *Graph {
	return New(WithDirected(g.directed))
}

// Directed reports whether g defaults new edges to directed.
func (g *Graph) Directed() bool { return g.directed }

// NodeIDs returns the graph's node IDs in sorted order. Sorting makes
// every iteration over a Graph deterministic, which the collision-
// suffix and node-merge naming rules in the category operations
// require for reproducible results.
func (g *Graph) NodeIDs() []ID {
	ids := make([]ID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NumNodes returns the number of nodes in g.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id ID) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeAttrs returns the attribute bag of id, or nil if absent.
func (g *Graph) NodeAttrs(id ID) attrs.Bag {
	return g.nodes[id]
}

// String renders a node/edge count summary, useful in logs.
func (g *Graph) String() string {
	kind := "undirected"
	if g.directed {
		kind = "directed"
	}

	return fmt.Sprintf("graph(%s, %d nodes, %d edges)", kind, g.NumNodes(), len(g.edgeIndex()))
}
