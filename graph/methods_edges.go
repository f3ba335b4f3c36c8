// File: methods_edges.go
// Role: edge CRUD, adjacency queries, and the edge-pair enumeration
// that the category operations and homomorphism checks rely on.
package graph

import (
	"sort"

	"github.com/lvlath-rewrite/regraph/attrs"
)

// EdgePair is an ordered endpoint pair. For an undirected graph it
// names a single logical edge (the direction is the one adjacency
// happened to be stored under during enumeration).
type EdgePair struct {
	From, To ID
}

// HasEdge reports whether an edge (u,v) exists. Undirected graphs
// treat (u,v) and (v,u) as the same edge.
func (g *Graph) HasEdge(u, v ID) bool {
	if nbrs, ok := g.adj[u]; ok {
		if _, ok := nbrs[v]; ok {
			return true
		}
	}
	if !g.directed {
		if nbrs, ok := g.adj[v]; ok {
			if _, ok := nbrs[u]; ok {
				return true
			}
		}
	}

	return false
}

// EdgeAttrs returns the attribute bag of edge (u,v), or nil and false
// if no such edge exists.
func (g *Graph) EdgeAttrs(u, v ID) (attrs.Bag, bool) {
	if nbrs, ok := g.adj[u]; ok {
		if bag, ok := nbrs[v]; ok {
			return bag, true
		}
	}
	if !g.directed {
		if nbrs, ok := g.adj[v]; ok {
			if bag, ok := nbrs[u]; ok {
				return bag, true
			}
		}
	}

	return nil, false
}

// AddEdge inserts edge (u,v) with the given attribute bag. Returns
// ErrNoSuchNode if either endpoint is absent, ErrEdgeExists if the
// edge (in either order, for an undirected graph) already exists.
func (g *Graph) AddEdge(u, v ID, bag attrs.Bag) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return ErrNoSuchNode
	}
	if g.HasEdge(u, v) {
		return ErrEdgeExists
	}
	if bag == nil {
		bag = attrs.Bag{}
	}
	g.adj[u][v] = bag
	if !g.directed && u != v {
		g.adj[v][u] = bag
	}

	return nil
}

// SetEdgeAttrs overwrites the attribute bag of an existing edge.
func (g *Graph) SetEdgeAttrs(u, v ID, bag attrs.Bag) error {
	if !g.HasEdge(u, v) {
		return ErrNoSuchEdge
	}
	if bag == nil {
		bag = attrs.Bag{}
	}
	g.adj[u][v] = bag
	if !g.directed && u != v {
		g.adj[v][u] = bag
	}

	return nil
}

// AddEdgeAttrs unions extra into the edge's existing attribute bag.
func (g *Graph) AddEdgeAttrs(u, v ID, extra attrs.Bag) error {
	bag, ok := g.EdgeAttrs(u, v)
	if !ok {
		return ErrNoSuchEdge
	}

	return g.SetEdgeAttrs(u, v, attrs.Union(bag, extra))
}

// RemoveEdgeAttrs removes the listed values from the edge's attribute
// bag; missing keys/values are a silent no-op.
func (g *Graph) RemoveEdgeAttrs(u, v ID, toRemove attrs.Bag) error {
	bag, ok := g.EdgeAttrs(u, v)
	if !ok {
		return ErrNoSuchEdge
	}

	return g.SetEdgeAttrs(u, v, attrs.Difference(bag, toRemove))
}

// RemoveEdge deletes edge (u,v).
func (g *Graph) RemoveEdge(u, v ID) error {
	if !g.HasEdge(u, v) {
		return ErrNoSuchEdge
	}
	delete(g.adj[u], v)
	if !g.directed {
		delete(g.adj[v], u)
	}

	return nil
}

// Edges enumerates the graph's edges, each exactly once, sorted by
// (From, To) for deterministic iteration.
func (g *Graph) Edges() []EdgePair {
	return g.edgeIndex()
}

// edgeIndex is the shared enumeration used by Edges, String, and
// serialization: for directed graphs every adjacency entry is an edge;
// for undirected graphs a loop contributes one entry and every other
// pair contributes one entry regardless of which direction it was
// stored under (avoiding double-count from mirrored adjacency).
func (g *Graph) edgeIndex() []EdgePair {
	seen := make(map[[2]ID]struct{})
	out := make([]EdgePair, 0)
	for _, u := range g.NodeIDs() {
		nbrs := g.adj[u]
		vs := make([]ID, 0, len(nbrs))
		for v := range nbrs {
			vs = append(vs, v)
		}
		sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
		for _, v := range vs {
			key := [2]ID{u, v}
			if !g.directed && u != v {
				if key[0] > key[1] {
					key[0], key[1] = key[1], key[0]
				}
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, EdgePair{From: u, To: v})
		}
	}

	return out
}

// Neighbors returns the IDs reachable from id via a single outgoing
// adjacency entry (for undirected graphs, this is simply the set of
// adjacent nodes), sorted for determinism.
func (g *Graph) Neighbors(id ID) []ID {
	nbrs := g.adj[id]
	out := make([]ID, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
