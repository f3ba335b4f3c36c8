// File: methods_vertices.go
// Role: node CRUD and attribute mutation.
package graph

import "github.com/lvlath-rewrite/regraph/attrs"

// AddNode inserts a node with the given normalized attribute bag (nil
// is treated as the empty bag, per I5). Returns ErrEmptyID for an
// empty id, ErrNodeExists if id is already present.
func (g *Graph) AddNode(id ID, bag attrs.Bag) error {
	if id == "" {
		return ErrEmptyID
	}
	if g.HasNode(id) {
		return ErrNodeExists
	}
	if bag == nil {
		bag = attrs.Bag{}
	}
	g.nodes[id] = bag
	g.adj[id] = make(map[ID]attrs.Bag)

	return nil
}

// SetNodeAttrs overwrites the attribute bag of an existing node.
// Returns ErrNoSuchNode if id is absent.
func (g *Graph) SetNodeAttrs(id ID, bag attrs.Bag) error {
	if !g.HasNode(id) {
		return ErrNoSuchNode
	}
	if bag == nil {
		bag = attrs.Bag{}
	}
	g.nodes[id] = bag

	return nil
}

// AddNodeAttrs unions extra into the node's existing attribute bag.
func (g *Graph) AddNodeAttrs(id ID, extra attrs.Bag) error {
	if !g.HasNode(id) {
		return ErrNoSuchNode
	}
	g.nodes[id] = attrs.Union(g.nodes[id], extra)

	return nil
}

// RemoveNodeAttrs removes, per key, the listed values from the node's
// attribute bag. Removing a value that is not present, or a key the
// bag does not have, is a silent no-op (§7 propagation policy).
func (g *Graph) RemoveNodeAttrs(id ID, toRemove attrs.Bag) error {
	if !g.HasNode(id) {
		return ErrNoSuchNode
	}
	g.nodes[id] = attrs.Difference(g.nodes[id], toRemove)

	return nil
}

// RemoveNode deletes id and every edge incident to it.
func (g *Graph) RemoveNode(id ID) error {
	if !g.HasNode(id) {
		return ErrNoSuchNode
	}
	delete(g.nodes, id)
	delete(g.adj, id)
	for _, nbrs := range g.adj {
		delete(nbrs, id)
	}

	return nil
}
