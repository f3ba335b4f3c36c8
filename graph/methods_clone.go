// File: methods_clone.go
// Role: cloning and structural node cloning (used by
// rule.InjectCloneNode).
package graph

import "github.com/lvlath-rewrite/regraph/attrs"

// Clone returns a deep copy of g: same directedness, nodes, edges, and
// attribute bags.
func (g *Graph) Clone() *Graph {
	out := NewLike(g)
	for _, id := range g.NodeIDs() {
		out.nodes[id] = g.nodes[id].Clone()
		out.adj[id] = make(map[ID]attrs.Bag)
	}
	for _, e := range g.Edges() {
		bag, _ := g.EdgeAttrs(e.From, e.To)
		out.adj[e.From][e.To] = bag.Clone()
		if !g.directed && e.From != e.To {
			out.adj[e.To][e.From] = out.adj[e.From][e.To]
		}
	}

	return out
}

// CloneNodeAs duplicates orig as a new node newID, copying its
// attribute bag and every incident edge (with the same attribute
// bags); newID must not already exist. rule.InjectCloneNode uses it to
// add the new P-node and R-node of a clone.
func (g *Graph) CloneNodeAs(orig, newID ID) error {
	if !g.HasNode(orig) {
		return ErrNoSuchNode
	}
	if g.HasNode(newID) {
		return ErrNodeExists
	}
	if err := g.AddNode(newID, g.nodes[orig].Clone()); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		switch {
		case e.From == orig && e.To == orig:
			bag, _ := g.EdgeAttrs(orig, orig)
			_ = g.AddEdge(newID, newID, bag.Clone())
		case e.From == orig:
			bag, _ := g.EdgeAttrs(orig, e.To)
			_ = g.AddEdge(newID, e.To, bag.Clone())
		case e.To == orig:
			bag, _ := g.EdgeAttrs(e.From, orig)
			_ = g.AddEdge(e.From, newID, bag.Clone())
		}
	}

	return nil
}
