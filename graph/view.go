// File: view.go
// Role: read-only snapshot and relabeling, grounded on the teacher's
// core/view.go read-only facade and on the reference implementation's
// get_relabeled_graph helper used internally by pattern matching.
package graph

// Relabel returns a new graph isomorphic to g under mapping: every
// node id is replaced by mapping[id]. mapping must be a bijection on
// g's node set; Relabel panics if it is not (this is an internal
// helper used by isomorphism.go's canonicalize, which builds its own
// total bijection from g's own node set before calling it, never on
// caller-supplied partial mappings).
func (g *Graph) Relabel(mapping map[ID]ID) *Graph {
	out := NewLike(g)
	for _, id := range g.NodeIDs() {
		newID, ok := mapping[id]
		if !ok {
			panic("graph: Relabel mapping missing node " + string(id))
		}
		if out.HasNode(newID) {
			panic("graph: Relabel mapping is not injective at " + string(newID))
		}
		_ = out.AddNode(newID, g.nodes[id].Clone())
	}
	for _, e := range g.Edges() {
		bag, _ := g.EdgeAttrs(e.From, e.To)
		_ = out.AddEdge(mapping[e.From], mapping[e.To], bag.Clone())
	}

	return out
}

// View is a read-only snapshot of a Graph's structure, safe to hand to
// callers who must not mutate the live graph (e.g. match results).
type View struct {
	Directed bool
	Nodes    []ID
	Edges    []EdgePair
}

// Snapshot captures a read-only View of g.
func (g *Graph) Snapshot() View {
	return View{
		Directed: g.directed,
		Nodes:    g.NodeIDs(),
		Edges:    g.Edges(),
	}
}
