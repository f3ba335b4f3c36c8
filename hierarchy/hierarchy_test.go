package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-rewrite/regraph/category"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hierarchy"
	"github.com/lvlath-rewrite/regraph/hom"
	"github.com/lvlath-rewrite/regraph/rule"
)

func pattern123(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(graph.WithDirected(true))
	require.NoError(t, g.AddNode("1", nil))
	require.NoError(t, g.AddNode("2", nil))
	require.NoError(t, g.AddNode("3", nil))
	require.NoError(t, g.AddEdge("1", "2", nil))
	require.NoError(t, g.AddEdge("3", "2", nil))

	return g
}

func identityHom(ids ...graph.ID) hom.Hom {
	m := make(hom.Hom, len(ids))
	for _, id := range ids {
		m[id] = id
	}

	return m
}

func TestAddGraph_IDConflict(t *testing.T) {
	h := hierarchy.New(true)
	require.NoError(t, h.AddGraph("g", pattern123(t), nil))

	err := h.AddGraph("g", pattern123(t), nil)
	require.ErrorIs(t, err, hierarchy.ErrIDConflict)
}

func TestAddGraph_DirectednessMismatch(t *testing.T) {
	h := hierarchy.New(true)
	undirected := graph.New(graph.WithDirected(false))

	err := h.AddGraph("g", undirected, nil)
	require.ErrorIs(t, err, hierarchy.ErrDirectednessMismatch)
}

func TestAddTyping_CycleRejected(t *testing.T) {
	h := hierarchy.New(true)
	require.NoError(t, h.AddGraph("a", pattern123(t), nil))
	require.NoError(t, h.AddGraph("b", pattern123(t), nil))
	require.NoError(t, h.AddTyping("a", "b", identityHom("1", "2", "3"), false, nil))

	err := h.AddTyping("b", "a", identityHom("1", "2", "3"), false, nil)
	require.ErrorIs(t, err, hierarchy.ErrHierarchyCycle)
}

func TestAddTyping_CommutationViolation(t *testing.T) {
	h := hierarchy.New(true)
	require.NoError(t, h.AddGraph("a", pattern123(t), nil))
	require.NoError(t, h.AddGraph("b", pattern123(t), nil))
	require.NoError(t, h.AddGraph("c", pattern123(t), nil))
	require.NoError(t, h.AddTyping("a", "b", identityHom("1", "2", "3"), false, nil))
	require.NoError(t, h.AddTyping("b", "c", identityHom("1", "2", "3"), false, nil))

	skewed := hom.Hom{"1": "3", "2": "2", "3": "1"}
	err := h.AddTyping("a", "c", skewed, false, nil)
	require.ErrorIs(t, err, hierarchy.ErrCommutationViolation)
}

func TestRewrite_WrongNodeKind(t *testing.T) {
	h := hierarchy.New(true)
	r := rule.Identity(pattern123(t))
	require.NoError(t, h.AddRule("r", r, nil))

	err := h.Rewrite("r", identityHom("1", "2", "3"), r, nil, nil)
	require.ErrorIs(t, err, hierarchy.ErrWrongNodeKind)
}

// TestRewrite_DeleteNode_NoPropagation exercises Step 1 of §4.4 in
// isolation: a leaf graph with no predecessors.
func TestRewrite_DeleteNode_NoPropagation(t *testing.T) {
	h := hierarchy.New(true)
	require.NoError(t, h.AddGraph("g", pattern123(t), nil))

	r := rule.Identity(pattern123(t))
	require.NoError(t, r.InjectRemoveNode("2"))

	require.NoError(t, h.Rewrite("g", identityHom("1", "2", "3"), r, nil, nil))

	newG, ok := h.Graph("g")
	require.True(t, ok)
	assert.False(t, newG.HasNode("2"))
	assert.True(t, newG.HasNode("1"))
	assert.True(t, newG.HasNode("3"))
	assert.False(t, newG.HasEdge("1", "2"))
	assert.False(t, newG.HasEdge("3", "2"))
}

// TestScenario_S4_HierarchyPropagation mirrors §8 scenario S4: a chain
// A->B->C of identity typings (A typed by B, B typed by C); rewriting
// C by deleting a node must remove that node from B and A too.
func TestScenario_S4_HierarchyPropagation(t *testing.T) {
	h := hierarchy.New(true)
	require.NoError(t, h.AddGraph("A", pattern123(t), nil))
	require.NoError(t, h.AddGraph("B", pattern123(t), nil))
	require.NoError(t, h.AddGraph("C", pattern123(t), nil))
	require.NoError(t, h.AddTyping("A", "B", identityHom("1", "2", "3"), false, nil))
	require.NoError(t, h.AddTyping("B", "C", identityHom("1", "2", "3"), false, nil))

	r := rule.Identity(pattern123(t))
	require.NoError(t, r.InjectRemoveNode("2"))

	require.NoError(t, h.Rewrite("C", identityHom("1", "2", "3"), r, nil, nil))

	for _, id := range []graph.ID{"A", "B", "C"} {
		g, ok := h.Graph(id)
		require.True(t, ok)
		assert.Falsef(t, g.HasNode("2"), "node 2 should be gone from %q", id)
		assert.Truef(t, g.HasNode("1"), "node 1 should survive in %q", id)
		assert.Truef(t, g.HasNode("3"), "node 3 should survive in %q", id)
	}
}

// TestRewrite_OutgoingTypingDropsUnlistedParent exercises §4.4 Step
// 1.4: a typing whose target is absent from rhs_typing is removed
// rather than carried forward.
func TestRewrite_OutgoingTypingDropsUnlistedParent(t *testing.T) {
	h := hierarchy.New(true)
	require.NoError(t, h.AddGraph("child", pattern123(t), nil))
	require.NoError(t, h.AddGraph("parent", pattern123(t), nil))
	require.NoError(t, h.AddTyping("child", "parent", identityHom("1", "2", "3"), false, nil))

	r := rule.Identity(pattern123(t))
	require.NoError(t, r.InjectRemoveNode("2"))

	require.NoError(t, h.Rewrite("child", identityHom("1", "2", "3"), r, nil, nil))

	types, err := h.NodeType("child", "1")
	require.NoError(t, err)
	assert.Empty(t, types, "the child->parent typing must be dropped when parent is absent from rhs_typing")
}

// TestRewrite_OutgoingTypingCarriedForListedParent exercises the other
// branch of §4.4 Step 1.4: a typing whose target IS in rhs_typing
// survives, with each surviving node keeping its old image.
func TestRewrite_OutgoingTypingCarriedForListedParent(t *testing.T) {
	h := hierarchy.New(true)
	require.NoError(t, h.AddGraph("child", pattern123(t), nil))
	require.NoError(t, h.AddGraph("parent", pattern123(t), nil))
	require.NoError(t, h.AddTyping("child", "parent", identityHom("1", "2", "3"), false, nil))

	r := rule.Identity(pattern123(t))
	require.NoError(t, r.InjectRemoveNode("2"))

	rhsTyping := map[graph.ID]hierarchy.TypingUpdate{
		"parent": {Mapping: hom.Hom{}, IgnoreAttrs: false},
	}
	require.NoError(t, h.Rewrite("child", identityHom("1", "2", "3"), r, nil, rhsTyping))

	types, err := h.NodeType("child", "1")
	require.NoError(t, err)
	assert.Equal(t, []graph.ID{"1"}, types)
}

// TestRewrite_NonMonicInstance_LeavesHierarchyUnchanged exercises
// testable property 7 (§8): a rewrite that fails before propagation
// even begins must leave every graph in the hierarchy byte-for-byte as
// it was, not partially mutated.
func TestRewrite_NonMonicInstance_LeavesHierarchyUnchanged(t *testing.T) {
	h := hierarchy.New(true)
	host := graph.New(graph.WithDirected(true))
	require.NoError(t, host.AddNode("h1", nil))
	require.NoError(t, h.AddGraph("g", host, nil))

	pattern := graph.New(graph.WithDirected(true))
	require.NoError(t, pattern.AddNode("p1", nil))
	require.NoError(t, pattern.AddNode("p2", nil))
	r := rule.Identity(pattern)

	before, ok := h.Graph("g")
	require.True(t, ok)
	beforeJSON, err := before.MarshalJSON()
	require.NoError(t, err)

	nonMonic := hom.Hom{"p1": "h1", "p2": "h1"}
	err = h.Rewrite("g", nonMonic, r, nil, nil)
	require.ErrorIs(t, err, category.ErrNotMonic)

	after, ok := h.Graph("g")
	require.True(t, ok)
	afterJSON, err := after.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(beforeJSON), string(afterJSON))
}

func TestJSON_RoundTrip(t *testing.T) {
	h := hierarchy.New(true)
	require.NoError(t, h.AddGraph("g1", pattern123(t), nil))
	require.NoError(t, h.AddGraph("g2", pattern123(t), nil))
	require.NoError(t, h.AddTyping("g1", "g2", identityHom("1", "2", "3"), false, nil))

	data, err := h.ToJSON()
	require.NoError(t, err)

	loaded, err := hierarchy.FromJSON(data)
	require.NoError(t, err)

	assert.ElementsMatch(t, h.NodeIDs(), loaded.NodeIDs())
	g1, _ := loaded.Graph("g1")
	require.True(t, g1.HasNode("1"))
	require.True(t, g1.HasEdge("1", "2"))

	types, err := loaded.NodeType("g1", "1")
	require.NoError(t, err)
	assert.Equal(t, []graph.ID{"1"}, types)
}

func TestFindMatching_RequiresPatternTypingWhenTyped(t *testing.T) {
	h := hierarchy.New(true)
	require.NoError(t, h.AddGraph("child", pattern123(t), nil))
	require.NoError(t, h.AddGraph("parent", pattern123(t), nil))
	require.NoError(t, h.AddTyping("child", "parent", identityHom("1", "2", "3"), false, nil))

	pattern := graph.New(graph.WithDirected(true))
	require.NoError(t, pattern.AddNode("p", nil))

	_, err := h.FindMatching("child", pattern, nil)
	require.ErrorIs(t, err, hierarchy.ErrPatternTypingRequired)
}
