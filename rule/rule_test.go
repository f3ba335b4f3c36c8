package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
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

// TestScenario_S1_CloneAndDelete mirrors §8 scenario S1.
func TestScenario_S1_CloneAndDelete(t *testing.T) {
	r := rule.Identity(pattern123(t))

	require.NoError(t, r.InjectRemoveEdge("3", "2"))
	newP, newR, err := r.InjectCloneNode("2", "x")
	require.NoError(t, err)
	assert.Equal(t, graph.ID("x"), newP)

	assert.True(t, r.P.HasEdge("1", newP))
	assert.True(t, r.P.HasEdge("3", newP))
	assert.True(t, r.R.HasEdge("1", newR))
	assert.True(t, r.R.HasEdge("3", newR))
	assert.Equal(t, newR, r.PR[newP])
	assert.False(t, r.P.HasEdge("3", "2"))
}

// TestScenario_S2_MergeAndAddEdge mirrors §8 scenario S2.
func TestScenario_S2_MergeAndAddEdge(t *testing.T) {
	r := rule.Identity(pattern123(t))

	m, err := r.InjectMergeNodes([]graph.ID{"1", "2"})
	require.NoError(t, err)
	require.NoError(t, r.InjectAddEdge(m, "3", nil))

	assert.True(t, r.R.HasEdge(m, "3"))
	assert.True(t, r.R.HasEdge(m, m), "the (1,2) pattern edge collapses to a self-loop on the merged node")
}

func TestInjectMergeNodes_AlreadyRemoved(t *testing.T) {
	r := rule.Identity(pattern123(t))
	require.NoError(t, r.InjectRemoveNode("1"))

	_, err := r.InjectMergeNodes([]graph.ID{"1", "2"})
	require.ErrorIs(t, err, rule.ErrNodeAlreadyRemoved)
}

func TestInjectRemoveNode_DropsPreimagesAndEdges(t *testing.T) {
	r := rule.Identity(pattern123(t))
	require.NoError(t, r.InjectRemoveNode("2"))

	assert.False(t, r.P.HasNode("2"))
	assert.False(t, r.R.HasNode("2"))
	assert.False(t, r.P.HasEdge("1", "2"))
	assert.Contains(t, r.RemovedNodes(), graph.ID("2"))
}

func TestDerivedQueries(t *testing.T) {
	r := rule.Identity(pattern123(t))
	require.NoError(t, r.InjectRemoveNode("2"))
	require.NoError(t, r.InjectAddNode("4", attrs.Normalize(map[string]any{"k": "v"})))
	_, _, err := r.InjectCloneNode("1", "")
	require.NoError(t, err)

	assert.Equal(t, []graph.ID{"2"}, r.RemovedNodes())
	assert.Contains(t, r.AddedNodes(), graph.ID("4"))
	assert.Len(t, r.ClonedNodes()["1"], 2)
	assert.True(t, r.IsRestrictive())
	assert.True(t, r.IsRelaxing())
	assert.Equal(t, attrs.NewSet("v"), r.AddedNodeAttrs("4").Get("k"))
}

func TestFromTransform_S1Script(t *testing.T) {
	r, err := rule.FromTransform(pattern123(t), "delete_edge 3 2\nclone 2 as 'x'.\n")
	require.NoError(t, err)

	assert.False(t, r.P.HasEdge("3", "2"))
	xNodes := r.ClonedNodes()["2"]
	require.Len(t, xNodes, 2)
}

func TestFromTransform_AddNodeWithAttrs(t *testing.T) {
	r, err := rule.FromTransform(pattern123(t), `add_node 4 {"color": ["red", "blue"]}`)
	require.NoError(t, err)

	assert.True(t, r.R.HasNode("4"))
	assert.Equal(t, attrs.NewSet("red", "blue"), r.R.NodeAttrs("4").Get("color"))
}

func TestFromTransform_MergeScript(t *testing.T) {
	r, err := rule.FromTransform(pattern123(t), "merge [1, 2]")
	require.NoError(t, err)
	assert.Len(t, r.MergedNodes(), 1)
}

func TestFromTransform_UnknownCommand(t *testing.T) {
	_, err := rule.FromTransform(pattern123(t), "frobnicate 1")
	require.ErrorIs(t, err, rule.ErrScriptSyntax)
}
