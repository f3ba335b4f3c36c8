package graph_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
)

func buildSquare(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(graph.WithDirected(true))
	for _, id := range []graph.ID{"1", "2", "3"} {
		require.NoError(t, g.AddNode(id, nil))
	}
	require.NoError(t, g.AddEdge("1", "2", nil))
	require.NoError(t, g.AddEdge("3", "2", nil))

	return g
}

func TestAddNode_Errors(t *testing.T) {
	g := graph.New()
	require.ErrorIs(t, g.AddNode("", nil), graph.ErrEmptyID)
	require.NoError(t, g.AddNode("a", nil))
	require.ErrorIs(t, g.AddNode("a", nil), graph.ErrNodeExists)
}

func TestAddEdge_UndirectedMirrored(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("a", nil))
	require.NoError(t, g.AddNode("b", nil))
	require.NoError(t, g.AddEdge("a", "b", nil))

	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "a"))
	require.ErrorIs(t, g.AddEdge("b", "a", nil), graph.ErrEdgeExists)
}

func TestRemoveNode_DropsIncidentEdges(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.RemoveNode("2"))

	assert.False(t, g.HasEdge("1", "2"))
	assert.False(t, g.HasEdge("3", "2"))
	assert.Len(t, g.Edges(), 0)
}

func TestClone_IsIndependent(t *testing.T) {
	g := buildSquare(t)
	clone := g.Clone()
	require.NoError(t, clone.RemoveNode("2"))

	assert.True(t, g.HasEdge("1", "2"))
	assert.False(t, clone.HasEdge("1", "2"))
}

func TestCloneNodeAs_DuplicatesIncidentEdges(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.CloneNodeAs("2", "2_clone"))

	assert.True(t, g.HasEdge("1", "2_clone"))
	assert.True(t, g.HasEdge("3", "2_clone"))
}

func TestRelabel(t *testing.T) {
	g := buildSquare(t)
	relabeled := g.Relabel(map[graph.ID]graph.ID{"1": "x", "2": "y", "3": "z"})

	assert.True(t, relabeled.HasEdge("x", "y"))
	assert.True(t, relabeled.HasEdge("z", "y"))
}

func TestJSONRoundTrip(t *testing.T) {
	g := graph.New(graph.WithDirected(true))
	require.NoError(t, g.AddNode("a", attrs.Normalize(map[string]any{"color": "red"})))
	require.NoError(t, g.AddNode("b", nil))
	require.NoError(t, g.AddEdge("a", "b", attrs.Normalize(map[string]any{"weight": 3})))

	data, err := json.Marshal(g)
	require.NoError(t, err)

	out := graph.New()
	require.NoError(t, json.Unmarshal(data, out))

	assert.ElementsMatch(t, g.NodeIDs(), out.NodeIDs())
	assert.True(t, out.HasEdge("a", "b"))
	assert.Equal(t, attrs.NewSet("red"), out.NodeAttrs("a").Get("color"))
}

func TestFindSubgraphs_AttributeSubsumption(t *testing.T) {
	pattern := graph.New(graph.WithDirected(true))
	require.NoError(t, pattern.AddNode("p1", attrs.Normalize(map[string]any{"kind": "router"})))
	require.NoError(t, pattern.AddNode("p2", nil))
	require.NoError(t, pattern.AddEdge("p1", "p2", nil))

	host := graph.New(graph.WithDirected(true))
	require.NoError(t, host.AddNode("h1", attrs.Normalize(map[string]any{"kind": []any{"router", "edge"}})))
	require.NoError(t, host.AddNode("h2", nil))
	require.NoError(t, host.AddNode("h3", attrs.Normalize(map[string]any{"kind": "switch"})))
	require.NoError(t, host.AddEdge("h1", "h2", nil))

	matches := graph.FindSubgraphs(pattern, host, nil)
	require.Len(t, matches, 1)
	assert.Equal(t, graph.ID("h1"), matches[0]["p1"])
	assert.Equal(t, graph.ID("h2"), matches[0]["p2"])
}

// TestFindSubgraphs_ReturnsOriginalHostIDs guards against the internal
// canonical relabeling (see isomorphism.go's canonicalize) leaking its
// own ids into results: every match must name host's own ids, even
// when those ids sort in a different order than the match itself.
func TestFindSubgraphs_ReturnsOriginalHostIDs(t *testing.T) {
	pattern := graph.New(graph.WithDirected(true))
	require.NoError(t, pattern.AddNode("p1", nil))
	require.NoError(t, pattern.AddNode("p2", nil))
	require.NoError(t, pattern.AddEdge("p1", "p2", nil))

	host := graph.New(graph.WithDirected(true))
	require.NoError(t, host.AddNode("zeta", nil))
	require.NoError(t, host.AddNode("alpha", nil))
	require.NoError(t, host.AddEdge("zeta", "alpha", nil))

	matches := graph.FindSubgraphs(pattern, host, nil)
	require.Len(t, matches, 1)
	assert.Equal(t, graph.ID("zeta"), matches[0]["p1"])
	assert.Equal(t, graph.ID("alpha"), matches[0]["p2"])
}
