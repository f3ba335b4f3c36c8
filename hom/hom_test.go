package hom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
)

func TestCheckHom_ValidMapping(t *testing.T) {
	src := graph.New(graph.WithDirected(true))
	require.NoError(t, src.AddNode("1", attrs.Normalize(map[string]any{"k": "x"})))
	require.NoError(t, src.AddNode("2", nil))
	require.NoError(t, src.AddEdge("1", "2", nil))

	dst := graph.New(graph.WithDirected(true))
	require.NoError(t, dst.AddNode("a", attrs.Normalize(map[string]any{"k": []any{"x", "y"}})))
	require.NoError(t, dst.AddNode("b", nil))
	require.NoError(t, dst.AddEdge("a", "b", nil))

	m := hom.Hom{"1": "a", "2": "b"}
	require.NoError(t, hom.CheckHom(src, dst, m, false))
}

func TestCheckHom_MissingEdgeImage(t *testing.T) {
	src := graph.New(graph.WithDirected(true))
	require.NoError(t, src.AddNode("1", nil))
	require.NoError(t, src.AddNode("2", nil))
	require.NoError(t, src.AddEdge("1", "2", nil))

	dst := graph.New(graph.WithDirected(true))
	require.NoError(t, dst.AddNode("a", nil))
	require.NoError(t, dst.AddNode("b", nil))

	err := hom.CheckHom(src, dst, hom.Hom{"1": "a", "2": "b"}, false)
	require.ErrorIs(t, err, hom.ErrInvalidHomomorphism)
}

func TestCheckHom_AttrsViolation(t *testing.T) {
	src := graph.New()
	require.NoError(t, src.AddNode("1", attrs.Normalize(map[string]any{"k": "x"})))
	dst := graph.New()
	require.NoError(t, dst.AddNode("a", attrs.Normalize(map[string]any{"k": "y"})))

	err := hom.CheckHom(src, dst, hom.Hom{"1": "a"}, false)
	require.ErrorIs(t, err, hom.ErrInvalidHomomorphism)
	require.NoError(t, hom.CheckHom(src, dst, hom.Hom{"1": "a"}, true))
}

func TestMonic(t *testing.T) {
	assert.True(t, hom.Monic(hom.Hom{"1": "a", "2": "b"}))
	assert.False(t, hom.Monic(hom.Hom{"1": "a", "2": "a"}))
}

func TestCompose(t *testing.T) {
	inner := hom.Hom{"1": "a", "2": "b"}
	outer := hom.Hom{"a": "x", "b": "y"}
	assert.Equal(t, hom.Hom{"1": "x", "2": "y"}, hom.Compose(outer, inner))
}

func TestKeysByValue(t *testing.T) {
	m := hom.Hom{"1": "a", "2": "b", "3": "a"}
	assert.Equal(t, []graph.ID{"1", "3"}, hom.KeysByValue(m, "a"))
	assert.Empty(t, hom.KeysByValue(m, "z"))
}
