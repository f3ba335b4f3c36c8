package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/category"
	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
)

func node(t *testing.T, g *graph.Graph, id graph.ID, bag attrs.Bag) {
	t.Helper()
	require.NoError(t, g.AddNode(id, bag))
}

func edge(t *testing.T, g *graph.Graph, u, v graph.ID) {
	t.Helper()
	require.NoError(t, g.AddEdge(u, v, nil))
}

// TestPullback_Correctness checks property 1 of §8: both projections
// are valid homomorphisms over a small cospan with two preimages.
func TestPullback_Correctness(t *testing.T) {
	d := graph.New(graph.WithDirected(true))
	node(t, d, "x", nil)

	b := graph.New(graph.WithDirected(true))
	node(t, b, "b1", nil)
	node(t, b, "b2", nil)
	bd := hom.Hom{"b1": "x", "b2": "x"}

	c := graph.New(graph.WithDirected(true))
	node(t, c, "c1", nil)
	cd := hom.Hom{"c1": "x"}

	a, ab, ac, err := category.Pullback(b, c, d, bd, cd)
	require.NoError(t, err)

	require.NoError(t, hom.CheckHom(a, b, ab, false))
	require.NoError(t, hom.CheckHom(a, c, ac, false))
	assert.Len(t, a.NodeIDs(), 2) // (b1,c1) and (b2,c1)
}

// TestPushout_Correctness checks property 2: bd∘ab == cd∘ac.
func TestPushout_Correctness(t *testing.T) {
	a := graph.New(graph.WithDirected(true))
	node(t, a, "a1", nil)

	b := graph.New(graph.WithDirected(true))
	node(t, b, "b1", nil)
	ab := hom.Hom{"a1": "b1"}

	c := graph.New(graph.WithDirected(true))
	node(t, c, "c1", attrs.Normalize(map[string]any{"k": "v"}))
	ac := hom.Hom{"a1": "c1"}

	d, bd, cd, err := category.Pushout(a, b, c, ab, ac)
	require.NoError(t, err)
	require.NoError(t, hom.CheckHom(b, d, bd, false))
	require.NoError(t, hom.CheckHom(c, d, cd, false))

	// commuting square: bd[ab[a1]] == cd[ac[a1]]
	assert.Equal(t, bd[ab["a1"]], cd[ac["a1"]])
	assert.Equal(t, attrs.NewSet("v"), d.NodeAttrs(bd["b1"]).Get("k"))
}

// TestPushout_MergeMapsEveryPreimage resolves Design Note (a): when C
// merges two A-preimages into one node, both B images must map to the
// merged D node, not only the last one iterated.
func TestPushout_MergeMapsEveryPreimage(t *testing.T) {
	a := graph.New(graph.WithDirected(true))
	node(t, a, "a1", nil)
	node(t, a, "a2", nil)

	b := graph.New(graph.WithDirected(true))
	node(t, b, "b1", nil)
	node(t, b, "b2", nil)
	ab := hom.Hom{"a1": "b1", "a2": "b2"}

	c := graph.New(graph.WithDirected(true))
	node(t, c, "m", nil)
	ac := hom.Hom{"a1": "m", "a2": "m"}

	d, bd, cd, err := category.Pushout(a, b, c, ab, ac)
	require.NoError(t, err)

	assert.Equal(t, bd["b1"], bd["b2"], "both preimages of the merge must land on the same D node")
	assert.Equal(t, cd["m"], bd["b1"])
}

// TestPullbackComplement_NotMonic is scenario S3 of §8.
func TestPullbackComplement_NotMonic(t *testing.T) {
	a := graph.New(graph.WithDirected(true))
	node(t, a, "a", nil)
	b := graph.New(graph.WithDirected(true))
	node(t, b, "a", nil)
	node(t, b, "b", nil)
	d := graph.New(graph.WithDirected(true))
	node(t, d, "x", nil)

	ab := hom.Hom{"a": "a"}
	bd := hom.Hom{"a": "x", "b": "x"} // not monic

	_, _, _, err := category.PullbackComplement(a, b, d, ab, bd)
	require.ErrorIs(t, err, category.ErrNotMonic)
}

// TestPullbackComplement_Correctness checks property 3: cd∘ac == bd∘ab.
func TestPullbackComplement_Correctness(t *testing.T) {
	a := graph.New(graph.WithDirected(true))
	node(t, a, "a1", nil)

	b := graph.New(graph.WithDirected(true))
	node(t, b, "b1", nil)
	node(t, b, "b2", nil)
	ab := hom.Hom{"a1": "b1"}

	d := graph.New(graph.WithDirected(true))
	node(t, d, "d1", nil)
	node(t, d, "d2", nil)
	bd := hom.Hom{"b1": "d1", "b2": "d2"}

	c, ac, cd, err := category.PullbackComplement(a, b, d, ab, bd)
	require.NoError(t, err)
	require.NoError(t, hom.CheckHom(a, c, ac, false))
	require.NoError(t, hom.CheckHom(c, d, cd, false))
	assert.Equal(t, cd[ac["a1"]], bd[ab["a1"]])
}

// TestNaryPullback_NoCospans returns the base graph unchanged.
func TestNaryPullback_NoCospans(t *testing.T) {
	b := graph.New(graph.WithDirected(true))
	node(t, b, "b1", nil)

	a, ab, ac, err := category.NaryPullback(b, map[string]category.Cospan{})
	require.NoError(t, err)
	assert.Len(t, a.NodeIDs(), 1)
	assert.Equal(t, graph.ID("b1"), ab["b1"])
	assert.Empty(t, ac)
}

// TestNaryPullback_TwoCospans sanity-checks that all projections remain
// valid homomorphisms after iterated pairwise pullback.
func TestNaryPullback_TwoCospans(t *testing.T) {
	b := graph.New(graph.WithDirected(true))
	node(t, b, "b1", nil)
	node(t, b, "b2", nil)

	d1 := graph.New(graph.WithDirected(true))
	node(t, d1, "x", nil)
	c1 := graph.New(graph.WithDirected(true))
	node(t, c1, "c1", nil)

	d2 := graph.New(graph.WithDirected(true))
	node(t, d2, "y", nil)
	c2 := graph.New(graph.WithDirected(true))
	node(t, c2, "c2", nil)

	cospans := map[string]category.Cospan{
		"one": {C: c1, D: d1, BD: hom.Hom{"b1": "x", "b2": "x"}, CD: hom.Hom{"c1": "x"}},
		"two": {C: c2, D: d2, BD: hom.Hom{"b1": "y", "b2": "y"}, CD: hom.Hom{"c2": "y"}},
	}

	a, ab, ac, err := category.NaryPullback(b, cospans)
	require.NoError(t, err)
	require.NoError(t, hom.CheckHom(a, b, ab, false))
	for name, m := range ac {
		require.NoError(t, hom.CheckHom(a, cospans[name].C, m, false))
	}
}
