package attrs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-rewrite/regraph/attrs"
)

func TestNormalize_ScalarSugar(t *testing.T) {
	b := attrs.Normalize(map[string]any{
		"color": "red",
		"count": 3,
		"tags":  []any{"a", "b"},
		"empty": nil,
	})

	assert.Equal(t, attrs.NewSet("red"), b.Get("color"))
	assert.Equal(t, attrs.NewSet(3), b.Get("count"))
	assert.Equal(t, attrs.NewSet("a", "b"), b.Get("tags"))
	assert.Equal(t, attrs.Set{}, b.Get("empty"))
	assert.Equal(t, attrs.Set{}, b.Get("missing-key"))
}

func TestNormalize_PanicsOnNonComparable(t *testing.T) {
	assert.Panics(t, func() {
		attrs.Normalize(map[string]any{"bad": []int{1, 2}})
	})
}

func TestUnion(t *testing.T) {
	a := attrs.Normalize(map[string]any{"k1": []any{"x"}, "shared": []any{"a"}})
	b := attrs.Normalize(map[string]any{"k2": []any{"y"}, "shared": []any{"b"}})

	out := attrs.Union(a, b)
	assert.Equal(t, attrs.NewSet("x"), out.Get("k1"))
	assert.Equal(t, attrs.NewSet("y"), out.Get("k2"))
	assert.Equal(t, attrs.NewSet("a", "b"), out.Get("shared"))
}

func TestIntersection_RestrictedToCommonKeys(t *testing.T) {
	a := attrs.Normalize(map[string]any{"only_a": []any{"x"}, "shared": []any{"a", "b"}})
	b := attrs.Normalize(map[string]any{"only_b": []any{"y"}, "shared": []any{"b", "c"}})

	out := attrs.Intersection(a, b)
	_, hasOnlyA := out["only_a"]
	_, hasOnlyB := out["only_b"]
	require.False(t, hasOnlyA)
	require.False(t, hasOnlyB)
	assert.Equal(t, attrs.NewSet("b"), out.Get("shared"))
}

func TestDifference(t *testing.T) {
	a := attrs.Normalize(map[string]any{"k": []any{"x", "y"}})
	b := attrs.Normalize(map[string]any{"k": []any{"y"}})

	out := attrs.Difference(a, b)
	assert.Equal(t, attrs.NewSet("x"), out.Get("k"))
}

func TestSubsumes(t *testing.T) {
	small := attrs.Normalize(map[string]any{"k": []any{"x"}})
	big := attrs.Normalize(map[string]any{"k": []any{"x", "y"}, "other": []any{"z"}})

	assert.True(t, attrs.Subsumes(small, big))
	assert.False(t, attrs.Subsumes(big, small))
	assert.True(t, attrs.Subsumes(attrs.Bag{}, small))
}

func TestCloneIsIndependent(t *testing.T) {
	a := attrs.Normalize(map[string]any{"k": []any{"x"}})
	clone := a.Clone()
	clone["k"]["y"] = struct{}{}

	assert.Equal(t, attrs.NewSet("x"), a.Get("k"))
	assert.Equal(t, attrs.NewSet("x", "y"), clone.Get("k"))
}
