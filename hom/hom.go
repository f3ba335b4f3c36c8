// File: hom.go
// Role: the Hom map type plus validation, composition, monicity, and
// preimage lookup, grounded on the reference implementation's
// check_homomorphism / compose_homomorphisms / is_monic / keys_by_value
// helpers (regraph/library/utils.py, referenced from category_op.py).
package hom

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
)

// ErrInvalidHomomorphism is returned by CheckHom when a mapping fails
// totality, edge preservation, or attribute subsumption.
var ErrInvalidHomomorphism = errors.New("hom: invalid homomorphism")

// Hom is a total node mapping from a source graph to a target graph.
type Hom map[graph.ID]graph.ID

// CheckHom verifies that m is a valid homomorphism src -> dst: total on
// src's nodes, edge-preserving, and (unless ignoreAttrs) attribute-
// subsuming on both nodes and edges.
func CheckHom(src, dst *graph.Graph, m Hom, ignoreAttrs bool) error {
	for _, u := range src.NodeIDs() {
		fu, ok := m[u]
		if !ok {
			return fmt.Errorf("%w: mapping is not total, missing image of node %q", ErrInvalidHomomorphism, u)
		}
		if !dst.HasNode(fu) {
			return fmt.Errorf("%w: image node %q of %q is not in target graph", ErrInvalidHomomorphism, fu, u)
		}
		if !ignoreAttrs && !attrs.Subsumes(src.NodeAttrs(u), dst.NodeAttrs(fu)) {
			return fmt.Errorf("%w: node %q attributes not subsumed by image %q", ErrInvalidHomomorphism, u, fu)
		}
	}
	for _, e := range src.Edges() {
		fu, fv := m[e.From], m[e.To]
		if !dst.HasEdge(fu, fv) {
			return fmt.Errorf("%w: edge (%q,%q) has no image edge (%q,%q)", ErrInvalidHomomorphism, e.From, e.To, fu, fv)
		}
		if !ignoreAttrs {
			srcBag, _ := src.EdgeAttrs(e.From, e.To)
			dstBag, _ := dst.EdgeAttrs(fu, fv)
			if !attrs.Subsumes(srcBag, dstBag) {
				return fmt.Errorf("%w: edge (%q,%q) attributes not subsumed by image edge", ErrInvalidHomomorphism, e.From, e.To)
			}
		}
	}

	return nil
}

// Monic reports whether m is injective.
func Monic(m Hom) bool {
	seen := make(map[graph.ID]struct{}, len(m))
	for _, v := range m {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}

	return true
}

// Compose returns outer ∘ inner: for each key k of inner, the result
// maps k to outer[inner[k]].
func Compose(outer, inner Hom) Hom {
	out := make(Hom, len(inner))
	for k, v := range inner {
		out[k] = outer[v]
	}

	return out
}

// KeysByValue returns every key of m whose value equals v, sorted for
// determinism.
func KeysByValue(m Hom, v graph.ID) []graph.ID {
	var out []graph.ID
	for k, mv := range m {
		if mv == v {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
