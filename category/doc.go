// Package category implements the three universal constructions the
// DPO rewrite driver composes: Pullback, Pushout, PullbackComplement,
// and the iterated n-ary pullback used during backward propagation
// for every ancestor of the rewritten node, however many of its
// successors were rewritten.
//
// Every operation is pure: inputs are graphs and homomorphisms, outputs
// are a freshly allocated graph and new homomorphisms. No input graph
// is ever mutated, matching the single-threaded, shadow-map commit
// model the hierarchy package builds on top of these primitives.
//
// The constructions are grounded line-for-line on the category_op.py
// reference implementation, translated to deterministic iteration
// (sorted node IDs) since Go's map iteration order is intentionally
// randomized and the naming rules below (collision suffixes, merge
// names) must be reproducible.
package category
