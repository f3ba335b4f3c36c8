// Package hierarchy implements the typed DAG of attributed graphs and
// rules (§4.3), the rewrite driver with backward propagation (§4.4),
// and JSON (de)serialization of the whole structure (§6.2).
//
// A Hierarchy owns every graph and rule it contains: category
// operations never mutate their inputs, so Rewrite stages every update
// in a shadow map and commits it in a single pass, leaving the
// hierarchy bit-identical to its pre-call state on any failure.
package hierarchy
