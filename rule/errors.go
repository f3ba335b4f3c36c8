// File: errors.go
// Role: sentinel errors specific to rule construction and the
// mini-language interpreter. Graph-level failures (missing node,
// duplicate edge, ...) are returned verbatim from the underlying
// graph.Graph/hom calls rather than re-wrapped here.
package rule

import "errors"

var (
	// ErrUnknownNode is returned when an operation names an L-node with
	// no P-preimage (already removed, or never present).
	ErrUnknownNode = errors.New("rule: node has no preimage in P")

	// ErrNodeAlreadyRemoved is returned by InjectMergeNodes when one of
	// the listed L-nodes has already lost every P-preimage.
	ErrNodeAlreadyRemoved = errors.New("rule: node is already marked for removal")

	// ErrMergeTooFew is returned by InjectMergeNodes for a list shorter
	// than two nodes.
	ErrMergeTooFew = errors.New("rule: merge requires at least two nodes")

	// ErrPLNotMonic is returned by New when pL fails injectivity.
	ErrPLNotMonic = errors.New("rule: pL must be monic")

	// ErrScriptSyntax is returned by FromTransform for a malformed
	// mini-language command.
	ErrScriptSyntax = errors.New("rule: mini-language syntax error")
)
