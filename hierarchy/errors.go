// File: errors.go
// Role: eight of the ten named error kinds of §7, plus one local
// addition needed for FindMatching, a case the prose leaves as an
// implementer's choice. The remaining two kinds, InvalidHomomorphism
// and NotMonic, are never re-declared here: every hierarchy operation
// that can fail that way calls straight into hom.CheckHom or
// category.PullbackComplement and returns their error verbatim
// (hom.ErrInvalidHomomorphism, category.ErrNotMonic), so errors.Is
// against those sentinels already works for callers at this layer.
package hierarchy

import "errors"

var (
	ErrHierarchyCycle       = errors.New("hierarchy: operation would create a cycle")
	ErrCommutationViolation = errors.New("hierarchy: path commutation violated")
	ErrIDConflict           = errors.New("hierarchy: id already present")
	ErrWrongNodeKind        = errors.New("hierarchy: operation not valid for this node kind")
	ErrUnknownID            = errors.New("hierarchy: unknown graph/rule id")
	ErrPropagationInconsistent = errors.New("hierarchy: propagation clone counts disagree")
	ErrDirectednessMismatch = errors.New("hierarchy: directedness mismatch")
	ErrIO                   = errors.New("hierarchy: io error")

	// ErrPatternTypingRequired is returned by FindMatching when
	// graph_id has outgoing typings but no pattern_typing was given.
	ErrPatternTypingRequired = errors.New("hierarchy: pattern_typing required for a typed graph")
)
