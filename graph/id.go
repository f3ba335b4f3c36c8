// File: id.go
// Role: identifier interning for callers whose natural node labels are
// not strings (numbers, tuples, structs). Interning assigns a fresh
// opaque ID and remembers the caller's original value in a side table,
// per the "dynamic node identifiers" design note: model heterogeneous
// identifiers as a hashable union, or intern to a uniform type and
// carry a display-name side table. Wired at the JSON/CLI boundary,
// where an instance or pattern mapping may name a host node by a raw
// JSON scalar instead of a pre-assigned ID (see cmd/rewritectl/ruleio.go).
package graph

import (
	"sync"

	"github.com/google/uuid"
)

var (
	internMu    sync.Mutex
	internNames = make(map[ID]any)
)

// Intern assigns a fresh ID for value and records it. Use this when a
// caller needs a node identifier but their natural label is not a
// plain string (e.g. a JSON number or composite key); the generated ID
// is a random UUID, so it never collides with a caller-chosen textual
// ID.
func Intern(value any) ID {
	internMu.Lock()
	defer internMu.Unlock()

	id := ID(uuid.NewString())
	internNames[id] = value

	return id
}

// NameOf returns the original value a previous Intern call recorded
// for id, if any.
func NameOf(id ID) (any, bool) {
	internMu.Lock()
	defer internMu.Unlock()

	v, ok := internNames[id]

	return v, ok
}
