// File: ruleio.go
// Role: the standalone rule/instance file shapes `rewrite` reads, kept
// separate from hierarchy's whole-document wire format since a rule
// passed on the command line names no hierarchy id of its own yet.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hom"
	"github.com/lvlath-rewrite/regraph/rule"
)

type wireRule struct {
	L  *graph.Graph      `json:"l"`
	P  *graph.Graph      `json:"p"`
	R  *graph.Graph      `json:"r"`
	PL map[string]string `json:"pl"`
	PR map[string]string `json:"pr"`
}

func loadRule(path string) (*rule.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule %q: %w", path, err)
	}
	var w wireRule
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parsing rule %q: %w", path, err)
	}

	return rule.New(w.L, w.P, w.R, stringMapToHom(w.PL), stringMapToHom(w.PR))
}

// loadInstance reads an instance mapping: pattern node id -> host node
// id. A host id may be given as a JSON string (an existing graph.ID
// verbatim) or as any other JSON scalar/object (a natural label for a
// host node that was never assigned a textual ID); the latter is
// interned via graph.Intern, which assigns it a fresh ID on every call,
// with the original value recoverable through graph.NameOf for
// diagnostics.
func loadInstance(path string) (hom.Hom, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance %q: %w", path, err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing instance %q: %w", path, err)
	}

	out := make(hom.Hom, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[graph.ID(k)] = graph.ID(s)
			continue
		}
		out[graph.ID(k)] = graph.Intern(v)
	}

	return out, nil
}

func stringMapToHom(m map[string]string) hom.Hom {
	out := make(hom.Hom, len(m))
	for k, v := range m {
		out[graph.ID(k)] = graph.ID(v)
	}

	return out
}
