// File: script.go
// Role: FromTransform and the §6.3 rule-authoring mini-language
// interpreter: a line-at-a-time scanner over a small fixed command
// set, with attribute literals parsed as JSON via tidwall/gjson.
package rule

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/lvlath-rewrite/regraph/attrs"
	"github.com/lvlath-rewrite/regraph/graph"
)

// FromTransform builds the identity rule on pattern and, if script is
// non-empty, interprets it one command per line against that rule.
// Each line may end with a trailing '.'; blank lines are skipped.
func FromTransform(pattern *graph.Graph, script string) (*Rule, error) {
	r := Identity(pattern)
	for i, line := range splitCommands(script) {
		if err := r.applyCommand(line); err != nil {
			return nil, fmt.Errorf("rule: script line %d (%q): %w", i+1, line, err)
		}
	}

	return r, nil
}

func splitCommands(script string) []string {
	var out []string
	for _, raw := range strings.Split(script, "\n") {
		line := strings.TrimSpace(raw)
		line = strings.TrimSuffix(line, ".")
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

func (r *Rule) applyCommand(line string) error {
	verb, rest := splitFirst(line)
	switch verb {
	case "clone":
		n, newName := splitCloneArgs(rest)
		_, _, err := r.InjectCloneNode(n, newName)
		return err
	case "delete_node":
		return r.InjectRemoveNode(graph.ID(strings.TrimSpace(rest)))
	case "delete_edge":
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			return fmt.Errorf("%w: delete_edge wants two node names", ErrScriptSyntax)
		}
		return r.InjectRemoveEdge(graph.ID(fields[0]), graph.ID(fields[1]))
	case "add_node":
		name, bag, err := splitNameAndAttrs(rest)
		if err != nil {
			return err
		}
		return r.InjectAddNode(name, bag)
	case "add_edge":
		return r.applyAddEdge(rest)
	case "merge":
		list, err := parseMergeList(rest)
		if err != nil {
			return err
		}
		_, err = r.InjectMergeNodes(list)
		return err
	default:
		return fmt.Errorf("%w: unknown command %q", ErrScriptSyntax, verb)
	}
}

func (r *Rule) applyAddEdge(rest string) error {
	head := rest
	var bag attrs.Bag
	if idx := strings.IndexByte(rest, '{'); idx >= 0 {
		head = rest[:idx]
		b, err := parseAttrsJSON(rest[idx:])
		if err != nil {
			return err
		}
		bag = b
	}
	fields := strings.Fields(head)
	if len(fields) != 2 {
		return fmt.Errorf("%w: add_edge wants two node names", ErrScriptSyntax)
	}

	return r.InjectAddEdge(graph.ID(fields[0]), graph.ID(fields[1]), bag)
}

// splitFirst splits line on its first run of whitespace, trimming both
// halves.
func splitFirst(line string) (verb, rest string) {
	line = strings.TrimSpace(line)
	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return line, ""
	}

	return line[:idx], strings.TrimSpace(line[idx+1:])
}

// splitCloneArgs parses "N" or "N as 'M'".
func splitCloneArgs(rest string) (n, newName graph.ID) {
	parts := strings.SplitN(rest, " as ", 2)
	n = graph.ID(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		newName = graph.ID(strings.Trim(strings.TrimSpace(parts[1]), "'"))
	}

	return n, newName
}

// splitNameAndAttrs parses "N" or "N {json-attrs}".
func splitNameAndAttrs(rest string) (graph.ID, attrs.Bag, error) {
	idx := strings.IndexByte(rest, '{')
	if idx < 0 {
		return graph.ID(strings.TrimSpace(rest)), nil, nil
	}
	name := graph.ID(strings.TrimSpace(rest[:idx]))
	bag, err := parseAttrsJSON(rest[idx:])

	return name, bag, err
}

// parseAttrsJSON parses a JSON object literal into a normalized Bag
// using gjson, consistent with attrs.Normalize's map[string]any
// ingestion surface.
func parseAttrsJSON(s string) (attrs.Bag, error) {
	parsed := gjson.Parse(s)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%w: %q is not a JSON object", ErrScriptSyntax, s)
	}

	raw := make(map[string]any)
	parsed.ForEach(func(key, value gjson.Result) bool {
		if value.IsArray() {
			var vals []any
			value.ForEach(func(_, v gjson.Result) bool {
				vals = append(vals, v.Value())
				return true
			})
			raw[key.String()] = vals
		} else {
			raw[key.String()] = value.Value()
		}
		return true
	})

	return attrs.Normalize(raw), nil
}

// parseMergeList parses "[N1, N2, ...]".
func parseMergeList(rest string) ([]graph.ID, error) {
	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, "[")
	rest = strings.TrimSuffix(rest, "]")

	var list []graph.ID
	for _, part := range strings.Split(rest, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			list = append(list, graph.ID(part))
		}
	}
	if len(list) < 2 {
		return nil, fmt.Errorf("%w: merge needs at least two nodes", ErrScriptSyntax)
	}

	return list, nil
}
