// File: rewrite.go
// Role: `rewritectl rewrite` — apply a DPO rewrite at a graph node and
// write the propagated hierarchy back out, annotated with run metadata.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hierarchy"
	"github.com/lvlath-rewrite/regraph/hom"
)

func newRewriteCmd() *cobra.Command {
	var ruleFile, instanceFile, outFile string

	cmd := &cobra.Command{
		Use:   "rewrite <hierarchy.json> <graph-id>",
		Short: "Apply a rule at a graph node and propagate to ancestors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ruleFile == "" || instanceFile == "" {
				return fmt.Errorf("--rule and --instance are required")
			}

			h, err := hierarchy.Load(args[0])
			if err != nil {
				return err
			}

			rl, err := loadRule(ruleFile)
			if err != nil {
				return err
			}

			instance, err := loadInstance(instanceFile)
			if err != nil {
				return err
			}

			if err := h.Rewrite(graph.ID(args[1]), instance, rl, nil, nil); err != nil {
				return fmt.Errorf("rewrite %s: %w", describeInstance(instance), err)
			}

			doc, err := h.ToJSON()
			if err != nil {
				return err
			}

			doc, err = sjson.SetBytes(doc, "rewrite_meta.rule", ruleFile)
			if err != nil {
				return fmt.Errorf("annotating result: %w", err)
			}
			doc, err = sjson.SetBytes(doc, "rewrite_meta.target", string(args[1]))
			if err != nil {
				return fmt.Errorf("annotating result: %w", err)
			}

			if outFile == "" {
				_, err = cmd.OutOrStdout().Write(doc)
				return err
			}

			return os.WriteFile(outFile, doc, 0o644)
		},
	}

	cmd.Flags().StringVar(&ruleFile, "rule", "", "path to a rule JSON file (l/p/r/pl/pr)")
	cmd.Flags().StringVar(&instanceFile, "instance", "", "path to an instance mapping JSON file (L node id -> host node id)")
	cmd.Flags().StringVar(&outFile, "out", "", "write the resulting hierarchy here instead of stdout")

	return cmd
}

// describeInstance renders an instance mapping for error context,
// substituting back any interned host id's original JSON value (see
// loadInstance) so a failure names the label the caller actually wrote
// rather than a generated UUID.
func describeInstance(instance hom.Hom) string {
	keys := make([]graph.ID, 0, len(instance))
	for k := range instance {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		host := instance[k]
		label := string(host)
		if name, ok := graph.NameOf(host); ok {
			label = fmt.Sprint(name)
		}
		parts = append(parts, fmt.Sprintf("%s=>%s", k, label))
	}

	return fmt.Sprintf("instance{%s}", strings.Join(parts, ","))
}
