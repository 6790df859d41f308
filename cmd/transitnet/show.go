package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/dfs"
	"github.com/katalvlaran/transitnet/internal/config"
)

func newShowCmd(a *app) *cobra.Command {
	var matrix, raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			md := networkMarkdown(a.graph, matrix)
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			out, err := renderMarkdown(md, a.cfg.Color)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&matrix, "matrix", false, "Also print the adjacency matrix")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown without rendering it")
	return cmd
}

func renderMarkdown(md, color string) (string, error) {
	style := glamour.WithAutoStyle()
	if color == config.ColorNever {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// networkMarkdown describes the graph as a markdown document.
func networkMarkdown(g *core.Graph, matrix bool) string {
	view := g.View()
	var b strings.Builder

	fmt.Fprintf(&b, "# Network\n\n%d nodes, %d roads, next id %d, capacity %d",
		view.Len(), g.EdgeCount(), g.NextID(), g.Capacity())
	if path := g.BackingPath(); path != "" {
		fmt.Fprintf(&b, ", file `%s`", path)
	} else {
		b.WriteString(", not saved")
	}
	b.WriteString("\n\n")

	if view.Len() == 0 {
		b.WriteString("The network is empty.\n")
		return b.String()
	}

	b.WriteString("| ID | Name | Roads |\n|---:|---|---|\n")
	for i, id := range view.IDs() {
		roads := make([]string, 0, len(view.EdgesAt(i)))
		for _, e := range view.EdgesAt(i) {
			roads = append(roads, fmt.Sprintf("→ %d (%g)", e.To, e.Weight))
		}
		fmt.Fprintf(&b, "| %d | %s | %s |\n", id, escapeCell(view.Name(id)), strings.Join(roads, ", "))
	}

	if ok, cycles := dfs.DetectCycles(view); ok {
		b.WriteString("\n## Circular routes\n\n")
		for _, c := range cycles {
			parts := make([]string, 0, len(c))
			for _, id := range c {
				parts = append(parts, fmt.Sprint(id))
			}
			fmt.Fprintf(&b, "- %s\n", strings.Join(parts, " → "))
		}
	}

	if matrix {
		b.WriteString("\n## Adjacency matrix\n\n|   |")
		ids := view.IDs()
		for _, id := range ids {
			fmt.Fprintf(&b, " %d |", id)
		}
		b.WriteString("\n|---|" + strings.Repeat("---:|", len(ids)) + "\n")
		for i, row := range view.Matrix() {
			fmt.Fprintf(&b, "| **%d** |", ids[i])
			for _, w := range row {
				if w == 0 {
					b.WriteString(" · |")
				} else {
					fmt.Fprintf(&b, " %g |", w)
				}
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
