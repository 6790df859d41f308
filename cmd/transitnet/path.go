package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transitnet/dijkstra"
)

func newPathCmd(a *app) *cobra.Command {
	var maxDistance, closedFrom float64

	cmd := &cobra.Command{
		Use:   "path <src> <dst>",
		Short: "Find the shortest route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseID(args[0], "source")
			if err != nil {
				return err
			}
			dst, err := parseID(args[1], "destination")
			if err != nil {
				return err
			}

			var opts []dijkstra.Option
			if cmd.Flags().Changed("max-distance") {
				opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
			}
			if cmd.Flags().Changed("closed-from") {
				opts = append(opts, dijkstra.WithInfEdgeThreshold(closedFrom))
			}

			start := time.Now()
			res, err := dijkstra.ShortestPath(cmd.Context(), a.graph, src, dst, opts...)
			a.metrics.ObservePath(time.Since(start))
			if err != nil {
				return err
			}
			if !res.Found {
				a.warn("No route from %d to %d", src, dst)
				return nil
			}

			hops := make([]string, len(res.Path))
			for i, id := range res.Path {
				hops[i] = fmt.Sprintf("%d (%s)", id, a.graph.NodeName(id))
			}
			fmt.Fprintln(a.out, a.bold("Route: ")+strings.Join(hops, " → "))
			fmt.Fprintf(a.out, "Distance: %g\n", res.TotalDistance)
			fmt.Fprintf(a.out, "Travel time: %g min\n", res.TravelTimeMinutes)
			return nil
		},
	}
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "Ignore locations farther than this")
	cmd.Flags().Float64Var(&closedFrom, "closed-from", 0, "Treat roads at least this heavy as closed")
	return cmd
}
