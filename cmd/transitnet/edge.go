package main

import (
	"github.com/spf13/cobra"
)

func newEdgeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edge",
		Short: "Add, change or remove one-way roads",
	}

	add := &cobra.Command{
		Use:   "add <src> <dst> <weight>",
		Short: "Add a road from src to dst",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst, w, err := parseEdge(args)
			if err != nil {
				return err
			}
			if err = a.graph.AddEdge(src, dst, w); err != nil {
				return err
			}
			a.ok("Added road %d → %d (%g)", src, dst, w)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <src> <dst> <weight>",
		Short: "Change the weight of an existing road",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst, w, err := parseEdge(args)
			if err != nil {
				return err
			}
			if err = a.graph.UpdateEdge(src, dst, w); err != nil {
				return err
			}
			a.ok("Road %d → %d now weighs %g", src, dst, w)
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <src> <dst>",
		Short: "Remove the road from src to dst",
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
			if err = a.graph.RemoveEdge(src, dst); err != nil {
				return err
			}
			a.ok("Removed road %d → %d", src, dst)
			return nil
		},
	}

	cmd.AddCommand(add, set, rm)
	return cmd
}

func parseEdge(args []string) (src, dst int, w float64, err error) {
	if src, err = parseID(args[0], "source"); err != nil {
		return
	}
	if dst, err = parseID(args[1], "destination"); err != nil {
		return
	}
	w, err = parseWeight(args[2])
	return
}
