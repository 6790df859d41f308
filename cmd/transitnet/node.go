package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newNodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Add or remove locations",
	}

	add := &cobra.Command{
		Use:   "add <id> <name>...",
		Short: "Add a location with an explicit id",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "id")
			if err != nil {
				return err
			}
			name := strings.Join(args[1:], " ")
			if err = a.graph.AddNode(id, name); err != nil {
				return err
			}
			a.ok("Added node %d (%s)", id, name)
			return nil
		},
	}

	auto := &cobra.Command{
		Use:   "auto <name>...",
		Short: "Add a location under the next free id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			id, err := a.graph.AddNodeAuto(name)
			if id < 0 {
				return err
			}
			a.ok("Added node %d (%s)", id, name)
			return err
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>...",
		Short: "Remove locations and every road touching them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				id, err := parseID(arg, "id")
				if err != nil {
					return err
				}
				if err = a.graph.RemoveNode(id); err != nil {
					return err
				}
				a.ok("Removed node %d", id)
			}
			return nil
		},
	}

	cmd.AddCommand(add, auto, rm)
	return cmd
}
