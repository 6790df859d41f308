package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move <vehicle> [dest]",
		Short: "Send a vehicle to a location along the shortest route",
		Long: `Send a vehicle to dest along the shortest route and record the attempt
in the movement history. Without dest the vehicle's pending destination is used.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "vehicle")
			if err != nil {
				return err
			}
			var dest int
			if len(args) == 2 {
				if dest, err = parseID(args[1], "destination"); err != nil {
					return err
				}
			} else {
				v, err := a.fleet.Get(id)
				if err != nil {
					return err
				}
				if !v.HasDestination() {
					return fmt.Errorf("vehicle %d has no pending destination", id)
				}
				dest = v.DestinationNodeID
			}

			res, err := a.dispatcher().Move(cmd.Context(), id, dest)
			if res == nil {
				return err
			}
			a.ok("Vehicle %d arrived at %d (%s) in %g min", id, dest, a.graph.NodeName(dest),
				res.Route.TravelTimeMinutes)
			if err != nil {
				a.warn("Vehicle file not updated: %v", err)
			}
			return err
		},
	}
}

