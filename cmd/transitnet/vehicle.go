package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/fleet"
)

func newVehicleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vehicle",
		Aliases: []string{"v"},
		Short:   "Register, inspect and remove vehicles",
	}

	var dest int
	add := &cobra.Command{
		Use:   "add <id> <plate> <type> <node>",
		Short: "Register a vehicle with an explicit id",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "id")
			if err != nil {
				return err
			}
			origin, err := a.checkPlacement(args[3], dest)
			if err != nil {
				return err
			}
			if err = a.fleet.Add(id, args[1], args[2], origin, dest); err != nil {
				return err
			}
			a.ok("Registered vehicle %d (%s) at node %d", id, args[1], origin)
			return nil
		},
	}
	add.Flags().IntVar(&dest, "dest", fleet.NoDestination, "Pending destination node")

	var autoDest int
	auto := &cobra.Command{
		Use:   "auto <plate> <type> <node>",
		Short: "Register a vehicle under the next free id",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := a.checkPlacement(args[2], autoDest)
			if err != nil {
				return err
			}
			id, err := a.fleet.AddAuto(args[0], args[1], origin, autoDest)
			if id < 0 {
				return err
			}
			a.ok("Registered vehicle %d (%s) at node %d", id, args[0], origin)
			return err
		},
	}
	auto.Flags().IntVar(&autoDest, "dest", fleet.NoDestination, "Pending destination node")

	rm := &cobra.Command{
		Use:   "rm <id>...",
		Short: "Remove vehicles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				id, err := parseID(arg, "id")
				if err != nil {
					return err
				}
				if err = a.fleet.Remove(id); err != nil {
					return err
				}
				a.ok("Removed vehicle %d", id)
			}
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "id")
			if err != nil {
				return err
			}
			v, err := a.fleet.Get(id)
			if err != nil {
				return err
			}
			a.printVehicles([]fleet.Vehicle{v})
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every vehicle in table order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vs := a.fleet.Vehicles()
			if len(vs) == 0 {
				a.warn("No vehicles registered")
				return nil
			}
			a.printVehicles(vs)
			return nil
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show how the vehicle table is filled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.fleet.Stats()
			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Slots\t%d\n", s.Size)
			fmt.Fprintf(tw, "Active\t%d\n", s.Active)
			fmt.Fprintf(tw, "Tombstones\t%d\n", s.Tombstones)
			fmt.Fprintf(tw, "Empty\t%d\n", s.Empty)
			fmt.Fprintf(tw, "Load factor\t%.2f\n", s.LoadFactor)
			fmt.Fprintf(tw, "Displaced\t%d\n", s.Displaced)
			fmt.Fprintf(tw, "Longest probe\t%d\n", s.LongestProbe)
			fmt.Fprintf(tw, "Next id\t%d\n", s.NextID)
			if s.BackingPath != "" {
				fmt.Fprintf(tw, "File\t%s\n", s.BackingPath)
			} else {
				fmt.Fprintf(tw, "File\t%s\n", a.faint("not saved"))
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(add, auto, rm, get, list, stats)
	return cmd
}

// checkPlacement resolves the origin argument and makes sure both the origin
// and a pending destination exist in the network.
func (a *app) checkPlacement(originArg string, dest int) (int, error) {
	origin, err := parseID(originArg, "node")
	if err != nil {
		return 0, err
	}
	if !a.graph.HasNode(origin) {
		return 0, fmt.Errorf("%w: origin %d", core.ErrNodeNotFound, origin)
	}
	if dest != fleet.NoDestination && !a.graph.HasNode(dest) {
		return 0, fmt.Errorf("%w: destination %d", core.ErrNodeNotFound, dest)
	}
	return origin, nil
}

func (a *app) printVehicles(vs []fleet.Vehicle) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, a.bold("ID")+"\t"+a.bold("Plate")+"\t"+a.bold("Type")+"\t"+a.bold("At")+"\t"+a.bold("Heading to"))
	for _, v := range vs {
		heading := a.faint("-")
		if v.HasDestination() {
			heading = fmt.Sprintf("%d (%s)", v.DestinationNodeID, a.graph.NodeName(v.DestinationNodeID))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d (%s)\t%s\n", v.ID, v.Plate, v.Type,
			v.CurrentNodeID, a.graph.NodeName(v.CurrentNodeID), heading)
	}
	_ = tw.Flush()
}
