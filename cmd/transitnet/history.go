package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transitnet/movement"
)

func newHistoryCmd(a *app) *cobra.Command {
	var failedOnly bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List every recorded movement attempt, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := a.history.Records(cmd.Context())
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				a.warn("No movement history found")
				return nil
			}

			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, a.bold("Vehicle")+"\t"+a.bold("Destination")+"\t"+a.bold("Status")+"\t"+a.bold("Time (min)")+"\t"+a.bold("Reason"))
			for _, r := range recs {
				if failedOnly && r.Status != movement.StatusFailed {
					continue
				}
				status := a.out.String(string(r.Status)).Foreground(a.out.Color("2")).String()
				if r.Status == movement.StatusFailed {
					status = a.out.String(string(r.Status)).Foreground(a.out.Color("1")).String()
				}
				fmt.Fprintf(tw, "%d\t%d\t%s\t%g\t%s\n", r.VehicleID, r.DestinationNodeID, status,
					r.TravelTimeMinutes, r.FailReason)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&failedOnly, "failed", false, "Only list failed attempts")
	return cmd
}
