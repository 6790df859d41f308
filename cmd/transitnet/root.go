package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "transitnet",
		Short: "Transitnet manages a transport network and its fleet",
		Long: `Transitnet keeps a directed, weighted network of locations and roads,
a registry of vehicles standing on it, and a log of every attempt to move them.
Every change is written back to the data files immediately.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.OutOrStdout())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.finish(cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "transitnet.yaml", "Configuration file")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "Directory holding the data files")
	pf.StringVar(&a.flags.network, "network", "", "Network file name inside the data directory")
	pf.StringVar(&a.flags.fleet, "fleet", "", "Vehicle file name inside the data directory")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.flags.color, "color", "", "Color output: auto, always, never")
	pf.BoolVar(&a.flags.showMetrics, "metrics", false, "Print collected metrics after the command")

	root.AddCommand(
		newNodeCmd(a),
		newEdgeCmd(a),
		newShowCmd(a),
		newPathCmd(a),
		newTraverseCmd(a, "bfs"),
		newTraverseCmd(a, "dfs"),
		newVehicleCmd(a),
		newMoveCmd(a),
		newHistoryCmd(a),
	)
	return root
}
