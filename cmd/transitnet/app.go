package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/dispatch"
	"github.com/katalvlaran/transitnet/fleet"
	"github.com/katalvlaran/transitnet/internal/config"
	"github.com/katalvlaran/transitnet/internal/datapath"
	"github.com/katalvlaran/transitnet/internal/logging"
	"github.com/katalvlaran/transitnet/internal/metrics"
	"github.com/katalvlaran/transitnet/movement"
)

// flags holds the persistent command line settings.
type flags struct {
	configPath  string
	network     string
	fleet       string
	dataDir     string
	logLevel    string
	color       string
	showMetrics bool
}

// app is everything a subcommand needs, built once per invocation.
type app struct {
	flags flags

	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Metrics
	out     *termenv.Output

	graph   *core.Graph
	fleet   *fleet.Registry
	history movement.Log
}

// setup loads configuration, then opens the network and fleet files.
// A missing file is not an error: it becomes the auto-persist target and is
// created by the first mutation.
func (a *app) setup(stdout io.Writer) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	if a.flags.dataDir != "" {
		cfg.DataDir = a.flags.dataDir
	}
	if a.flags.network != "" {
		cfg.NetworkFile = a.flags.network
	}
	if a.flags.fleet != "" {
		cfg.FleetFile = a.flags.fleet
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if a.flags.color != "" {
		cfg.Color = a.flags.color
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = logging.New(level)
	a.metrics = metrics.New()
	a.out = newOutput(stdout, cfg.Color)

	a.graph = core.NewGraph(
		core.WithCapacity(cfg.GraphCapacity),
		core.WithLogger(a.log),
		core.WithObserver(func(op string, err error) { a.metrics.Observe("network", op, err) }),
	)
	a.fleet = fleet.NewRegistry(
		fleet.WithSize(cfg.FleetCapacity),
		fleet.WithLogger(a.log),
		fleet.WithObserver(func(op string, err error) { a.metrics.Observe("fleet", op, err) }),
	)

	if err = open(a.graph, cfg.DataDir, cfg.NetworkFile); err != nil {
		return err
	}
	if err = open(a.fleet, cfg.DataDir, cfg.FleetFile); err != nil {
		return err
	}

	a.history, err = a.openHistory()
	return err
}

// store is the persistence surface shared by core.Graph and fleet.Registry.
type store interface {
	Load(path string) error
	SetBackingPath(path string)
}

func open(s store, dir, name string) error {
	path := datapath.Resolve(dir, name)
	if path == "" {
		return fmt.Errorf("invalid file name %q", name)
	}
	err := s.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.SetBackingPath(path)
		return nil
	}
	return err
}

func (a *app) openHistory() (movement.Log, error) {
	switch a.cfg.MovementBackend {
	case config.BackendMemory:
		return movement.NewMemoryLog(), nil
	case config.BackendRedis:
		return movement.NewRedisLog(a.cfg.RedisAddr, a.cfg.RedisKey), nil
	default:
		path := filepath.Join(a.cfg.DataDir, a.cfg.MovementLog+datapath.Ext)
		return movement.NewFileLog(path, movement.WithLogger(a.log)), nil
	}
}

func (a *app) dispatcher() *dispatch.Dispatcher {
	return dispatch.New(a.graph, a.fleet, a.history,
		dispatch.WithLogger(a.log),
		dispatch.WithPathObserver(a.metrics.ObservePath))
}

// finish updates the store gauges and prints the metrics when asked to.
func (a *app) finish(w io.Writer) error {
	if a.metrics == nil {
		return nil
	}
	a.metrics.Nodes.Set(float64(a.graph.NodeCount()))
	a.metrics.Edges.Set(float64(a.graph.EdgeCount()))
	a.metrics.Vehicles.Set(float64(a.fleet.Count()))
	if closer, ok := a.history.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			a.log.Warn("closing movement log", "error", err)
		}
	}
	if !a.flags.showMetrics {
		return nil
	}
	fmt.Fprintln(w)
	return a.metrics.WriteText(w)
}
