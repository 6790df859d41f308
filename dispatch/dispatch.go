// Package dispatch moves vehicles across the network.
//
// A Dispatcher ties the three stores together: it reads the vehicle from the
// fleet registry, routes it with Dijkstra over the current network, relocates
// it on success and records every attempt in the movement log.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/dijkstra"
	"github.com/katalvlaran/transitnet/errkind"
	"github.com/katalvlaran/transitnet/fleet"
	"github.com/katalvlaran/transitnet/internal/logging"
	"github.com/katalvlaran/transitnet/movement"
)

var (
	// ErrNoRoute indicates that the destination cannot be reached from the vehicle's node.
	ErrNoRoute = errkind.New(errkind.ErrNotFound, "dispatch: no route")

	// ErrUnknownDestination indicates that the destination node does not exist.
	ErrUnknownDestination = errkind.New(errkind.ErrNotFound, "dispatch: unknown destination")

	// ErrAlreadyThere indicates that the vehicle already stands on the destination.
	ErrAlreadyThere = errkind.New(errkind.ErrValidation, "dispatch: vehicle already at destination")
)

// Result describes a completed move.
type Result struct {
	Vehicle fleet.Vehicle    // state after the move
	Route   *dijkstra.Result // path taken
	Record  movement.Record  // entry appended to the log
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger routes dispatch diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithPathOptions passes opts to every shortest path search.
func WithPathOptions(opts ...dijkstra.Option) Option {
	return func(d *Dispatcher) { d.pathOpts = append(d.pathOpts, opts...) }
}

// WithPathObserver reports how long each shortest path search took.
func WithPathObserver(fn func(time.Duration)) Option {
	return func(d *Dispatcher) { d.onPath = fn }
}

// Dispatcher moves vehicles. It holds no state of its own beyond its collaborators.
type Dispatcher struct {
	graph    *core.Graph
	fleet    *fleet.Registry
	history  movement.Log
	log      *slog.Logger
	pathOpts []dijkstra.Option
	onPath   func(time.Duration)
}

// New returns a Dispatcher over the given stores.
func New(g *core.Graph, r *fleet.Registry, history movement.Log, opts ...Option) *Dispatcher {
	d := &Dispatcher{graph: g, fleet: r, history: history, log: logging.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Move sends vehicle vehicleID to node dest along the shortest route.
//
// Steps:
//  1. Look the vehicle up. An unknown id fails with fleet.ErrVehicleNotFound
//     and nothing is logged.
//  2. Refuse an unknown destination (ErrUnknownDestination) and a vehicle
//     already on dest (ErrAlreadyThere).
//  3. Run Dijkstra from the vehicle's node. No route, or a vehicle standing on
//     a node that no longer exists, fails with ErrNoRoute.
//  4. Relocate the vehicle to dest with no pending destination.
//
// Every refusal in steps 2-3 and every success is appended to the movement
// log. A fleet.ErrPersist from step 4 is returned alongside the Result: the
// move happened in memory.
func (d *Dispatcher) Move(ctx context.Context, vehicleID, dest int) (*Result, error) {
	v, err := d.fleet.Get(vehicleID)
	if err != nil {
		return nil, err
	}

	// One snapshot serves both the destination check and the search.
	view := d.graph.View()
	if !view.Has(dest) {
		return nil, d.refuse(ctx, v, dest, movement.ReasonUnknownDestination,
			fmt.Errorf("%w: %d", ErrUnknownDestination, dest))
	}
	if v.CurrentNodeID == dest {
		return nil, d.refuse(ctx, v, dest, movement.ReasonAlreadyThere,
			fmt.Errorf("%w: vehicle %d at node %d", ErrAlreadyThere, v.ID, dest))
	}

	start := time.Now()
	route, err := dijkstra.ShortestPath(ctx, view, v.CurrentNodeID, dest, d.pathOpts...)
	if d.onPath != nil {
		d.onPath(time.Since(start))
	}
	switch {
	case errors.Is(err, dijkstra.ErrVertexNotFound):
		return nil, d.refuse(ctx, v, dest, movement.ReasonNoRoute,
			fmt.Errorf("%w: vehicle %d stands on missing node %d: %w", ErrNoRoute, v.ID, v.CurrentNodeID, err))
	case err != nil:
		return nil, err
	case !route.Found:
		return nil, d.refuse(ctx, v, dest, movement.ReasonNoRoute,
			fmt.Errorf("%w: %d→%d", ErrNoRoute, v.CurrentNodeID, dest))
	}

	relocErr := d.fleet.Relocate(v.ID, dest, fleet.NoDestination)
	if relocErr != nil && !errors.Is(relocErr, fleet.ErrPersist) {
		return nil, relocErr
	}

	rec := movement.Success(v.ID, dest, route.TravelTimeMinutes)
	if err = d.history.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("dispatch: record move of vehicle %d: %w", v.ID, err)
	}

	v.CurrentNodeID, v.DestinationNodeID = dest, fleet.NoDestination
	d.log.Info("vehicle moved", "vehicle", v.ID, "to", dest,
		"distance", route.TotalDistance, "minutes", route.TravelTimeMinutes, "hops", len(route.Path)-1)
	return &Result{Vehicle: v, Route: route, Record: rec}, relocErr
}

// refuse records a failed attempt and returns cause, or the logging error
// joined with cause when the record could not be stored.
func (d *Dispatcher) refuse(ctx context.Context, v fleet.Vehicle, dest int, reason string, cause error) error {
	d.log.Warn("move refused", "vehicle", v.ID, "from", v.CurrentNodeID, "to", dest, "reason", reason)
	if err := d.history.Append(ctx, movement.Failure(v.ID, dest, reason)); err != nil {
		return errors.Join(cause, fmt.Errorf("dispatch: record refusal: %w", err))
	}
	return cause
}
