// Package dijkstra defines the result, hooks and configuration options
// for single-pair shortest paths over a transport network.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transitnet/errkind"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to ShortestPath.
	ErrNilGraph = errkind.New(errkind.ErrValidation, "dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or destination is not in the network.
	ErrVertexNotFound = errkind.New(errkind.ErrNotFound, "dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errkind.New(errkind.ErrValidation, "dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would close every road.
	ErrBadInfThreshold = errkind.New(errkind.ErrValidation, "dijkstra: InfEdgeThreshold must be positive")
)

// Result is the outcome of a single-pair search.
//
// Found=false is a normal outcome ("no route"); TotalDistance,
// TravelTimeMinutes and Path are then zero values.
type Result struct {
	Found         bool
	TotalDistance float64
	Path          []int // source … destination, inclusive

	// TravelTimeMinutes is TotalDistance / 60 * 60: a constant 60 km/h
	// assumption written so that it equals TotalDistance.
	TravelTimeMinutes float64
}

// Settle is passed to the OnSettle hook each time a node's distance becomes final.
type Settle struct {
	ID       int
	Distance float64

	// Distances holds every node with a finite tentative or final distance
	// at this moment (copy).
	Distances map[int]float64

	// Settled lists finalized nodes in settle order, ending with ID.
	Settled []int
}

// Options configures the behavior of ShortestPath.
//
// MaxDistance      – nodes farther than this are not explored. Must be ≥ 0.
// InfEdgeThreshold – edges with weight ≥ this are treated as closed roads. Must be > 0.
// OnSettle         – hook called per settled node; a non-nil error aborts the search.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	OnSettle         func(Settle) error

	err error
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap, no closed roads and no hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithMaxDistance stops exploring beyond max. Negative values surface as
// ErrBadMaxDistance when ShortestPath runs.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as closed.
// Non-positive values surface as ErrBadInfThreshold when ShortestPath runs.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.err = fmt.Errorf("%w: %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle installs a hook called each time a node is settled.
func WithOnSettle(fn func(Settle) error) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}
