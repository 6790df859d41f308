package fleet

import (
	"log/slog"
	"sync"

	"github.com/katalvlaran/transitnet/errkind"
	"github.com/katalvlaran/transitnet/internal/logging"
)

// DefaultSize is the number of table slots unless WithSize is used. It is prime.
const DefaultSize = 101

// NoDestination marks a vehicle without a pending destination.
const NoDestination = -1

// Sentinel errors for registry operations.
var (
	// ErrTableFull indicates that every slot holds an active vehicle.
	ErrTableFull = errkind.New(errkind.ErrValidation, "fleet: registry is full")

	// ErrDuplicateVehicle indicates an insert with an id that is already active.
	ErrDuplicateVehicle = errkind.New(errkind.ErrValidation, "fleet: vehicle already exists")

	// ErrNegativeID indicates a vehicle id below zero.
	ErrNegativeID = errkind.New(errkind.ErrValidation, "fleet: vehicle id is negative")

	// ErrEmptyField indicates an empty plate or type.
	ErrEmptyField = errkind.New(errkind.ErrValidation, "fleet: required field is empty")

	// ErrInvalidField indicates a plate or type containing ';' or a line break.
	ErrInvalidField = errkind.New(errkind.ErrValidation, "fleet: field contains a separator")

	// ErrEmptyPath indicates a Load or Save without a file path.
	ErrEmptyPath = errkind.New(errkind.ErrValidation, "fleet: file path is empty")

	// ErrVehicleNotFound indicates no active vehicle has the id.
	ErrVehicleNotFound = errkind.New(errkind.ErrNotFound, "fleet: vehicle not found")

	// ErrPersist indicates the automatic rewrite of the backing file failed.
	ErrPersist = errkind.New(errkind.ErrIO, "fleet: auto-persist failed")
)

// Vehicle is a copy of a registered vehicle.
type Vehicle struct {
	ID                int
	Plate             string
	Type              string
	CurrentNodeID     int
	DestinationNodeID int // NoDestination when none
}

// HasDestination reports whether a destination is pending.
func (v Vehicle) HasDestination() bool { return v.DestinationNodeID != NoDestination }

type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotActive
)

// slot keeps the vehicle id after removal so the tombstone stays traceable.
type slot struct {
	state   slotState
	vehicle Vehicle
}

// Observer receives the outcome of every public mutation.
// It is called after the lock is released.
type Observer func(op string, err error)

// Option configures a Registry before first use.
type Option func(r *Registry)

// WithSize sets the table size. Values ≤ 0 are ignored. A prime keeps
// id mod size well spread.
func WithSize(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.size = n
		}
	}
}

// WithLogger routes load/save/persist diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithObserver registers fn to be told about every mutation and its result.
func WithObserver(fn Observer) Option {
	return func(r *Registry) { r.observer = fn }
}

// Registry is the vehicle table. mu guards every field below it.
type Registry struct {
	mu sync.RWMutex

	size   int
	slots  []slot
	count  int
	nextID int
	path   string

	log      *slog.Logger
	observer Observer
}

// NewRegistry returns an empty registry with DefaultSize slots.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		size: DefaultSize,
		log:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.slots = make([]slot, r.size)
	return r
}

func (r *Registry) observe(op string, err error) {
	if r.observer != nil {
		r.observer(op, err)
	}
}
