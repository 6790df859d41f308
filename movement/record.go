package movement

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/transitnet/errkind"
	"github.com/katalvlaran/transitnet/internal/record"
)

// Status is the outcome of a relocation attempt.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Failure reasons written by the dispatcher.
const (
	ReasonNoRoute            = "no route"
	ReasonUnknownDestination = "unknown destination"
	ReasonAlreadyThere       = "already at destination"
)

var (
	// ErrInvalidRecord indicates a record that cannot be stored as one line.
	ErrInvalidRecord = errkind.New(errkind.ErrValidation, "movement: invalid record")
)

// Record is one relocation attempt.
type Record struct {
	VehicleID         int
	DestinationNodeID int
	Status            Status
	TravelTimeMinutes float64
	FailReason        string // empty unless Status is StatusFailed
}

// Log is an append-only movement history.
type Log interface {
	// Append stores r after every record appended before it.
	Append(ctx context.Context, r Record) error
	// Records returns the whole history in append order.
	Records(ctx context.Context) ([]Record, error)
}

// Success builds the record of a completed move.
func Success(vehicleID, dest int, minutes float64) Record {
	return Record{VehicleID: vehicleID, DestinationNodeID: dest, Status: StatusSuccess, TravelTimeMinutes: minutes}
}

// Failure builds the record of a refused move.
func Failure(vehicleID, dest int, reason string) Record {
	return Record{VehicleID: vehicleID, DestinationNodeID: dest, Status: StatusFailed, FailReason: reason}
}

// Validate checks that r has a known status and fits on a single line.
func (r Record) Validate() error {
	switch r.Status {
	case StatusSuccess:
		if r.FailReason != "" {
			return fmt.Errorf("%w: successful move with reason %q", ErrInvalidRecord, r.FailReason)
		}
	case StatusFailed:
	default:
		return fmt.Errorf("%w: status %q", ErrInvalidRecord, r.Status)
	}
	if strings.ContainsAny(r.FailReason, "\r\n") {
		return fmt.Errorf("%w: reason spans lines", ErrInvalidRecord)
	}
	return nil
}

// String encodes r in the line format shared by the file and Redis backends.
func (r Record) String() string {
	return strings.Join([]string{
		strconv.Itoa(r.VehicleID),
		strconv.Itoa(r.DestinationNodeID),
		string(r.Status),
		record.FormatFloat(r.TravelTimeMinutes),
		r.FailReason,
	}, record.Sep)
}

// parse decodes one stored line. The reason keeps any further separators.
func parse(l record.Line) (Record, error) {
	vid, err := record.Int(l.Tag)
	if err != nil {
		return Record{}, fmt.Errorf("vehicle id: %w", err)
	}
	f, err := l.Fields(4)
	if err != nil {
		return Record{}, err
	}
	dest, err := record.Int(f[0])
	if err != nil {
		return Record{}, fmt.Errorf("destination: %w", err)
	}
	minutes, err := record.Float(f[2])
	if err != nil {
		return Record{}, fmt.Errorf("travel time: %w", err)
	}
	return Record{
		VehicleID:         vid,
		DestinationNodeID: dest,
		Status:            Status(f[1]),
		TravelTimeMinutes: minutes,
		FailReason:        f[3],
	}, nil
}

// parseText decodes a single stored line outside of a file scan.
func parseText(no int, text string) (Record, error) {
	tag, rest, _ := strings.Cut(strings.TrimRight(text, "\r"), record.Sep)
	return parse(record.Line{No: no, Tag: tag, Rest: rest})
}
