package fleet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/transitnet/errkind"
	"github.com/katalvlaran/transitnet/internal/atomicfile"
	"github.com/katalvlaran/transitnet/internal/record"
)

const tagVehicle = "V"

// Load replaces the registry with the contents of path and attaches path
// for auto-persist.
//
// A malformed number or wrong field count returns *errkind.FormatError and
// leaves the registry untouched. Vehicles the table refuses (duplicate id,
// empty plate, full table) are skipped and logged at WARN. NextID() becomes
// max(id)+1.
func (r *Registry) Load(path string) (err error) {
	defer func() { r.observe("load", err) }()

	if path == "" {
		return ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("fleet: open %s: %w: %w", path, errkind.ErrIO, err)
	}
	defer f.Close()

	r.mu.Lock()
	defer r.mu.Unlock()

	fresh := NewRegistry(WithSize(r.size), WithLogger(r.log))
	loaded, skipped := 0, 0
	err = record.Scan(bufio.NewReader(f), func(l record.Line) error {
		if l.Tag != tagVehicle {
			r.log.Debug("ignoring unknown record", "path", path, "line", l.No, "tag", l.Tag)
			return nil
		}
		v, perr := parseVehicle(l)
		if perr != nil {
			return &errkind.FormatError{Path: path, Line: l.No, Err: perr}
		}
		if rejected := fresh.insert(v); rejected != nil {
			skipped++
			r.log.Warn("skipping vehicle record", "path", path, "line", l.No, "error", rejected)
			return nil
		}
		loaded++
		return nil
	})
	if err != nil {
		var fe *errkind.FormatError
		if errors.As(err, &fe) {
			return err
		}
		return fmt.Errorf("fleet: read %s: %w: %w", path, errkind.ErrIO, err)
	}

	r.slots = fresh.slots
	r.count = fresh.count
	r.nextID = 0
	for _, s := range r.slots {
		if s.state == slotActive && s.vehicle.ID >= r.nextID {
			r.nextID = s.vehicle.ID + 1
		}
	}
	r.path = path

	r.log.Info("vehicles loaded", "path", path, "vehicles", loaded, "skipped", skipped, "next_id", r.nextID)
	return nil
}

func parseVehicle(l record.Line) (Vehicle, error) {
	f, err := l.Fields(5)
	if err != nil {
		return Vehicle{}, err
	}
	id, err := record.Int(f[0])
	if err != nil {
		return Vehicle{}, fmt.Errorf("vehicle id: %w", err)
	}
	cur, err := record.Int(f[3])
	if err != nil {
		return Vehicle{}, fmt.Errorf("current node: %w", err)
	}
	dest, err := record.Int(f[4])
	if err != nil {
		return Vehicle{}, fmt.Errorf("destination node: %w", err)
	}
	return Vehicle{ID: id, Plate: f[1], Type: f[2], CurrentNodeID: cur, DestinationNodeID: dest}, nil
}

// Save writes the active vehicles to path in table order. The backing path
// is not changed.
func (r *Registry) Save(path string) (err error) {
	defer func() { r.observe("save", err) }()

	if path == "" {
		return ErrEmptyPath
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if err = atomicfile.WriteFile(path, r.writeTo); err != nil {
		return fmt.Errorf("fleet: save %s: %w: %w", path, errkind.ErrIO, err)
	}
	r.log.Info("vehicles saved", "path", path, "vehicles", r.count)
	return nil
}

// Clear resets every slot to empty, NextID to 0 and detaches the backing file.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.slots = make([]slot, r.size)
	r.count = 0
	r.nextID = 0
	r.path = ""
	r.mu.Unlock()

	r.observe("clear", nil)
}

// persistLocked rewrites the backing file, if any. Caller holds the write lock.
func (r *Registry) persistLocked() error {
	if r.path == "" {
		return nil
	}
	if err := atomicfile.WriteFile(r.path, r.writeTo); err != nil {
		r.log.Warn("auto-persist failed", "path", r.path, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrPersist, r.path, err)
	}
	return nil
}

func (r *Registry) writeTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# VEHICLES")
	for _, s := range r.slots {
		if s.state != slotActive {
			continue
		}
		v := s.vehicle
		fmt.Fprintln(bw, record.Join(tagVehicle, strconv.Itoa(v.ID), v.Plate, v.Type,
			strconv.Itoa(v.CurrentNodeID), strconv.Itoa(v.DestinationNodeID)))
	}
	return bw.Flush()
}
