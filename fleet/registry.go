package fleet

import (
	"fmt"
	"strings"
)

// hash maps an id to its home slot.
func (r *Registry) hash(id int) int { return id % r.size }

// findSlot probes from hash(id) for at most Size() slots.
//
// match is the slot holding the active vehicle id, or -1. free is the first
// reusable slot on the chain (the first tombstone, else the empty slot that
// ended the probe), or -1 when every slot is active. The probe stops at the
// first empty slot and never at a tombstone.
func (r *Registry) findSlot(id int) (match, free int) {
	match, free = -1, -1
	home := r.hash(id)
	for probe := 0; probe < r.size; probe++ {
		i := (home + probe) % r.size
		s := &r.slots[i]
		switch s.state {
		case slotEmpty:
			if free < 0 {
				free = i
			}
			return match, free
		case slotTombstone:
			if free < 0 {
				free = i
			}
		case slotActive:
			if s.vehicle.ID == id {
				return i, free
			}
		}
	}
	return match, free
}

// Add registers a vehicle under an explicit id.
//
// Validation order: table full, negative id, plate, type, duplicate id.
// A full table is reported first whatever the id. On success NextID()
// becomes max(NextID(), id+1) and the backing file is rewritten.
//
// Errors: ErrTableFull, ErrNegativeID, ErrEmptyField, ErrInvalidField,
// ErrDuplicateVehicle, ErrPersist.
//
// Complexity: O(1) expected, O(Size) worst case.
func (r *Registry) Add(id int, plate, vtype string, origin, dest int) (err error) {
	defer func() { r.observe("add_vehicle", err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	if err = r.insert(Vehicle{ID: id, Plate: plate, Type: vtype, CurrentNodeID: origin, DestinationNodeID: dest}); err != nil {
		return err
	}
	return r.persistLocked()
}

// AddAuto registers a vehicle under NextID() and returns that id.
// On failure the id is -1 and the counter is unchanged.
func (r *Registry) AddAuto(plate, vtype string, origin, dest int) (id int, err error) {
	defer func() { r.observe("add_vehicle_auto", err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	id = r.nextID
	if err = r.insert(Vehicle{ID: id, Plate: plate, Type: vtype, CurrentNodeID: origin, DestinationNodeID: dest}); err != nil {
		return -1, err
	}
	return id, r.persistLocked()
}

// insert validates v and stores it. Caller holds the write lock.
func (r *Registry) insert(v Vehicle) error {
	if r.count >= r.size {
		return fmt.Errorf("%w: %d of %d slots active", ErrTableFull, r.count, r.size)
	}
	if v.ID < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeID, v.ID)
	}
	if err := validateField("plate", v.Plate); err != nil {
		return err
	}
	if err := validateField("type", v.Type); err != nil {
		return err
	}

	match, free := r.findSlot(v.ID)
	if match >= 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateVehicle, v.ID)
	}
	if free < 0 {
		return fmt.Errorf("%w: no reusable slot for %d", ErrTableFull, v.ID)
	}

	r.slots[free] = slot{state: slotActive, vehicle: v}
	r.count++
	if v.ID >= r.nextID {
		r.nextID = v.ID + 1
	}
	return nil
}

// Remove tombstones the slot of id. The vehicle id stays in the slot so the
// probe chain through it remains intact.
//
// Errors: ErrVehicleNotFound, ErrPersist.
func (r *Registry) Remove(id int) (err error) {
	defer func() { r.observe("remove_vehicle", err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.lookup(id)
	if err != nil {
		return err
	}
	r.slots[i].state = slotTombstone
	r.count--
	return r.persistLocked()
}

// Get returns a copy of the vehicle id.
// Errors: ErrVehicleNotFound.
func (r *Registry) Get(id int) (Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, err := r.lookup(id)
	if err != nil {
		return Vehicle{}, err
	}
	return r.slots[i].vehicle, nil
}

// Relocate updates the position fields of an active vehicle in place.
// Errors: ErrVehicleNotFound, ErrPersist.
func (r *Registry) Relocate(id, current, dest int) (err error) {
	defer func() { r.observe("relocate_vehicle", err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.lookup(id)
	if err != nil {
		return err
	}
	r.slots[i].vehicle.CurrentNodeID = current
	r.slots[i].vehicle.DestinationNodeID = dest
	return r.persistLocked()
}

// lookup returns the slot index of active vehicle id. Caller holds a lock.
func (r *Registry) lookup(id int) (int, error) {
	if id < 0 {
		return -1, fmt.Errorf("%w: %d", ErrVehicleNotFound, id)
	}
	match, _ := r.findSlot(id)
	if match < 0 {
		return -1, fmt.Errorf("%w: %d", ErrVehicleNotFound, id)
	}
	return match, nil
}

func validateField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrEmptyField, name)
	}
	if strings.ContainsAny(value, ";\r\n") {
		return fmt.Errorf("%w: %s %q", ErrInvalidField, name, value)
	}
	return nil
}
