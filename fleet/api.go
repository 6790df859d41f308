package fleet

// Stats summarizes table occupancy.
type Stats struct {
	Size       int
	Active     int
	Tombstones int
	Empty      int

	// LoadFactor is Active / Size.
	LoadFactor float64

	// Displaced counts active vehicles stored away from their home slot.
	Displaced int

	// LongestProbe is the largest distance between an active vehicle's home
	// slot and the slot holding it.
	LongestProbe int

	NextID      int
	BackingPath string
}

// Vehicles returns copies of all active vehicles in table order.
func (r *Registry) Vehicles() []Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Vehicle, 0, r.count)
	for _, s := range r.slots {
		if s.state == slotActive {
			out = append(out, s.vehicle)
		}
	}
	return out
}

// Stats reports occupancy and probe-length figures.
// Complexity: O(Size).
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st := Stats{
		Size:        r.size,
		Active:      r.count,
		LoadFactor:  float64(r.count) / float64(r.size),
		NextID:      r.nextID,
		BackingPath: r.path,
	}
	for i, s := range r.slots {
		switch s.state {
		case slotEmpty:
			st.Empty++
		case slotTombstone:
			st.Tombstones++
		case slotActive:
			dist := (i - r.hash(s.vehicle.ID) + r.size) % r.size
			if dist > 0 {
				st.Displaced++
			}
			st.LongestProbe = max(st.LongestProbe, dist)
		}
	}
	return st
}

// Count returns the number of active vehicles.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Size returns the number of table slots.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.size
}

// NextID returns the id AddAuto would assign next.
func (r *Registry) NextID() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID
}

// BackingPath returns the auto-persist target, or "".
func (r *Registry) BackingPath() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.path
}

// SetBackingPath makes path the auto-persist target without loading it.
func (r *Registry) SetBackingPath(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = path
}
