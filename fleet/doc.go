// Package fleet is the vehicle registry: a fixed-size open-addressing hash
// table keyed by vehicle id.
//
// Layout:
//
//	slot = id mod Size(); collisions probe forward (+1 mod Size()).
//
// Every slot is in exactly one of three states:
//
//   - empty:     never held a vehicle. A probe may stop here.
//   - tombstone: held a vehicle that was removed. Probes continue past it;
//     inserts may reuse it.
//   - active:    holds a live vehicle.
//
// Collapsing tombstone into empty would end probes early and lose vehicles
// stored further along the chain, so the distinction is kept explicitly.
//
// The registry does not know the network: CurrentNodeID and DestinationNodeID
// are plain ids, checked (if at all) by the caller.
//
// Persistence mirrors core.Graph: Load replaces everything and attaches the
// file for auto-persist; every mutation rewrites it through a temp file.
//
//	# VEHICLES
//	V;<id>;<plate>;<type>;<current>;<destination>
//
// Concurrency: a Registry is safe for concurrent use; a mutation and its
// auto-persist run under one write lock.
package fleet
