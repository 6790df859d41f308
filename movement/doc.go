// Package movement keeps the append-only history of vehicle relocation attempts.
//
// Every attempt produces one Record, successful or not. Records are never
// updated or removed and are read back in the order they were appended.
// Three backends implement Log:
//
//   - FileLog appends one line per record to a text file:
//     <vehicleId>;<destNodeId>;<status>;<travelTimeMinutes>;<failReason>
//   - MemoryLog keeps records in process, for tests and dry runs.
//   - RedisLog pushes the same lines onto a Redis list.
//
// No backend deduplicates, rotates or caps the history.
package movement
