// Package transitnet models a small transport network: locations joined by
// weighted one-way roads, a registry of vehicles standing on those locations,
// and the history of every attempt to move them.
//
// The repository is organized into focused packages:
//
//	core/      the network store: nodes, edges, snapshots, text persistence
//	fleet/     the vehicle registry, an open-addressing table with tombstones
//	dijkstra/  shortest route between two locations
//	bfs/, dfs/ traversals with per-visit hooks, plus circular route detection
//	traverse/  the Step and ErrStop shared by both traversals
//	movement/  append-only movement log (file, memory and Redis backends)
//	dispatch/  moves a vehicle along its shortest route and records the attempt
//	errkind/   error kinds shared by every package
//	cmd/transitnet the command line front end
//
// Quick ASCII example:
//
//	    0 ──3.5──▶ 1
//	     ╲         │
//	     6.2      2.8
//	       ╲       ▼
//	        ╰────▶ 2
//
// The direct road 0→2 (6.2) beats the two-hop route through 1 (6.3).
//
// Every mutation is written back to its file immediately; files use one
// semicolon-delimited record per line:
//
//	N;<id>;<name>
//	E;<src>;<dst>;<weight>
//	V;<id>;<plate>;<type>;<current>;<destination>
package transitnet
