// Package dijkstra finds the cheapest route between two nodes of a transport
// network.
//
// ShortestPath works on a core.View snapshot, so it never holds the graph's
// lock while computing. Edge weights are positive by construction (core
// rejects anything else), so no negative-weight scan is needed.
//
// Options:
//
//	– WithMaxDistance(d):       nodes farther than d are left unexplored.
//	– WithInfEdgeThreshold(t):  edges with weight ≥ t are treated as closed.
//	– WithOnSettle(fn):         observe every settled node and the distance table.
//
// Result:
//
//	Found=false means "no route" and is not an error. TravelTimeMinutes is
//	TotalDistance / 60 * 60, which keeps the historical 60 km/h formula and
//	therefore equals TotalDistance.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the graph is nil.
//	– ErrVertexNotFound   if source or destination is missing (kind NotFound).
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0.
//
// Example usage:
//
//	res, err := dijkstra.ShortestPath(ctx, g, 0, 2)
//	if err != nil {
//	    return err
//	}
//	if res.Found {
//	    fmt.Println(res.Path, res.TotalDistance)
//	}
package dijkstra
