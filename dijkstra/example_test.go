package dijkstra_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/dijkstra"
)

// ExampleShortestPath shows a direct road beating a two-hop route.
func ExampleShortestPath() {
	g := core.NewGraph()
	_ = g.AddNode(0, "Depot")
	_ = g.AddNode(1, "Market")
	_ = g.AddNode(2, "Harbor")
	_ = g.AddEdge(0, 1, 3.5)
	_ = g.AddEdge(1, 2, 2.8)
	_ = g.AddEdge(0, 2, 6.2)

	res, err := dijkstra.ShortestPath(context.Background(), g, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("found=%v path=%v distance=%.1f minutes=%.1f\n",
		res.Found, res.Path, res.TotalDistance, res.TravelTimeMinutes)
	// Output:
	// found=true path=[0 2] distance=6.2 minutes=6.2
}

// ExampleWithOnSettle traces the settle order.
func ExampleWithOnSettle() {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		_ = g.AddNode(i, fmt.Sprint("stop ", i))
	}
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 2)
	_ = g.AddEdge(1, 3, 1)

	res, _ := dijkstra.ShortestPath(context.Background(), g, 0, 3,
		dijkstra.WithOnSettle(func(s dijkstra.Settle) error {
			fmt.Printf("settle %d at %.0f\n", s.ID, s.Distance)
			return nil
		}))
	fmt.Println(res.Path, res.TotalDistance)
	// Output:
	// settle 0 at 0
	// settle 2 at 1
	// settle 1 at 3
	// settle 3 at 4
	// [0 2 1 3] 4
}
