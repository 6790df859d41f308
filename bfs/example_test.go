package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/transitnet/bfs"
	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/traverse"
)

// ExampleBFS walks a small line network ring by ring.
func ExampleBFS() {
	g := core.NewGraph()
	for _, name := range []string{"Depot", "Market", "Harbor", "Airport"} {
		_, _ = g.AddNodeAuto(name)
	}
	_ = g.AddEdge(0, 1, 3.5)
	_ = g.AddEdge(0, 2, 6.2)
	_ = g.AddEdge(2, 3, 4)

	res, _ := bfs.BFS(g, 0, bfs.WithOnVisit(func(s traverse.Step) error {
		fmt.Printf("visit %s, queue %v\n", s.Name, s.Frontier)
		return nil
	}))
	fmt.Println(res.Order, res.Completed)
	// Output:
	// visit Depot, queue []
	// visit Harbor, queue [1]
	// visit Market, queue [3]
	// visit Airport, queue []
	// [0 2 1 3] true
}

// ExampleBFS_stop ends the walk from inside the hook.
func ExampleBFS_stop() {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		_ = g.AddNode(i, fmt.Sprint("stop ", i))
		if i > 0 {
			_ = g.AddEdge(i-1, i, 1)
		}
	}

	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(s traverse.Step) error {
		if len(s.Order) == 3 {
			return traverse.ErrStop
		}
		return nil
	}))
	fmt.Println(res.Order, res.Completed, err)
	// Output:
	// [0 1 2] false <nil>
}
