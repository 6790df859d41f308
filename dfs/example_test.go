package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/dfs"
	"github.com/katalvlaran/transitnet/traverse"
)

// ExampleDFS shows the stack at every visit.
func ExampleDFS() {
	g := core.NewGraph()
	for _, name := range []string{"Depot", "Market", "Harbor", "Airport"} {
		_, _ = g.AddNodeAuto(name)
	}
	_ = g.AddEdge(0, 1, 3.5)
	_ = g.AddEdge(0, 2, 6.2)
	_ = g.AddEdge(2, 3, 4)

	res, _ := dfs.DFS(g, 0, dfs.WithOnVisit(func(s traverse.Step) error {
		fmt.Printf("visit %s, stack %v\n", s.Name, s.Frontier)
		return nil
	}))
	fmt.Println(res.Order, res.Completed)
	// Output:
	// visit Depot, stack []
	// visit Harbor, stack [1]
	// visit Airport, stack [1]
	// visit Market, stack []
	// [0 2 3 1] true
}

// ExampleDetectCycles lists circular routes.
func ExampleDetectCycles() {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		_ = g.AddNode(i, fmt.Sprint("stop ", i))
	}
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(0, 1, 1)

	has, cycles := dfs.DetectCycles(g)
	fmt.Println(has, cycles)
	// Output:
	// true [[1 2 3 1]]
}
