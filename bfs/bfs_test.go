package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/transitnet/bfs"
	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/errkind"
	"github.com/katalvlaran/transitnet/traverse"
)

// diamond builds 0→1, 0→2, 1→3, 2→3, 3→4 plus an isolated node 9.
// Stored order of 0 is [2 1] because edges are front-inserted.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []int{0, 1, 2, 3, 4, 9} {
		if err := g.AddNode(id, "stop"); err != nil {
			t.Fatalf("AddNode(%d): %v", id, err)
		}
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}} {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	_, err := bfs.BFS(g, 7)
	if !errors.Is(err, bfs.ErrStartVertexNotFound) || !errkind.Is(err, errkind.ErrNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound (NotFound), got %v", err)
	}
	_ = g.AddNode(0, "A")
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_IsolatedNode visits exactly the start node.
func TestBFS_IsolatedNode(t *testing.T) {
	res, err := bfs.BFS(diamond(t), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{9}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if !res.Completed {
		t.Error("Completed = false; want true")
	}
}

// TestBFS_OrderDepthParent checks stored-order expansion and enqueue-time marking.
func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(diamond(t), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 2, 1, 3, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 3}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	path, err := res.PathTo(4)
	if err != nil {
		t.Fatalf("PathTo(4): %v", err)
	}
	if want := []int{0, 2, 3, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(4) = %v; want %v", path, want)
	}
	if _, err := res.PathTo(9); !errors.Is(err, bfs.ErrUnreached) {
		t.Errorf("PathTo(9): want ErrUnreached, got %v", err)
	}
}

// TestBFS_StepFrontier checks what the hook sees at each visit.
func TestBFS_StepFrontier(t *testing.T) {
	var steps []traverse.Step
	_, err := bfs.BFS(diamond(t), 0, bfs.WithOnVisit(func(s traverse.Step) error {
		steps = append(steps, s)
		return nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 5 {
		t.Fatalf("got %d steps; want 5", len(steps))
	}
	if len(steps[0].Frontier) != 0 {
		t.Errorf("first frontier = %v; want empty", steps[0].Frontier)
	}
	if want := []int{1}; !reflect.DeepEqual(steps[1].Frontier, want) {
		t.Errorf("frontier at node 2 = %v; want %v", steps[1].Frontier, want)
	}
	if want := []int{0, 2, 1}; !reflect.DeepEqual(steps[2].Order, want) {
		t.Errorf("order at step 3 = %v; want %v", steps[2].Order, want)
	}
	if steps[3].ID != 3 || steps[3].Depth != 2 || steps[3].Name != "stop" {
		t.Errorf("step 4 = %+v", steps[3])
	}
}

// TestBFS_Stop covers ErrStop, cancellation and hook failures.
func TestBFS_Stop(t *testing.T) {
	g := diamond(t)

	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(s traverse.Step) error {
		if s.ID == 1 {
			return traverse.ErrStop
		}
		return nil
	}))
	if err != nil || res.Completed {
		t.Fatalf("ErrStop: err=%v completed=%v; want nil,false", err, res.Completed)
	}
	if want := []int{0, 2, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("ErrStop prefix = %v; want %v", res.Order, want)
	}

	ctx, cancel := context.WithCancel(context.Background())
	res, err = bfs.BFS(g, 0, bfs.WithContext(ctx), bfs.WithOnVisit(func(traverse.Step) error {
		cancel()
		return nil
	}))
	if err != nil || res.Completed {
		t.Fatalf("cancel: err=%v completed=%v; want nil,false", err, res.Completed)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("cancel prefix = %v; want %v", res.Order, want)
	}

	boom := errors.New("boom")
	res, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(traverse.Step) error { return boom }))
	if !errors.Is(err, boom) {
		t.Fatalf("hook error: want boom, got %v", err)
	}
	if res == nil || res.Completed || len(res.Order) != 1 {
		t.Errorf("hook error result = %+v", res)
	}
}

// TestBFS_MaxDepth limits exploration to the first ring.
func TestBFS_MaxDepth(t *testing.T) {
	var enqueued []int
	res, err := bfs.BFS(diamond(t), 0,
		bfs.WithMaxDepth(1),
		bfs.WithOnEnqueue(func(id, _ int) { enqueued = append(enqueued, id) }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 2, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if !reflect.DeepEqual(enqueued, res.Order) {
		t.Errorf("enqueued %v; want %v", enqueued, res.Order)
	}
	if !res.Completed {
		t.Error("depth-limited traversal should still complete")
	}
}

// TestBFS_AcceptsView runs on a snapshot detached from later mutations.
func TestBFS_AcceptsView(t *testing.T) {
	g := diamond(t)
	v := g.View()
	_ = g.RemoveNode(2)

	res, err := bfs.BFS(v, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Order) != 5 {
		t.Errorf("Order = %v; want 5 nodes from the snapshot", res.Order)
	}
}
