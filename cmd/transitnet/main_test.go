package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitnet/dispatch"
)

// run executes one CLI invocation against dir and returns its stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "transitnet.yaml"),
		"--data-dir", dir,
		"--color", "never",
		"--log-level", "error",
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := run(t, dir, args...)
	require.NoError(t, err, "transitnet %v\n%s", args, out)
	return out
}

func seed(t *testing.T, dir string) {
	t.Helper()
	mustRun(t, dir, "node", "add", "0", "Central", "Depot")
	mustRun(t, dir, "node", "add", "1", "Market")
	mustRun(t, dir, "node", "auto", "Harbor")
	mustRun(t, dir, "edge", "add", "0", "1", "3.5")
	mustRun(t, dir, "edge", "add", "1", "2", "2.8")
	mustRun(t, dir, "edge", "add", "0", "2", "6.2")
}

func TestCLI_NetworkRoundTrip(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir)

	raw, err := os.ReadFile(filepath.Join(dir, "network.csv"))
	require.NoError(t, err)
	assert.Equal(t, "# NODES\nN;0;Central Depot\nN;1;Market\nN;2;Harbor\n\n# EDGES\nE;0;1;3.5\nE;0;2;6.2\nE;1;2;2.8\n", string(raw))

	out := mustRun(t, dir, "show", "--raw", "--matrix")
	assert.Contains(t, out, "3 nodes, 3 roads, next id 3")
	assert.Contains(t, out, "| 0 | Central Depot | → 2 (6.2), → 1 (3.5) |")
	assert.Contains(t, out, "| **1** | · | · | 2.8 |")
	assert.NotContains(t, out, "Circular routes")

	mustRun(t, dir, "edge", "add", "2", "0", "1")
	assert.Contains(t, mustRun(t, dir, "show", "--raw"), "- 0 → 2 → 0")
}

func TestCLI_PathAndTraversals(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir)

	out := mustRun(t, dir, "path", "0", "2")
	assert.Contains(t, out, "Route: 0 (Central Depot) → 2 (Harbor)")
	assert.Contains(t, out, "Distance: 6.2")

	out = mustRun(t, dir, "path", "0", "2", "--closed-from", "5")
	assert.Contains(t, out, "Route: 0 (Central Depot) → 1 (Market) → 2 (Harbor)")

	assert.Contains(t, mustRun(t, dir, "path", "2", "0"), "No route from 2 to 0")

	assert.Contains(t, mustRun(t, dir, "bfs", "0"), "Order: 0 → 2 → 1")
	assert.Contains(t, mustRun(t, dir, "dfs", "0"), "Order: 0 → 2 → 1")
	assert.Contains(t, mustRun(t, dir, "bfs", "2"), "Order: 2\n")

	_, err := run(t, dir, "bfs", "9")
	assert.Error(t, err)
}

func TestCLI_VehiclesAndMoves(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir)

	mustRun(t, dir, "vehicle", "add", "7", "AB-123", "bus", "0")
	mustRun(t, dir, "vehicle", "auto", "CD-456", "tram", "1", "--dest", "2")

	_, err := run(t, dir, "vehicle", "add", "9", "EF-789", "bus", "42")
	assert.Error(t, err, "origin must exist")

	out := mustRun(t, dir, "vehicle", "list")
	assert.Contains(t, out, "AB-123")
	assert.Contains(t, out, "2 (Harbor)")

	out = mustRun(t, dir, "move", "7", "2")
	assert.Contains(t, out, "Vehicle 7 arrived at 2 (Harbor)")

	_, err = run(t, dir, "move", "7", "2")
	assert.ErrorIs(t, err, dispatch.ErrAlreadyThere)

	mustRun(t, dir, "move", "8")
	out = mustRun(t, dir, "vehicle", "get", "8")
	assert.Contains(t, out, "2 (Harbor)")

	out = mustRun(t, dir, "history")
	assert.Contains(t, out, "already at destination")
	assert.Contains(t, out, "success")

	raw, err := os.ReadFile(filepath.Join(dir, ".movements.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "7;2;failed;0;already at destination\n")

	mustRun(t, dir, "vehicle", "rm", "7")
	out = mustRun(t, dir, "vehicle", "stats")
	assert.Contains(t, out, "Tombstones")
	assert.Contains(t, out, "Next id")
}

func TestCLI_SanitizesFileNames(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "--network", "../../etc/city.txt", "node", "add", "0", "Depot")

	_, err := os.Stat(filepath.Join(dir, "etccity.csv"))
	assert.NoError(t, err)

	_, err = run(t, dir, "--network", "..", "show")
	assert.Error(t, err)
}

func TestCLI_Metrics(t *testing.T) {
	dir := t.TempDir()
	out := mustRun(t, dir, "--metrics", "node", "add", "0", "Depot")
	assert.Contains(t, out, `transitnet_operations_total{op="add_node",result="ok",store="network"} 1`)
	assert.Contains(t, out, "transitnet_nodes 1")
}
