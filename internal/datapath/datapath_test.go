package datapath_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/transitnet/internal/datapath"
)

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"  city  ":          "city",
		"../../etc/passwd":  "etcpasswd",
		`..\..\boot.ini`:    "boot",
		"network.csv":       "network",
		`a:b*c?d"e<f>g|h`:   "abcdefgh",
		"....":              "",
		"archive.2024.data": "archive.2024",
	}
	for in, want := range cases {
		assert.Equal(t, want, datapath.Sanitize(in), in)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "north.csv"), datapath.Resolve("data", "../north.txt"))
	assert.Equal(t, "", datapath.Resolve("data", "  /  "))
}
