// Package datapath turns user-typed file names into safe paths under a data
// directory. Core stores never see unsanitized input.
package datapath

import (
	"path/filepath"
	"strings"
)

// Ext is the extension every data file carries.
const Ext = ".csv"

// Sanitize strips whitespace, traversal sequences, path separators, any
// extension and the characters :*?"<>| from name. It may return "".
func Sanitize(name string) string {
	s := strings.TrimSpace(name)
	for strings.Contains(s, "..") {
		s = strings.ReplaceAll(s, "..", "")
	}
	s = strings.NewReplacer("/", "", `\`, "").Replace(s)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:*?"<>|`, r) {
			return -1
		}
		return r
	}, s)
}

// Resolve returns dir/<sanitized name>.csv, or "" when nothing is left of name.
func Resolve(dir, name string) string {
	clean := Sanitize(name)
	if clean == "" {
		return ""
	}
	return filepath.Join(dir, clean+Ext)
}
