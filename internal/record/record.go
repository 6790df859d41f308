// Package record reads and writes the semicolon-delimited text format shared by
// the network, fleet and movement files.
//
//	# comment
//	N;<id>;<name>
//	E;<src>;<dst>;<weight>
//	V;<id>;<plate>;<type>;<current>;<destination>
package record

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sep separates fields inside a record.
const Sep = ";"

// Line is one non-comment, non-blank line of input.
type Line struct {
	No   int    // 1-based line number
	Tag  string // leading token ("N", "E", "V", ...)
	Rest string // everything after the first separator, untouched
}

// Fields splits Rest into exactly n fields. The last field keeps any further
// separators, which is how free-text names survive a round trip.
func (l Line) Fields(n int) ([]string, error) {
	parts := strings.SplitN(l.Rest, Sep, n)
	if len(parts) != n {
		return nil, fmt.Errorf("record %q: want %d fields, got %d", l.Tag, n, len(parts))
	}
	return parts, nil
}

// Scan calls fn for each meaningful line of r. Blank lines and lines starting
// with '#' are skipped. Trailing '\r' is dropped so files edited on Windows load.
// The first error returned by fn stops the scan and is returned as is.
func Scan(r io.Reader, fn func(Line) error) error {
	sc := bufio.NewScanner(r)
	no := 0
	for sc.Scan() {
		no++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		tag, rest, _ := strings.Cut(text, Sep)
		if err := fn(Line{No: no, Tag: tag, Rest: rest}); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Int parses a decimal integer field, tolerating surrounding spaces.
func Int(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Float parses a decimal floating point field, tolerating surrounding spaces.
func Float(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// FormatFloat renders f with the fewest digits that parse back to the same value.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Join builds a record line (without the trailing newline).
func Join(fields ...string) string {
	return strings.Join(fields, Sep)
}
