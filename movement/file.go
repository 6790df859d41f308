package movement

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/katalvlaran/transitnet/errkind"
	"github.com/katalvlaran/transitnet/internal/logging"
	"github.com/katalvlaran/transitnet/internal/record"
)

// DefaultPath is where the history lives unless configured otherwise.
const DefaultPath = "data/.movements.csv"

// FileLog appends records to a text file, one line each.
type FileLog struct {
	mu   sync.Mutex
	path string
	log  *slog.Logger
}

// FileOption configures a FileLog.
type FileOption func(*FileLog)

// WithLogger routes FileLog diagnostics to l.
func WithLogger(l *slog.Logger) FileOption {
	return func(f *FileLog) {
		if l != nil {
			f.log = l
		}
	}
}

// NewFileLog returns a log stored at path (DefaultPath when empty).
// The file is created on the first Append.
func NewFileLog(path string, opts ...FileOption) *FileLog {
	if path == "" {
		path = DefaultPath
	}
	f := &FileLog{path: path, log: logging.NewNop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the file the log writes to.
func (f *FileLog) Path() string { return f.path }

// Append implements Log. The parent directory is created when missing.
func (f *FileLog) Append(ctx context.Context, r Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("movement: create dir for %s: %w: %w", f.path, errkind.ErrIO, err)
	}
	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("movement: open %s: %w: %w", f.path, errkind.ErrIO, err)
	}
	if _, err = fmt.Fprintln(file, r.String()); err != nil {
		file.Close()
		return fmt.Errorf("movement: append %s: %w: %w", f.path, errkind.ErrIO, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("movement: close %s: %w: %w", f.path, errkind.ErrIO, err)
	}
	f.log.Debug("movement logged", "path", f.path, "vehicle", r.VehicleID, "status", r.Status)
	return nil
}

// Records implements Log. A missing file is an empty history.
// A line that cannot be decoded returns *errkind.FormatError.
func (f *FileLog) Records(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("movement: open %s: %w: %w", f.path, errkind.ErrIO, err)
	}
	defer file.Close()

	var out []Record
	err = record.Scan(bufio.NewReader(file), func(l record.Line) error {
		r, perr := parse(l)
		if perr != nil {
			return &errkind.FormatError{Path: f.path, Line: l.No, Err: perr}
		}
		out = append(out, r)
		return nil
	})
	if err != nil {
		var fe *errkind.FormatError
		if errors.As(err, &fe) {
			return nil, err
		}
		return nil, fmt.Errorf("movement: read %s: %w: %w", f.path, errkind.ErrIO, err)
	}
	return out, nil
}
