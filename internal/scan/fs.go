package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/a2y-d5l/minigrep/internal/config"
	"github.com/a2y-d5l/minigrep/internal/match"
	"go.uber.org/zap"
)

// ErrInvalidUTF8 is the cause recorded when a file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Kind classifies why a file could not be loaded.
type Kind int

const (
	Other Kind = iota
	NotFound
	PermissionDenied
	InvalidEncoding
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case InvalidEncoding:
		return "invalid encoding"
	default:
		return "other"
	}
}

// LoadError is returned by Load. Err is the underlying cause.
type LoadError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads the whole file at path as text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &LoadError{Path: path, Kind: classify(err), Err: err}
	}
	if !utf8.Valid(data) {
		return "", &LoadError{Path: path, Kind: InvalidEncoding, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}

// Run searches cfg.Path for cfg.Query and writes each matching line to out.
// Nothing is written when the file cannot be loaded.
func Run(out io.Writer, cfg *config.Config, log *zap.Logger) error {
	content, err := Load(cfg.Path)
	if err != nil {
		return err
	}
	log.Debug("file loaded", zap.String("path", cfg.Path), zap.Int("bytes", len(content)))

	hits := match.Lines(cfg.Query, content)
	log.Debug("search done", zap.String("query", cfg.Query), zap.Int("matches", len(hits)))

	w := bufio.NewWriter(out)
	for _, line := range hits {
		put(w, line)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write matches: %w", err)
	}
	return nil
}

// --- helpers -----------------------------------------------------------------

// put writes one hit. Write errors stick in the bufio.Writer and surface at Flush.
func put(w *bufio.Writer, line string) {
	_, _ = w.WriteString(line)
	_ = w.WriteByte('\n')
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	default:
		return Other
	}
}
