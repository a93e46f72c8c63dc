// Package loader reads JSON documents from files or standard input and
// caches parsed results so repeated loads of an unchanged file skip the
// decode.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jsontab/jsontab/internal/config"
	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// StdinName is the pseudo-path that selects standard input.
const StdinName = "-"

// Sentinel errors for input classification. Callers match them with
// errors.Is; the wrapped message carries the path and detail.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrNotRegular   = errors.New("not a regular file")
	ErrEmptyInput   = errors.New("empty input")
	ErrSyntax       = errors.New("cannot parse")
	ErrTooLarge     = errors.New("input too large")
)

// Document is a parsed JSON input together with its origin.
type Document struct {
	Name string // file path, or "stdin"
	Size int64  // raw input size in bytes
	Root jsonvalue.Value
}

// Loader reads and parses JSON inputs. Parsed files are cached by absolute
// path, modification time and size.
type Loader struct {
	maxBytes int64
	cache    *documentCache
}

// New creates a Loader with the size cap and cache capacity from cfg.
func New(cfg config.Config) (*Loader, error) {
	cache, err := newDocumentCache(cfg.CacheMaxDocs)
	if err != nil {
		return nil, fmt.Errorf("failed to create document cache: %w", err)
	}
	return &Loader{
		maxBytes: int64(cfg.MaxInputBytes),
		cache:    cache,
	}, nil
}

// Load reads and parses the JSON document at path. The pseudo-path "-"
// reads standard input instead.
func (l *Loader) Load(path string) (*Document, error) {
	if path == StdinName {
		return l.LoadReader(os.Stdin, "stdin")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}
	if l.maxBytes > 0 && info.Size() > l.maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, path, info.Size(), l.maxBytes)
	}

	key := cacheKey(path, info)
	if doc, ok := l.cache.Get(key); ok {
		slog.Debug("document cache hit", "path", path)
		return doc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := l.parse(data, path)
	if err != nil {
		return nil, err
	}
	l.cache.Put(key, doc)
	slog.Debug("document parsed", "path", path, "bytes", len(data))
	return doc, nil
}

// LoadReader reads a complete JSON document from r. The name appears in
// error messages and as Document.Name. Reader inputs are never cached.
func (l *Loader) LoadReader(r io.Reader, name string) (*Document, error) {
	if l.maxBytes > 0 {
		r = io.LimitReader(r, l.maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if l.maxBytes > 0 && int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, name, l.maxBytes)
	}
	return l.parse(data, name)
}

func (l *Loader) parse(data []byte, name string) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, name)
	}
	root, err := jsonvalue.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrSyntax, name, err)
	}
	return &Document{Name: name, Size: int64(len(data)), Root: root}, nil
}

// cacheKey identifies one on-disk version of a file. A rewrite changes the
// modification time or size, so stale entries are never served.
func cacheKey(path string, info os.FileInfo) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return fmt.Sprintf("%s|%d|%d", abs, info.ModTime().UnixNano(), info.Size())
}
