package langstat

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileAccess is the capability a caller must provide for anything fed
// to the classifier: a filesystem path, an archive entry, an in-memory
// blob, or a rename wrapper around any of those. It is deliberately
// small — open and a display name — so unusual sources (tar/zip
// entries, virtual filesystems) can participate without adapting to a
// richer interface.
type FileAccess interface {
	// Open returns a reader over the file's bytes.
	Open() (io.ReadCloser, error)
	// Name returns the display identity of the file, typically a path.
	Name() string
}

// namedFileAccess is implemented by FileAccess values that can report
// their base filename and extension more cheaply than splitting Name().
type namedFileAccess interface {
	FileAccess
	FileName() (string, bool)
	Extension() (string, bool)
}

// fileName returns the case-folded basename of f, deriving it from
// Name() by splitting on "/" when f doesn't implement namedFileAccess.
func fileName(f FileAccess) (string, bool) {
	if n, ok := f.(namedFileAccess); ok {
		return n.FileName()
	}
	name := f.Name()
	if name == "" {
		return "", false
	}
	base := name
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		base = name[idx+1:]
	}
	return strings.ToLower(base), true
}

// extension returns the case-folded extension of f (without the
// leading dot), deriving it from the basename when f doesn't implement
// namedFileAccess.
func extension(f FileAccess) (string, bool) {
	if n, ok := f.(namedFileAccess); ok {
		return n.Extension()
	}
	base, ok := fileName(f)
	if !ok {
		return "", false
	}
	idx := strings.LastIndexByte(base, '.')
	if idx < 0 || idx == len(base)-1 {
		return "", false
	}
	return base[idx+1:], true
}

// PathFileAccess is a FileAccess backed by a real filesystem path.
type PathFileAccess struct {
	Path string
}

// NewPathFileAccess wraps a filesystem path as a FileAccess.
func NewPathFileAccess(path string) PathFileAccess {
	return PathFileAccess{Path: path}
}

func (p PathFileAccess) Open() (io.ReadCloser, error) { return os.Open(p.Path) }
func (p PathFileAccess) Name() string                 { return p.Path }

func (p PathFileAccess) FileName() (string, bool) {
	base := filepath.Base(p.Path)
	if base == "." || base == "/" {
		return "", false
	}
	return strings.ToLower(base), true
}

func (p PathFileAccess) Extension() (string, bool) {
	ext := filepath.Ext(p.Path)
	if ext == "" {
		return "", false
	}
	return strings.ToLower(strings.TrimPrefix(ext, ".")), true
}

// BufferFileAccess is a FileAccess backed by an in-memory byte slice —
// useful for archive entries or content that never touches disk.
type BufferFileAccess struct {
	NameValue string
	Content   []byte
}

// NewBufferFileAccess wraps an in-memory buffer as a FileAccess.
func NewBufferFileAccess(name string, content []byte) BufferFileAccess {
	return BufferFileAccess{NameValue: name, Content: content}
}

func (b BufferFileAccess) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.Content)), nil
}

func (b BufferFileAccess) Name() string { return b.NameValue }

// RenameFileAccess overrides only the display name of an inner
// FileAccess, delegating Open to it. Created by WithName.
type RenameFileAccess struct {
	inner FileAccess
	name  string
}

// WithName wraps access so that Name() reports name while Open() still
// delegates to access.
func WithName(access FileAccess, name string) RenameFileAccess {
	return RenameFileAccess{inner: access, name: name}
}

func (r RenameFileAccess) Open() (io.ReadCloser, error) { return r.inner.Open() }
func (r RenameFileAccess) Name() string                 { return r.name }
