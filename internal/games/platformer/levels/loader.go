package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// DefaultID is the level used when none is requested.
const DefaultID = "world-1"

// ErrNotFound is returned when a level reference matches neither a file nor
// a built-in ID.
var ErrNotFound = errors.New("levels: level not found")

// Builtin returns every embedded level, sorted by ID.
func Builtin() ([]*Level, error) {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		return nil, fmt.Errorf("levels: builtin: %w", err)
	}
	return loadAll(sub, builtinPrefix)
}

// LoadDir returns every level file in dir, sorted by ID.
func LoadDir(dir string) ([]*Level, error) {
	return loadAll(os.DirFS(dir), dir+string(filepath.Separator))
}

// LoadFS returns every *.yaml or *.yml level at the root of fsys.
func LoadFS(fsys fs.FS) ([]*Level, error) {
	return loadAll(fsys, "")
}

func loadAll(fsys fs.FS, prefix string) ([]*Level, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("levels: read dir: %w", err)
	}

	var out []*Level
	for _, entry := range entries {
		if entry.IsDir() || !IsLevelFile(entry.Name()) {
			continue
		}
		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", entry.Name(), err)
		}
		lvl, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		lvl.Source = prefix + entry.Name()
		out = append(out, lvl)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// LoadFile reads and validates one level file from disk.
func LoadFile(file string) (*Level, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", file, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	lvl.Source = file
	return lvl, nil
}

// LoadBuiltin returns the embedded level with the given ID.
func LoadBuiltin(id string) (*Level, error) {
	all, err := Builtin()
	if err != nil {
		return nil, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Resolve turns a --level argument into a level.
// Search order: empty -> default built-in, existing file path -> disk,
// otherwise -> built-in ID.
func Resolve(ref string) (*Level, error) {
	if ref == "" {
		return LoadBuiltin(DefaultID)
	}
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return LoadFile(ref)
	}
	if IsLevelFile(ref) {
		return nil, fmt.Errorf("%w: no such file %s", ErrNotFound, ref)
	}
	return LoadBuiltin(ref)
}

// IsLevelFile reports whether name has a level file extension.
func IsLevelFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
