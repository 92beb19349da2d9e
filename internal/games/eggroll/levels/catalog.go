package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Catalog merges the built-in pack with an optional user directory.
// User levels replace built-in levels that share their ID.
type Catalog struct {
	loaders []*Loader
}

// NewCatalog returns a catalog of the built-in levels plus dir, if non-empty.
func NewCatalog(dir string) (*Catalog, error) {
	c := &Catalog{loaders: []*Loader{Builtin()}}
	if dir == "" {
		return c, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("levels: cannot open level directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("levels: %s is not a directory", dir)
	}
	c.loaders = append(c.loaders, NewLoader(dir))
	return c, nil
}

// Scan loads every level from every source, sorted by ID, along with the
// files that failed to load.
func (c *Catalog) Scan() ([]Level, []FileError, error) {
	byID := make(map[string]Level)
	var skipped []FileError

	for _, l := range c.loaders {
		levels, bad, err := l.Scan()
		if err != nil {
			return nil, nil, err
		}
		for _, lvl := range levels {
			byID[lvl.ID] = lvl
		}
		skipped = append(skipped, bad...)
	}

	out := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		out = append(out, lvl)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, skipped, nil
}

// LoadAll returns every loadable level sorted by ID.
func (c *Catalog) LoadAll() ([]Level, error) {
	levels, _, err := c.Scan()
	return levels, err
}

// Lookup finds a level by ID. As a convenience, a path to a level file on
// disk is also accepted.
func (c *Catalog) Lookup(ref string) (Level, error) {
	// Later sources override earlier ones
	for i := len(c.loaders) - 1; i >= 0; i-- {
		if lvl, err := c.loaders[i].LoadByID(ref); err == nil {
			return lvl, nil
		}
	}

	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return LoadPath(ref)
	}

	return Level{}, fmt.Errorf("levels: level not found: %s", ref)
}

// LoadPath loads a single level file from disk.
func LoadPath(p string) (Level, error) {
	dir, file := filepath.Split(p)
	if dir == "" {
		dir = "."
	}
	return NewLoader(dir).LoadFile(file)
}
