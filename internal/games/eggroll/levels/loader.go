package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/eggroll/internal/games/eggroll/levels/formats"
)

//go:embed builtin
var builtinFS embed.FS

// Loader handles loading levels from a file system tree.
type Loader struct {
	fsys    fs.FS
	root    string
	builtin bool
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(dir string) *Loader {
	return NewFSLoader(os.DirFS(dir), ".")
}

// NewFSLoader creates a loader over any fs.FS rooted at root.
func NewFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{fsys: fsys, root: root}
}

// Builtin returns a loader for the level pack compiled into the binary.
func Builtin() *Loader {
	return &Loader{fsys: builtinFS, root: "builtin", builtin: true}
}

// FileError records a level file that could not be loaded.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	levels, _, err := l.Scan()
	return levels, err
}

// Scan is LoadAll that also reports the files it skipped.
func (l *Loader) Scan() ([]Level, []FileError, error) {
	var levels []Level
	var skipped []FileError

	err := fs.WalkDir(l.fsys, l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.IsSupported(p) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			skipped = append(skipped, FileError{Path: p, Err: err})
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("levels: walking %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, skipped, nil
}

// LoadFile loads a single level file. The level ID defaults to the file name
// without its extension.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}

	parsed, err := formats.Parse(p, data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", p, err)
	}

	level, err := FromParsed(IDFromPath(p), parsed)
	if err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", p, err)
	}
	level.FilePath = p
	level.Builtin = l.builtin

	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// IDFromPath derives a level ID from its file name.
func IDFromPath(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
