package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/eggroll/internal/games/eggroll/engine"
	"github.com/vovakirdan/eggroll/internal/games/eggroll/levels"
)

const validText = "Tiny\n2\n🧱🧱🧱🧱\n🧱🐥🥚🧱\n🧱🧱🧱🧱\n"

func TestBuiltinLevelsAreValid(t *testing.T) {
	lvls, skipped, err := levels.Builtin().Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("built-in pack has invalid files: %v", skipped)
	}
	if len(lvls) < 5 {
		t.Errorf("expected at least 5 built-in levels, got %d", len(lvls))
	}

	for i, lvl := range lvls {
		if i > 0 && lvls[i-1].ID >= lvl.ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvl.ID)
		}
		if !lvl.Builtin {
			t.Errorf("%s: expected Builtin flag", lvl.ID)
		}
		if lvl.Name == "" {
			t.Errorf("%s: missing name", lvl.ID)
		}
		if lvl.Eggs() == 0 {
			t.Errorf("%s: no eggs", lvl.ID)
		}
	}
}

func TestBuiltinFirstLevel(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("01-first-roll")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "First Roll" || lvl.Moves != 2 {
		t.Errorf("unexpected level: name=%q moves=%d", lvl.Name, lvl.Moves)
	}
	if lvl.Grid.Rows() != 3 || lvl.Grid.Cols() != 6 {
		t.Errorf("expected 3x6, got %dx%d", lvl.Grid.Rows(), lvl.Grid.Cols())
	}

	snap := lvl.Initial()
	if snap.MovesRemaining() != 2 || snap.Score() != 0 || len(snap.History()) != 0 {
		t.Errorf("unexpected initial snapshot: %s", snap.StatusText())
	}
}

func TestLoaderYAMLIDOverridesFileName(t *testing.T) {
	fsys := fstest.MapFS{
		"pack/a.yaml": {Data: []byte("id: custom\nname: Custom\nmoves: 1\nrows:\n  - \"🧱🧱🧱\"\n  - \"🧱🥚🧱\"\n  - \"🧱🧱🧱\"\n")},
		"pack/b.in":   {Data: []byte(validText)},
		"pack/notes":  {Data: []byte("ignored")},
	}

	lvls, err := levels.NewFSLoader(fsys, "pack").LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 2 || lvls[0].ID != "b" || lvls[1].ID != "custom" {
		t.Errorf("LoadAll returned %d levels, expected IDs [b custom]", len(lvls))
	}
}

func TestLoaderValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
		code string
	}{
		{"empty grid", "Empty\n3\n", levels.CodeEmptyGrid},
		{"ragged", "Ragged\n3\n🧱🧱🧱\n🧱🥚🧱🧱\n🧱🧱🧱\n", levels.CodeRaggedRow},
		{"open border", "Open\n3\n🧱🟩🧱\n🧱🥚🧱\n🧱🧱🧱\n", levels.CodeOpenBorder},
		{"negative budget", "Neg\n-1\n🧱🧱🧱\n🧱🥚🧱\n🧱🧱🧱\n", levels.CodeNegativeBudget},
		{"no eggs", "Bare\n3\n🧱🧱🧱\n🧱🐥🧱\n🧱🧱🧱\n", levels.CodeNoEggs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"lvl.in": {Data: []byte(tt.data)}}
			_, err := levels.NewFSLoader(fsys, ".").LoadFile("lvl.in")

			var verr levels.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tt.code {
				t.Errorf("code = %s, expected %s", verr.Code, tt.code)
			}
		})
	}
}

func TestLoaderBadGlyph(t *testing.T) {
	fsys := fstest.MapFS{"lvl.in": {Data: []byte("Bad\n1\n🧱🧱🧱\n🧱🥔🧱\n🧱🧱🧱\n")}}
	_, err := levels.NewFSLoader(fsys, ".").LoadFile("lvl.in")
	if !errors.Is(err, engine.ErrInvalidTileSymbol) {
		t.Errorf("expected ErrInvalidTileSymbol, got %v", err)
	}
}

func TestLoaderScanReportsSkipped(t *testing.T) {
	fsys := fstest.MapFS{
		"good.in": {Data: []byte(validText)},
		"bad.in":  {Data: []byte("Bad\nmany\n")},
	}

	lvls, skipped, err := levels.NewFSLoader(fsys, ".").Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(lvls) != 1 || lvls[0].ID != "good" {
		t.Errorf("expected only the good level, got %d", len(lvls))
	}
	if len(skipped) != 1 || skipped[0].Path != "bad.in" {
		t.Errorf("skipped = %v, expected bad.in", skipped)
	}
}

func TestCatalogUserLevelsOverrideBuiltin(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "01-first-roll.in"), []byte(validText), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "99-extra.txt"), []byte(validText), 0o600); err != nil {
		t.Fatal(err)
	}

	cat, err := levels.NewCatalog(dir)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	lvl, err := cat.Lookup("01-first-roll")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if lvl.Name != "Tiny" || lvl.Builtin {
		t.Errorf("user level should replace built-in, got %q (builtin=%v)", lvl.Name, lvl.Builtin)
	}

	if _, err := cat.Lookup("99-extra"); err != nil {
		t.Errorf("user-only level not found: %v", err)
	}
	if _, err := cat.Lookup("02-downhill"); err != nil {
		t.Errorf("built-in level not found: %v", err)
	}
	if _, err := cat.Lookup("nope"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestCatalogLookupByPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loose.in")
	if err := os.WriteFile(path, []byte(validText), 0o600); err != nil {
		t.Fatal(err)
	}

	cat, err := levels.NewCatalog("")
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	lvl, err := cat.Lookup(path)
	if err != nil {
		t.Fatalf("Lookup by path failed: %v", err)
	}
	if lvl.ID != "loose" {
		t.Errorf("ID = %q, expected loose", lvl.ID)
	}

	if _, err := levels.NewCatalog(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing level directory")
	}
}
