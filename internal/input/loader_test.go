package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/agbru/questbench/internal/errors"
	"github.com/agbru/questbench/internal/quest"
)

func writeDataFile(t *testing.T, base string, cat Category, name, contents string) {
	t.Helper()
	dir := filepath.Join(base, string(cat))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderPath(t *testing.T) {
	l := NewLoader("data")
	got := l.Path(Inputs, quest.MustDay(8), quest.Part1)
	want := filepath.Join("data", "inputs", "08-1.txt")
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestLoaderDefaultsBaseDir(t *testing.T) {
	l := NewLoader("")
	if got := l.Path(Samples, quest.MustDay(1), quest.Part3); got != filepath.Join("data", "samples", "01-3.txt") {
		t.Errorf("Path() = %q", got)
	}
}

func TestLoaderRead(t *testing.T) {
	base := t.TempDir()
	writeDataFile(t, base, Inputs, "03-2.txt", "1 2 3\n")

	l := NewLoader(base)
	got, err := l.Read(Inputs, quest.MustDay(3), quest.Part2)
	if err != nil {
		t.Fatalf("Read() unexpected error: %v", err)
	}
	// Contents are returned exactly, trailing newline included.
	if got != "1 2 3\n" {
		t.Errorf("Read() = %q", got)
	}
}

func TestLoaderReadMissing(t *testing.T) {
	l := NewLoader(t.TempDir())

	_, err := l.Read(Inputs, quest.MustDay(3), quest.Part2)
	if err == nil {
		t.Fatal("Read() of a missing file should fail")
	}
	var missing apperrors.MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("Read() error = %T, want MissingInputError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("MissingInputError should unwrap to os.ErrNotExist")
	}
}
