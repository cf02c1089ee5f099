// Package input loads the persisted puzzle data files that back the
// harness: inputs, samples and sample answers, laid out as
// data/<category>/<DD>-<P>.txt. Download and scaffold tooling populate
// these files before the core runs; the loader only ever reads them.
package input

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/agbru/questbench/internal/errors"
	"github.com/agbru/questbench/internal/quest"
)

// Category names one of the data subdirectories.
type Category string

// The data categories the harness reads.
const (
	Inputs  Category = "inputs"
	Samples Category = "samples"
	Answers Category = "answers"
)

// Loader resolves and reads puzzle data files under a base directory,
// conventionally ./data.
type Loader struct {
	baseDir string
}

// NewLoader creates a Loader rooted at baseDir. An empty baseDir means
// the conventional "data" directory.
func NewLoader(baseDir string) *Loader {
	if baseDir == "" {
		baseDir = "data"
	}
	return &Loader{baseDir: baseDir}
}

// Path returns the file path backing the given cell and category,
// e.g. data/inputs/08-1.txt.
func (l *Loader) Path(cat Category, day quest.Day, part quest.Part) string {
	return filepath.Join(l.baseDir, string(cat), fmt.Sprintf("%s-%s.txt", day, part))
}

// Read returns the exact contents of the backing file. A missing or
// unreadable file yields a MissingInputError: data retrieval failures
// are fatal to the cell, never silently treated as "unsolved".
func (l *Loader) Read(cat Category, day quest.Day, part quest.Part) (string, error) {
	path := l.Path(cat, day, part)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.MissingInputError{Path: path, Cause: err}
	}
	return string(b), nil
}
