// Package scaffold creates the solution module and empty data files for
// a day, ready for the author to fill in.
package scaffold

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "github.com/agbru/questbench/internal/errors"
	"github.com/agbru/questbench/internal/quest"
)

//go:embed templates/day.go.tmpl
var moduleTemplate string

//go:embed templates/day_test.go.tmpl
var testTemplate string

// Options configure a scaffold run.
type Options struct {
	// BaseDir is the repository root; empty means the current directory.
	BaseDir string
	// Overwrite replaces an existing solution module instead of
	// refusing to touch it.
	Overwrite bool
}

// Result lists the files a scaffold run created.
type Result struct {
	ModulePath string
	TestPath   string
	DataPaths  []string
}

// Day writes solutions/dayDD.go and its test from the embedded
// templates, plus empty input and sample files for all three parts.
// Existing data files are left as they are; an existing module is only
// replaced when Overwrite is set.
func Day(day quest.Day, opts Options) (Result, error) {
	root := opts.BaseDir
	if root == "" {
		root = "."
	}

	for _, dir := range []string{"solutions", "data/inputs", "data/samples", "data/answers", "data/descriptions"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return Result{}, apperrors.WrapError(err, "create directory %s", dir)
		}
	}

	res := Result{
		ModulePath: filepath.Join(root, "solutions", fmt.Sprintf("day%s.go", day)),
		TestPath:   filepath.Join(root, "solutions", fmt.Sprintf("day%s_test.go", day)),
	}

	if err := writeModule(res.ModulePath, moduleTemplate, day, opts.Overwrite); err != nil {
		return Result{}, err
	}
	if err := writeModule(res.TestPath, testTemplate, day, opts.Overwrite); err != nil {
		return Result{}, err
	}

	for _, cat := range []string{"inputs", "samples"} {
		for _, part := range quest.Parts() {
			path := filepath.Join(root, "data", cat, fmt.Sprintf("%s-%s.txt", day, part))
			if err := touch(path); err != nil {
				return Result{}, apperrors.WrapError(err, "create data file %s", path)
			}
			res.DataPaths = append(res.DataPaths, path)
		}
	}

	return res, nil
}

// writeModule renders tmpl for day into path. Without overwrite an
// existing file is a configuration error, so a stray scaffold can never
// clobber a solved day.
func writeModule(path, tmpl string, day quest.Day, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return apperrors.NewConfigError("%s already exists (use --overwrite to replace it)", path)
		}
		return apperrors.WrapError(err, "create module file %s", path)
	}
	defer f.Close()

	content := strings.ReplaceAll(tmpl, "%DAY%", day.String())
	content = strings.ReplaceAll(content, "%DAY_NUMBER%", strconv.Itoa(day.Int()))
	if _, err := f.WriteString(content); err != nil {
		return apperrors.WrapError(err, "write module file %s", path)
	}
	return nil
}

// touch creates an empty file if absent, preserving existing contents.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
