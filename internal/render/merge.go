package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/agbru/questbench/internal/errors"
)

// Merge replaces the text strictly between the sentinel markers in doc
// with table, leaving every byte outside the markers untouched. Missing
// or inverted markers yield a MergeTargetError and no output.
//
// Merge is idempotent: merging the same table into its own output
// produces an identical document.
func Merge(table, doc string) (string, error) {
	begin := strings.Index(doc, BeginMarker)
	if begin < 0 {
		return "", apperrors.MergeTargetError{Reason: fmt.Sprintf("marker %q not found", BeginMarker)}
	}
	regionStart := begin + len(BeginMarker)
	end := strings.Index(doc[regionStart:], EndMarker)
	if end < 0 {
		return "", apperrors.MergeTargetError{Reason: fmt.Sprintf("marker %q not found after %q", EndMarker, BeginMarker)}
	}
	return doc[:regionStart] + "\n" + table + doc[regionStart+end:], nil
}

// UpdateFile performs the scoped read-modify-write of the target
// document: read, merge, write to a temporary file in the same
// directory, then rename over the original. The rename is atomic on
// POSIX filesystems, so a crash mid-merge can never leave a
// half-written target; a failed merge leaves the document untouched.
func UpdateFile(path, table string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return apperrors.MergeTargetError{Path: path, Reason: err.Error()}
	}

	merged, err := Merge(table, string(doc))
	if err != nil {
		var target apperrors.MergeTargetError
		if errors.As(err, &target) {
			target.Path = path
			return target
		}
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return apperrors.WrapError(err, "create temporary merge file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(merged); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.WrapError(err, "write temporary merge file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.WrapError(err, "close temporary merge file")
	}
	if info, err := os.Stat(path); err == nil {
		os.Chmod(tmpName, info.Mode())
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return apperrors.WrapError(err, "replace merge target")
	}
	return nil
}
