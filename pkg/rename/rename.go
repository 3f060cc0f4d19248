// Package rename moves the template's source and test directories to
// their configured names and rewrites textual references to them.
package rename

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/templatekit/imprint/pkg/errors"
	"github.com/templatekit/imprint/pkg/logging"
	"github.com/templatekit/imprint/pkg/types"
)

// Move renames root/oldName to root/newName. It returns the new path,
// or "" when nothing was done: the names are equal or the old
// directory does not exist. An existing target is a conflict error.
func Move(fsys types.FS, root, oldName, newName string) (string, error) {
	if oldName == newName {
		return "", nil
	}

	oldPath := filepath.Join(root, oldName)
	newPath := filepath.Join(root, newName)

	if _, err := fsys.Stat(oldPath); err != nil {
		return "", nil
	}
	if _, err := fsys.Stat(newPath); err == nil {
		return "", errors.Newf(errors.ErrRenameConflict,
			"cannot rename %s to %s: target exists", oldName, newName)
	}

	if err := fsys.Rename(oldPath, newPath); err != nil {
		// Cross-device moves degrade to copy and delete
		var linkErr *os.LinkError
		if !stderrors.As(err, &linkErr) {
			return "", errors.Wrapf(err, errors.ErrFileWrite,
				"failed to rename %s to %s", oldName, newName)
		}
		if err := moveByCopy(fsys, oldPath, newPath, oldName, newName); err != nil {
			return "", err
		}
	}

	return newPath, nil
}

func moveByCopy(fsys types.FS, oldPath, newPath, oldName, newName string) error {
	if err := copyAll(fsys, oldPath, newPath); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to copy %s to %s", oldName, newName)
	}
	if err := fsys.RemoveAll(oldPath); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to remove %s after copy", oldName)
	}
	return nil
}

// copyAll recursively copies src to dst, preserving permission bits.
func copyAll(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}

	if info.IsDir() {
		if err := fsys.MkdirAll(dst, info.Mode().Perm()); err != nil {
			return err
		}
		entries, err := fsys.ReadDir(src)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			err := copyAll(fsys, filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()))
			if err != nil {
				return err
			}
		}
		return nil
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}
	return fsys.WriteFile(dst, data, info.Mode().Perm())
}

// FixReferences rewrites textual references to a renamed directory in
// every visible file under root and returns the number of files
// changed. Hidden files are left alone, but hidden directories are
// still descended into. Files that cannot be read, decoded, or written
// are skipped.
func FixReferences(fsys types.FS, root, oldName, newName string) int {
	if oldName == newName {
		return 0
	}

	logger := logging.GetLogger("rename")

	// Literal replacements, applied in order. The ^-prefixed form is
	// carried for anchored references in lint and coverage configs.
	patterns := []struct {
		from, to string
	}{
		{oldName + "/", newName + "/"},
		{"^" + oldName + "/", newName + "/"},
		{`"` + oldName + `"`, `"` + newName + `"`},
		{`'` + oldName + `'`, `'` + newName + `'`},
	}

	fixed := 0
	walkFiles(fsys, root, func(path string) {
		if strings.HasPrefix(filepath.Base(path), ".") {
			return
		}

		data, err := fsys.ReadFile(path)
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable file")
			return
		}
		if !utf8.Valid(data) {
			logger.Debug().Str("path", path).Msg("Skipping non-text file")
			return
		}

		content := string(data)
		modified := false
		for _, p := range patterns {
			if strings.Contains(content, p.from) {
				content = strings.ReplaceAll(content, p.from, p.to)
				modified = true
			}
		}
		if !modified {
			return
		}

		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Skipping unwritable file")
			return
		}
		fixed++
	})

	logger.Debug().
		Str("oldName", oldName).
		Str("newName", newName).
		Int("fixed", fixed).
		Msg("Updated directory references")
	return fixed
}

// walkFiles visits every file under dir, depth first. Unreadable
// directories are skipped.
func walkFiles(fsys types.FS, dir string, visit func(path string)) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			walkFiles(fsys, path, visit)
			continue
		}
		visit(path)
	}
}
