// Package substitute rewrites {{VARIABLE}} placeholder tokens across
// the template's target files. Replacement is a single sequential pass
// in catalog order; values containing placeholder syntax are not
// re-expanded beyond what later variables in the same pass pick up.
package substitute

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/templatekit/imprint/pkg/catalog"
	"github.com/templatekit/imprint/pkg/errors"
	"github.com/templatekit/imprint/pkg/logging"
	"github.com/templatekit/imprint/pkg/types"
)

// Status describes the outcome for a single target file.
type Status string

const (
	// StatusUpdated means the file changed and was written back.
	StatusUpdated Status = "updated"
	// StatusUnmodified means the file had no placeholders left.
	StatusUnmodified Status = "unmodified"
	// StatusMissing means the file exists under neither its listed
	// path nor the renamed-directory fallback.
	StatusMissing Status = "missing"
	// StatusFailed means the file could not be read, decoded, or
	// written back.
	StatusFailed Status = "failed"
)

// Entry is the outcome for one target file.
type Entry struct {
	// Path is the relative path actually processed (the fallback
	// path when the listed one was gone).
	Path string
	// FullPath is the absolute location under the project root.
	FullPath string
	Status   Status
	Err      error
}

// Report collects per-file outcomes in processing order.
type Report struct {
	Entries []Entry
}

// Updated returns the number of files written back.
func (r Report) Updated() int {
	n := 0
	for _, e := range r.Entries {
		if e.Status == StatusUpdated {
			n++
		}
	}
	return n
}

// Token returns the placeholder form of a variable name.
func Token(name string) string {
	return "{{" + name + "}}"
}

// Engine applies a resolved value set to files under a project root.
type Engine struct {
	fs     types.FS
	root   string
	cat    catalog.Catalog
	values catalog.Values
}

// New returns an Engine for the given root and values. The catalog
// fixes the variable iteration order.
func New(fs types.FS, root string, cat catalog.Catalog, values catalog.Values) *Engine {
	return &Engine{
		fs:     fs,
		root:   root,
		cat:    cat,
		values: values,
	}
}

// Apply processes the given relative paths in order and returns one
// report entry per path. Failures never stop the pass.
func (e *Engine) Apply(files []string) Report {
	logger := logging.GetLogger("substitute")

	report := Report{Entries: make([]Entry, 0, len(files))}
	for _, rel := range files {
		entry := e.applyFile(rel)
		logger.Debug().
			Str("path", entry.Path).
			Str("status", string(entry.Status)).
			Msg("Processed target file")
		report.Entries = append(report.Entries, entry)
	}
	return report
}

// applyFile substitutes placeholders in a single file. A listed path
// that no longer exists is retried under the renamed source or test
// directory before being declared missing.
func (e *Engine) applyFile(rel string) Entry {
	path := rel
	full := filepath.Join(e.root, path)

	if _, err := e.fs.Stat(full); err != nil {
		alt, ok := e.fallbackPath(rel)
		if !ok {
			return Entry{Path: rel, FullPath: full, Status: StatusMissing}
		}
		path = alt
		full = filepath.Join(e.root, path)
		if _, err := e.fs.Stat(full); err != nil {
			return Entry{Path: rel, FullPath: full, Status: StatusMissing}
		}
	}

	entry := Entry{Path: path, FullPath: full}

	data, err := e.fs.ReadFile(full)
	if err != nil {
		entry.Status = StatusFailed
		entry.Err = errors.Wrapf(err, errors.ErrFileRead, "failed to read file")
		return entry
	}
	if !utf8.Valid(data) {
		entry.Status = StatusFailed
		entry.Err = errors.New(errors.ErrFileDecode, "file is not valid UTF-8")
		return entry
	}

	content := string(data)
	result := e.replaceAll(content)

	if result == content {
		entry.Status = StatusUnmodified
		return entry
	}

	if err := e.fs.WriteFile(full, []byte(result), 0644); err != nil {
		entry.Status = StatusFailed
		entry.Err = errors.Wrapf(err, errors.ErrFileWrite, "failed to write file")
		return entry
	}

	entry.Status = StatusUpdated
	return entry
}

// replaceAll runs the catalog-ordered replacement pass over content.
func (e *Engine) replaceAll(content string) string {
	for _, def := range e.cat.Definitions() {
		value, ok := e.values[def.Name]
		if !ok {
			continue
		}
		content = strings.ReplaceAll(content, Token(def.Name), value)
	}
	return content
}

// fallbackPath maps a listed path into the renamed source or test
// directory. Only the leading directory is rewritten.
func (e *Engine) fallbackPath(rel string) (string, bool) {
	if strings.HasPrefix(rel, catalog.SourceDirDefault+"/") {
		if dir, ok := e.values[catalog.VarSourceDir]; ok && dir != catalog.SourceDirDefault {
			return strings.Replace(rel, catalog.SourceDirDefault+"/", dir+"/", 1), true
		}
		return "", false
	}
	if strings.HasPrefix(rel, catalog.TestDirDefault+"/") {
		if dir, ok := e.values[catalog.VarTestDir]; ok && dir != catalog.TestDirDefault {
			return strings.Replace(rel, catalog.TestDirDefault+"/", dir+"/", 1), true
		}
		return "", false
	}
	return "", false
}
