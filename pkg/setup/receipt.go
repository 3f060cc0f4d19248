package setup

import (
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/templatekit/imprint/pkg/catalog"
	"github.com/templatekit/imprint/pkg/errors"
	"github.com/templatekit/imprint/pkg/types"
)

// receiptHeader identifies the file and how to reuse it.
const receiptHeader = "# Recorded by imprint. Pass this file to --answers to replay the run.\n\n"

// writeReceipt saves the resolved values as a TOML document under the
// project root and returns its full path. Keys come out sorted, so the
// file is stable across runs with the same answers.
func writeReceipt(fsys types.FS, root, relPath string, values catalog.Values) (string, error) {
	data, err := toml.Marshal(values)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode answers")
	}

	path := filepath.Join(root, relPath)
	content := append([]byte(receiptHeader), data...)
	if err := fsys.WriteFile(path, content, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", relPath)
	}

	return path, nil
}
