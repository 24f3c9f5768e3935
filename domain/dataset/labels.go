package dataset

// Label files: one "<basename>.txt" per image in the output folder.

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/soocke/bbox-labeler/domain/annotation"
)

// LabelPath returns the label file path for imageName inside outDir.
func LabelPath(outDir, imageName string) string {
	return filepath.Join(outDir, BaseNoExt(imageName)+".txt")
}

// WriteLabels truncates or creates path and writes content. A pre-existing file is
// overwritten, never appended to.
func WriteLabels(path, content string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create label file %q", path)
	}
	defer closeWithErrCheck(f, &err)

	w := bufio.NewWriter(f)
	if _, err = w.WriteString(content); err != nil {
		return errors.Wrapf(err, "write label file %q", path)
	}
	if err = w.Flush(); err != nil {
		return errors.Wrapf(err, "flush label file %q", path)
	}
	return nil
}

// ReadLabels parses every non-blank line of the label file at path.
// A missing file yields os.ErrNotExist (test with errors.Is).
func ReadLabels(path string) (labels []annotation.Normalized, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer closeWithErrCheck(f, &err)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		n, perr := annotation.ParseLine(text)
		if perr != nil {
			return nil, errors.Wrapf(perr, "%s:%d", path, line)
		}
		labels = append(labels, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read label file %q", path)
	}
	return labels, nil
}

// closeWithErrCheck calls c.Close(). If it returns an error, and (*e == nil), e is set to that
// error.
func closeWithErrCheck(c io.Closer, e *error) {
	err := c.Close()
	if err != nil && *e == nil {
		*e = err
	}
}
