// Package fileutil holds file permission constants and small copy helpers
// for writing the generated site.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for generated site files that a
// web server or browser must be able to read.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the permission mode for directories created for the site.
const DirReadableByAll os.FileMode = 0o755

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirReadableByAll); err != nil {
		return fmt.Errorf("fileutil: failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, content, ReadableByAll); err != nil {
		return fmt.Errorf("fileutil: failed to write file: %w", err)
	}
	return nil
}

// CopyFile copies the regular file at src to dst, creating parent
// directories of dst as needed. Copying a file onto itself is a no-op.
func CopyFile(src, dst string) error {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return fmt.Errorf("fileutil: invalid source path: %w", err)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return fmt.Errorf("fileutil: invalid destination path: %w", err)
	}
	if absSrc == absDst {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("fileutil: failed to open source: %w", err)
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), DirReadableByAll); err != nil {
		return fmt.Errorf("fileutil: failed to create directory: %w", err)
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, ReadableByAll)
	if err != nil {
		return fmt.Errorf("fileutil: failed to create destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("fileutil: failed to copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("fileutil: failed to close destination: %w", err)
	}
	return nil
}
