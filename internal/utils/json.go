package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FilePerm is the permission used for data files written by the application
const FilePerm = 0o644

// DirPerm is the permission used for data directories created by the application
const DirPerm = 0o755

// MarshalIndent encodes data as two-space indented JSON with a trailing newline.
func MarshalIndent(data interface{}) ([]byte, error) {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal data: %w", err)
	}
	return append(bytes, '\n'), nil
}

// WriteFileAtomic writes b to path+".tmp" and renames it over path, so a
// crash mid-write leaves either the old or the new file, never a truncated one.
// Missing parent directories are created.
func WriteFileAtomic(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, FilePerm); err != nil {
		return fmt.Errorf("failed to write file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
