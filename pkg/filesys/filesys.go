// Package filesys provides the small set of filesystem primitives the
// document store builds on: creating its directory and reading, writing,
// and removing individual document files.
package filesys

import (
	"errors"
	"os"
)

// ErrIsNotDir is returned when a path expected to be a directory turns out
// to be a regular file.
var ErrIsNotDir = errors.New("path isn't a directory")

// CreateDir creates a directory at the specified path with the given
// permissions.
//
// If the directory already exists:
//   - If 'force' is true, it proceeds without error.
//   - If 'force' is false, it returns an error.
//
// It also returns an error if the existing path is a file (not a directory).
func CreateDir(dirPath string, permission os.FileMode, force bool) error {
	stat, err := os.Stat(dirPath)
	if !force && !os.IsNotExist(err) {
		if err == nil {
			return os.ErrExist
		}
		return err
	}

	if stat != nil && !stat.IsDir() {
		return ErrIsNotDir
	}

	if err := os.MkdirAll(dirPath, permission); err != nil {
		return err
	}

	return os.Chmod(dirPath, permission)
}

// WriteFile writes contents to the file at filePath with the given
// permission. If the file does not exist, it is created; if it exists, it
// is truncated.
func WriteFile(filePath string, permission os.FileMode, contents []byte) error {
	return os.WriteFile(filePath, contents, permission)
}

// DeleteFile deletes the file at filePath.
func DeleteFile(filePath string) error {
	return os.Remove(filePath)
}

// ReadFile reads the entire content of the file at filePath.
func ReadFile(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}
