// Package filesystem routes every disk access of the pipeline through a single
// swappable afero backend.
package filesystem

import (
	"io"
	"os"
)

// GacheFs exposes the swappable backend through the gache.FileSystem interface,
// so the non-video classification cache and the version cache land on the same
// filesystem as everything else, in-memory one included.
type GacheFs struct{}

// OpenFile opens a cache file on the active backend.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

// MkdirAll creates the cache directory on the active backend.
func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
