// Package filesystem provides the afero-backed filesystem adapter.
package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

// Adapter provides file system operations over an afero backend.
type Adapter struct {
	fs afero.Fs
}

// New creates an adapter over the operating system filesystem.
func New() *Adapter {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates an adapter over the given afero filesystem. Tests use
// this with an in-memory backend.
func NewWithFs(fs afero.Fs) *Adapter {
	return &Adapter{fs: fs}
}

// ReadFile reads a file from the backend.
func (a *Adapter) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// WriteFile writes data to a file.
func (a *Adapter) WriteFile(path string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(a.fs, path, data, perm)
}

// MkdirAll creates a directory and all necessary parents.
func (a *Adapter) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// Stat returns file info.
func (a *Adapter) Stat(path string) (os.FileInfo, error) {
	return a.fs.Stat(path)
}

// UserHomeDir returns the user's home directory.
func (a *Adapter) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}
