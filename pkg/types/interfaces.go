package types

import (
	"io/fs"
)

// FS provides a filesystem abstraction for file operations.
// This allows for testing with in-memory filesystems and provides
// a consistent interface across the codebase.
type FS interface {
	// Stat returns file info for the given path
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the entire file
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to a file
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory and all parents
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink creates a symbolic link
	Symlink(oldname, newname string) error

	// Readlink reads the target of a symbolic link
	Readlink(name string) (string, error)

	// Remove removes a file or empty directory
	Remove(name string) error

	// Rename renames (moves) a file
	Rename(oldpath, newpath string) error

	// Lstat returns file info without following symlinks
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Runner executes external commands on behalf of modules.
// Implementations log every invocation; tests substitute a recording fake.
type Runner interface {
	// Run executes the command and waits for it to finish
	Run(name string, args ...string) error

	// Output executes the command and returns its standard output
	Output(name string, args ...string) ([]byte, error)
}

// Elevator re-runs a failed filesystem write with elevated privileges.
// It is consulted only after a direct write was denied by permissions.
type Elevator interface {
	// WriteFile writes data to path with elevated privileges,
	// preserving the caller's environment
	WriteFile(path string, data []byte, perm fs.FileMode) error
}
