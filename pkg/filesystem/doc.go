// Package filesystem provides filesystem implementations for outfit.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero-backed filesystem
// used with MemMapFs in tests.
package filesystem
