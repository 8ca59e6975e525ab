// Package types defines the shared contracts used across outfit:
// the filesystem abstraction, the confirmation policy, command
// execution and privilege elevation.
//
// Keeping these interfaces in one dependency-free package lets the
// block editor, the modules and the CLI depend on each other's
// capabilities without importing each other's implementations.
package types
