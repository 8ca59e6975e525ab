// Package modules defines the provisioning module contract and the
// dispatcher running them.
//
// A module is a thin, named piece of procedural glue: install these
// packages, write that proxy block, create those users. Modules do
// their file editing through the block editor so every change is
// confirmed, idempotent and atomic; anything else goes through the
// command runner.
//
// Module packages register themselves from init, so importing a
// module package for side effects is enough to make it dispatchable.
package modules

import (
	"github.com/arthur-debert/outfit/pkg/blockfile"
	"github.com/arthur-debert/outfit/pkg/config"
	"github.com/arthur-debert/outfit/pkg/registry"
	"github.com/arthur-debert/outfit/pkg/types"
)

// Context carries everything a module needs for one run. All policies
// are explicit values; modules never reach for globals.
type Context struct {
	// Config is the fully merged configuration
	Config *config.Config

	// FS is the filesystem modules operate on
	FS types.FS

	// Blocks is the block editor, already wired with the run's
	// confirmation policy and elevator
	Blocks *blockfile.Editor

	// Run executes external commands
	Run types.Runner

	// Confirm is the confirmation policy for non-file actions
	Confirm types.Confirmer

	// DryRun previews changes without applying them
	DryRun bool
}

// Module is a named provisioning step
type Module interface {
	// Name is the identifier used on the command line
	Name() string

	// Description is a one-line summary shown by `outfit list`
	Description() string

	// Run applies the module
	Run(ctx *Context) error
}

// defaultRegistry holds all modules registered at init time
var defaultRegistry = registry.New[Module]()

// Register adds a module to the default registry. It panics on
// duplicate names, which is a programming error surfaced at startup.
func Register(m Module) {
	if err := defaultRegistry.Register(m.Name(), m); err != nil {
		panic(err)
	}
}

// Get returns a registered module by name
func Get(name string) (Module, error) {
	return defaultRegistry.Get(name)
}

// Names returns all registered module names, sorted
func Names() []string {
	return defaultRegistry.List()
}

// Has reports whether a module with the given name is registered
func Has(name string) bool {
	return defaultRegistry.Has(name)
}
