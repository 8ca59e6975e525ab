// Package cmdrun wraps external command execution for modules.
// Every invocation is logged; tests substitute the Recorder fake.
package cmdrun

import (
	"os"
	"os/exec"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/types"
)

// execRunner runs commands through os/exec
type execRunner struct{}

// New creates a Runner executing real commands
func New() types.Runner {
	return &execRunner{}
}

// Run executes the command, streaming output to the user's terminal
func (r *execRunner) Run(name string, args ...string) error {
	logging.LogCommand(name, args)

	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrCommandRun, "%s failed", name)
	}
	return nil
}

// Output executes the command and captures its standard output
func (r *execRunner) Output(name string, args ...string) ([]byte, error) {
	logging.LogCommand(name, args)

	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCommandRun, "%s failed", name)
	}
	return out, nil
}
