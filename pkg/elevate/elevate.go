// Package elevate implements privilege elevation for writes to files
// the calling user cannot touch directly, such as /etc/environment or
// apt configuration.
//
// Elevation happens through sudo with -E so the caller's environment
// survives, which matters when the proxy module is configuring the
// very proxy sudo itself needs. The elevator is only ever consulted
// after a direct write failed with a permission error.
package elevate

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/types"
)

// execCommand is swapped out in tests
var execCommand = exec.Command

// sudoElevator implements types.Elevator via sudo
type sudoElevator struct{}

// NewSudo creates an Elevator backed by sudo -E
func NewSudo() types.Elevator {
	return &sudoElevator{}
}

// WriteFile writes data to path with elevated privileges. The parent
// directory is created if needed and the requested mode applied.
// Content is fed through stdin so it never hits a world-readable
// temp location.
func (s *sudoElevator) WriteFile(path string, data []byte, perm fs.FileMode) error {
	logger := logging.GetLogger("elevate")
	logger.Info().Str("path", path).Msg("Writing with elevated privileges")

	script := fmt.Sprintf(
		`mkdir -p -- "$(dirname -- "$1")" && tee -- "$1" > /dev/null && chmod %o -- "$1"`,
		perm.Perm(),
	)

	cmd := execCommand("sudo", "-E", "sh", "-c", script, "sh", path)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrElevation, "sudo write to %s failed", path)
	}
	return nil
}
