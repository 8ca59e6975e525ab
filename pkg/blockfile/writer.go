package blockfile

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/types"
)

// defaultFileMode is used for files that did not exist before
const defaultFileMode = fs.FileMode(0644)

// apply writes newLines to path atomically, gated by the confirmation
// policy. The original file is never visible in a half-written state:
// content goes to a temp file in the same directory first and is
// renamed over the target. On permission errors the elevator, when
// configured, performs the write instead. Any failure before the
// rename leaves the original file untouched.
func (e *Editor) apply(path string, newLines []string, req types.ConfirmationRequest) error {
	ok, err := e.confirm.Confirm(req)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "confirmation policy failed for %s", path)
	}
	if !ok {
		e.logger.Info().Str("path", path).Str("description", req.Description).
			Msg("Change declined, file left untouched")
		return errors.Newf(errors.ErrConfirmationDeclined, "declined: %s", req.Description)
	}

	data := joinLines(newLines)

	if e.dryRun {
		e.logger.Info().Str("path", path).Int("lines", len(newLines)).
			Msg("Dry run, skipping write")
		return nil
	}

	// Keep the mode of an existing target; new files get a
	// conservative default.
	mode := defaultFileMode
	if info, err := e.fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := e.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		if os.IsPermission(err) {
			return e.applyElevated(path, data, mode, err)
		}
		return errors.Wrapf(err, errors.ErrPathInvalid, "failed to create parent directory for %s", path)
	}

	tmp := path + ".outfit.tmp"
	if err := e.fs.WriteFile(tmp, data, mode); err != nil {
		if os.IsPermission(err) {
			return e.applyElevated(path, data, mode, err)
		}
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", tmp)
	}

	if err := e.fs.Rename(tmp, path); err != nil {
		// Clean up the temp file; the original target is still intact.
		_ = e.fs.Remove(tmp)
		if os.IsPermission(err) {
			return e.applyElevated(path, data, mode, err)
		}
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to replace %s", path)
	}

	e.logger.Info().Str("path", path).Str("operation", req.Operation).
		Str("description", req.Description).Msg("File updated")
	return nil
}

// applyElevated retries a permission-denied write through the
// privilege elevator.
func (e *Editor) applyElevated(path string, data []byte, mode fs.FileMode, cause error) error {
	if e.elevate == nil {
		return errors.Wrapf(cause, errors.ErrFileWrite, "permission denied writing %s and no elevator configured", path)
	}

	e.logger.Info().Str("path", path).Msg("Direct write denied, elevating")
	if err := e.elevate.WriteFile(path, data, mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "elevated write of %s failed", path)
	}
	return nil
}
