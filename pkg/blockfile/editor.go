package blockfile

import (
	"os"
	"slices"
	"strings"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/types"
	"github.com/rs/zerolog"
)

// Editor applies idempotent block inserts and removals to files.
// It holds no per-file state; every call reads the target, mutates an
// in-memory copy and hands it to the transactional writer.
type Editor struct {
	fs      types.FS
	confirm types.Confirmer
	elevate types.Elevator
	isTitle TitleFunc
	dryRun  bool
	logger  zerolog.Logger
}

// Option configures an Editor
type Option func(*Editor)

// WithTitleFunc overrides the rule deciding which lines end a section
func WithTitleFunc(fn TitleFunc) Option {
	return func(e *Editor) { e.isTitle = fn }
}

// WithElevator sets the privilege elevator consulted when a direct
// write is denied by filesystem permissions
func WithElevator(el types.Elevator) Option {
	return func(e *Editor) { e.elevate = el }
}

// WithDryRun makes the editor log planned changes without writing them
func WithDryRun(dryRun bool) Option {
	return func(e *Editor) { e.dryRun = dryRun }
}

// New creates an Editor writing through fs and gated by confirm
func New(fsys types.FS, confirm types.Confirmer, opts ...Option) *Editor {
	e := &Editor{
		fs:      fsys,
		confirm: confirm,
		isTitle: DefaultTitleFunc,
		logger:  logging.GetLogger("blockfile"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Insert ensures title is present in the file at path and that every
// content line exists within its section. Lines already present are
// left alone, so repeated calls converge to the same file content.
// description is shown verbatim by the confirmation policy.
func (e *Editor) Insert(description, path, title string, content ...string) error {
	lines, _, err := e.read(path)
	if err != nil {
		return err
	}

	loc := Locate(lines, title, e.isTitle)
	if loc.Ambiguous {
		e.logger.Warn().Str("path", path).Str("title", title).
			Msg("Title occurs more than once, acting on first occurrence")
	}

	var newLines []string
	if !loc.Found() {
		// Append a fresh block at the end, separated by a blank line
		// when the file already has content.
		newLines = slices.Clone(lines)
		if len(newLines) > 0 {
			newLines = append(newLines, "")
		}
		newLines = append(newLines, title)
		newLines = append(newLines, content...)
	} else {
		section := slices.Clone(lines[loc.SectionStart:loc.SectionEnd])
		for _, line := range content {
			if slices.Contains(section, line) {
				continue
			}
			// New lines go at the end of the section, but before the
			// blank lines separating it from the next block.
			at := len(section)
			for at > 0 && section[at-1] == "" {
				at--
			}
			section = slices.Insert(section, at, line)
		}
		newLines = make([]string, 0, len(lines)+len(content))
		newLines = append(newLines, lines[:loc.SectionStart]...)
		newLines = append(newLines, section...)
		newLines = append(newLines, lines[loc.SectionEnd:]...)
	}

	if slices.Equal(newLines, lines) {
		e.logger.Debug().Str("path", path).Str("title", title).
			Msg("Block already present, nothing to do")
		return nil
	}

	return e.apply(path, newLines, types.ConfirmationRequest{
		Operation:   "insert",
		Description: description,
		Items:       content,
		Default:     true,
	})
}

// Remove deletes the given content lines from the section owned by
// title. Lines in the section that were not asked for survive in their
// original order. When the section ends up empty and is immediately
// followed by another title or end of file, the title line itself is
// removed too, along with the blank separator Insert put before it.
// A missing file or absent title is already the desired state and
// succeeds without touching anything.
func (e *Editor) Remove(description, path, title string, content ...string) error {
	lines, exists, err := e.read(path)
	if err != nil {
		return err
	}
	if !exists {
		e.logger.Debug().Str("path", path).Msg("File does not exist, nothing to remove")
		return nil
	}

	loc := Locate(lines, title, e.isTitle)
	if loc.Ambiguous {
		e.logger.Warn().Str("path", path).Str("title", title).
			Msg("Title occurs more than once, acting on first occurrence")
	}
	if !loc.Found() {
		e.logger.Debug().Str("path", path).Str("title", title).
			Msg("Title not present, nothing to remove")
		return nil
	}

	// Each argument occurrence removes at most one matching line.
	section := lines[loc.SectionStart:loc.SectionEnd]
	removed := make([]bool, len(section))
	for _, line := range content {
		for i, existing := range section {
			if existing == line && !removed[i] {
				removed[i] = true
				break
			}
		}
	}

	kept := make([]string, 0, len(section))
	for i, line := range section {
		if !removed[i] {
			kept = append(kept, line)
		}
	}

	blockStart := loc.TitleIndex
	if len(kept) == 0 && e.sectionRedundant(lines, loc) {
		// The title goes too. Eat the single blank separator line
		// Insert placed before it, restoring the pre-insert content.
		if blockStart > 0 && lines[blockStart-1] == "" {
			blockStart--
		}
	} else {
		kept = append([]string{title}, kept...)
	}

	newLines := make([]string, 0, len(lines))
	newLines = append(newLines, lines[:blockStart]...)
	newLines = append(newLines, kept...)
	newLines = append(newLines, lines[loc.SectionEnd:]...)

	if slices.Equal(newLines, lines) {
		e.logger.Debug().Str("path", path).Str("title", title).
			Msg("Lines already absent, nothing to do")
		return nil
	}

	return e.apply(path, newLines, types.ConfirmationRequest{
		Operation:   "remove",
		Description: description,
		Items:       content,
		Default:     true,
	})
}

// sectionRedundant reports whether an emptied section's title may be
// dropped: the section is immediately followed by another title line
// or by end of file.
func (e *Editor) sectionRedundant(lines []string, loc Location) bool {
	if loc.SectionEnd >= len(lines) {
		return true
	}
	return e.isTitle(lines[loc.SectionEnd])
}

// read loads the file at path into a line slice. A missing file reads
// as empty; a directory is a path error.
func (e *Editor) read(path string) (lines []string, exists bool, err error) {
	info, err := e.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrFileRead, "failed to stat %s", path)
	}
	if info.IsDir() {
		return nil, false, errors.Newf(errors.ErrPathInvalid, "%s is a directory, not a regular file", path)
	}

	data, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	return splitLines(data), true, nil
}

// splitLines turns file content into a line slice, treating a single
// trailing newline as a terminator rather than an empty final line.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// joinLines is the inverse of splitLines: every line is terminated
// with a newline, and no lines at all means an empty file.
func joinLines(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}
