// Package dotfiles keeps the user's dotfiles repository checked out,
// links its files into the home directory and hooks its shell profile
// into the user's rc file.
//
// The repository layout is simple: files under home/ get symlinked
// into $HOME with a leading dot (home/bashrc -> ~/.bashrc), and an
// optional profile.sh at the repository root is sourced from the
// configured shell profile via a managed block.
package dotfiles

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/modules"
	"github.com/arthur-debert/outfit/pkg/paths"
)

// BlockTitle marks the lines outfit owns in the shell profile
const BlockTitle = "# outfit dotfiles"

// HomeSubdir is the repository directory whose files get linked
// into $HOME
const HomeSubdir = "home"

type module struct{}

func init() {
	modules.Register(&module{})
}

// New returns the dotfiles module
func New() modules.Module {
	return &module{}
}

func (m *module) Name() string { return "dotfiles" }

func (m *module) Description() string {
	return "Sync the dotfiles repo, link files and hook the shell profile"
}

func (m *module) Run(ctx *modules.Context) error {
	logger := logging.GetLogger("dotfiles")
	cfg := ctx.Config.Dotfiles

	if cfg.Repo == "" {
		logger.Debug().Msg("No dotfiles repo configured, nothing to do")
		return nil
	}

	if err := m.sync(ctx); err != nil {
		return err
	}
	if err := m.link(ctx); err != nil {
		return err
	}
	return m.hookProfile(ctx)
}

// sync clones the repository on first run and pulls on later ones
func (m *module) sync(ctx *modules.Context) error {
	logger := logging.GetLogger("dotfiles")
	cfg := ctx.Config.Dotfiles

	if ctx.DryRun {
		logger.Info().Str("repo", cfg.Repo).Msg("Dry run, skipping git sync")
		return nil
	}

	if _, err := ctx.FS.Stat(filepath.Join(cfg.Path, ".git")); err == nil {
		return ctx.Run.Run("git", "-C", cfg.Path, "pull", "--ff-only")
	}
	return ctx.Run.Run("git", "clone", cfg.Repo, cfg.Path)
}

// link symlinks every entry under home/ into $HOME with a leading
// dot. Correct links are left alone; wrong ones are replaced; a real
// file in the way is reported, never overwritten.
func (m *module) link(ctx *modules.Context) error {
	logger := logging.GetLogger("dotfiles")
	cfg := ctx.Config.Dotfiles

	srcDir := filepath.Join(cfg.Path, HomeSubdir)
	entries, err := ctx.FS.ReadDir(srcDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("dir", srcDir).Msg("No home/ directory in repo, skipping links")
			return nil
		}
		return err
	}

	home := paths.ExpandHome("~")
	for _, entry := range entries {
		target := filepath.Join(srcDir, entry.Name())
		link := filepath.Join(home, "."+entry.Name())

		if ctx.DryRun {
			logger.Info().Str("link", link).Str("target", target).Msg("Dry run, skipping symlink")
			continue
		}

		info, err := ctx.FS.Lstat(link)
		if err == nil {
			if info.Mode()&os.ModeSymlink == 0 {
				return fmt.Errorf("%s exists and is not a symlink, refusing to replace it", link)
			}
			current, err := ctx.FS.Readlink(link)
			if err == nil && current == target {
				continue
			}
			if err := ctx.FS.Remove(link); err != nil {
				return err
			}
		}

		if err := ctx.FS.Symlink(target, link); err != nil {
			return err
		}
		logger.Info().Str("link", link).Str("target", target).Msg("Linked dotfile")
	}
	return nil
}

// hookProfile ensures the shell profile sources the repository's
// profile.sh through a managed block
func (m *module) hookProfile(ctx *modules.Context) error {
	cfg := ctx.Config.Dotfiles

	profileScript := filepath.Join(cfg.Path, "profile.sh")
	snippet := fmt.Sprintf(`[ -f "%s" ] && . "%s"`, profileScript, profileScript)

	return ctx.Blocks.Insert(
		"source the dotfiles profile from "+cfg.Profile,
		cfg.Profile, BlockTitle,
		snippet,
	)
}
