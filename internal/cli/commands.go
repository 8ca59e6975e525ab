// Package cli builds outfit's command tree. The per-command packages
// own the cobra skeletons and user-facing text; this package attaches
// the logic and wires the shared run context.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outfit/internal/cli/block"
	"github.com/arthur-debert/outfit/internal/cli/genconfig"
	"github.com/arthur-debert/outfit/internal/cli/list"
	"github.com/arthur-debert/outfit/internal/cli/topicscmd"
	"github.com/arthur-debert/outfit/internal/cli/up"
	"github.com/arthur-debert/outfit/internal/topics"
	"github.com/arthur-debert/outfit/internal/version"
	"github.com/arthur-debert/outfit/pkg/blockfile"
	"github.com/arthur-debert/outfit/pkg/cmdrun"
	"github.com/arthur-debert/outfit/pkg/config"
	"github.com/arthur-debert/outfit/pkg/confirm"
	"github.com/arthur-debert/outfit/pkg/elevate"
	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/filesystem"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/modules"
	"github.com/arthur-debert/outfit/pkg/paths"
	"github.com/arthur-debert/outfit/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		assumeYes bool
	)

	rootCmd := &cobra.Command{
		Use:     "outfit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but exit non-zero
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, MsgFlagYes)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "CONFIGURATION:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands and attach their logic
	upCmd := up.NewCommand()
	upCmd.RunE = runUp
	rootCmd.AddCommand(upCmd)

	listCmd := list.NewCommand()
	listCmd.RunE = runList
	rootCmd.AddCommand(listCmd)

	blockCmd, insertCmd, removeCmd := block.NewCommand()
	insertCmd.RunE = runBlockInsert
	removeCmd.RunE = runBlockRemove
	rootCmd.AddCommand(blockCmd)

	genconfigCmd := genconfig.NewCommand()
	genconfigCmd.RunE = runGenconfig
	rootCmd.AddCommand(genconfigCmd)

	topicsCmd := topicscmd.NewCommand()
	topicsCmd.RunE = runTopics
	rootCmd.AddCommand(topicsCmd)

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newContext loads the configuration and assembles the run context
// every command shares: real filesystem, sudo elevator, and the
// confirmation policy picked from --yes and the terminal.
func newContext(cmd *cobra.Command) (*modules.Context, error) {
	dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	assumeYes, _ := cmd.Root().PersistentFlags().GetBool("yes")

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	policy := confirm.For(assumeYes)
	editor := blockfile.New(fsys, policy,
		blockfile.WithTitleFunc(blockfile.PrefixTitleFunc(cfg.Blocks.TitleMarker)),
		blockfile.WithElevator(elevate.NewSudo()),
		blockfile.WithDryRun(dryRun),
	)

	return &modules.Context{
		Config:  cfg,
		FS:      fsys,
		Blocks:  editor,
		Run:     cmdrun.New(),
		Confirm: policy,
		DryRun:  dryRun,
	}, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(cmd)
	if err != nil {
		return err
	}

	log.Info().Strs("modules", args).Bool("dry_run", ctx.DryRun).Msg("Provisioning run started")

	results, err := modules.Dispatch(ctx, args)
	if err != nil {
		return err
	}

	if ctx.DryRun {
		fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunBanner)
	}
	fmt.Fprintln(cmd.OutOrStdout(), style.RenderResults(results))

	failed := 0
	for _, r := range results {
		if r.Err != nil && !r.Declined() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf(MsgErrModulesFailed, failed)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	out := style.RenderModuleList(modules.Names(), func(name string) string {
		m, err := modules.Get(name)
		if err != nil {
			return ""
		}
		return m.Description()
	})
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runBlockInsert(cmd *cobra.Command, args []string) error {
	return runBlockEdit(cmd, args, "insert")
}

func runBlockRemove(cmd *cobra.Command, args []string) error {
	return runBlockEdit(cmd, args, "remove")
}

// runBlockEdit drives both block subcommands: same arguments, same
// context, just a different editor call. A declined confirmation
// leaves the file untouched and is not a failure.
func runBlockEdit(cmd *cobra.Command, args []string, op string) error {
	ctx, err := newContext(cmd)
	if err != nil {
		return err
	}

	path, title, lines := args[0], args[1], args[2:]
	path = paths.ExpandHome(path)

	description, _ := cmd.Flags().GetString("describe")
	if description == "" {
		description = fmt.Sprintf("%s block %q in %s", op, title, path)
	}

	if op == "insert" {
		err = ctx.Blocks.Insert(description, path, title, lines...)
	} else {
		err = ctx.Blocks.Remove(description, path, title, lines...)
	}
	if errors.IsErrorCode(err, errors.ErrConfirmationDeclined) {
		fmt.Fprintln(cmd.OutOrStdout(), MsgDeclined)
		return nil
	}
	return err
}

func runGenconfig(cmd *cobra.Command, args []string) error {
	merged, _ := cmd.Flags().GetBool("merged")
	write, _ := cmd.Flags().GetBool("write")

	if merged {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		out, err := config.MarshalTOML(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if !write {
		fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
		return nil
	}

	target := paths.ConfigFilePath()
	if _, err := os.Stat(target); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), MsgConfigExists, target)
		return nil
	}
	if err := os.MkdirAll(paths.ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(config.DefaultContent()), 0644); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", target, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
	return nil
}

func runTopics(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), MsgTopicsHeader)
		for _, name := range topics.Names() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
		}
		return nil
	}

	rendered, ok := topics.Render(args[0])
	if !ok {
		return fmt.Errorf(MsgErrUnknownTopic, args[0], strings.Join(topics.Names(), ", "))
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print version information",
		Long:    `Print detailed version information including commit hash and build date`,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "outfit version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Built:  %s\n", version.Date)
			}
		},
	}
}
