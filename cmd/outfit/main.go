package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/outfit/internal/cli"
	"github.com/arthur-debert/outfit/pkg/style"

	// Import module packages so their init() registration runs
	_ "github.com/arthur-debert/outfit/pkg/modules/dotfiles"
	_ "github.com/arthur-debert/outfit/pkg/modules/packages"
	_ "github.com/arthur-debert/outfit/pkg/modules/power"
	_ "github.com/arthur-debert/outfit/pkg/modules/proxy"
	_ "github.com/arthur-debert/outfit/pkg/modules/users"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
