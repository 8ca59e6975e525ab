// Package proxy configures the machine for life behind an HTTP proxy.
//
// Three surfaces are touched: /etc/environment for the session-wide
// proxy variables, an apt.conf.d snippet for apt, and the user's
// global git configuration. The first two are managed as named blocks
// so enabling and disabling converges cleanly; git carries its own
// config mechanism and is driven through the git CLI instead.
package proxy

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/outfit/pkg/modules"
)

// Target files for the managed blocks
const (
	EnvironmentPath = "/etc/environment"
	AptConfPath     = "/etc/apt/apt.conf.d/95outfit-proxy"

	// BlockTitle marks the lines outfit owns in both files
	BlockTitle = "# outfit proxy"
)

type module struct{}

func init() {
	modules.Register(&module{})
}

// New returns the proxy module
func New() modules.Module {
	return &module{}
}

func (m *module) Name() string { return "proxy" }

func (m *module) Description() string {
	return "Configure system, apt and git proxy settings"
}

func (m *module) Run(ctx *modules.Context) error {
	cfg := ctx.Config.Proxy
	if cfg.Enabled {
		return m.enable(ctx)
	}
	return m.disable(ctx)
}

func (m *module) enable(ctx *modules.Context) error {
	cfg := ctx.Config.Proxy
	url := cfg.URL()
	if url == "" {
		// Enabled without a host is a configuration mistake worth
		// surfacing rather than silently skipping.
		return fmt.Errorf("proxy is enabled but no host is configured")
	}

	if err := ctx.Blocks.Insert(
		"set proxy variables in "+EnvironmentPath,
		EnvironmentPath, BlockTitle,
		envLines(url, cfg.NoProxy)...,
	); err != nil {
		return err
	}

	if err := ctx.Blocks.Insert(
		"point apt at the proxy",
		AptConfPath, BlockTitle,
		aptLines(url)...,
	); err != nil {
		return err
	}

	if ctx.DryRun {
		return nil
	}
	return ctx.Run.Run("git", "config", "--global", "http.proxy", url)
}

func (m *module) disable(ctx *modules.Context) error {
	cfg := ctx.Config.Proxy
	url := cfg.URL()

	if err := ctx.Blocks.Remove(
		"drop proxy variables from "+EnvironmentPath,
		EnvironmentPath, BlockTitle,
		envLines(url, cfg.NoProxy)...,
	); err != nil {
		return err
	}

	if err := ctx.Blocks.Remove(
		"drop the apt proxy snippet",
		AptConfPath, BlockTitle,
		aptLines(url)...,
	); err != nil {
		return err
	}

	if ctx.DryRun {
		return nil
	}
	// --unset fails when the key is absent; that is already the
	// desired state, so ignore it.
	_ = ctx.Run.Run("git", "config", "--global", "--unset", "http.proxy")
	return nil
}

// envLines returns the /etc/environment content lines for the proxy
func envLines(url string, noProxy []string) []string {
	if url == "" {
		return nil
	}
	lines := []string{
		"http_proxy=" + url,
		"https_proxy=" + url,
	}
	if len(noProxy) > 0 {
		lines = append(lines, "no_proxy="+strings.Join(noProxy, ","))
	}
	return lines
}

// aptLines returns the apt.conf.d content lines for the proxy
func aptLines(url string) []string {
	if url == "" {
		return nil
	}
	return []string{
		fmt.Sprintf(`Acquire::http::Proxy "%s";`, url),
		fmt.Sprintf(`Acquire::https::Proxy "%s";`, url),
	}
}
