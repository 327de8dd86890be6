// Package cli implements the lbi command-line interface.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/Daechler/LinuxBinaryInstaller/internal/interfaces/di"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// NewRootCommand creates the base command when lbi is called without any
// subcommands.
func NewRootCommand(container *di.Container) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lbi",
		Short: "Linux Binary Installer - desktop integration for arbitrary executables",
		Long: `lbi integrates a native binary, script, or AppImage into the desktop
environment. It infers the command line needed to launch the file, merges
that launch information into an existing .desktop entry when one is
provided, and installs the result into the applications menu and onto
the Desktop.`,
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.AddCommand(NewInstallCommand(container))
	rootCmd.AddCommand(NewInspectCommand(container))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute(container *di.Container) {
	if err := NewRootCommand(container).Execute(); err != nil {
		os.Exit(1)
	}
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}
