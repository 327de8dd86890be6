package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Daechler/LinuxBinaryInstaller/internal/interfaces/di"
)

var (
	inspectTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12"))

	inspectLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8")).
				Width(9)
)

// InspectFlags holds command-line flags for the inspect command
type InspectFlags struct {
	DesktopFile string
}

// NewInspectCommand creates the inspect command
func NewInspectCommand(container *di.Container) *cobra.Command {
	flags := &InspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Show the launch command inferred for a file",
		Long: `Inspect runs command inference for the given file and prints the
resulting Exec and TryExec values together with a preview of the
descriptor that install would write. Nothing is installed.

Note that inference may set the file's execute bits when no other way
to launch it is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(container, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.DesktopFile, "desktop-file", "", "Existing .desktop file to merge into the preview")

	return cmd
}

// runInspect handles the inspection process
func runInspect(container *di.Container, flags *InspectFlags, path string) error {
	result, err := container.Service.Inspect(path, flags.DesktopFile)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	fmt.Println(inspectTitleStyle.Render("Launch inference"))
	fmt.Println(inspectLabelStyle.Render("Exec") + result.Command.Exec)
	if result.Command.TryExec != "" {
		fmt.Println(inspectLabelStyle.Render("TryExec") + result.Command.TryExec)
	}

	fmt.Println()
	fmt.Println(inspectTitleStyle.Render("Descriptor preview"))
	fmt.Print(result.Content)
	return nil
}
