package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Daechler/LinuxBinaryInstaller/internal/application/services"
	"github.com/Daechler/LinuxBinaryInstaller/internal/interfaces/di"
	"github.com/Daechler/LinuxBinaryInstaller/internal/interfaces/tui"
)

// InstallFlags holds command-line flags for the install command
type InstallFlags struct {
	DesktopFile     string
	Icon            string
	Name            string
	Terminal        bool
	MenuEntry       bool
	DesktopShortcut bool
	DryRun          bool
	Interactive     bool
}

// NewInstallCommand creates the install command
func NewInstallCommand(container *di.Container) *cobra.Command {
	flags := &InstallFlags{}

	cmd := &cobra.Command{
		Use:   "install [binary]",
		Short: "Install a binary, script, or AppImage into the desktop environment",
		Long: `Install generates a .desktop entry for the given file and places it in
the applications menu directory and, optionally, on the Desktop.

The launch command is inferred from the file itself: its shebang line,
its extension, or its execute permission. An existing .desktop file can
be supplied to preserve its descriptive fields and Exec placeholders.

Examples:
  lbi install ~/Downloads/MyTool.AppImage
  lbi install ./run.sh --name "Run Stuff" --terminal
  lbi install ./tool --desktop-file ./tool.desktop --icon ./tool.png
  lbi install --desktop-shortcut ./tool
  lbi install                  # interactive form`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var binary string
			if len(args) > 0 {
				binary = args[0]
			}
			return runInstall(container, cmd, flags, binary)
		},
	}

	cmd.Flags().StringVar(&flags.DesktopFile, "desktop-file", "", "Existing .desktop file to merge launch information into")
	cmd.Flags().StringVar(&flags.Icon, "icon", "", "Icon image recorded in the entry")
	cmd.Flags().StringVar(&flags.Name, "name", "", "Program name for the entry (defaults to the file name)")
	cmd.Flags().BoolVar(&flags.Terminal, "terminal", false, "Run the program in a terminal")
	cmd.Flags().BoolVar(&flags.MenuEntry, "menu", true, "Create an applications menu entry")
	cmd.Flags().BoolVar(&flags.DesktopShortcut, "desktop-shortcut", false, "Create a Desktop shortcut")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Print the descriptor instead of writing it")
	cmd.Flags().BoolVar(&flags.Interactive, "interactive", false, "Fill in the installation details interactively")

	return cmd
}

// runInstall handles the installation process
func runInstall(container *di.Container, cmd *cobra.Command, flags *InstallFlags, binary string) error {
	var plan *services.Plan

	if binary == "" || flags.Interactive {
		formPlan, ok, err := tui.RunForm(binary)
		if err != nil {
			return fmt.Errorf("interactive form failed: %w", err)
		}
		if !ok {
			return nil
		}
		plan = formPlan
		plan.DryRun = flags.DryRun
	} else {
		var terminal *bool
		if cmd.Flags().Changed("terminal") {
			terminal = &flags.Terminal
		}
		plan = &services.Plan{
			BinaryPath:            binary,
			DescriptorPath:        flags.DesktopFile,
			IconPath:              flags.Icon,
			ProgramName:           flags.Name,
			Terminal:              terminal,
			CreateMenuEntry:       flags.MenuEntry,
			CreateDesktopShortcut: flags.DesktopShortcut,
			DryRun:                flags.DryRun,
		}
	}

	result, err := container.Service.Install(plan)
	if err != nil {
		return fmt.Errorf("install failed: %w", err)
	}

	if plan.DryRun {
		fmt.Print(result.Content)
		return nil
	}

	for _, path := range result.WrittenPaths {
		fmt.Printf("✅ Wrote %s\n", path)
	}
	if len(result.WrittenPaths) == 0 {
		fmt.Println("Nothing written: no menu entry or desktop shortcut requested.")
	}
	return nil
}
