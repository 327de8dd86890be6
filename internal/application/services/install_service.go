// Package services orchestrates command inference, descriptor
// composition, and descriptor installation on behalf of the interfaces
// layer.
package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Daechler/LinuxBinaryInstaller/internal/core/desktop"
	"github.com/Daechler/LinuxBinaryInstaller/internal/core/execline"
	"github.com/Daechler/LinuxBinaryInstaller/internal/infrastructure/config"
	"github.com/Daechler/LinuxBinaryInstaller/internal/infrastructure/install"
)

// Plan describes a requested installation.
type Plan struct {
	// BinaryPath is the artifact to integrate. Required.
	BinaryPath string
	// DescriptorPath is an existing .desktop file whose safe fields are
	// merged into the generated entry. Optional.
	DescriptorPath string
	// IconPath is recorded verbatim as the entry's Icon. Optional.
	IconPath string
	// ProgramName names the entry and its file. Defaults to the
	// sanitized binary filename.
	ProgramName string
	// Terminal overrides the entry's Terminal value when non-nil.
	// When nil a merge keeps the existing value and a fresh build
	// defaults to false.
	Terminal *bool

	CreateMenuEntry       bool
	CreateDesktopShortcut bool
	// DryRun composes the descriptor without writing anything.
	DryRun bool
}

// Result reports what an installation produced.
type Result struct {
	Command      execline.Command
	Content      string
	WrittenPaths []string
}

// InstallService validates installation plans and carries them out.
type InstallService struct {
	cfg    config.Config
	writer *install.Writer
	logger *log.Logger
}

// NewInstallService creates a new InstallService.
func NewInstallService(cfg config.Config, writer *install.Writer, logger *log.Logger) *InstallService {
	return &InstallService{
		cfg:    cfg,
		writer: writer,
		logger: logger,
	}
}

// Validate checks the plan's inputs before any inference runs. The core
// probes tolerate missing files; user-supplied paths do not get that
// leniency. Validate also normalizes the program name in place.
func (s *InstallService) Validate(plan *Plan) error {
	if plan.BinaryPath == "" {
		return fmt.Errorf("no binary selected")
	}
	if err := requireRegularFile(plan.BinaryPath, "binary"); err != nil {
		return err
	}
	if plan.DescriptorPath != "" {
		if err := requireRegularFile(plan.DescriptorPath, "desktop file"); err != nil {
			return err
		}
	}
	if plan.IconPath != "" {
		if err := requireRegularFile(plan.IconPath, "icon"); err != nil {
			return err
		}
	}

	name := plan.ProgramName
	if name == "" {
		name = plan.BinaryPath
	}
	plan.ProgramName = desktop.SanitizeName(name)
	return nil
}

// Install validates the plan, infers the launch command, composes the
// descriptor, and writes it to the configured locations. A supplied
// descriptor file is always installed into the applications directory,
// even when no menu entry was requested.
func (s *InstallService) Install(plan *Plan) (*Result, error) {
	if err := s.Validate(plan); err != nil {
		return nil, err
	}

	cmd := execline.Infer(plan.BinaryPath)

	// AppImages must carry the execute bit to launch directly. Failure
	// here is logged, not fatal: the entry still points at the file.
	if strings.EqualFold(filepath.Ext(plan.BinaryPath), execline.AppImageExt) && !execline.IsExecutable(plan.BinaryPath) {
		if err := execline.MakeExecutable(plan.BinaryPath); err != nil {
			s.logger.Printf("could not set execute bits on %s: %v", plan.BinaryPath, err)
		}
	}

	res := &Result{
		Command: cmd,
		Content: s.compose(plan, cmd),
	}
	if plan.DryRun {
		return res, nil
	}

	if plan.CreateMenuEntry || plan.DescriptorPath != "" {
		path, err := s.writeEntry(s.cfg.ApplicationsDir, plan.ProgramName, res.Content, 0o644)
		if err != nil {
			return nil, fmt.Errorf("menu entry: %w", err)
		}
		res.WrittenPaths = append(res.WrittenPaths, path)
	}

	if plan.CreateDesktopShortcut {
		// Desktop launchers want the entry itself executable.
		path, err := s.writeEntry(s.cfg.DesktopDir, plan.ProgramName, res.Content, 0o755)
		if err != nil {
			return nil, fmt.Errorf("desktop shortcut: %w", err)
		}
		res.WrittenPaths = append(res.WrittenPaths, path)
	}

	return res, nil
}

// Inspect runs inference and composition for path without installing
// anything. Inference step 4 may still set the target's execute bits.
func (s *InstallService) Inspect(binaryPath, descriptorPath string) (*Result, error) {
	plan := &Plan{
		BinaryPath:     binaryPath,
		DescriptorPath: descriptorPath,
	}
	if err := s.Validate(plan); err != nil {
		return nil, err
	}

	cmd := execline.Infer(plan.BinaryPath)
	return &Result{
		Command: cmd,
		Content: s.compose(plan, cmd),
	}, nil
}

func (s *InstallService) compose(plan *Plan, cmd execline.Command) string {
	if plan.DescriptorPath != "" {
		fields := desktop.ReadFields(plan.DescriptorPath)
		return desktop.BuildFromExisting(fields, cmd.Exec, cmd.TryExec, plan.IconPath, plan.Terminal)
	}
	terminal := plan.Terminal != nil && *plan.Terminal
	return desktop.BuildContent(plan.ProgramName, cmd.Exec, plan.IconPath, terminal, "Utility;", cmd.TryExec)
}

func (s *InstallService) writeEntry(dir, name, content string, mode os.FileMode) (string, error) {
	if err := s.writer.EnsureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name+".desktop")
	if err := s.writer.WriteFile(path, content, mode); err != nil {
		return "", err
	}
	return path, nil
}

func requireRegularFile(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s path %s does not exist", what, path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s path %s is not a regular file", what, path)
	}
	return nil
}
