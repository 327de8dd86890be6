// Package tui provides the interactive installation form shown when lbi
// install is run without a target path.
package tui

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Daechler/LinuxBinaryInstaller/internal/application/services"
	"github.com/Daechler/LinuxBinaryInstaller/internal/core/desktop"
)

const (
	fieldBinary = iota
	fieldDesktopFile
	fieldName
	fieldIcon
	toggleMenu
	toggleShortcut
	toggleTerminal
	fieldCount
)

var (
	formTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(24)

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// formModel holds the state for the Bubble Tea installation form
type formModel struct {
	values    [4]string
	toggles   [3]bool
	focus     int
	submitted bool
	cancelled bool
	err       string
}

// newFormModel creates a new form model, pre-filling the binary path
// when one was given on the command line.
func newFormModel(binaryPath string) formModel {
	m := formModel{}
	m.values[fieldBinary] = binaryPath
	m.toggles[0] = true // menu entry on by default
	m.refreshAutofill()
	return m
}

// Init implements the Bubble Tea init method
func (m formModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method
func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit

	case "enter":
		if m.focus < fieldCount-1 {
			m.advance(1)
			return m, nil
		}
		if m.values[fieldBinary] == "" {
			m.err = "a binary path is required"
			m.focus = fieldBinary
			return m, nil
		}
		m.submitted = true
		return m, tea.Quit

	case "tab", "down":
		m.advance(1)
		return m, nil

	case "shift+tab", "up":
		m.advance(-1)
		return m, nil

	case " ":
		if m.focus >= toggleMenu {
			m.toggles[m.focus-toggleMenu] = !m.toggles[m.focus-toggleMenu]
			return m, nil
		}
		m.values[m.focus] += " "
		return m, nil

	case "backspace":
		if m.focus < toggleMenu {
			v := m.values[m.focus]
			if v != "" {
				m.values[m.focus] = v[:len(v)-1]
			}
		}
		return m, nil

	default:
		if m.focus < toggleMenu && keyMsg.Type == tea.KeyRunes {
			m.values[m.focus] += string(keyMsg.Runes)
		}
		return m, nil
	}
}

// advance moves the focus, auto-filling dependent fields on the way out
// of the path fields the same way the form's edit boxes do.
func (m *formModel) advance(delta int) {
	m.err = ""
	m.refreshAutofill()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
}

// refreshAutofill derives the program name from the binary path, and the
// name and icon from an existing descriptor, whenever those fields are
// still empty.
func (m *formModel) refreshAutofill() {
	if m.values[fieldName] == "" && m.values[fieldBinary] != "" {
		m.values[fieldName] = desktop.SanitizeName(m.values[fieldBinary])
	}

	dpath := m.values[fieldDesktopFile]
	if dpath == "" {
		return
	}
	if info, err := os.Stat(dpath); err != nil || !info.Mode().IsRegular() {
		return
	}
	fields := desktop.ReadFields(dpath)
	if m.values[fieldName] == "" && fields.Name != "" {
		m.values[fieldName] = desktop.SanitizeName(fields.Name)
	}
	// Only accept icons the descriptor names by absolute, existing path;
	// theme icon names are meaningless to copy around.
	if m.values[fieldIcon] == "" && filepath.IsAbs(fields.Icon) {
		if _, err := os.Stat(fields.Icon); err == nil {
			m.values[fieldIcon] = fields.Icon
		}
	}
}

// View implements the Bubble Tea view method
func (m formModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	labels := [fieldCount]string{
		"Binary file",
		"Desktop file (optional)",
		"Program name",
		"Icon (optional)",
		"Create menu entry",
		"Create Desktop shortcut",
		"Run in terminal",
	}

	lines := []string{formTitleStyle.Render("Install a program"), ""}
	for i := 0; i < fieldCount; i++ {
		var value string
		if i < toggleMenu {
			value = m.values[i]
			if i == m.focus {
				value += "█"
			}
		} else {
			value = "[ ]"
			if m.toggles[i-toggleMenu] {
				value = "[x]"
			}
		}

		label := formLabelStyle.Render(labels[i])
		if i == m.focus {
			label = focusedStyle.Render("> ") + label
		} else {
			label = "  " + label
		}
		lines = append(lines, label+value)
	}

	lines = append(lines, "")
	if m.err != "" {
		lines = append(lines, focusedStyle.Render(m.err))
	}
	lines = append(lines, helpStyle.Render("tab/↓ next · shift+tab/↑ previous · space toggle · enter confirm · esc cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

// RunForm shows the interactive installation form and returns the plan
// the user assembled. ok is false when the form was cancelled.
func RunForm(binaryPath string) (plan *services.Plan, ok bool, err error) {
	program := tea.NewProgram(newFormModel(binaryPath))
	final, err := program.Run()
	if err != nil {
		return nil, false, fmt.Errorf("form failed: %w", err)
	}

	m, isForm := final.(formModel)
	if !isForm || !m.submitted {
		return nil, false, nil
	}

	terminal := m.toggles[toggleTerminal-toggleMenu]
	return &services.Plan{
		BinaryPath:            m.values[fieldBinary],
		DescriptorPath:        m.values[fieldDesktopFile],
		IconPath:              m.values[fieldIcon],
		ProgramName:           m.values[fieldName],
		Terminal:              &terminal,
		CreateMenuEntry:       m.toggles[toggleMenu-toggleMenu],
		CreateDesktopShortcut: m.toggles[toggleShortcut-toggleMenu],
	}, true, nil
}
