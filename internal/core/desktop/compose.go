package desktop

import (
	"path/filepath"
	"strings"

	"github.com/Daechler/LinuxBinaryInstaller/internal/core/shellsplit"
)

const header = "[Desktop Entry]"

// fieldOrder is the fixed serialization order of descriptor keys. Keys
// with no value are omitted from the output entirely.
var fieldOrder = []string{
	"Type",
	"Name",
	"GenericName",
	"Comment",
	"Exec",
	"TryExec",
	"Icon",
	"Terminal",
	"StartupNotify",
	"Categories",
	"Keywords",
	"StartupWMClass",
}

// BuildContent renders a fresh descriptor from caller-supplied values.
// TryExec and Icon lines appear only when their values are non-empty.
func BuildContent(name, execCmd, iconPath string, terminal bool, categories, tryExec string) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Name=" + name + "\n")
	b.WriteString("Exec=" + execCmd + "\n")
	if tryExec != "" {
		b.WriteString("TryExec=" + tryExec + "\n")
	}
	b.WriteString("Terminal=" + boolValue(terminal) + "\n")
	b.WriteString("StartupNotify=true\n")
	b.WriteString("Categories=" + categories + "\n")
	if iconPath != "" {
		b.WriteString("Icon=" + iconPath + "\n")
	}
	return b.String()
}

// BuildFromExisting merges newly inferred launch information into the
// fields of a previously read descriptor:
//
//   - Name falls back to the base filename of the command when the
//     existing descriptor has none.
//   - Placeholder tokens of the existing Exec are appended to the new
//     command so the launcher's field substitution keeps working.
//   - Terminal obeys the override when given, else the existing value.
//   - Icon comes only from the caller; one named by the existing
//     descriptor is never inherited.
//   - Comment, GenericName, Keywords, and StartupWMClass pass through
//     verbatim when present; every other source key is dropped.
func BuildFromExisting(existing Fields, execCmd, tryExec, iconPath string, overrideTerminal *bool) string {
	var out Fields
	out.Type = "Application"

	out.Name = existing.Name
	if out.Name == "" {
		out.Name = filepath.Base(firstToken(execCmd))
	}

	out.Exec = execCmd
	if ph := Placeholders(existing.Exec); len(ph) > 0 {
		out.Exec = execCmd + " " + strings.Join(ph, " ")
	}
	out.TryExec = tryExec

	switch {
	case overrideTerminal != nil:
		out.Terminal = boolValue(*overrideTerminal)
	case strings.EqualFold(existing.Terminal, "true"):
		out.Terminal = "true"
	default:
		out.Terminal = "false"
	}

	out.Icon = iconPath

	out.Comment = existing.Comment
	out.GenericName = existing.GenericName
	out.Keywords = existing.Keywords
	out.StartupWMClass = existing.StartupWMClass

	out.StartupNotify = existing.StartupNotify
	if out.StartupNotify == "" {
		out.StartupNotify = "true"
	}
	out.Categories = existing.Categories
	if out.Categories == "" {
		out.Categories = "Utility;"
	}

	return render(out)
}

func render(f Fields) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	for _, key := range fieldOrder {
		if value := f.get(key); value != "" {
			b.WriteString(key + "=" + value + "\n")
		}
	}
	return b.String()
}

func firstToken(cmd string) string {
	tokens := shellsplit.Split(cmd)
	if len(tokens) == 0 {
		return cmd
	}
	return tokens[0]
}

func boolValue(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
