package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool {
	return &v
}

// TestBuildContent_FreshDescriptor tests the fresh build output
func TestBuildContent_FreshDescriptor(t *testing.T) {
	content := BuildContent("MyTool", "/opt/mytool", "/opt/mytool.png", false, "Utility;", "/opt/mytool")

	assert.Equal(t, `[Desktop Entry]
Type=Application
Name=MyTool
Exec=/opt/mytool
TryExec=/opt/mytool
Terminal=false
StartupNotify=true
Categories=Utility;
Icon=/opt/mytool.png
`, content)
}

// TestBuildContent_OmitsOptionalLines tests TryExec/Icon omission
func TestBuildContent_OmitsOptionalLines(t *testing.T) {
	content := BuildContent("MyTool", "sh /opt/run.sh", "", true, "Development;", "")

	assert.Equal(t, `[Desktop Entry]
Type=Application
Name=MyTool
Exec=sh /opt/run.sh
Terminal=true
StartupNotify=true
Categories=Development;
`, content)
}

// TestBuildFromExisting_AppendsPlaceholders tests the Exec merge rule
func TestBuildFromExisting_AppendsPlaceholders(t *testing.T) {
	existing := Fields{Name: "Old Tool", Exec: "oldcmd %f %U"}

	content := BuildFromExisting(existing, "newcmd /path", "newcmd", "", nil)

	assert.Contains(t, content, "Exec=newcmd /path %f %U\n")
	assert.Contains(t, content, "Name=Old Tool\n")
}

// TestBuildFromExisting_DuplicatePlaceholdersCollapse tests deduplication
func TestBuildFromExisting_DuplicatePlaceholdersCollapse(t *testing.T) {
	existing := Fields{Exec: "oldcmd %f %f"}

	content := BuildFromExisting(existing, "newcmd /path", "", "", nil)

	assert.Contains(t, content, "Exec=newcmd /path %f\n")
}

// TestBuildFromExisting_NameFallsBackToCommand tests the Name rule
func TestBuildFromExisting_NameFallsBackToCommand(t *testing.T) {
	content := BuildFromExisting(Fields{}, "/usr/local/bin/mytool --serve", "", "", nil)

	assert.Contains(t, content, "Name=mytool\n")
}

// TestBuildFromExisting_QuotedCommandName tests Name from a quoted path
func TestBuildFromExisting_QuotedCommandName(t *testing.T) {
	content := BuildFromExisting(Fields{}, `"/tmp/my app"`, "", "", nil)

	assert.Contains(t, content, "Name=my app\n")
}

// TestBuildFromExisting_IconNeverInherited tests the Icon rule
func TestBuildFromExisting_IconNeverInherited(t *testing.T) {
	existing := Fields{Icon: "/old/icon.png"}

	content := BuildFromExisting(existing, "cmd", "", "", nil)
	assert.NotContains(t, content, "Icon=", "an existing icon must not be copied forward")

	content = BuildFromExisting(existing, "cmd", "", "/new/icon.png", nil)
	assert.Contains(t, content, "Icon=/new/icon.png\n")
	assert.NotContains(t, content, "/old/icon.png")
}

// TestBuildFromExisting_TerminalRules tests override and fallback behavior
func TestBuildFromExisting_TerminalRules(t *testing.T) {
	tests := []struct {
		name        string
		existing    string
		override    *bool
		expected    string
		description string
	}{
		{
			name:        "OverrideTrueWins",
			existing:    "false",
			override:    boolPtr(true),
			expected:    "Terminal=true",
			description: "An explicit override beats the existing value",
		},
		{
			name:        "OverrideFalseWins",
			existing:    "true",
			override:    boolPtr(false),
			expected:    "Terminal=false",
			description: "An explicit false override also beats the existing value",
		},
		{
			name:        "ExistingCaseInsensitive",
			existing:    "True",
			override:    nil,
			expected:    "Terminal=true",
			description: "The existing value is compared case-insensitively",
		},
		{
			name:        "AbsentDefaultsFalse",
			existing:    "",
			override:    nil,
			expected:    "Terminal=false",
			description: "No override and no existing value defaults to false",
		},
		{
			name:        "GarbageReadsAsFalse",
			existing:    "maybe",
			override:    nil,
			expected:    "Terminal=false",
			description: "Anything but true reads as false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := BuildFromExisting(Fields{Terminal: tt.existing}, "cmd", "", "", tt.override)
			assert.Contains(t, content, tt.expected+"\n", tt.description)
		})
	}
}

// TestBuildFromExisting_PreservesSafeFields tests the pass-through list
func TestBuildFromExisting_PreservesSafeFields(t *testing.T) {
	existing := Fields{
		Comment:        "Does things",
		GenericName:    "Thing Doer",
		Keywords:       "thing;doer;",
		StartupWMClass: "mytool",
		StartupNotify:  "false",
		Categories:     "Development;",
	}

	content := BuildFromExisting(existing, "cmd", "", "", nil)

	assert.Contains(t, content, "Comment=Does things\n")
	assert.Contains(t, content, "GenericName=Thing Doer\n")
	assert.Contains(t, content, "Keywords=thing;doer;\n")
	assert.Contains(t, content, "StartupWMClass=mytool\n")
	assert.Contains(t, content, "StartupNotify=false\n")
	assert.Contains(t, content, "Categories=Development;\n")
}

// TestBuildFromExisting_Defaults tests StartupNotify and Categories defaults
func TestBuildFromExisting_Defaults(t *testing.T) {
	content := BuildFromExisting(Fields{}, "cmd", "", "", nil)

	assert.Contains(t, content, "StartupNotify=true\n")
	assert.Contains(t, content, "Categories=Utility;\n")
}

// TestBuildFromExisting_FixedOutputOrder tests serialization order
func TestBuildFromExisting_FixedOutputOrder(t *testing.T) {
	existing := Fields{
		Name:        "Tool",
		GenericName: "Generic",
		Comment:     "A comment",
		Exec:        "old %f",
		Keywords:    "a;b;",
	}

	content := BuildFromExisting(existing, "newcmd", "newcmd", "/icon.png", boolPtr(true))

	assert.Equal(t, `[Desktop Entry]
Type=Application
Name=Tool
GenericName=Generic
Comment=A comment
Exec=newcmd %f
TryExec=newcmd
Icon=/icon.png
Terminal=true
StartupNotify=true
Categories=Utility;
Keywords=a;b;
`, content)
}

// TestCompose_RoundTripIsIdempotent re-composes from a written descriptor
func TestCompose_RoundTripIsIdempotent(t *testing.T) {
	existing := Fields{
		Name:     "Tool",
		Exec:     "oldcmd %f %U",
		Comment:  "Stays around",
		Terminal: "true",
	}

	first := BuildFromExisting(existing, "newcmd /path", "newcmd", "", nil)

	path := writeDescriptor(t, first)
	reread := ReadFields(path)
	second := BuildFromExisting(reread, "newcmd /path", "newcmd", "", nil)

	assert.Equal(t, first, second)
}
