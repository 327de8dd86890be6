package desktop

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SanitizeName derives a filesystem- and menu-safe program name from a
// path or display name. The directory and extension are dropped, path
// separators and spaces become dashes, anything else outside letters,
// digits, and -_. is removed. A name that sanitizes to nothing becomes
// "app".
func SanitizeName(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		case r == ' ' || r == '/' || r == '\\':
			b.WriteByte('-')
		}
	}

	s := strings.Trim(b.String(), "-._")
	if s == "" {
		return "app"
	}
	return s
}
