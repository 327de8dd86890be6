package execline

import "strings"

// interpreters maps a lowercase filename extension to the interpreter
// argv used to run scripts of that kind. Extend by adding entries here,
// not by special-casing call sites.
var interpreters = map[string][]string{
	".py":   {"python3"},
	".py3":  {"python3"},
	".pyw":  {"python3"},
	".sh":   {"bash"},
	".bash": {"bash"},
	".zsh":  {"zsh"},
}

// InterpreterForExtension returns the interpreter argv for a script
// extension like ".py" (case-insensitive, leading dot included), or nil
// when the extension is not recognized.
func InterpreterForExtension(ext string) []string {
	argv, ok := interpreters[strings.ToLower(ext)]
	if !ok {
		return nil
	}
	return append([]string(nil), argv...)
}
