package desktop

import (
	"strings"

	"github.com/Daechler/LinuxBinaryInstaller/internal/core/shellsplit"
)

// Placeholders extracts the percent-sign tokens of an existing Exec value
// in order of first appearance, without duplicates. These are the
// launcher environment's field codes (%f, %U, ...) which a merge must
// carry forward onto the new command line.
func Placeholders(existingExec string) []string {
	if existingExec == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	for _, tok := range shellsplit.Split(existingExec) {
		if !strings.Contains(tok, "%") || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}
