package shellsplit

import (
	"strings"
	"unicode"

	"github.com/google/shlex"
)

// Split tokenizes a command-like string using POSIX shell quoting and
// escaping rules. Malformed input (unbalanced quotes) degrades to plain
// whitespace splitting so callers never have to handle a tokenizer
// failure.
func Split(s string) []string {
	tokens, err := shlex.Split(s)
	if err != nil {
		return strings.Fields(s)
	}
	return tokens
}

// QuoteIfNeeded wraps path in double quotes when it contains whitespace
// and returns it unchanged otherwise. Embedded quote characters are not
// escaped; descriptor Exec values written by earlier releases depend on
// this exact behavior.
func QuoteIfNeeded(path string) string {
	if path == "" {
		return path
	}
	if strings.IndexFunc(path, unicode.IsSpace) >= 0 {
		return `"` + path + `"`
	}
	return path
}
