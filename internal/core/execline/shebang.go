package execline

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Daechler/LinuxBinaryInstaller/internal/core/shellsplit"
)

// shebangReadLimit bounds how much of the target file the probe reads.
const shebangReadLimit = 256

// shebangOutcome distinguishes probe results internally. Callers of
// ShebangTokens only see tokens-or-nil, but keeping the outcomes separate
// makes the probe testable without conflating "no marker" with "no file".
type shebangOutcome int

const (
	shebangFound shebangOutcome = iota
	// shebangMissing: the file is readable but carries no #! marker, or
	// the interpreter line is empty.
	shebangMissing
	// shebangUnreadable: the file could not be opened or read.
	shebangUnreadable
)

// ShebangTokens returns the interpreter tokens from the #! line of the
// file at path, or nil when the file has none or cannot be read. This is
// a probe over an artifact the caller does not control; failures are not
// errors.
func ShebangTokens(path string) []string {
	tokens, outcome := readShebang(path)
	if outcome != shebangFound {
		return nil
	}
	return tokens
}

func readShebang(path string) ([]string, shebangOutcome) {
	f, err := os.Open(path)
	if err != nil {
		return nil, shebangUnreadable
	}
	defer f.Close()

	buf := make([]byte, shebangReadLimit)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, shebangUnreadable
	}

	head := buf[:n]
	if len(head) < 2 || head[0] != '#' || head[1] != '!' {
		return nil, shebangMissing
	}

	line := head[2:]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	text := strings.TrimSpace(dropInvalidUTF8(line))
	if text == "" {
		return nil, shebangMissing
	}

	tokens := shellsplit.Split(text)
	if len(tokens) == 0 {
		return nil, shebangMissing
	}
	return tokens, shebangFound
}

// dropInvalidUTF8 decodes b best-effort, discarding bytes that do not form
// valid UTF-8. A binary file that happens to start with #! must not
// poison the token stream.
func dropInvalidUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r != utf8.RuneError || size > 1 {
			sb.WriteRune(r)
		}
		b = b[size:]
	}
	return sb.String()
}
