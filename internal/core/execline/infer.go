package execline

import (
	"path/filepath"
	"strings"

	"github.com/Daechler/LinuxBinaryInstaller/internal/core/shellsplit"
)

// AppImageExt is the filename extension of AppImage bundles, which are
// treated as directly executable.
const AppImageExt = ".appimage"

// Infer determines the command line needed to launch the artifact at
// path. The decision order, first match wins:
//
//  1. a shebang line names the interpreter
//  2. a known script extension maps to an interpreter
//  3. the file is an AppImage or already executable: run it directly
//  4. setting the execute bits succeeds: run it directly
//  5. run the file with sh
//
// Step 5 is unconditional, so Infer always yields a usable command and
// never fails. Note that step 4 may modify the target's permission bits.
func Infer(path string) Command {
	if tokens := ShebangTokens(path); len(tokens) > 0 {
		return interpreterCommand(tokens, path)
	}

	ext := filepath.Ext(path)
	if argv := InterpreterForExtension(ext); argv != nil {
		return interpreterCommand(argv, path)
	}

	if strings.EqualFold(ext, AppImageExt) || IsExecutable(path) {
		return directCommand(path)
	}

	if err := MakeExecutable(path); err == nil && IsExecutable(path) {
		return directCommand(path)
	}

	return Command{Exec: "sh " + shellsplit.QuoteIfNeeded(path), TryExec: "sh"}
}

func interpreterCommand(argv []string, path string) Command {
	parts := append(append([]string(nil), argv...), shellsplit.QuoteIfNeeded(path))
	return Command{Exec: strings.Join(parts, " "), TryExec: argv[0]}
}

func directCommand(path string) Command {
	return Command{Exec: shellsplit.QuoteIfNeeded(path), TryExec: path}
}
