// Package execline infers the command line needed to launch an arbitrary
// executable artifact: a native binary, a script, or an AppImage bundle.
package execline

// Command is the launch information inferred for a target artifact.
// Exec is a ready-to-use command line and is never empty. TryExec names a
// single program a launcher environment can probe for before invoking
// Exec; an empty TryExec means no probe is applicable.
type Command struct {
	Exec    string
	TryExec string
}
