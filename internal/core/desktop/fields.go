// Package desktop reads, merges, and renders the flat key/value body of
// [Desktop Entry] descriptor files.
package desktop

import (
	"bufio"
	"bytes"
	"os"
	"strings"
)

// Fields holds the recognized keys of a desktop entry descriptor. The key
// set is closed: anything else found in a source file is dropped on read
// and never carried into a merge.
type Fields struct {
	Type           string
	Name           string
	GenericName    string
	Comment        string
	Exec           string
	TryExec        string
	Icon           string
	Terminal       string
	StartupNotify  string
	Categories     string
	Keywords       string
	StartupWMClass string
}

// ReadFields parses the descriptor at path. Blank lines and #-comments
// are skipped; each remaining line containing = is split on the first =
// with both sides trimmed; later duplicate keys overwrite earlier ones.
// Any read failure yields zero-value Fields: an unreadable descriptor is
// treated the same as an absent one.
func ReadFields(path string) Fields {
	var f Fields
	data, err := os.ReadFile(path)
	if err != nil {
		return f
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		f.set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return f
}

func (f *Fields) set(key, value string) {
	switch key {
	case "Type":
		f.Type = value
	case "Name":
		f.Name = value
	case "GenericName":
		f.GenericName = value
	case "Comment":
		f.Comment = value
	case "Exec":
		f.Exec = value
	case "TryExec":
		f.TryExec = value
	case "Icon":
		f.Icon = value
	case "Terminal":
		f.Terminal = value
	case "StartupNotify":
		f.StartupNotify = value
	case "Categories":
		f.Categories = value
	case "Keywords":
		f.Keywords = value
	case "StartupWMClass":
		f.StartupWMClass = value
	}
}

func (f Fields) get(key string) string {
	switch key {
	case "Type":
		return f.Type
	case "Name":
		return f.Name
	case "GenericName":
		return f.GenericName
	case "Comment":
		return f.Comment
	case "Exec":
		return f.Exec
	case "TryExec":
		return f.TryExec
	case "Icon":
		return f.Icon
	case "Terminal":
		return f.Terminal
	case "StartupNotify":
		return f.StartupNotify
	case "Categories":
		return f.Categories
	case "Keywords":
		return f.Keywords
	case "StartupWMClass":
		return f.StartupWMClass
	}
	return ""
}
