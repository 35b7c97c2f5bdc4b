package env

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RequestPrefixes are the variable name prefixes a CGI server uses for request data.
var RequestPrefixes = []string{"HTTP_", "REQUEST_"}

// ErrMalformedEntry is returned when an environment entry has no KEY=VALUE separator.
var ErrMalformedEntry = errors.New("malformed environment entry")

// Entry is a single environment variable kept by Filter.
type Entry struct {
	Key   string
	Value string
}

// Collect returns a snapshot of the process environment.
func Collect() (map[string]string, error) {
	return ParseEnviron(os.Environ())
}

// ParseEnviron turns "key=value" strings, as returned by os.Environ, into a map.
// The split happens on the first '=' after the first byte, so Windows entries
// like "=C:=C:\dir" keep their leading '=' in the key.
func ParseEnviron(environ []string) (map[string]string, error) {
	vars := make(map[string]string, len(environ))
	for _, e := range environ {
		i := -1
		if len(e) > 0 {
			i = strings.IndexByte(e[1:], '=')
		}
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEntry, e)
		}
		vars[e[:i+1]] = e[i+2:]
	}
	return vars, nil
}

// Filter returns the entries whose key starts with one of prefixes, sorted by key.
// RequestPrefixes is used when no prefixes are given.
func Filter(vars map[string]string, prefixes ...string) []Entry {
	if len(prefixes) == 0 {
		prefixes = RequestPrefixes
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		if hasAnyPrefix(k, prefixes) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Value: vars[k]})
	}
	return entries
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// DisplayEnvVars prints entries as a plain text table.
func DisplayEnvVars(w io.Writer, entries []Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Request Environment")
	t.AppendHeader(table.Row{"Name", "Value"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Key, e.Value})
	}
	t.AppendFooter(table.Row{"Total", len(entries)})
	t.Render()
}
