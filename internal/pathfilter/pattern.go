package pathfilter

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// ErrWildcardInDir is returned when '*' or '?' appears before the final
// path element.
var ErrWildcardInDir = errors.New("wildcards are only allowed in the final path element")

// Only '*' and '?' are wildcards; everything else gobwas treats specially is
// made literal.
var literal = strings.NewReplacer(`[`, `\[`, `]`, `\]`, `{`, `\{`, `}`, `\}`, `\`, `\\`)

// Pattern is an expansion argument split into the directory the walk starts
// from and the pattern every file name is matched against.
type Pattern struct {
	Dir  string // host separators; empty means the base directory itself
	Name string
	g    glob.Glob
}

// Normalize converts both '/' and '\' separators to the host separator.
func Normalize(path string) string {
	return filepath.FromSlash(strings.ReplaceAll(path, "\\", "/"))
}

// Compile builds a name matcher where '*' matches any run of characters and
// '?' exactly one.
func Compile(name string) (glob.Glob, error) {
	g, err := glob.Compile(literal.Replace(name))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", name, err)
	}
	return g, nil
}

// Split parses arg into its directory part and final-element pattern.
func Split(arg string) (Pattern, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(arg), "\\", "/")

	var dir, name string
	if idx := strings.LastIndex(normalized, "/"); idx >= 0 {
		dir, name = normalized[:idx], normalized[idx+1:]
		if dir == "" {
			dir = "/"
		}
	} else {
		name = normalized
	}

	if strings.ContainsAny(dir, "*?") {
		return Pattern{}, fmt.Errorf("%q: %w", arg, ErrWildcardInDir)
	}
	if name == "" {
		name = "*"
	}

	g, err := Compile(name)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{Dir: filepath.FromSlash(dir), Name: name, g: g}, nil
}

// All returns a Pattern that matches every file below dir.
func All(dir string) Pattern {
	g, _ := Compile("*")
	return Pattern{Dir: dir, Name: "*", g: g}
}

// Match reports whether a single file name matches the pattern.
func (p Pattern) Match(name string) bool {
	if p.g == nil {
		return false
	}
	return p.g.Match(name)
}
