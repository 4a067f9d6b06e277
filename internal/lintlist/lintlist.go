// Package lintlist builds the list of source files handed to the linter.
//
// A Builder reads a lint file list input file, expands its include commands
// into an ordered candidate list, collects the exclusion commands and, on
// Write, emits every candidate that is not excluded. Relative paths in the
// input file, and a relative output path, resolve against the directory that
// holds the input file.
package lintlist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/taigrr/lintlist/internal/commandfile"
	"github.com/taigrr/lintlist/internal/filesystem"
	"github.com/taigrr/lintlist/internal/pathfilter"
	"github.com/taigrr/lintlist/internal/types"
	"github.com/taigrr/lintlist/internal/wrap"
)

const (
	// TimestampLayout is the time layout of the first output line.
	TimestampLayout = "// Generated on 2006-01-02 at 15:04:05"

	commentMarker = "//"
)

// ErrInputNotFound is returned by CheckInput. New itself only marks the
// Builder invalid when the input is missing.
var ErrInputNotFound = errors.New("input file not found")

// CheckInput returns an error wrapping ErrInputNotFound when path does not
// exist.
func CheckInput(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("couldn't find %s: %w", path, ErrInputNotFound)
		}
		return fmt.Errorf("failed to access input file: %s - %w", path, err)
	}
	return nil
}

// Builder holds the candidate list and exclusion sets of one input file.
type Builder struct {
	inputPath   string
	fs          *filesystem.Service
	filter      *pathfilter.PathFilter
	candidates  []string
	exists      bool
	sawCommand  bool
	logger      *slog.Logger
	now         func() time.Time
	description string
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger that receives diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithClock sets the time source for the generated-on line.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithDescription replaces the text written when the input is invalid.
func WithDescription(description string) Option {
	return func(b *Builder) {
		b.description = description
	}
}

// New parses the input file at inputPath. A missing file yields an invalid
// Builder and no error; other read failures are returned.
func New(inputPath string, opts ...Option) (*Builder, error) {
	b := &Builder{
		filter:      pathfilter.New(),
		logger:      slog.New(slog.DiscardHandler),
		now:         time.Now,
		description: Description("dev"),
	}
	for _, opt := range opts {
		opt(b)
	}

	absInput, err := filepath.Abs(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input path: %w", err)
	}
	b.inputPath = absInput
	b.fs = filesystem.New(filepath.Dir(absInput))

	file, err := os.Open(absInput)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.logger.Debug("input file not found", "path", absInput)
			return b, nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("permission denied: %s", inputPath)
		}
		return nil, fmt.Errorf("failed to open input file: %s - %w", inputPath, err)
	}
	defer file.Close()
	b.exists = true

	commands, err := commandfile.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %s - %w", inputPath, err)
	}

	for _, cmd := range commands {
		b.apply(cmd)
	}

	if !b.sawCommand {
		b.logger.Debug("no recognized command in input file", "path", absInput)
		return b, nil
	}

	excludedFiles, excludedDirs := b.filter.Len()
	b.logger.Debug("parsed input file",
		"path", absInput,
		"candidates", len(b.candidates),
		"excluded_files", excludedFiles,
		"excluded_dirs", excludedDirs,
	)
	return b, nil
}

func (b *Builder) apply(cmd types.Command) {
	b.logger.Debug("command", "line", cmd.Line, "kind", cmd.Kind, "arg", cmd.Arg)

	if !cmd.Recognized() {
		b.logger.Warn(cmd.Message)
		return
	}
	b.sawCommand = true

	switch cmd.Kind {
	case types.Include:
		if exp, ok := b.expand(cmd); ok {
			b.candidates = append(b.candidates, exp.Files...)
		}
	case types.ExcludeFile:
		b.filter.ExcludeFile(b.fs.ResolvePath(cmd.Arg))
	case types.ExcludeDir:
		b.filter.ExcludeDir(b.fs.ResolvePath(cmd.Arg))
	case types.ExcludeDirRecursive:
		if exp, ok := b.expand(cmd); ok {
			b.filter.ExcludeFile(exp.Files...)
		}
	}
}

func (b *Builder) expand(cmd types.Command) (types.Expansion, bool) {
	exp, err := b.fs.Expand(cmd.Arg)
	if err != nil {
		b.logger.Warn(fmt.Sprintf("Couldn't find '%s'", cmd.Arg), "line", cmd.Line, "err", err)
		return types.Expansion{}, false
	}
	b.logger.Debug("expanded", "line", cmd.Line, "base", exp.Base, "name", exp.Name, "files", len(exp.Files))
	return exp, true
}

// Valid reports whether the input file exists and held at least one
// recognized command.
func (b *Builder) Valid() bool {
	return b.exists && b.sawCommand
}

// BaseDir returns the directory relative paths resolve against.
func (b *Builder) BaseDir() string {
	return b.fs.BasePath()
}

// InputPath returns the absolute input file path.
func (b *Builder) InputPath() string {
	return b.inputPath
}

// Candidates returns every included file before exclusions are applied.
func (b *Builder) Candidates() []string {
	return b.candidates
}

// Files returns the candidates that survive the exclusions, in discovery
// order. It is empty when the Builder is invalid.
func (b *Builder) Files() []string {
	if !b.Valid() {
		return nil
	}
	return b.filter.FilterPaths(b.candidates)
}

// OutputPath resolves path the way Write does.
func (b *Builder) OutputPath(path string) string {
	return b.fs.ResolvePath(path)
}

// Render writes the output file contents to w: the generated-on line, then
// either the file list or, for an invalid Builder, the wrapped description as
// comments.
func (b *Builder) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, b.now().Format(TimestampLayout))
	if b.Valid() {
		for _, path := range b.Files() {
			fmt.Fprintln(bw, path)
		}
	} else {
		for _, line := range wrap.Lines(b.description, wrap.DefaultLimit) {
			fmt.Fprintln(bw, strings.TrimRight(commentMarker+" "+line, " "))
		}
	}

	return bw.Flush()
}

// Write replaces the file at outputPath with the rendered output.
func (b *Builder) Write(outputPath string) error {
	var buf bytes.Buffer
	if err := b.Render(&buf); err != nil {
		return err
	}
	if err := b.fs.WriteFile(outputPath, &buf); err != nil {
		return err
	}

	b.logger.Debug("wrote output", "path", b.OutputPath(outputPath), "valid", b.Valid(), "files", len(b.Files()))
	return nil
}
