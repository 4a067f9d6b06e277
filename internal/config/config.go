// Package config loads the optional YAML configuration file and merges it
// with command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/lintlist/internal/types"
	"gopkg.in/yaml.v3"
)

const (
	// ErrCodeNotFound means an explicitly requested config file is missing.
	ErrCodeNotFound = "config_not_found"
	// ErrCodeInvalid means the config file could not be read or parsed.
	ErrCodeInvalid = "config_invalid"
)

const (
	// DefaultFile is looked up in the working directory when --config is not given.
	DefaultFile = ".lintlist.yaml"
	// DefaultInput is the input file used when neither flag nor config sets one.
	DefaultInput = "lintFileList.txt"
	// DefaultOutput is the output file used when neither flag nor config sets one.
	DefaultOutput = "files.lnt"
)

// Error is a config error carrying a machine-readable code.
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeNotFound:
		return fmt.Sprintf("%s: config file %q not found", e.Code, e.Path)
	case ErrCodeInvalid:
		if e.Err != nil {
			return fmt.Sprintf("%s: config file %q is invalid: %v", e.Code, e.Path, e.Err)
		}
		return fmt.Sprintf("%s: config file %q is invalid", e.Code, e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Code, e.Err)
		}
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code extracts the error code from err, or "" if err is not an *Error.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Flags are the command-line values that can override the file, together with
// whether each was set explicitly.
type Flags struct {
	Input    string
	InputSet bool

	Output    string
	OutputSet bool

	Tree    bool
	TreeSet bool

	Verbose    bool
	VerboseSet bool
}

// Load reads the config file at path. When explicit is false a missing file
// is not an error and yields the zero Config. A relative input path in the
// file is resolved against the file's directory.
func Load(path string, explicit bool) (types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return types.Config{}, &Error{Code: ErrCodeNotFound, Path: path, Err: err}
			}
			return types.Config{}, nil
		}
		return types.Config{}, &Error{Code: ErrCodeInvalid, Path: path, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		return types.Config{}, &Error{Code: ErrCodeInvalid, Path: path, Err: err}
	}

	if cfg.Input != "" && !filepath.IsAbs(cfg.Input) {
		cfg.Input = filepath.Join(filepath.Dir(path), filepath.FromSlash(cfg.Input))
	}
	return cfg, nil
}

// Parse decodes YAML config data. Unknown keys are rejected.
func Parse(data []byte) (types.Config, error) {
	var cfg types.Config
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return types.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Input = strings.TrimSpace(cfg.Input)
	cfg.Output = strings.TrimSpace(cfg.Output)
	return cfg, nil
}

// Merge applies precedence: explicit flag > config file > default.
func Merge(flags Flags, file types.Config) types.Config {
	eff := types.Config{
		Input:   DefaultInput,
		Output:  DefaultOutput,
		Tree:    file.Tree,
		Verbose: file.Verbose,
	}

	if flags.InputSet {
		eff.Input = flags.Input
	} else if file.Input != "" {
		eff.Input = file.Input
	}

	if flags.OutputSet {
		eff.Output = flags.Output
	} else if file.Output != "" {
		eff.Output = file.Output
	}

	if flags.TreeSet {
		eff.Tree = flags.Tree
	}
	if flags.VerboseSet {
		eff.Verbose = flags.Verbose
	}

	return eff
}
