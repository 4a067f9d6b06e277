// Package types defines the data structures shared by the lint file list packages.
package types

// Kind identifies the command on a line of the input file.
type Kind int

const (
	// Unknown is any non-empty line whose first character is not a known command.
	Unknown Kind = iota
	// Include recursively adds matching files to the candidate list ('i').
	Include
	// ExcludeFile drops one exact file ('f').
	ExcludeFile
	// ExcludeDir drops files whose parent is the given directory ('d').
	ExcludeDir
	// ExcludeDirRecursive drops matching files at any depth ('r').
	ExcludeDirRecursive
)

var kindNames = map[Kind]string{
	Unknown:             "unknown",
	Include:             "include",
	ExcludeFile:         "exclude-file",
	ExcludeDir:          "exclude-dir",
	ExcludeDirRecursive: "exclude-recursive",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindOf maps a command character to its Kind.
func KindOf(c byte) Kind {
	switch c {
	case 'i':
		return Include
	case 'f':
		return ExcludeFile
	case 'd':
		return ExcludeDir
	case 'r':
		return ExcludeDirRecursive
	default:
		return Unknown
	}
}

type (
	// Command is one decoded, non-empty line of the input file.
	Command struct {
		Kind    Kind   `json:"kind"`
		Arg     string `json:"arg"`               // argument with surrounding whitespace removed
		Line    int    `json:"line"`              // 1-based
		Text    string `json:"text"`              // line after comment stripping and trimming
		Message string `json:"message,omitempty"` // set for Unknown
	}
)

// Recognized reports whether the command is one of i, f, d or r.
func (c Command) Recognized() bool {
	return c.Kind != Unknown
}
