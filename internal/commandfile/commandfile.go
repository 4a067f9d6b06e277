// Package commandfile decodes the line-oriented lint file list input format.
//
// Each line holds at most one command. Everything from the first '#' is a
// comment, surrounding whitespace is ignored and empty lines are skipped. The
// first remaining character selects the command and the rest of the line,
// trimmed, is its argument:
//
//	i <pattern>   include matching files, recursively
//	f <path>      exclude one file
//	d <dir>       exclude the files directly inside dir
//	r <pattern>   exclude matching files, recursively
package commandfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/taigrr/lintlist/internal/types"
)

const maxLineSize = 1 << 20

// DecodeLine decodes a single line. ok is false for blank and comment-only
// lines. Unrecognized commands decode to types.Unknown with Message set.
func DecodeLine(line string, number int) (cmd types.Command, ok bool) {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return types.Command{}, false
	}

	cmd = types.Command{
		Kind: types.KindOf(line[0]),
		Arg:  strings.TrimSpace(line[1:]),
		Line: number,
		Text: line,
	}
	if cmd.Kind == types.Unknown {
		cmd.Message = fmt.Sprintf("Warning line %d: ignoring non-empty line '%s'", number, line)
	}
	return cmd, true
}

// Parse decodes every non-empty line of r.
func Parse(r io.Reader) ([]types.Command, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var commands []types.Command
	number := 0
	for scanner.Scan() {
		number++
		if cmd, ok := DecodeLine(scanner.Text(), number); ok {
			commands = append(commands, cmd)
		}
	}
	if err := scanner.Err(); err != nil {
		return commands, fmt.Errorf("failed to read line %d: %w", number+1, err)
	}
	return commands, nil
}
