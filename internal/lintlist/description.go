package lintlist

import "strings"

// Description returns the program description written in place of a file
// list when the input holds no recognized command. It is also the CLI help
// text. Wrapping is left to the caller.
func Description(version string) string {
	return strings.Join([]string{
		"Version: " + version,
		"This program takes an input file and generates an output file that contains a list of source files to lint. " +
			"The input file tells the program which files or directories to include, and also allows files and directories " +
			"to be excluded. Note the following details about the input file:",
		"- All paths in the input file are relative to the directory that holds the input file.",
		"- A '#' character starts a comment; the rest of the line is ignored.",
		"- An 'i' as the first non-white space character on a line followed by a file name adds matching files to the list " +
			"of files to lint. Files are added recursively starting from the base directory given, and the file name can use " +
			"the wild cards * (any run of characters) and ? (a single character). So './*.c' adds all .c files in ./ and all " +
			"of its subdirectories.",
		"- An 'f' as the first non-white space character on a line removes the specified file from the list of files to lint. " +
			"Wild cards are not accepted and the path must be an exact match.",
		"- A 'd' as the first non-white space character on a line removes all the files in the specified directory from the " +
			"list of files to lint. This is not recursive: if ./dir/1.c and ./dir/dir/2.c were added with 'i ./*.c', then " +
			"'d ./dir' removes ./dir/1.c and ./dir/dir/2.c stays in the list.",
		"- An 'r' as the first non-white space character on a line removes all the matching files below the specified " +
			"directory from the list of files to lint. This is recursive: if ./dir/1.c and ./dir/dir/2.c were added with " +
			"'i ./*.c', then 'r ./dir' removes both. The same wild cards as 'i' are accepted, so 'r ./*.c' removes all .c " +
			"files in ./ and all of its subdirectories.",
		"Exclusions are applied after the whole input file has been read, so their position in the file does not matter.",
		"The output file lists the fully qualified path of every file to lint and is meant to be passed to the linter. " +
			"It is regenerated on every run and should not be kept under revision control.",
	}, "\n")
}
