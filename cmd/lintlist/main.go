// Package main implements lintlist, which generates the list of source files
// handed to the static-analysis linter.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/lintlist/internal/config"
	"github.com/taigrr/lintlist/internal/lintlist"
	"github.com/taigrr/lintlist/internal/preview"
	"github.com/taigrr/lintlist/internal/wrap"
)

type options struct {
	input   string
	output  string
	config  string
	dryRun  bool
	tree    bool
	verbose bool
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "lintlist",
		Short: "Generate the file list for the static-analysis linter",
		Long:  wrap.Text(lintlist.Description(version), wrap.DefaultLimit),
		Example: `lintlist
lintlist -i tools/lint/lintFileList.txt -o ../../build/files.lnt
lintlist --dry-run --tree`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", config.DefaultInput, "input file")
	flags.StringVarP(&opts.output, "output", "o", config.DefaultOutput, "output file, relative to the input file's directory")
	flags.StringVarP(&opts.config, "config", "c", config.DefaultFile, "optional YAML config file")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print the output to stdout instead of writing the file")
	flags.BoolVar(&opts.tree, "tree", false, "print a tree of the resolved files to stdout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	flags := cmd.Flags()

	fileCfg, err := config.Load(opts.config, flags.Changed("config"))
	if err != nil {
		return err
	}
	cfg := config.Merge(config.Flags{
		Input:      opts.input,
		InputSet:   flags.Changed("input"),
		Output:     opts.output,
		OutputSet:  flags.Changed("output"),
		Tree:       opts.tree,
		TreeSet:    flags.Changed("tree"),
		Verbose:    opts.verbose,
		VerboseSet: flags.Changed("verbose"),
	}, fileCfg)

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	logger.Debug("configuration", "input", cfg.Input, "output", cfg.Output, "config", opts.config)

	if err := lintlist.CheckInput(cfg.Input); err != nil {
		return err
	}

	builder, err := lintlist.New(cfg.Input,
		lintlist.WithLogger(logger),
		lintlist.WithDescription(lintlist.Description(version)),
	)
	if err != nil {
		return err
	}
	if !builder.Valid() {
		logger.Debug("no recognized command, writing program description", "input", builder.InputPath())
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		if err := builder.Render(out); err != nil {
			return fmt.Errorf("failed to render output: %w", err)
		}
	} else {
		if err := builder.Write(cfg.Output); err != nil {
			return err
		}
	}

	if cfg.Tree && builder.Valid() {
		fmt.Fprint(out, preview.Render(builder.BaseDir(), builder.Files()))
	}

	return nil
}
