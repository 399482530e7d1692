package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

const (
	BIN_NAME = "tracelist"
	VERSION  = "0.2.0"
)

type ParsedArgs struct {
	Root     string
	Quiet    bool
	Verbose  bool
	Progress bool
}

func main() {
	app := newApp()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := app.Run(ctx, os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a run error to the process exit status.
func exitCode(err error) int {
	if errors.Is(err, ErrUsage) {
		return 64
	}
	var te *TraceError
	if errors.As(err, &te) && te.Op == OpWrite {
		return 2
	}
	return 1
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:      BIN_NAME,
		Usage:     "List the logic and logic+style source files of a project for tracing.",
		UsageText: "tracelist [options] [root]",
		Version:   VERSION,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Disable all output except exit code"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"V"}, Usage: "Print a summary of each pass"},
			&cli.BoolFlag{Name: "no-progressbar", Aliases: []string{"P"}, Usage: "Disable the scan spinner"},
			&cli.BoolFlag{Name: "no-color", Aliases: []string{"C"}, Usage: "Disable color output"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			parsedArgs, err := parseArgs(cmd)
			if err != nil {
				return err
			}
			return runTrace(ctx, parsedArgs, cmd.Writer, cmd.ErrWriter)
		},
	}
}

func parseArgs(cmd *cli.Command) (*ParsedArgs, error) {
	args := cmd.Args().Slice()
	if len(args) > 1 {
		return &ParsedArgs{}, fmt.Errorf("%w: expected at most one root directory, got %d", ErrUsage, len(args))
	}

	if cmd.Bool("no-color") {
		color.NoColor = true
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	quiet := cmd.Bool("quiet")
	return &ParsedArgs{
		Root:     root,
		Quiet:    quiet,
		Verbose:  cmd.Bool("verbose") && !quiet,
		Progress: !quiet && !cmd.Bool("no-progressbar"),
	}, nil
}
