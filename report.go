package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/docker/go-units"
	"github.com/fatih/color"
)

const (
	OUTPUT_DIR         = "trace"
	LOGIC_OUTPUT       = "logic_files.txt"
	LOGIC_STYLE_OUTPUT = "logic_style_files.txt"
)

// lineSep is the host's native line terminator.
func lineSep() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// pass is one collection run and the list file it produces.
type pass struct {
	label    string
	prefixes []string
	output   string
}

func tracePasses() []pass {
	return []pass{
		{label: "Logic", prefixes: logicDirs, output: LOGIC_OUTPUT},
		{label: "Logic+Style", prefixes: combinedDirs(), output: LOGIC_STYLE_OUTPUT},
	}
}

// runTrace collects both file lists under args.Root and writes them to the
// trace directory. A failed pass leaves earlier outputs in place.
func runTrace(ctx context.Context, args *ParsedArgs, stdout, stderr io.Writer) error {
	root, err := filepath.Abs(args.Root)
	if err != nil {
		return newTraceError(OpScan, args.Root, err)
	}

	// checked before the output directory is created, which would
	// otherwise create the root as well
	if err := checkRoot(root); err != nil {
		return err
	}

	outDir := filepath.Join(root, OUTPUT_DIR)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return newTraceError(OpWrite, outDir, err)
	}

	collector, err := NewCollector(defaultRules())
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan).FprintfFunc()
	green := color.New(color.FgGreen).FprintfFunc()

	var saved []string
	for _, p := range tracePasses() {
		if err := ctx.Err(); err != nil {
			return err
		}

		var spinner *scanSpinner
		if args.Progress {
			spinner = newScanSpinner(stderr, fmt.Sprintf("Scanning %s files", p.label))
		}
		collector.OnDir = spinner.dir
		paths, err := collector.CollectDir(root, p.prefixes)
		spinner.done()
		if err != nil {
			return fmt.Errorf("%s pass failed: %w", p.label, err)
		}

		outPath := filepath.Join(outDir, p.output)
		n, err := writeList(outPath, paths)
		if err != nil {
			return fmt.Errorf("%s pass failed: %w", p.label, err)
		}
		if args.Verbose {
			cyan(stderr, "%s: %d files, %s written\n", p.label, len(paths), units.HumanSize(float64(n)))
		}
		saved = append(saved, fmt.Sprintf("%s file list saved to: %s", p.label, outPath))
	}

	if !args.Quiet {
		for _, line := range saved {
			green(stdout, "%s\n", line)
		}
	}
	return nil
}

// writeList replaces the file at path with one entry per line and returns
// the number of bytes written.
func writeList(path string, paths []string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, newTraceError(OpWrite, path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	sep := lineSep()
	var n int64
	for _, p := range paths {
		m, err := w.WriteString(p + sep)
		n += int64(m)
		if err != nil {
			return n, newTraceError(OpWrite, path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return n, newTraceError(OpWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return n, newTraceError(OpWrite, path, err)
	}
	return n, nil
}
