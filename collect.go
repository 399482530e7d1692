package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Rules is the fixed filter configuration shared by every pass.
type Rules struct {
	IgnoreDirs  map[string]bool // directory names pruned at any depth
	IgnoreFiles map[string]bool // exact file names never selected
	Patterns    []string        // file name globs, at least one must match
}

type Collector struct {
	rules Rules
	globs []glob.Glob

	// OnDir, if set, is called with the relative path of every directory
	// the walk enters.
	OnDir func(rel string)
}

func NewCollector(rules Rules) (*Collector, error) {
	globs, err := compileGlobs(rules.Patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return &Collector{rules: rules, globs: globs}, nil
}

// Collect walks fsys and returns the slash-separated paths of the files that
// live in a directory whose relative path starts with one of prefixes.
// The match is a plain string prefix: "src/ai" also admits "src/ai-legacy".
// Results are in walk order; the first error aborts the walk.
func (c *Collector) Collect(fsys fs.FS, prefixes []string) ([]string, error) {
	matches := []string{}
	if len(prefixes) == 0 || len(c.globs) == 0 {
		return matches, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return newTraceError(OpScan, p, err)
		}

		if d.IsDir() {
			if p != "." && c.rules.IgnoreDirs[d.Name()] {
				return fs.SkipDir
			}
			if c.OnDir != nil {
				c.OnDir(p)
			}
			return nil
		}

		if !hasAnyPrefix(path.Dir(p), prefixes) {
			return nil
		}
		name := d.Name()
		if c.rules.IgnoreFiles[name] {
			return nil
		}
		for _, g := range c.globs {
			if g.Match(name) {
				matches = append(matches, p)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// CollectDir runs Collect on the directory tree at root and joins every
// result onto root.
func (c *Collector) CollectDir(root string, prefixes []string) ([]string, error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	rels, err := c.Collect(os.DirFS(root), prefixes)
	if err != nil {
		var te *TraceError
		if errors.As(err, &te) {
			te.Path = filepath.Join(root, filepath.FromSlash(te.Path))
		}
		return nil, err
	}

	paths := make([]string, len(rels))
	for i, rel := range rels {
		paths[i] = filepath.Join(root, filepath.FromSlash(rel))
	}
	return paths, nil
}

// checkRoot fails unless root is an existing directory.
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return newTraceError(OpScan, root, err)
	}
	if !info.IsDir() {
		return newTraceError(OpScan, root, errors.New("not a directory"))
	}
	return nil
}

func hasAnyPrefix(dir string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(dir, p) {
			return true
		}
	}
	return false
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	var globs []glob.Glob
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}
		globs = append(globs, g)
	}
	return globs, nil
}
