// Package driver orchestrates lint runs: file loading, tokenizing, format
// operation discovery, check execution, caching, and parallel directory
// walks.
package driver

import (
	"modlint/internal/diag"
	"modlint/internal/lexer"
	"modlint/internal/lint"
	"modlint/internal/parser"
	"modlint/internal/source"
)

// Options configures one lint run.
type Options struct {
	MaxDiagnostics int
	// Jobs caps parallel workers for directory runs; 0 means GOMAXPROCS.
	Jobs   int
	Checks []lint.Check
	// Cache, when non-nil, short-circuits unchanged files.
	Cache *DiskCache
	// ConfigHash participates in cache keys.
	ConfigHash string
}

// CheckFile runs every configured check over one loaded file, appending
// findings to bag.
//
// Lexical problems are deliberately not surfaced: a file our tokenizer
// cannot fully read yields fewer format operations, never diagnostics.
func CheckFile(file *source.File, checks []lint.Check, bag *diag.Bag) {
	lx := lexer.New(file, lexer.Options{})
	toks := lx.Tokens()

	ops := parser.FindFormatOps(toks)
	if len(ops) == 0 {
		return
	}

	reporter := diag.BagReporter{Bag: bag}
	for _, op := range ops {
		for _, check := range checks {
			check.Run(lint.Context{File: file, Op: op, Reporter: reporter})
		}
	}
}

// CheckPath lints a single file from disk.
func CheckPath(path string, opts Options) (*source.FileSet, *diag.Bag, error) {
	fileSet := source.NewFileSet()
	bag := diag.NewBag(opts.MaxDiagnostics)

	fileID, err := fileSet.Load(path)
	if err != nil {
		return fileSet, bag, err
	}
	file := fileSet.Get(fileID)

	if opts.Cache != nil {
		if cached, ok := opts.Cache.Lookup(file, opts.ConfigHash); ok {
			for _, d := range cached {
				bag.Add(d)
			}
			bag.Sort()
			return fileSet, bag, nil
		}
	}

	CheckFile(file, opts.Checks, bag)
	bag.Sort()

	if opts.Cache != nil {
		opts.Cache.Store(file, opts.ConfigHash, bag.Items())
	}
	return fileSet, bag, nil
}
