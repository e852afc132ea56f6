package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/slrgen"
	"github.com/npillmayer/slrgen/lr"
)

// generate reads a grammar from the file given as first argument, or from stdin,
// and runs the generator. If the grammar has conflicts, the result is returned
// together with the conflicts.
func generate(args []string) (*slrgen.Result, error) {
	var in io.Reader = os.Stdin
	name := "stdin"
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("cannot open grammar %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
		name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	opts := append(generatorOptions(), slrgen.Name(name))
	result, err := slrgen.GenerateFrom(in, opts...)
	if result == nil {
		return nil, err
	}
	printWarnings(result)
	return result, err
}

// isConflict is true for errors which still come with complete tables.
func isConflict(err error) bool {
	_, ok := err.(lr.ConflictErrors)
	return ok
}

// output returns the file given by flag -o, or stdout.
func output(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
