package main

import (
	"fmt"
	"io"
	"runtime"
	"sort"
)

const Version = "1.1.0"

// compiledFeatures tracks build-time feature flags via init() registration.
var compiledFeatures []string

func printFeatures(w io.Writer) {
	fmt.Fprintf(w, "onebit %s\n", Version)
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compiled features:")

	sort.Strings(compiledFeatures)
	for _, f := range compiledFeatures {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(compiledFeatures) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Engines: ")
	for i, id := range EngineIDs {
		engine, _ := NewEngine(id)
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "-%c %s", engine.ID(), engine.Name())
	}
	fmt.Fprintln(w)
}
