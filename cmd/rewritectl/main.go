// Command rewritectl is the command-line front end for the hierarchy
// engine: load a hierarchy document, query matches, apply a rewrite,
// and export the result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
