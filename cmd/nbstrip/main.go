// Package main provides the entry point for the nbstrip CLI.
//
// nbstrip removes execution outputs, execution counts, and volatile metadata
// from Jupyter notebooks, either in place or as a stdin/stdout filter.
//
// Usage:
//
//	nbstrip notebook.ipynb [more.ipynb ...]
//	nbstrip --check notebook.ipynb [more.ipynb ...]
//	cat notebook.ipynb | nbstrip
//
// See --help for all available options.
package main

// main is the entry point for nbstrip.
func main() {
	Execute()
}
