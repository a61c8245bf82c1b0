/*
File    : brew/cmd/brew/main.go

Package main is the entry point for the brew interpreter. It provides two
modes of operation:
 1. REPL mode (default): an interactive read-eval-print loop.
 2. File mode: execute a brew source file given on the command line.

spec.md §1 places the CLI out of scope for the core; this is the minimal
host grounded on the teacher's main/main.go and repl/repl.go so the core
has somewhere real to run.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/brewlang/brew/builtins"
	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/eval"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/parser"
	"github.com/brewlang/brew/repl"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

const (
	version = "v0.1.0"
	prompt  = "brew >>> "
	banner  = `
  ┌─┐┬─┐┌─┐┬ ┬
  ├┴┐├┬┘├┤ │││
  └─┘┴└─└─┘└┴┘
`
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			cyanColor.Printf("brew %s\n", version)
			return
		default:
			runFile(os.Args[1])
			return
		}
	}
	repl.New(banner, version, prompt).Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("brew - a small curly-brace scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  brew                 Start the interactive REPL")
	yellowColor.Println("  brew <path>          Execute a brew source file")
	yellowColor.Println("  brew --version       Print the interpreter version")
	yellowColor.Println("  brew --help          Print this message")
}

// runFile implements spec.md §1's CLI description literally: read a path,
// hand source text to the core, map core errors to a process exit code.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "brew: could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	program, err := parser.Parse(string(source))
	if err != nil {
		redColor.Fprintf(os.Stderr, "brew: %v\n", err)
		os.Exit(exitCodeFor(err))
	}

	globals := env.NewGlobal()
	builtins.Install(globals)
	if err := eval.Interpret(program, globals); err != nil {
		redColor.Fprintf(os.Stderr, "brew: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps spec.md §6.4's three embedder-facing error kinds to
// distinct process exit codes, so a calling script can distinguish a
// syntax mistake from a failed run without scraping stderr text.
func exitCodeFor(err error) int {
	switch err.(type) {
	case *interperr.LexError:
		return 2
	case *interperr.ParseError:
		return 3
	case *interperr.RuntimeError:
		return 4
	default:
		return 1
	}
}
