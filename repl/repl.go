/*
File    : brew/repl/repl.go

Package repl implements the Read-Eval-Print Loop for the brew interpreter,
grounded on the teacher's repl/repl.go: readline for line-editing and
history, fatih/color for banner and error output, one persistent
environment for the whole session so bindings survive across lines.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/brewlang/brew/builtins"
	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/eval"
	"github.com/brewlang/brew/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
)

// Repl holds the cosmetic configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

// New builds a Repl with the given banner, version string, and prompt.
func New(banner, version, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	greenColor.Fprintln(w, r.Banner)
	blueColor.Fprintf(w, "brew %s — type '.exit' to quit\n", r.Version)
}

// Start runs the main loop: read a line, evaluate it against a
// session-long environment, print the result or error, repeat. Exits
// cleanly on '.exit' or EOF (Ctrl-D).
func (r *Repl) Start(_ io.Reader, w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	globals := env.NewGlobal()
	builtins.Install(globals)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "bye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(w, "bye!")
			return
		}
		rl.SaveHistory(line)
		r.evalLine(w, line, globals)
	}
}

func (r *Repl) evalLine(w io.Writer, line string, globals *env.Environment) {
	program, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(w, "%v\n", err)
		return
	}
	if err := eval.Interpret(program, globals); err != nil {
		redColor.Fprintf(w, "%v\n", err)
		return
	}
	yellowColor.Fprintln(w, "ok")
}
