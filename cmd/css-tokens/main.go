// Command css-tokens extracts design tokens from stylesheets.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"bennypowers.dev/csstokens/internal/log"
	"bennypowers.dev/csstokens/internal/parser/css"
	"bennypowers.dev/csstokens/internal/parser/html"
	"bennypowers.dev/csstokens/internal/parser/js"
)

const usage = `css-tokens - extract design tokens from CSS custom properties

Usage: css-tokens <command> [options] [inputs...]

Commands:
  extract   Write the tokens as JSON
  stats     Print token statistics
  cycles    Print circular var() references (exit status 1 when found)
  palette   Print the color tokens with normalised hex values
  serve     Run the MCP server on stdio
  version   Print version information

Inputs are CSS, HTML or JavaScript/TypeScript files, directories or globs,
analysed as one stylesheet. With no inputs, or "-", the stylesheet is read
from stdin. Options go before the inputs.

Run "css-tokens <command> -h" for the options of a command.
`

// errUsage marks command line mistakes, reported with exit status 2
var errUsage = errors.New("usage error")

// errCyclesFound makes cycles exit with status 1 after printing
var errCyclesFound = errors.New("circular references found")

type command func(args []string, env *environment) error

var commands = map[string]command{
	"extract": runExtract,
	"stats":   runStats,
	"cycles":  runCycles,
	"palette": runPalette,
	"serve":   runServe,
	"version": runVersion,
}

// environment holds the process streams so commands can be tested
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	code := run(os.Args[1:], &environment{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})

	css.ClosePool()
	html.ClosePool()
	js.ClosePool()

	os.Exit(code)
}

// run executes a command line and returns the exit status
func run(args []string, env *environment) int {
	log.SetOutput(env.stderr)

	if len(args) == 0 {
		fmt.Fprint(env.stderr, usage)
		return 2
	}

	name := args[0]
	switch name {
	case "help", "-h", "-help", "--help":
		fmt.Fprint(env.stdout, usage)
		return 0
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(env.stderr, "unknown command %q\n\n%s", name, usage)
		return 2
	}

	err := cmd(args[1:], env)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	case errors.Is(err, errCyclesFound):
		return 1
	default:
		log.Error("%v", err)
		return 1
	}
}
