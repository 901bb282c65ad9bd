package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"bennypowers.dev/csstokens/internal/color"
	"bennypowers.dev/csstokens/internal/extractor"
	"bennypowers.dev/csstokens/internal/log"
	"bennypowers.dev/csstokens/internal/mcp"
	"bennypowers.dev/csstokens/internal/version"
)

// analysis is the shared setup of the analysing commands
type analysis struct {
	extractor *extractor.Extractor
	css       string
}

func prepare(fs *flag.FlagSet, cf *commonFlags, args []string, env *environment) (*analysis, error) {
	if err := cf.parse(fs, args); err != nil {
		return nil, err
	}
	opts, err := cf.options()
	if err != nil {
		return nil, err
	}
	e, err := extractor.New(opts)
	if err != nil {
		return nil, err
	}
	css, err := cf.stylesheet(fs.Args(), env.stdin)
	if err != nil {
		return nil, err
	}
	return &analysis{extractor: e, css: css}, nil
}

func runExtract(args []string, env *environment) error {
	fs, cf := newFlagSet("extract", env)
	output := fs.String("o", "", "output file (default: stdout)")

	a, err := prepare(fs, cf, args, env)
	if err != nil {
		return err
	}

	result := a.extractor.ExtractFromContent(a.css)
	log.Info("Extracted %d tokens", result.Len())

	if *output == "" {
		data, err := extractor.Marshal(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(env.stdout, "%s\n", data)
		return err
	}

	if err := a.extractor.SaveToFile(result, *output); err != nil {
		return err
	}
	log.Info("Saved tokens to %s", *output)
	return nil
}

func runStats(args []string, env *environment) error {
	fs, cf := newFlagSet("stats", env)
	asJSON := fs.Bool("json", false, "print JSON")

	a, err := prepare(fs, cf, args, env)
	if err != nil {
		return err
	}

	stats := a.extractor.GenerateStatistics(a.extractor.ExtractFromContent(a.css))
	if *asJSON {
		return writeJSON(env, stats)
	}
	printStatistics(env.stdout, stats)
	return nil
}

func runCycles(args []string, env *environment) error {
	fs, cf := newFlagSet("cycles", env)
	asJSON := fs.Bool("json", false, "print JSON")

	a, err := prepare(fs, cf, args, env)
	if err != nil {
		return err
	}

	cycles := a.extractor.Analyzer().FindCircularDependencies(a.css)
	if *asJSON {
		if err := writeJSON(env, cycles); err != nil {
			return err
		}
	} else {
		printCycles(env.stdout, cycles)
	}

	if len(cycles) > 0 {
		return errCyclesFound
	}
	return nil
}

func runPalette(args []string, env *environment) error {
	fs, cf := newFlagSet("palette", env)
	asJSON := fs.Bool("json", false, "print JSON")

	a, err := prepare(fs, cf, args, env)
	if err != nil {
		return err
	}

	swatches := color.Palette(a.extractor.ExtractFromContent(a.css))
	if *asJSON {
		return writeJSON(env, swatches)
	}
	return printPalette(env.stdout, swatches)
}

func runServe(args []string, env *environment) error {
	fs, cf := newFlagSet("serve", env)
	if err := cf.parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: serve takes no inputs", errUsage)
	}
	opts, err := cf.options()
	if err != nil {
		return err
	}

	// stdout carries the protocol, logs stay on stderr
	log.Info("Serving MCP on stdio")
	return mcp.NewServer(opts).ServeStdio()
}

func runVersion(args []string, env *environment) error {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	info := version.Get()
	if *asJSON {
		return writeJSON(env, info)
	}
	_, err := fmt.Fprintln(env.stdout, info)
	return err
}

func writeJSON(env *environment, v any) error {
	enc := json.NewEncoder(env.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
