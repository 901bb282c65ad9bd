package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"bennypowers.dev/csstokens/internal/config"
	"bennypowers.dev/csstokens/internal/log"
	"bennypowers.dev/csstokens/internal/source"
)

// commonFlags are accepted by every analysing command
type commonFlags struct {
	configPath   string
	preset       string
	prefix       string
	separator    string
	excludeClass string
	tokenPrefix  string
	excludeToken string
	exclude      string
	logLevel     string
	verbose      bool
	quiet        bool
}

func newFlagSet(name string, env *environment) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: css-tokens %s [options] [inputs...]\n\nOptions:\n", name)
		fs.PrintDefaults()
	}

	cf := &commonFlags{}
	fs.StringVar(&cf.configPath, "config", "", "config file (default: discovered in the working directory)")
	fs.StringVar(&cf.preset, "preset", "", "options preset: "+strings.Join(config.PresetNames(), ", "))
	fs.StringVar(&cf.prefix, "prefix", "", "comma-separated class prefixes for component names")
	fs.StringVar(&cf.separator, "separator", "", "comma-separated BEM separators (default \"__,--\")")
	fs.StringVar(&cf.excludeClass, "exclude-class", "", "comma-separated regexps of classes ignored by component inference")
	fs.StringVar(&cf.tokenPrefix, "token-prefix", "", "comma-separated prefixes of the tokens to keep")
	fs.StringVar(&cf.excludeToken, "exclude-token", "", "comma-separated regexps of tokens to drop")
	fs.StringVar(&cf.exclude, "exclude", "", "comma-separated globs of input paths to skip")
	fs.StringVar(&cf.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&cf.verbose, "verbose", false, "log debug messages")
	fs.BoolVar(&cf.quiet, "quiet", false, "log errors only")
	return fs, cf
}

// parse parses args and applies the logging flags
func (cf *commonFlags) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	level, err := log.ParseLevel(cf.logLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	switch {
	case cf.verbose:
		level = log.LevelDebug
	case cf.quiet:
		level = log.LevelError
	}
	log.SetLevel(level)
	return nil
}

// options layers config file, preset and flags, in that order
func (cf *commonFlags) options() (config.Options, error) {
	var opts config.Options
	var err error
	if cf.configPath != "" {
		opts, err = config.Load(cf.configPath)
	} else {
		var path string
		opts, path, err = config.Discover(".")
		if path != "" {
			log.Info("Using config %s", path)
		}
	}
	if err != nil {
		return config.Options{}, err
	}

	if cf.preset != "" {
		preset, err := config.Preset(cf.preset)
		if err != nil {
			return config.Options{}, fmt.Errorf("%w: %v", errUsage, err)
		}
		opts = opts.Merge(preset)
	}

	opts = opts.Merge(config.Options{
		SelectorPrefixes: splitList(cf.prefix),
		BEMSeparators:    splitList(cf.separator),
		ExcludeClasses:   splitList(cf.excludeClass),
		TokenPrefixes:    splitList(cf.tokenPrefix),
		ExcludeTokens:    splitList(cf.excludeToken),
	})
	return opts, opts.Validate()
}

// stylesheet reads the inputs as one stylesheet
func (cf *commonFlags) stylesheet(inputs []string, stdin io.Reader) (string, error) {
	if len(inputs) == 0 || (len(inputs) == 1 && inputs[0] == "-") {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	files, err := source.Resolve(inputs, splitList(cf.exclude))
	if err != nil {
		return "", err
	}
	log.Debug("Reading %d files", len(files))
	return source.LoadAll(files)
}

// splitList splits a comma-separated flag value, or returns nil when it
// is empty
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var list []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
