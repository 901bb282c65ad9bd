package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bennypowers.dev/csstokens/internal/log"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// PackageJSONField is the package.json field holding css-tokens options
const PackageJSONField = "cssTokens"

// candidates are the config files looked for by Discover, in order
var candidates = []string{
	".config/css-tokens.yaml",
	".config/css-tokens.yml",
	".config/css-tokens.json",
	"css-tokens.config.yaml",
	"css-tokens.config.yml",
	"css-tokens.config.json",
}

// Load reads options from a YAML, JSON or JSONC file, or from the
// cssTokens field of a package.json. Unset fields keep their defaults.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-selected config file
	if err != nil {
		return Options{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if filepath.Base(path) == "package.json" {
		opts, found, err := parsePackageJSON(data)
		if err != nil {
			return Options{}, err
		}
		if !found {
			return Options{}, fmt.Errorf("%s has no %q field", path, PackageJSONField)
		}
		return opts, nil
	}

	return parse(data, filepath.Ext(path))
}

// parse decodes config file contents by file extension
func parse(data []byte, ext string) (Options, error) {
	opts := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return Options{}, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &opts); err != nil {
			return Options{}, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return Options{}, fmt.Errorf("unsupported config file extension %q", ext)
	}
	return opts, nil
}

// parsePackageJSON extracts the cssTokens field.
// found is false when the field is missing (not an error).
func parsePackageJSON(data []byte) (opts Options, found bool, err error) {
	var pkgJSON map[string]json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &pkgJSON); err != nil {
		return Options{}, false, fmt.Errorf("failed to parse package.json: %w", err)
	}

	raw, ok := pkgJSON[PackageJSONField]
	if !ok {
		return Options{}, false, nil
	}

	opts = Default()
	if err := json.Unmarshal(raw, &opts); err != nil {
		return Options{}, false, fmt.Errorf("%s must be an object: %w", PackageJSONField, err)
	}
	return opts, true, nil
}

// Discover looks for configuration under root: the .config directory,
// then css-tokens.config.* files, then package.json. It returns the
// defaults and an empty path when nothing is found.
func Discover(root string) (Options, string, error) {
	for _, name := range candidates {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		log.Debug("Using config file %s", path)
		opts, err := Load(path)
		return opts, path, err
	}

	path := filepath.Join(root, "package.json")
	data, err := os.ReadFile(path) //nolint:gosec // G304: project package.json
	if errors.Is(err, os.ErrNotExist) {
		return Default(), "", nil
	}
	if err != nil {
		return Options{}, "", fmt.Errorf("failed to read package.json: %w", err)
	}

	opts, found, err := parsePackageJSON(data)
	if err != nil {
		return Options{}, "", err
	}
	if !found {
		return Default(), "", nil
	}
	log.Debug("Using %s field of %s", PackageJSONField, path)
	return opts, path, nil
}
