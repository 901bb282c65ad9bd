// Package source turns command line inputs into stylesheet text.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"bennypowers.dev/csstokens/internal/collections"
	"bennypowers.dev/csstokens/internal/log"
	"bennypowers.dev/csstokens/internal/parser"
	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

var errIsDir = errors.New("is a directory")

// IgnoredDirs are directories never descended into
var IgnoredDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// Resolve expands inputs into a list of files.
//
// An input naming a file is kept as is. A directory contributes every
// file below it with a supported extension, honouring the .gitignore at
// its root. Any other input is a doublestar glob. Paths matching one of
// the exclude globs are dropped. The result keeps input order and holds
// each path once.
func Resolve(inputs []string, exclude []string) ([]string, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}

	seen := collections.NewSet[string]()
	files := []string{}
	add := func(path string) {
		if isExcluded(path, exclude) || seen.Has(path) {
			return
		}
		seen.Add(path)
		files = append(files, path)
	}

	for _, input := range inputs {
		info, err := os.Stat(input)
		switch {
		case err == nil && info.IsDir():
			found, err := walkDir(input, exclude)
			if err != nil {
				return nil, err
			}
			for _, path := range found {
				add(path)
			}

		case err == nil:
			add(input)

		case errors.Is(err, fs.ErrNotExist):
			if !doublestar.ValidatePattern(filepath.ToSlash(input)) {
				return nil, fmt.Errorf("invalid input pattern: %s", input)
			}
			matches, err := doublestar.FilepathGlob(input, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("failed to expand %s: %w", input, err)
			}
			if len(matches) == 0 {
				return nil, &ReadError{Path: input, Err: fs.ErrNotExist}
			}
			for _, path := range matches {
				add(path)
			}

		default:
			return nil, &ReadError{Path: input, Err: err}
		}
	}

	if len(files) == 0 {
		return nil, ErrNoInputs
	}
	return files, nil
}

// walkDir lists the supported files below root
func walkDir(root string, exclude []string) ([]string, error) {
	gitignore := loadGitignore(root)
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if d.IsDir() && IgnoredDirs[d.Name()] {
			return filepath.SkipDir
		}
		if (gitignore != nil && gitignore.MatchesPath(relPath)) || isExcluded(relPath, exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		if parser.IsCSSSupportedLanguage(parser.LanguageForPath(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	log.Debug("Found %d files under %s", len(files), root)
	return files, nil
}

// loadGitignore loads .gitignore from root if it exists
func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	gitignore, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		log.Warn("Ignoring unreadable %s: %v", path, err)
		return nil
	}
	return gitignore
}

// isExcluded reports whether path matches one of the exclude globs
func isExcluded(path string, exclude []string) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range exclude {
		if matched, _ := doublestar.Match(pattern, slashed); matched {
			return true
		}
	}
	return false
}
