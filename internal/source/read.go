package source

import (
	"os"
	"strings"

	"bennypowers.dev/csstokens/internal/log"
	"bennypowers.dev/csstokens/internal/parser"
	"github.com/edsrzf/mmap-go"
)

// Read returns the contents of a file. The file is memory mapped and
// copied out; when mapping fails it is read conventionally.
func Read(path string) ([]byte, error) {
	file, err := os.Open(path) //nolint:gosec // G304: user-selected input file
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if stat.IsDir() {
		return nil, &ReadError{Path: path, Err: errIsDir}
	}

	// Zero-length files cannot be mapped
	if stat.Size() == 0 {
		return []byte{}, nil
	}

	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		log.Debug("mmap failed for %s, reading instead: %v", path, err)
		data, readErr := os.ReadFile(path) //nolint:gosec // G304: user-selected input file
		if readErr != nil {
			return nil, &ReadError{Path: path, Err: readErr}
		}
		return data, nil
	}
	defer func() {
		if err := mapped.Unmap(); err != nil {
			log.Warn("Failed to unmap %s: %v", path, err)
		}
	}()

	data := make([]byte, len(mapped))
	copy(data, mapped)
	return data, nil
}

// Load reads a file and returns the stylesheet it holds. HTML and
// JavaScript/TypeScript files contribute their embedded styles; files with
// any other extension are read as CSS.
func Load(path string) (string, error) {
	data, err := Read(path)
	if err != nil {
		return "", err
	}

	language := parser.LanguageForPath(path)
	if language == "" {
		language = "css"
	}
	return parser.CSSFromDocument(string(data), language), nil
}

// LoadAll loads every file and joins the stylesheets in order
func LoadAll(paths []string) (string, error) {
	var b strings.Builder
	for i, path := range paths {
		css, err := Load(path)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(css)
	}
	return b.String(), nil
}
