// Package extractor is the file-level entry point to token extraction.
package extractor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"bennypowers.dev/csstokens/internal/config"
	"bennypowers.dev/csstokens/internal/source"
	"bennypowers.dev/csstokens/internal/tokens"
)

// Extractor reads stylesheets, analyses them and writes the results
type Extractor struct {
	analyzer *tokens.Analyzer
}

// New creates an Extractor
func New(opts config.Options) (*Extractor, error) {
	analyzer, err := tokens.NewAnalyzer(opts)
	if err != nil {
		return nil, err
	}
	return &Extractor{analyzer: analyzer}, nil
}

// Analyzer returns the underlying analyzer
func (e *Extractor) Analyzer() *tokens.Analyzer {
	return e.analyzer
}

// ExtractFromFile extracts the tokens of one stylesheet, or of the styles
// embedded in an HTML or JavaScript file
func (e *Extractor) ExtractFromFile(path string) (*tokens.TokenOutput, error) {
	css, err := source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSS file: %w", err)
	}
	return e.ExtractFromContent(css), nil
}

// ExtractFromFiles extracts the tokens of several files analysed as one
// stylesheet, in the given order
func (e *Extractor) ExtractFromFiles(paths []string) (*tokens.TokenOutput, error) {
	css, err := source.LoadAll(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSS file: %w", err)
	}
	return e.ExtractFromContent(css), nil
}

// ExtractFromContent extracts the tokens of a stylesheet
func (e *Extractor) ExtractFromContent(css string) *tokens.TokenOutput {
	return e.analyzer.Analyze(css)
}

// GenerateStatistics summarises extracted tokens
func (e *Extractor) GenerateStatistics(output *tokens.TokenOutput) tokens.Statistics {
	return tokens.GenerateStatistics(output)
}

// Marshal renders tokens as JSON indented by two spaces
func Marshal(output *tokens.TokenOutput) ([]byte, error) {
	return json.MarshalIndent(output, "", "  ")
}

// SaveToFile writes tokens as indented JSON, creating parent directories
func (e *Extractor) SaveToFile(output *tokens.TokenOutput, path string) error {
	data, err := Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to save output file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to save output file: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil { //nolint:gosec // G306: output is meant to be shared
		return fmt.Errorf("failed to save output file: %w", err)
	}
	return nil
}
