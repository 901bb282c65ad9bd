package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"bennypowers.dev/csstokens/internal/color"
	"bennypowers.dev/csstokens/internal/config"
	"bennypowers.dev/csstokens/internal/source"
	"bennypowers.dev/csstokens/internal/tokens"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) handleExtractTokens(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyzer, css, errResult := s.prepare(req)
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(analyzer.Analyze(css))
}

func (s *Server) handleFindCycles(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyzer, css, errResult := s.prepare(req)
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(analyzer.FindCircularDependencies(css))
}

func (s *Server) handleTokenStatistics(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyzer, css, errResult := s.prepare(req)
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(tokens.GenerateStatistics(analyzer.Analyze(css)))
}

func (s *Server) handleColorPalette(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyzer, css, errResult := s.prepare(req)
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(color.Palette(analyzer.Analyze(css)))
}

// prepare builds the analyzer and loads the stylesheet of a request.
// Problems with the arguments come back as an error result.
func (s *Server) prepare(req mcp.CallToolRequest) (*tokens.Analyzer, string, *mcp.CallToolResult) {
	opts, err := s.requestOptions(req)
	if err != nil {
		return nil, "", mcp.NewToolResultError(err.Error())
	}
	analyzer, err := tokens.NewAnalyzer(opts)
	if err != nil {
		return nil, "", mcp.NewToolResultError(err.Error())
	}

	css := req.GetString("css", "")
	path := req.GetString("path", "")
	switch {
	case css != "" && path != "":
		return nil, "", mcp.NewToolResultError("pass either css or path, not both")
	case path != "":
		css, err = source.Load(path)
		if err != nil {
			return nil, "", mcp.NewToolResultError(err.Error())
		}
	case css == "":
		return nil, "", mcp.NewToolResultError("css or path is required")
	}

	return analyzer, css, nil
}

// requestOptions layers the request's preset and option arguments over
// the server defaults
func (s *Server) requestOptions(req mcp.CallToolRequest) (config.Options, error) {
	opts := s.opts
	if name := req.GetString("preset", ""); name != "" {
		preset, err := config.Preset(name)
		if err != nil {
			return config.Options{}, err
		}
		opts = opts.Merge(preset)
	}

	return opts.Merge(config.Options{
		SelectorPrefixes: listArgument(req, "selector_prefixes"),
		BEMSeparators:    listArgument(req, "bem_separators"),
		ExcludeClasses:   listArgument(req, "exclude_classes"),
		TokenPrefixes:    listArgument(req, "token_prefixes"),
		ExcludeTokens:    listArgument(req, "exclude_tokens"),
	}), nil
}

// listArgument splits a comma-separated argument, or returns nil when it
// is absent
func listArgument(req mcp.CallToolRequest, key string) []string {
	value := req.GetString(key, "")
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

// jsonResult renders v as an indented JSON text result
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
