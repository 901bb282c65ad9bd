package mcp

import "github.com/mark3labs/mcp-go/mcp"

// Tool names
const (
	ToolExtractTokens   = "extract_tokens"
	ToolFindCycles      = "find_cycles"
	ToolTokenStatistics = "token_statistics"
	ToolColorPalette    = "color_palette"
)

// inputOptions are the arguments shared by every tool
func inputOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("css",
			mcp.Description("Stylesheet text. Either css or path is required."),
		),
		mcp.WithString("path",
			mcp.Description("Path of a CSS, HTML or JavaScript/TypeScript file to read instead of css"),
		),
		mcp.WithString("preset",
			mcp.Description("Options preset: slds or carbon"),
		),
		mcp.WithString("selector_prefixes",
			mcp.Description("Comma-separated class prefixes considered for component names, e.g. \"slds-\""),
		),
		mcp.WithString("bem_separators",
			mcp.Description("Comma-separated BEM separators (default \"__,--\")"),
		),
		mcp.WithString("exclude_classes",
			mcp.Description("Comma-separated regular expressions for classes ignored by component inference"),
		),
	}
}

func extractTokensTool() mcp.Tool {
	return mcp.NewTool(ToolExtractTokens, append([]mcp.ToolOption{
		mcp.WithDescription("Extract CSS custom properties as design tokens with their values, types, var() references and the components using them"),
		mcp.WithString("token_prefixes",
			mcp.Description("Comma-separated prefixes; only tokens starting with one are returned"),
		),
		mcp.WithString("exclude_tokens",
			mcp.Description("Comma-separated regular expressions for tokens left out"),
		),
	}, inputOptions()...)...)
}

func findCyclesTool() mcp.Tool {
	return mcp.NewTool(ToolFindCycles, append([]mcp.ToolOption{
		mcp.WithDescription("Find circular var() references between custom properties"),
	}, inputOptions()...)...)
}

func tokenStatisticsTool() mcp.Tool {
	return mcp.NewTool(ToolTokenStatistics, append([]mcp.ToolOption{
		mcp.WithDescription("Count design tokens by kind and type and list the most used ones"),
	}, inputOptions()...)...)
}

func colorPaletteTool() mcp.Tool {
	return mcp.NewTool(ToolColorPalette, append([]mcp.ToolOption{
		mcp.WithDescription("List the color tokens, including aliases of colors, with normalised hex values"),
	}, inputOptions()...)...)
}
