package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"bennypowers.dev/csstokens/internal/color"
	"bennypowers.dev/csstokens/internal/tokens"
)

// reportedMostUsed is how many of the most used tokens the text report lists
const reportedMostUsed = 5

func printStatistics(w io.Writer, stats tokens.Statistics) {
	fmt.Fprintf(w, "Total tokens: %d\n", stats.TotalTokens)
	fmt.Fprintf(w, "Tokens with values: %d\n", stats.TokensWithValues)
	fmt.Fprintf(w, "Tokens with references: %d\n", stats.TokensWithReferences)

	if len(stats.TokensByType) > 0 {
		fmt.Fprintln(w, "\nTokens by type:")
		for _, t := range stats.Types() {
			fmt.Fprintf(w, "  %s: %d\n", t, stats.TokensByType[t])
		}
	}

	if len(stats.MostUsedTokens) > 0 {
		fmt.Fprintln(w, "\nMost used tokens:")
		for _, usage := range stats.MostUsedTokens[:min(len(stats.MostUsedTokens), reportedMostUsed)] {
			fmt.Fprintf(w, "  %s: used in %d component(s)\n", usage.Token, usage.UsageCount)
		}
	}
}

func printCycles(w io.Writer, cycles [][]string) {
	if len(cycles) == 0 {
		fmt.Fprintln(w, "No circular references found")
		return
	}
	for _, cycle := range cycles {
		fmt.Fprintln(w, strings.Join(cycle, " → "))
	}
}

func printPalette(w io.Writer, swatches []color.Swatch) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range swatches {
		value := s.Value
		if s.Alias {
			value += " (alias)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Token, s.Hex, value)
	}
	return tw.Flush()
}
