package tokens

import (
	"cmp"
	"slices"

	"bennypowers.dev/csstokens/internal/parser/css"
)

// MostUsedLimit is the length of Statistics.MostUsedTokens
const MostUsedLimit = 10

// TokenUsage counts the components using a token
type TokenUsage struct {
	Token      string `json:"token"`
	UsageCount int    `json:"usageCount"`
}

// Statistics summarises a TokenOutput
type Statistics struct {
	TotalTokens          int                   `json:"totalTokens"`
	TokensWithValues     int                   `json:"tokensWithValues"`
	TokensWithReferences int                   `json:"tokensWithReferences"`
	MostUsedTokens       []TokenUsage          `json:"mostUsedTokens"`
	TokensByType         map[css.TokenType]int `json:"tokensByType"`
}

// GenerateStatistics counts tokens by kind and type and ranks them by the
// number of components using them. Tokens used equally often keep their
// output order.
func GenerateStatistics(output *TokenOutput) Statistics {
	stats := Statistics{
		TotalTokens:    output.Len(),
		MostUsedTokens: []TokenUsage{},
		TokensByType:   make(map[css.TokenType]int),
	}

	usage := make([]TokenUsage, 0, output.Len())
	for name, token := range output.All() {
		if token.Type != "" {
			stats.TokensWithValues++
			stats.TokensByType[token.Type]++
		}
		if token.IsReference() {
			stats.TokensWithReferences++
		}
		usage = append(usage, TokenUsage{Token: name, UsageCount: len(token.UsedIn)})
	}

	slices.SortStableFunc(usage, func(a, b TokenUsage) int {
		return cmp.Compare(b.UsageCount, a.UsageCount)
	})
	stats.MostUsedTokens = append(stats.MostUsedTokens, usage[:min(len(usage), MostUsedLimit)]...)

	return stats
}

// Types returns the token types present, alphabetically
func (s Statistics) Types() []css.TokenType {
	types := make([]css.TokenType, 0, len(s.TokensByType))
	for t := range s.TokensByType {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}
