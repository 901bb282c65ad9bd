package tokens_test

import (
	"fmt"
	"testing"

	"bennypowers.dev/csstokens/internal/parser/css"
	"bennypowers.dev/csstokens/internal/tokens"
	"github.com/stretchr/testify/assert"
)

func TestGenerateStatistics(t *testing.T) {
	output := tokens.NewTokenOutput()
	output.Set("--color-bg", &tokens.DesignToken{Value: "#fff", Type: css.TypeColor, UsedIn: []string{"a", "b"}})
	output.Set("--gap", &tokens.DesignToken{Value: "4px", Type: css.TypeDimension})
	output.Set("--button-bg", &tokens.DesignToken{RefersTo: []string{"--color-bg"}, UsedIn: []string{"button", "card", "tab"}})
	output.Set("--empty", &tokens.DesignToken{Value: "", Type: css.TypeOther, UsedIn: []string{"x", "y"}})

	stats := tokens.GenerateStatistics(output)

	assert.Equal(t, 4, stats.TotalTokens)
	assert.Equal(t, 3, stats.TokensWithValues, "an empty value is still a value")
	assert.Equal(t, 1, stats.TokensWithReferences)
	assert.Equal(t, map[css.TokenType]int{
		css.TypeColor:     1,
		css.TypeDimension: 1,
		css.TypeOther:     1,
	}, stats.TokensByType)
	assert.Equal(t, []css.TokenType{css.TypeColor, css.TypeDimension, css.TypeOther}, stats.Types())
	assert.Equal(t, []tokens.TokenUsage{
		{Token: "--button-bg", UsageCount: 3},
		{Token: "--color-bg", UsageCount: 2},
		{Token: "--empty", UsageCount: 2},
		{Token: "--gap", UsageCount: 0},
	}, stats.MostUsedTokens, "ties keep output order")
}

func TestGenerateStatisticsTopTen(t *testing.T) {
	output := tokens.NewTokenOutput()
	for i := range 15 {
		used := make([]string, i%4)
		output.Set(fmt.Sprintf("--t%02d", i), &tokens.DesignToken{Value: "1px", Type: css.TypeDimension, UsedIn: used})
	}

	stats := tokens.GenerateStatistics(output)
	assert.Len(t, stats.MostUsedTokens, tokens.MostUsedLimit)
	assert.Equal(t, "--t03", stats.MostUsedTokens[0].Token)
	assert.Equal(t, "--t07", stats.MostUsedTokens[1].Token)
	assert.Equal(t, "--t11", stats.MostUsedTokens[2].Token)

	for i := 1; i < len(stats.MostUsedTokens); i++ {
		assert.GreaterOrEqual(t, stats.MostUsedTokens[i-1].UsageCount, stats.MostUsedTokens[i].UsageCount)
	}
}

func TestGenerateStatisticsEmpty(t *testing.T) {
	stats := tokens.GenerateStatistics(tokens.NewTokenOutput())
	assert.Zero(t, stats.TotalTokens)
	assert.NotNil(t, stats.MostUsedTokens)
	assert.Empty(t, stats.MostUsedTokens)
	assert.Empty(t, stats.TokensByType)
}
