package tokens_test

import (
	"encoding/json"
	"testing"

	"bennypowers.dev/csstokens/internal/config"
	"bennypowers.dev/csstokens/internal/parser/css"
	"bennypowers.dev/csstokens/internal/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T, opts config.Options) *tokens.Analyzer {
	t.Helper()
	analyzer, err := tokens.NewAnalyzer(opts)
	require.NoError(t, err)
	return analyzer
}

func TestAnalyze(t *testing.T) {
	t.Run("end to end", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Options{SelectorPrefixes: []string{"c"}})
		output := analyzer.Analyze(`:root{--x:1px;} .c{color:var(--x);} .c-inner{margin:var(--x);}`)

		data, err := json.Marshal(output)
		require.NoError(t, err)
		assert.JSONEq(t, `{"--x":{"value":"1px","type":"dimension","usedIn":["c"]}}`, string(data))
		assert.Equal(t, []string{"c"}, analyzer.ComponentNames())
	})

	t.Run("reference tokens carry no value", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Default())
		output := analyzer.Analyze(`:root { --b: 4px; --a: var(--b); --c: var(--d, 2px); }`)

		a, ok := output.Get("--a")
		require.True(t, ok)
		assert.Equal(t, []string{"--b"}, a.RefersTo)
		assert.Empty(t, a.Value)
		assert.Empty(t, a.Type)

		c, _ := output.Get("--c")
		assert.Equal(t, []string{"--d"}, c.RefersTo, "fallback literals are not references")

		b, _ := output.Get("--b")
		assert.Equal(t, &tokens.DesignToken{Value: "4px", Type: css.TypeDimension}, b)
	})

	t.Run("literal tokens keep the last declared value", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Default())
		output := analyzer.Analyze(`:root { --x: 1px; --y: red; } .dark { --x: 2px; }`)

		assert.Equal(t, []string{"--x", "--y"}, output.Names(), "first declaration fixes the order")
		x, _ := output.Get("--x")
		assert.Equal(t, "2px", x.Value)
		assert.Nil(t, x.RefersTo)
	})

	t.Run("first referencing declaration decides references", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Default())
		output := analyzer.Analyze(`:root { --a: var(--b); } .x { --a: var(--c); } .y { --a: 3px; }`)

		a, _ := output.Get("--a")
		assert.Equal(t, []string{"--b"}, a.RefersTo)
		assert.Empty(t, a.Value)
	})

	t.Run("classification", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Default())
		output := analyzer.Analyze(`:root { --brand-color-100: #fff; --spacing-04: 1rem; --font-weight-bold: 700; }`)

		brand, _ := output.Get("--brand-color-100")
		assert.Equal(t, css.TypeColor, brand.Type)
		spacing, _ := output.Get("--spacing-04")
		assert.Equal(t, css.TypeDimension, spacing.Type)
		weight, _ := output.Get("--font-weight-bold")
		assert.Equal(t, css.TypeFont, weight.Type)
	})

	t.Run("usedIn is sorted and unique", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Default())
		output := analyzer.Analyze(`:root { --t: 1px; }
.zeta { margin: var(--t); }
.alpha__icon { padding: var(--t); }
.alpha { margin: var(--t); }
.mid, .zeta:hover { gap: var(--t); }`)

		tok, _ := output.Get("--t")
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, tok.UsedIn)
	})

	t.Run("usedIn is omitted without components", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Default())
		output := analyzer.Analyze(`:root { --t: 1px; } div > p { margin: var(--t); }`)

		tok, _ := output.Get("--t")
		assert.Nil(t, tok.UsedIn)

		data, err := json.Marshal(output)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "usedIn")
	})

	t.Run("token filter", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Options{
			TokenPrefixes: []string{"ds-"},
			ExcludeTokens: []string{"-legacy-"},
		})
		output := analyzer.Analyze(`:root { --ds-gap: 4px; --ds-legacy-gap: 2px; --other: 1px; }`)
		assert.Equal(t, []string{"--ds-gap"}, output.Names())
	})

	t.Run("malformed rules do not abort extraction", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Default())
		var output *tokens.TokenOutput
		assert.NotPanics(t, func() {
			output = analyzer.Analyze(`:root { --ok: 1px; } .broken[[ { color: red; } .c { --also: 2px; }`)
		})
		_, ok := output.Get("--ok")
		assert.True(t, ok)
	})

	t.Run("brace values do not hide later tokens", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Default())
		output := analyzer.Analyze(`:root{--x:{a:b};--y:2px} .c{color:var(--y)}`)

		data, err := json.Marshal(output)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"--x": {"value": "{a:b}", "type": "other"},
			"--y": {"value": "2px", "type": "dimension", "usedIn": ["c"]}
		}`, string(data))
		assert.Equal(t, []string{"c"}, analyzer.ComponentNames())
	})

	t.Run("empty literal value is written", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Default())
		data, err := json.Marshal(analyzer.Analyze(`:root { --e: ; }`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"--e":{"value":"","type":"other"}}`, string(data))
	})

	t.Run("empty input", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Default())
		output := analyzer.Analyze("")
		assert.Equal(t, 0, output.Len())

		data, err := json.Marshal(output)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data))
	})

	t.Run("no state crosses calls", func(t *testing.T) {
		analyzer := newAnalyzer(t, config.Default())
		analyzer.Analyze(`:root { --t: 1px; } .first { margin: var(--t); }`)
		output := analyzer.Analyze(`:root { --t: 1px; } .second { margin: var(--t); }`)

		tok, _ := output.Get("--t")
		assert.Equal(t, []string{"second"}, tok.UsedIn)
		assert.Equal(t, []string{"second"}, analyzer.ComponentNames())
	})
}

func TestNewAnalyzerInvalidOptions(t *testing.T) {
	_, err := tokens.NewAnalyzer(config.Options{ExcludeClasses: []string{"("}})
	assert.Error(t, err)

	_, err = tokens.NewAnalyzer(config.Options{ExcludeTokens: []string{"("}})
	assert.Error(t, err)
}

func TestFindCircularDependencies(t *testing.T) {
	analyzer := newAnalyzer(t, config.Default())

	t.Run("two-cycle", func(t *testing.T) {
		cycles := analyzer.FindCircularDependencies(`:root { --a: var(--b); --b: var(--a); }`)
		assert.Equal(t, [][]string{{"--a", "--b", "--a"}}, cycles)
	})

	t.Run("no cycle", func(t *testing.T) {
		cycles := analyzer.FindCircularDependencies(`:root { --a: var(--b); --b: 1px; }`)
		assert.Empty(t, cycles)
	})

	t.Run("last declaration decides edges", func(t *testing.T) {
		cycles := analyzer.FindCircularDependencies(`:root { --a: var(--b); --b: var(--a); } .x { --b: var(--c); }`)
		assert.Empty(t, cycles)
	})
}

func TestAnalyzeTokenDependencies(t *testing.T) {
	analyzer := newAnalyzer(t, config.Default())
	graph := analyzer.AnalyzeTokenDependencies(`:root { --a: var(--b); --c: calc(var(--a) * var(--b)); --d: 1px; }`)

	assert.Equal(t, []string{"--a", "--c"}, graph.Nodes())
	assert.Equal(t, []string{"--a", "--b"}, graph.GetDependencies("--c"))
	assert.Equal(t, []string{"--a", "--c"}, graph.GetDependents("--b"))
}

func TestTokenOutputJSONRoundTrip(t *testing.T) {
	analyzer := newAnalyzer(t, config.Default())
	output := analyzer.Analyze(`:root { --z: 1px; --a: var(--z); --m: #fff; }
.card { color: var(--m); margin: var(--a); }`)

	data, err := json.Marshal(output)
	require.NoError(t, err)

	decoded := &tokens.TokenOutput{}
	require.NoError(t, json.Unmarshal(data, decoded))

	assert.Equal(t, output.Names(), decoded.Names())
	for name, token := range output.All() {
		got, ok := decoded.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, token, got, name)
	}

	again, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestDesignTokenJSON(t *testing.T) {
	tests := []struct {
		name  string
		token tokens.DesignToken
		want  string
	}{
		{"literal", tokens.DesignToken{Value: "1px", Type: css.TypeDimension}, `{"value":"1px","type":"dimension"}`},
		{"empty literal", tokens.DesignToken{Type: css.TypeOther}, `{"value":"","type":"other"}`},
		{"reference", tokens.DesignToken{RefersTo: []string{"--a"}, UsedIn: []string{"c"}}, `{"refersTo":["--a"],"usedIn":["c"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.token)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var back tokens.DesignToken
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.token, back)
		})
	}
}
