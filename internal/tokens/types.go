package tokens

import (
	"encoding/json"
	"iter"

	"bennypowers.dev/csstokens/internal/parser/css"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DesignToken is the output record for one custom property.
// A token carries either RefersTo or Value and Type, never both.
type DesignToken struct {
	// Value is the raw declared value, unresolved
	Value string `json:"value,omitempty"`

	// Type is the heuristic classification of the token
	Type css.TokenType `json:"type,omitempty"`

	// RefersTo lists the tokens referenced through var(), in source order
	RefersTo []string `json:"refersTo,omitempty"`

	// UsedIn lists the components whose rules use the token, sorted
	UsedIn []string `json:"usedIn,omitempty"`
}

// MarshalJSON writes "value" for every literal token, even an empty one,
// and never for a reference token
func (t DesignToken) MarshalJSON() ([]byte, error) {
	type wire struct {
		Value    *string       `json:"value,omitempty"`
		Type     css.TokenType `json:"type,omitempty"`
		RefersTo []string      `json:"refersTo,omitempty"`
		UsedIn   []string      `json:"usedIn,omitempty"`
	}
	w := wire{Type: t.Type, RefersTo: t.RefersTo, UsedIn: t.UsedIn}
	if !t.IsReference() {
		w.Value = &t.Value
	}
	return json.Marshal(w)
}

// IsReference reports whether the token defers its value to other tokens
func (t *DesignToken) IsReference() bool {
	return len(t.RefersTo) > 0
}

// TokenOutput maps token names to tokens in first-declaration order.
// It marshals to a JSON object with the same key order.
type TokenOutput struct {
	tokens *orderedmap.OrderedMap[string, *DesignToken]
}

// NewTokenOutput creates an empty TokenOutput
func NewTokenOutput() *TokenOutput {
	return &TokenOutput{tokens: orderedmap.New[string, *DesignToken]()}
}

func (o *TokenOutput) init() {
	if o.tokens == nil {
		o.tokens = orderedmap.New[string, *DesignToken]()
	}
}

// Set adds or replaces a token. A replaced token keeps its position.
func (o *TokenOutput) Set(name string, token *DesignToken) {
	o.init()
	o.tokens.Set(name, token)
}

// Get returns the named token
func (o *TokenOutput) Get(name string) (*DesignToken, bool) {
	if o.tokens == nil {
		return nil, false
	}
	return o.tokens.Get(name)
}

// Len returns the number of tokens
func (o *TokenOutput) Len() int {
	if o.tokens == nil {
		return 0
	}
	return o.tokens.Len()
}

// All iterates over the tokens in order
func (o *TokenOutput) All() iter.Seq2[string, *DesignToken] {
	return func(yield func(string, *DesignToken) bool) {
		if o.tokens == nil {
			return
		}
		for pair := o.tokens.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Names returns the token names in order
func (o *TokenOutput) Names() []string {
	names := make([]string, 0, o.Len())
	for name := range o.All() {
		names = append(names, name)
	}
	return names
}

// Literals returns the raw values of tokens that reference nothing
func (o *TokenOutput) Literals() map[string]string {
	literals := make(map[string]string)
	for name, token := range o.All() {
		if !token.IsReference() {
			literals[name] = token.Value
		}
	}
	return literals
}

// References returns the var() references of reference tokens, in order
func (o *TokenOutput) References() []css.TokenReference {
	refs := []css.TokenReference{}
	for name, token := range o.All() {
		if token.IsReference() {
			refs = append(refs, css.TokenReference{TokenName: name, ReferencedTokens: token.RefersTo})
		}
	}
	return refs
}

func (o *TokenOutput) MarshalJSON() ([]byte, error) {
	o.init()
	return o.tokens.MarshalJSON()
}

func (o *TokenOutput) UnmarshalJSON(data []byte) error {
	o.init()
	return o.tokens.UnmarshalJSON(data)
}
