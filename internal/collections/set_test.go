package collections_test

import (
	"testing"

	"bennypowers.dev/csstokens/internal/collections"
	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		s := collections.NewSet[string]()
		assert.NotNil(t, s)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("set with duplicate initial values", func(t *testing.T) {
		s := collections.NewSet("a", "b", "a", "c", "b")
		assert.Equal(t, 3, s.Len(), "duplicates should be deduplicated")
		assert.True(t, s.Has("a"))
		assert.True(t, s.Has("b"))
		assert.True(t, s.Has("c"))
	})
}

func TestSetAddRemove(t *testing.T) {
	s := collections.NewSet[string]()
	s.Add("a", "b")
	s.Add("a")
	assert.Equal(t, 2, s.Len(), "adding duplicate should not increase size")

	s.Remove("a", "missing")
	assert.False(t, s.Has("a"))
	assert.True(t, s.Has("b"))
	assert.Equal(t, 1, s.Len())
}

func TestSetMembers(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		members := collections.NewSet[string]().Members()
		assert.NotNil(t, members)
		assert.Empty(t, members)
	})

	t.Run("non-empty set", func(t *testing.T) {
		members := collections.NewSet("a", "b", "c").Members()
		assert.ElementsMatch(t, []string{"a", "b", "c"}, members)
	})
}

func TestSorted(t *testing.T) {
	t.Run("strings sort byte-wise", func(t *testing.T) {
		s := collections.NewSet("slds-button", "Slds-card", "slds-align", "slds-align-bottom")
		assert.Equal(t, []string{"Slds-card", "slds-align", "slds-align-bottom", "slds-button"}, collections.Sorted(s))
	})

	t.Run("ints", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, collections.Sorted(collections.NewSet(3, 1, 2)))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, collections.Sorted(collections.NewSet[string]()))
	})
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "[]", collections.NewSet[string]().String())
	assert.Equal(t, "[a]", collections.NewSet("a").String())
}
