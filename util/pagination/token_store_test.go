package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewChainKey(t *testing.T) {
	t.Run("it joins the chain identifier and entity id", func(t *testing.T) {
		assert.Equal(t, ChainKey("queue-items-42"), NewChainKey("queue-items", "42"))
	})

	t.Run("distinct chain identifiers do not collide for the same entity", func(t *testing.T) {
		assert.NotEqual(t, NewChainKey("queue-items", "42"), NewChainKey("link-analysis", "42"))
	})
}

func TestTokenStore(t *testing.T) {
	t.Run("get returns not ok before any store", func(t *testing.T) {
		s := NewTokenStore()
		token, ok := s.Get(NewChainKey("queue-items", "42"))
		assert.False(t, ok)
		assert.Equal(t, "", token)
	})

	t.Run("store returns true for any non-empty token", func(t *testing.T) {
		s := NewTokenStore()
		key := NewChainKey("queue-items", "42")
		assert.True(t, s.Store(key, "abc"))
		assert.True(t, s.Store(key, " "))
		assert.True(t, s.Store(key, "0"))
	})

	t.Run("store returns false for an empty token", func(t *testing.T) {
		s := NewTokenStore()
		assert.False(t, s.Store(NewChainKey("queue-items", "42"), ""))
	})

	t.Run("store overwrites the previous token", func(t *testing.T) {
		s := NewTokenStore()
		key := NewChainKey("queue-items", "42")
		s.Store(key, "tok1")
		s.Store(key, "tok2")

		token, ok := s.Get(key)
		assert.True(t, ok)
		assert.Equal(t, "tok2", token)
	})

	t.Run("an empty token erases the useful state for the key", func(t *testing.T) {
		s := NewTokenStore()
		key := NewChainKey("queue-items", "42")
		s.Store(key, "tok1")
		assert.False(t, s.Store(key, ""))

		token, ok := s.Get(key)
		assert.True(t, ok)
		assert.Equal(t, "", token)
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := NewTokenStore()
		s.Store(NewChainKey("queue-items", "42"), "tok1")
		s.Store(NewChainKey("link-analysis", "42"), "tok2")

		token, ok := s.Get(NewChainKey("queue-items", "42"))
		assert.True(t, ok)
		assert.Equal(t, "tok1", token)

		token, ok = s.Get(NewChainKey("link-analysis", "42"))
		assert.True(t, ok)
		assert.Equal(t, "tok2", token)
	})
}
