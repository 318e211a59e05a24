package pagination

import (
	"fmt"
	"sync"
)

// ChainKey uniquely identifies one logical paginated query across repeated
// load-more calls. Distinct screens paginating the same entity must use
// distinct chain continuation identifiers so their cursors do not collide.
type ChainKey string

// NewChainKey builds the composite key for a chain continuation identifier
// and an entity id.
func NewChainKey(chainContinuationID, entityID string) ChainKey {
	return ChainKey(fmt.Sprintf("%s-%s", chainContinuationID, entityID))
}

// TokenStore tracks, per request chain, the most recent continuation token
// returned by the backend.
//
// The store is scoped to the owning service instance and lives for the
// session. Entries are overwritten on every successful page fetch and never
// evicted. Concurrent stores for the same key race with last-write-wins;
// callers are expected to serialize load-more calls per chain (the UI
// disables further triggers while a fetch is in flight). Out-of-order
// responses for one key are an accepted limitation, not guarded against.
type TokenStore interface {
	// Store unconditionally overwrites the token for the key, even when the token is empty (which erases the
	// useful state for that key). It returns true iff the token is non-empty, i.e. the backend indicates more
	// results exist. This return value is the authoritative canLoadMore signal.
	Store(key ChainKey, token string) bool

	// Get returns the last stored token for the key, with ok=false if nothing was ever stored. The store does
	// no validation that a token logically follows from a prior fetch; callers must not consult it for fresh
	// queries.
	Get(key ChainKey) (string, bool)
}

type tokenStore struct {
	mu     sync.Mutex
	tokens map[ChainKey]string
}

// NewTokenStore creates an empty in-memory token store.
func NewTokenStore() TokenStore {
	return &tokenStore{
		tokens: make(map[ChainKey]string),
	}
}

func (s *tokenStore) Store(key ChainKey, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[key] = token
	return token != ""
}

func (s *tokenStore) Get(key ChainKey) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.tokens[key]
	return token, ok
}

var _ TokenStore = &tokenStore{}
