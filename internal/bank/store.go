package bank

import (
	"fmt"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a built cache is served before a full
// reload from the loader.
const DefaultCacheTTL = 5 * time.Minute

// Filter narrows a catalog lookup. Zero-value fields pass everything;
// ExcludeIDs always removes matches, even when no other field is set.
type Filter struct {
	Role       string
	Difficulty Difficulty
	Category   string
	ExcludeIDs map[string]bool
}

// Store is a time-boxed in-memory cache over a question Loader with
// filtered lookups. Safe for concurrent use: readers see either the old
// cache or the fully built new one, never a partial list.
type Store struct {
	loader Loader
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	cache   []Question
	byID    map[string]*Question
	builtAt time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithTTL overrides the default cache TTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithClock injects the time source. Tests use this to age the cache.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store over the given loader. The cache is built
// lazily on first access.
func NewStore(loader Loader, opts ...Option) *Store {
	s := &Store{
		loader: loader,
		ttl:    DefaultCacheTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// All returns every question in the catalog, rebuilding the cache if it
// is empty or older than the TTL. The returned slice is shared; callers
// must not mutate it.
func (s *Store) All() ([]Question, error) {
	s.mu.RLock()
	if s.fresh() {
		cached := s.cache
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	return s.rebuild()
}

// Filtered returns the questions passing the filter, in catalog order.
func (s *Store) Filtered(f Filter) ([]Question, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}

	var out []Question
	for _, q := range all {
		if f.ExcludeIDs[q.ID] {
			continue
		}
		if f.Role != "" && !q.AppliesTo(f.Role) {
			continue
		}
		if f.Difficulty != "" && q.Metadata.Difficulty != f.Difficulty {
			continue
		}
		if f.Category != "" && q.Metadata.Category != f.Category {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// ByID returns the question with the given id, or false if absent.
func (s *Store) ByID(id string) (*Question, bool, error) {
	if _, err := s.All(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.byID[id]
	return q, ok, nil
}

// TopicsCovered returns the set of topics among the given question ids.
// Unknown ids are ignored.
func (s *Store) TopicsCovered(ids []string) (map[string]bool, error) {
	if _, err := s.All(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	topics := make(map[string]bool)
	for _, id := range ids {
		if q, ok := s.byID[id]; ok {
			topics[q.Metadata.Topic] = true
		}
	}
	return topics, nil
}

// ClearCache discards the cache; the next access triggers a full
// reload from the loader.
func (s *Store) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
	s.byID = nil
	s.builtAt = time.Time{}
}

// fresh reports whether the cache is populated and within its TTL.
// Callers must hold at least a read lock.
func (s *Store) fresh() bool {
	return s.cache != nil && s.now().Sub(s.builtAt) < s.ttl
}

// rebuild reloads the catalog under the write lock. A concurrent
// rebuild that already completed is reused.
func (s *Store) rebuild() ([]Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have rebuilt while we waited for the lock.
	if s.fresh() {
		return s.cache, nil
	}

	questions, err := s.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("rebuild question cache: %w", err)
	}

	byID := make(map[string]*Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	s.cache = questions
	s.byID = byID
	s.builtAt = s.now()
	return s.cache, nil
}
