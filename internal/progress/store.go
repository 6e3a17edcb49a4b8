package progress

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"sort"
	"sync"
)

// record maps course id -> lesson id -> watched. Entries only exist as
// true; unmarking deletes the entry, and a course with no lessons left is
// pruned entirely.
type record map[string]map[string]bool

// Store tracks which lessons have been watched, per course. It is built
// once at startup and passed to its consumers explicitly. Every mutation
// rewrites the whole blob through the injected Storage before returning;
// persistence failures are swallowed (the in-memory state stays
// authoritative for the session) but reported through the error hook.
type Store struct {
	mu      sync.Mutex
	storage Storage
	key     string
	onError func(op string, err error)
	watched record
}

type Option func(*Store)

// WithKey overrides the storage key, mainly for tests.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithErrorHook replaces the default log-only handler for storage failures.
func WithErrorHook(fn func(op string, err error)) Option {
	return func(s *Store) { s.onError = fn }
}

// NewStore loads the persisted record once. A nil storage yields an empty,
// unpersisted store; unreadable or corrupt data falls back to empty rather
// than locking the user out of the application.
func NewStore(ctx context.Context, storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		key:     StorageKey,
		onError: func(op string, err error) {
			log.Printf("progress: %s: %v", op, err)
		},
		watched: make(record),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.storage == nil {
		return s
	}

	b, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.onError("load", err)
		return s
	}
	if !ok {
		return s
	}
	if err := json.Unmarshal(b, &s.watched); err != nil {
		s.onError("load", err)
		s.watched = make(record)
	}
	if s.watched == nil {
		s.watched = make(record)
	}
	return s
}

// MarkWatched sets the (course, lesson) entry. Idempotent: marking an
// already watched lesson does nothing, not even a persist.
func (s *Store) MarkWatched(ctx context.Context, courseID, lessonID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watched[courseID][lessonID] {
		return
	}
	if s.watched[courseID] == nil {
		s.watched[courseID] = make(map[string]bool)
	}
	s.watched[courseID][lessonID] = true
	s.persist(ctx)
}

// UnmarkWatched removes the entry, pruning the course when it was the last
// watched lesson. Idempotent.
func (s *Store) UnmarkWatched(ctx context.Context, courseID, lessonID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lessons, ok := s.watched[courseID]
	if !ok || !lessons[lessonID] {
		return
	}
	delete(lessons, lessonID)
	if len(lessons) == 0 {
		delete(s.watched, courseID)
	}
	s.persist(ctx)
}

// IsWatched treats any unknown course or lesson as unwatched, never an
// error.
func (s *Store) IsWatched(courseID, lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watched[courseID][lessonID]
}

// WatchedCount is the number of lessons marked watched for the course.
func (s *Store) WatchedCount(courseID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.watched[courseID])
}

// WatchedLessons returns the watched lesson ids of a course, sorted.
func (s *Store) WatchedLessons(courseID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.watched[courseID]))
	for id := range s.watched[courseID] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// WatchedPercentage is round(100 * watched / total), clamped to 100 so
// stale entries for lessons removed upstream can never push the value past
// full. Zero when totalLessons is zero.
func (s *Store) WatchedPercentage(courseID string, totalLessons int) int {
	if totalLessons <= 0 {
		return 0
	}
	pct := int(math.Round(float64(s.WatchedCount(courseID)) / float64(totalLessons) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// persist rewrites the whole record. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	if s.storage == nil {
		return
	}
	b, err := json.Marshal(s.watched)
	if err != nil {
		s.onError("persist", err)
		return
	}
	if err := s.storage.Set(ctx, s.key, b); err != nil {
		s.onError("persist", err)
	}
}
