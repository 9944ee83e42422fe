package store

import (
	"context"
	"strings"
	"time"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/record"
)

// Store is the single source of truth for one journal's records. All
// mutation routes through it so persistence and updated-at stamping stay in
// one place; readers get cloned snapshots.
//
// Persistence is in-memory-first: a failed write comes back as a
// *PersistenceError but the in-memory change stands for the session.
type Store struct {
	cat     catalog.Catalog
	p       Persistence
	records []*record.Record // insertion order

	now  func() time.Time
	subs []func()
}

// Option customises store construction.
type Option func(*Store)

// WithClock substitutes the wall clock. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore loads the journal's records from persistence. A nil Persistence
// yields a memory-only store, which is what most tests want.
func NewStore(ctx context.Context, cat catalog.Catalog, p Persistence, opts ...Option) *Store {
	s := &Store{
		cat: cat,
		p:   p,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if p != nil {
		s.records = p.List(ctx, cat.Journal)
	}
	return s
}

// Journal returns the journal this store holds.
func (s *Store) Journal() catalog.Journal {
	return s.cat.Journal
}

// Catalog returns the journal's catalog.
func (s *Store) Catalog() catalog.Catalog {
	return s.cat
}

// Subscribe registers fn to run after every successful mutation. The store
// is single-writer; callbacks run synchronously on the mutating call.
func (s *Store) Subscribe(fn func()) {
	if fn != nil {
		s.subs = append(s.subs, fn)
	}
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// Reload replaces the in-memory collection with the persisted one. Used when
// a watch event reports an external writer touched this journal.
func (s *Store) Reload(ctx context.Context) {
	if s.p == nil {
		return
	}
	s.records = s.p.List(ctx, s.cat.Journal)
	s.notify()
}

// Add validates, stamps, and appends a record. For date-partitioned journals
// an add on an already-occupied day updates the existing record in place
// instead of inserting a duplicate.
func (s *Store) Add(r *record.Record) (*record.Record, error) {
	if r == nil {
		return nil, &ValidationError{Field: "record", Reason: "nil"}
	}
	if !s.cat.Contains(r.Category) {
		return nil, &ValidationError{Field: "category", Reason: "not in journal " + string(s.cat.Journal)}
	}
	if s.cat.RequirePayload && strings.TrimSpace(r.Payload) == "" {
		return nil, &ValidationError{Field: "payload", Reason: "required"}
	}

	now := s.now()

	if s.cat.DatePartitioned {
		if existing := s.findByDate(now); existing != nil {
			return s.Update(existing.ID, func(cur *record.Record) {
				cur.Category = r.Category
				cur.Payload = r.Payload
			})
		}
	}

	stored := r.Clone()
	stored.Journal = s.cat.Journal
	stored.Payload = record.Truncate(stored.Payload, s.cat.PayloadLimit)
	if stored.ID == "" {
		stored.ID = NewID()
	}
	stored.Created = record.Timestamp{Time: now}
	stored.Updated = record.Timestamp{Time: now}

	s.records = append(s.records, stored)

	var perr error
	if s.p != nil {
		if err := s.p.Store(stored); err != nil {
			perr = &PersistenceError{Op: "add", Err: err}
		}
	}
	s.notify()
	return stored.Clone(), perr
}

// Update applies mutate to the record with the given id, re-truncates the
// payload, and refreshes the updated-at stamp.
func (s *Store) Update(id string, mutate func(*record.Record)) (*record.Record, error) {
	cur := s.find(id)
	if cur == nil {
		return nil, &NotFoundError{ID: id}
	}

	created := cur.Created
	if mutate != nil {
		mutate(cur)
	}
	// Identity and creation time are immutable, whatever the mutator did.
	cur.ID = id
	cur.Journal = s.cat.Journal
	cur.Created = created
	cur.Payload = record.Truncate(cur.Payload, s.cat.PayloadLimit)
	cur.Updated = record.Timestamp{Time: s.now()}

	var perr error
	if s.p != nil {
		if err := s.p.Store(cur); err != nil {
			perr = &PersistenceError{Op: "update", Err: err}
		}
	}
	s.notify()
	return cur.Clone(), perr
}

// Remove deletes by id. Removing an absent id is a no-op, not an error, so a
// double-tapped delete cannot fail the second time.
func (s *Store) Remove(id string) error {
	for i, r := range s.records {
		if r.ID == id {
			removed := r
			s.records = append(s.records[:i], s.records[i+1:]...)
			var perr error
			if s.p != nil {
				if err := s.p.Delete(removed); err != nil {
					perr = &PersistenceError{Op: "remove", Err: err}
				}
			}
			s.notify()
			return perr
		}
	}
	return nil
}

// ToggleFavorite flips the favorite flag.
func (s *Store) ToggleFavorite(id string) (*record.Record, error) {
	return s.Update(id, func(r *record.Record) {
		r.Favorite = !r.Favorite
	})
}

// ToggleArchive moves the record between the active and archived partitions.
func (s *Store) ToggleArchive(id string) (*record.Record, error) {
	return s.Update(id, func(r *record.Record) {
		r.Archived = !r.Archived
	})
}

// All returns the full collection in insertion order as a cloned snapshot.
func (s *Store) All() []*record.Record {
	out := make([]*record.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}
	return out
}

// Get returns the record with the given id, or a NotFoundError.
func (s *Store) Get(id string) (*record.Record, error) {
	if r := s.find(id); r != nil {
		return r.Clone(), nil
	}
	return nil, &NotFoundError{ID: id}
}

// FindByDate returns the record created on the same local calendar day as
// date, or nil if the day is empty. Matching is by calendar day, not exact
// timestamp.
func (s *Store) FindByDate(date time.Time) *record.Record {
	if r := s.findByDate(date); r != nil {
		return r.Clone()
	}
	return nil
}

func (s *Store) find(id string) *record.Record {
	for _, r := range s.records {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *Store) findByDate(date time.Time) *record.Record {
	for _, r := range s.records {
		if r.Created.SameDay(date) {
			return r
		}
	}
	return nil
}
