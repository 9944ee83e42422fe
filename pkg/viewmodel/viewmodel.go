// Package viewmodel is the observable surface a UI host binds to: the
// current filtered list, the current statistics snapshot, and the mutation
// methods, with change notifications after every mutation. It stays
// UI-framework-agnostic; hosts subscribe with a plain callback.
package viewmodel

import (
	"context"
	"sync"
	"time"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/query"
	"tableflip.dev/daybook/pkg/record"
	"tableflip.dev/daybook/pkg/stats"
	"tableflip.dev/daybook/pkg/store"
)

// ViewModel wraps one journal's store. The embedded mutex serializes access
// so a watch goroutine and a UI thread can share it; beneath the lock the
// store stays strictly single-writer.
type ViewModel struct {
	mu sync.Mutex

	s           *store.Store
	displayName func(catalog.Category) string
	now         func() time.Time

	pred query.Predicate

	// listeners has its own lock because changed fires while mu is held.
	lmu       sync.Mutex
	listeners []func()
}

// Option customises view-model construction.
type Option func(*ViewModel)

// WithDisplayName supplies the category display-name lookup used for text
// search. Typically glyph.DisplayName(journal).
func WithDisplayName(fn func(catalog.Category) string) Option {
	return func(vm *ViewModel) {
		vm.displayName = fn
	}
}

// WithClock substitutes the wall clock used for statistics. For tests.
func WithClock(now func() time.Time) Option {
	return func(vm *ViewModel) {
		vm.now = now
	}
}

func New(s *store.Store, opts ...Option) *ViewModel {
	vm := &ViewModel{
		s:   s,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(vm)
	}
	s.Subscribe(vm.changed)
	return vm
}

// Subscribe registers fn to run after every collection change. Callbacks run
// synchronously on the mutating call.
func (vm *ViewModel) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	vm.lmu.Lock()
	vm.listeners = append(vm.listeners, fn)
	vm.lmu.Unlock()
}

func (vm *ViewModel) changed() {
	vm.lmu.Lock()
	fns := append([]func(){}, vm.listeners...)
	vm.lmu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Records returns the current filtered list in the default display order.
func (vm *ViewModel) Records() []*record.Record {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	out := query.Filter(vm.s.All(), vm.pred, query.WithDisplayName(vm.displayName))
	query.SortByDisplayText(out)
	return out
}

// History returns the archive/history view: every record, archived included,
// most recent first.
func (vm *ViewModel) History() []*record.Record {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	pred := vm.pred
	pred.IncludeArchived = true
	out := query.Filter(vm.s.All(), pred, query.WithDisplayName(vm.displayName))
	query.SortByCreatedDesc(out)
	return out
}

// Stats recomputes the statistics snapshot from the full collection. Nothing
// is cached across mutations.
func (vm *ViewModel) Stats() stats.Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return stats.Compute(vm.s.Catalog(), vm.s.All(), vm.now())
}

// SetFilters replaces the active predicate.
func (vm *ViewModel) SetFilters(p query.Predicate) {
	vm.mu.Lock()
	vm.pred = p
	vm.mu.Unlock()
	vm.changed()
}

// Search sets only the text filter, keeping the other predicate axes.
func (vm *ViewModel) Search(text string) {
	vm.mu.Lock()
	vm.pred.Text = text
	vm.mu.Unlock()
	vm.changed()
}

// Filters returns the active predicate.
func (vm *ViewModel) Filters() query.Predicate {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.pred
}

func (vm *ViewModel) Add(category catalog.Category, payload string) (*record.Record, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.s.Add(record.New(vm.s.Journal(), category, payload))
}

func (vm *ViewModel) Update(id string, mutate func(*record.Record)) (*record.Record, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.s.Update(id, mutate)
}

func (vm *ViewModel) Remove(id string) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.s.Remove(id)
}

func (vm *ViewModel) ToggleFavorite(id string) (*record.Record, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.s.ToggleFavorite(id)
}

func (vm *ViewModel) ToggleArchive(id string) (*record.Record, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.s.ToggleArchive(id)
}

// Watch consumes persistence events and reloads the store when an external
// writer touches this journal. It blocks until ctx is done or the channel
// closes; run it on its own goroutine.
func (vm *ViewModel) Watch(ctx context.Context, events <-chan store.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Type == store.EventJournalChanged && ev.Journal != vm.journal() {
				continue
			}
			vm.mu.Lock()
			vm.s.Reload(ctx)
			vm.mu.Unlock()
		}
	}
}

func (vm *ViewModel) journal() catalog.Journal {
	return vm.s.Journal()
}
