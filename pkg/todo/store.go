// Package todo owns the authoritative to-do list state. UI surfaces hold no
// list state of their own: they read snapshots, forward user intents into the
// store's operations, and re-render. The store has no rendering knowledge.
package todo

import (
	"context"
	"errors"
	"strings"
	"sync"

	"tableflip.dev/hoist/pkg/glyph"
	"tableflip.dev/hoist/pkg/item"
)

var (
	// ErrNoEditInProgress is returned by UpdateEditing when no item is
	// currently being edited. This indicates a caller wiring bug, not a
	// user-input problem.
	ErrNoEditInProgress = errors.New("todo: no item is currently being edited")

	// ErrIdentityMismatch is returned by UpdateEditing when the replacement
	// item does not carry the id of the item being edited.
	ErrIdentityMismatch = errors.New("todo: item id does not match the item being edited")
)

// EventType describes the nature of a store change notification.
type EventType int

const (
	EventItemAdded EventType = iota
	EventItemUpdated
	EventItemRemoved
	EventEditBegan
	EventEditEnded
)

// Event is delivered to subscribers after every mutation. Receivers should
// re-read Snapshot rather than reconstruct state from events.
type Event struct {
	Type EventType
	Item item.Item
}

// Snapshot is an immutable view of store state at a point in time. Editing is
// nil when no item is open for inline editing.
type Snapshot struct {
	Items   []item.Item
	Editing *item.Item
}

// Store holds the ordered item list and the edit focus. The focus is tracked
// by item id, not by index, so removal of an earlier item cannot shift it onto
// the wrong element; it resolves to an item lazily at read time.
type Store struct {
	mu        sync.RWMutex
	items     []item.Item
	editingID string

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

func NewStore() *Store {
	return &Store{
		subs: make(map[int]chan Event),
	}
}

// Add appends a new item with a fresh id. A blank task is a validation no-op:
// ok is false and nothing changes. Callers should disable submission rather
// than surface a failure.
func (s *Store) Add(task string, icon glyph.Icon) (item.Item, bool) {
	if strings.TrimSpace(task) == "" {
		return item.Item{}, false
	}

	s.mu.Lock()
	it := item.New(task, icon)
	s.items = append(s.items, it)
	s.mu.Unlock()

	s.notify(Event{Type: EventItemAdded, Item: it})
	return it, true
}

// Remove deletes the item with the given id, preserving the relative order of
// the remainder. Removing the item under edit clears the edit focus. An
// unknown id is a silent no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	endedEdit := s.editingID == id
	if endedEdit {
		s.editingID = ""
	}
	s.mu.Unlock()

	s.notify(Event{Type: EventItemRemoved, Item: removed})
	if endedEdit {
		s.notify(Event{Type: EventEditEnded, Item: removed})
	}
}

// BeginEdit opens the item with the given id for inline editing. At most one
// item is in edit focus at a time; an unknown id is a silent no-op.
func (s *Store) BeginEdit(id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.editingID = id
	it := s.items[idx]
	s.mu.Unlock()

	s.notify(Event{Type: EventEditBegan, Item: it})
}

// UpdateEditing replaces the item under edit with updated, keeping the edit
// focus. It fails with ErrNoEditInProgress outside an edit and with
// ErrIdentityMismatch when updated does not carry the focused item's id; in
// both cases state is unchanged.
func (s *Store) UpdateEditing(updated item.Item) error {
	s.mu.Lock()
	if s.editingID == "" {
		s.mu.Unlock()
		return ErrNoEditInProgress
	}
	if updated.ID != s.editingID {
		s.mu.Unlock()
		return ErrIdentityMismatch
	}
	idx := s.indexLocked(s.editingID)
	if idx < 0 {
		// The focused id always resolves: Remove clears the focus before
		// releasing the lock.
		s.mu.Unlock()
		return ErrNoEditInProgress
	}
	s.items[idx] = updated
	s.mu.Unlock()

	s.notify(Event{Type: EventItemUpdated, Item: updated})
	return nil
}

// EndEdit clears the edit focus. Idempotent: calling it while idle changes
// nothing and notifies nobody.
func (s *Store) EndEdit() {
	s.mu.Lock()
	if s.editingID == "" {
		s.mu.Unlock()
		return
	}
	var ended item.Item
	if idx := s.indexLocked(s.editingID); idx >= 0 {
		ended = s.items[idx]
	}
	s.editingID = ""
	s.mu.Unlock()

	s.notify(Event{Type: EventEditEnded, Item: ended})
}

// Snapshot returns a defensive copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]item.Item, len(s.items))
	copy(items, s.items)

	var editing *item.Item
	if idx := s.indexLocked(s.editingID); idx >= 0 {
		it := s.items[idx]
		editing = &it
	}
	return Snapshot{Items: items, Editing: editing}
}

// Editing resolves the item currently under edit.
func (s *Store) Editing() (item.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexLocked(s.editingID); idx >= 0 {
		return s.items[idx], true
	}
	return item.Item{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Subscribe registers an observer. Events are delivered on the returned
// channel until ctx is cancelled; slow receivers have events dropped rather
// than block mutations, so receivers should treat an event as a hint to
// re-read Snapshot.
func (s *Store) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, 64)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	go func() {
		<-ctx.Done()
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
		close(ch)
	}()

	return ch
}

func (s *Store) notify(ev Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// indexLocked resolves an id to its position, -1 when absent. Callers hold mu.
func (s *Store) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
