package todo

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/hoist/pkg/glyph"
	"tableflip.dev/hoist/pkg/item"
)

func mustAdd(t *testing.T, s *Store, task string, icon glyph.Icon) item.Item {
	t.Helper()
	it, ok := s.Add(task, icon)
	if !ok {
		t.Fatalf("Add(%q) rejected", task)
	}
	return it
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, "Buy milk", glyph.Default)
	mustAdd(t, s, "Walk dog", glyph.Event)
	mustAdd(t, s, "File taxes", glyph.Square)

	snap := s.Snapshot()
	want := []string{"Buy milk", "Walk dog", "File taxes"}
	if len(snap.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(snap.Items), len(want))
	}
	for i, task := range want {
		if snap.Items[i].Task != task {
			t.Errorf("items[%d].Task = %q, want %q", i, snap.Items[i].Task, task)
		}
	}
	if snap.Items[1].Icon != glyph.Event {
		t.Errorf("items[1].Icon = %v, want Event", snap.Items[1].Icon)
	}
}

func TestAddRejectsBlankTask(t *testing.T) {
	s := NewStore()
	for _, task := range []string{"", "   ", "\t\n"} {
		if _, ok := s.Add(task, glyph.Default); ok {
			t.Errorf("Add(%q) accepted, want rejection", task)
		}
	}
	if got := s.Len(); got != 0 {
		t.Errorf("store has %d items after blank adds, want 0", got)
	}
}

func TestIDUniqueness(t *testing.T) {
	s := NewStore()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		it := mustAdd(t, s, "task", glyph.Default)
		if seen[it.ID] {
			t.Fatalf("duplicate id %q", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestRemovePreservesOrderOfRemainder(t *testing.T) {
	s := NewStore()
	a := mustAdd(t, s, "a", glyph.Default)
	mustAdd(t, s, "b", glyph.Default)
	mustAdd(t, s, "c", glyph.Default)

	s.Remove(a.ID)

	snap := s.Snapshot()
	if len(snap.Items) != 2 || snap.Items[0].Task != "b" || snap.Items[1].Task != "c" {
		t.Fatalf("unexpected items after removal: %+v", snap.Items)
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, "a", glyph.Default)
	s.Remove("no-such-id")
	if got := s.Len(); got != 1 {
		t.Errorf("store has %d items, want 1", got)
	}
}

func TestRemoveFocusedItemClearsEditFocus(t *testing.T) {
	s := NewStore()
	b := mustAdd(t, s, "b", glyph.Default)
	s.BeginEdit(b.ID)
	s.Remove(b.ID)

	if snap := s.Snapshot(); snap.Editing != nil {
		t.Errorf("edit focus survived removal of the focused item: %+v", snap.Editing)
	}
	if err := s.UpdateEditing(b); !errors.Is(err, ErrNoEditInProgress) {
		t.Errorf("UpdateEditing after removal = %v, want ErrNoEditInProgress", err)
	}
}

func TestFocusSurvivesUnrelatedRemoval(t *testing.T) {
	s := NewStore()
	a := mustAdd(t, s, "x", glyph.Default)
	b := mustAdd(t, s, "y", glyph.Default)
	mustAdd(t, s, "z", glyph.Default)

	s.BeginEdit(b.ID)
	s.Remove(a.ID)

	snap := s.Snapshot()
	if len(snap.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(snap.Items))
	}
	if snap.Editing == nil {
		t.Fatal("edit focus lost after unrelated removal")
	}
	if snap.Editing.ID != b.ID {
		t.Errorf("focused item id = %q, want %q (focus shifted onto the wrong element)",
			snap.Editing.ID, b.ID)
	}
}

func TestBeginEditUnknownIDIsNoOp(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, "a", glyph.Default)
	s.BeginEdit("no-such-id")
	if snap := s.Snapshot(); snap.Editing != nil {
		t.Errorf("edit focus set for unknown id: %+v", snap.Editing)
	}
}

func TestUpdateEditingOutsideEditFails(t *testing.T) {
	s := NewStore()
	a := mustAdd(t, s, "a", glyph.Default)
	if err := s.UpdateEditing(a.WithTask("b")); !errors.Is(err, ErrNoEditInProgress) {
		t.Errorf("UpdateEditing while idle = %v, want ErrNoEditInProgress", err)
	}
}

func TestUpdateEditingIdentityMismatch(t *testing.T) {
	s := NewStore()
	b := mustAdd(t, s, "y", glyph.Default)
	c := mustAdd(t, s, "z", glyph.Default)

	s.BeginEdit(b.ID)
	err := s.UpdateEditing(c.WithTask("hacked"))
	if !errors.Is(err, ErrIdentityMismatch) {
		t.Fatalf("UpdateEditing with foreign id = %v, want ErrIdentityMismatch", err)
	}

	snap := s.Snapshot()
	if snap.Items[0].Task != "y" || snap.Items[1].Task != "z" {
		t.Errorf("items changed after failed edit: %+v", snap.Items)
	}
	if snap.Editing == nil || snap.Editing.ID != b.ID {
		t.Errorf("edit focus changed after failed edit: %+v", snap.Editing)
	}
}

func TestUpdateEditingReplacesFocusedItem(t *testing.T) {
	s := NewStore()
	b := mustAdd(t, s, "y", glyph.Default)

	s.BeginEdit(b.ID)
	if err := s.UpdateEditing(b.WithTask("y2").WithIcon(glyph.Done)); err != nil {
		t.Fatalf("UpdateEditing: %v", err)
	}

	snap := s.Snapshot()
	if snap.Items[0].Task != "y2" || snap.Items[0].Icon != glyph.Done {
		t.Errorf("item not replaced: %+v", snap.Items[0])
	}
	if snap.Editing == nil || snap.Editing.Task != "y2" {
		t.Errorf("edit focus did not track the replacement: %+v", snap.Editing)
	}
}

func TestEndEditIdempotent(t *testing.T) {
	s := NewStore()
	b := mustAdd(t, s, "y", glyph.Default)

	s.EndEdit() // idle, nothing to do

	s.BeginEdit(b.ID)
	s.EndEdit()
	s.EndEdit()

	snap := s.Snapshot()
	if snap.Editing != nil {
		t.Errorf("edit focus set after EndEdit: %+v", snap.Editing)
	}
	if len(snap.Items) != 1 {
		t.Errorf("items changed by EndEdit: %+v", snap.Items)
	}
}

func TestSnapshotIsDefensiveCopy(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, "a", glyph.Default)

	snap := s.Snapshot()
	snap.Items[0].Task = "mutated"

	if got := s.Snapshot().Items[0].Task; got != "a" {
		t.Errorf("snapshot mutation leaked into store: %q", got)
	}
}

func drainUntil(t *testing.T, ch <-chan Event, want EventType) Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				t.Fatal("event channel closed early")
			}
			if ev.Type == want {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event type %d", want)
		}
	}
}

func TestSubscribeDeliversMutationEvents(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Subscribe(ctx)

	it := mustAdd(t, s, "watched", glyph.Default)
	ev := drainUntil(t, ch, EventItemAdded)
	if ev.Item.ID != it.ID {
		t.Errorf("added event carries id %q, want %q", ev.Item.ID, it.ID)
	}

	s.BeginEdit(it.ID)
	drainUntil(t, ch, EventEditBegan)

	if err := s.UpdateEditing(it.WithTask("watched closely")); err != nil {
		t.Fatalf("UpdateEditing: %v", err)
	}
	ev = drainUntil(t, ch, EventItemUpdated)
	if ev.Item.Task != "watched closely" {
		t.Errorf("updated event carries task %q", ev.Item.Task)
	}

	s.Remove(it.ID)
	drainUntil(t, ch, EventItemRemoved)
	drainUntil(t, ch, EventEditEnded)
}

func TestSubscribeChannelClosesOnCancel(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	ch := s.Subscribe(ctx)
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestScenarioEditSurvivesEarlierRemoval(t *testing.T) {
	// items [A, B, C], edit B, remove A: the focused item must still be B.
	s := NewStore()
	a := mustAdd(t, s, "x", glyph.Default)
	b := mustAdd(t, s, "y", glyph.Default)
	mustAdd(t, s, "z", glyph.Default)

	s.BeginEdit(b.ID)
	s.Remove(a.ID)

	if err := s.UpdateEditing(b.WithTask("y edited")); err != nil {
		t.Fatalf("UpdateEditing after unrelated removal: %v", err)
	}
	snap := s.Snapshot()
	if snap.Items[0].Task != "y edited" {
		t.Errorf("edit landed on the wrong element: %+v", snap.Items)
	}
}
