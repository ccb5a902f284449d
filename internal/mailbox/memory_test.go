package mailbox

import (
	"context"
	"testing"

	"celebra/models"
)

func record(name string) models.Celebration {
	return models.Celebration{
		GuestName: name,
		Occasion:  models.OccasionBirthday,
		Message:   "Wishing you a very happy birthday!",
		ThemeID:   "golden-lights",
	}
}

func TestSubscribeDeliversCurrentValueFirst(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	if err := store.Publish(context.Background(), record("Sarah")); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	var got []*models.State
	unsub := store.Subscribe(func(s *models.State) {
		got = append(got, s)
	})
	defer unsub()

	if len(got) != 1 {
		t.Fatalf("expected exactly one immediate delivery, got %d", len(got))
	}
	first := got[0]
	if first == nil || !first.Active || first.Celebration == nil {
		t.Fatalf("expected the published record as first delivery, got %+v", first)
	}
	if first.Celebration.GuestName != "Sarah" {
		t.Fatalf("first delivery guest = %q, want Sarah", first.Celebration.GuestName)
	}
}

func TestSubscribeBeforeAnyWriteDeliversNil(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	delivered := false
	var got *models.State
	unsub := store.Subscribe(func(s *models.State) {
		delivered = true
		got = s
	})
	defer unsub()

	if !delivered {
		t.Fatal("expected an immediate delivery")
	}
	if got != nil {
		t.Fatalf("expected nil state before any write, got %+v", got)
	}
}

func TestResetDeliversStandbySentinel(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	if err := store.Reset(context.Background()); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	var got *models.State
	unsub := store.Subscribe(func(s *models.State) { got = s })
	defer unsub()

	if got == nil {
		t.Fatal("standby must be distinguishable from no data yet: got nil")
	}
	if got.Active {
		t.Fatal("expected standby state to be inactive")
	}
	if got.Celebration != nil {
		t.Fatal("expected standby state to carry no celebration")
	}
}

func TestSequentialPublishesArriveInOrder(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	var names []string
	unsub := store.Subscribe(func(s *models.State) {
		if s != nil && s.Celebration != nil {
			names = append(names, s.Celebration.GuestName)
		}
	})
	defer unsub()

	ctx := context.Background()
	if err := store.Publish(ctx, record("Sarah")); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := store.Publish(ctx, record("Robin")); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(names) != 2 || names[0] != "Sarah" || names[1] != "Robin" {
		t.Fatalf("expected deliveries [Sarah Robin], got %v", names)
	}
}

func TestUnsubscribeStopsDeliveryAndIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	count := 0
	unsub := store.Subscribe(func(*models.State) { count++ })

	unsub()
	unsub()

	if err := store.Publish(context.Background(), record("Sarah")); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if count != 1 {
		t.Fatalf("expected only the immediate delivery, got %d calls", count)
	}
}

func TestPublishFansOutToAllSubscribers(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	counts := make([]int, 3)
	for i := range counts {
		i := i
		unsub := store.Subscribe(func(s *models.State) {
			if s != nil {
				counts[i]++
			}
		})
		defer unsub()
	}

	if err := store.Publish(context.Background(), record("Sarah")); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	for i, c := range counts {
		if c != 1 {
			t.Fatalf("subscriber %d received %d deliveries, want 1", i, c)
		}
	}
}

func TestNoopSubscribeDeliversNilOnce(t *testing.T) {
	t.Parallel()

	store := NewNoop()
	calls := 0
	var got *models.State
	unsub := store.Subscribe(func(s *models.State) {
		calls++
		got = s
	})
	defer unsub()

	if err := store.Publish(context.Background(), record("Sarah")); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := store.Reset(context.Background()); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if calls != 1 || got != nil {
		t.Fatalf("expected a single nil delivery in mock mode, got %d calls", calls)
	}
}
