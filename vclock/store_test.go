package vclock

import (
	"testing"
	"time"
)

func snapAt(ms int64) Snapshot {
	return Snapshot{
		DisplayTime: time.UnixMilli(ms),
		RealTime:    time.UnixMilli(ms),
		Rate:        1.0,
		Running:     true,
	}
}

func TestSubscribeDeliversCurrentSnapshot(t *testing.T) {
	store := NewSnapshotStore(snapAt(100))

	var got []Snapshot
	store.Subscribe(func(s Snapshot) { got = append(got, s) })

	if len(got) != 1 || got[0].DisplayTime.UnixMilli() != 100 {
		t.Fatalf("Expected immediate delivery of current snapshot, got %v", got)
	}
}

func TestPublishOrderPreserved(t *testing.T) {
	store := NewSnapshotStore(snapAt(0))

	var seen []int64
	store.Subscribe(func(s Snapshot) { seen = append(seen, s.DisplayTime.UnixMilli()) })

	for ms := int64(1); ms <= 5; ms++ {
		store.Publish(snapAt(ms))
	}

	expected := []int64{0, 1, 2, 3, 4, 5}
	if len(seen) != len(expected) {
		t.Fatalf("Expected %d deliveries, got %d", len(expected), len(seen))
	}
	for i, ms := range expected {
		if seen[i] != ms {
			t.Errorf("delivery %d: expected %dms, got %dms", i, ms, seen[i])
		}
	}

	if cur := store.Current(); cur.DisplayTime.UnixMilli() != 5 {
		t.Errorf("Expected current snapshot at 5ms, got %dms", cur.DisplayTime.UnixMilli())
	}
}

func TestSubscribersNotifiedInSubscriptionOrder(t *testing.T) {
	store := NewSnapshotStore(snapAt(0))

	var order []string
	store.Subscribe(func(Snapshot) { order = append(order, "first") })
	store.Subscribe(func(Snapshot) { order = append(order, "second") })
	store.Subscribe(func(Snapshot) { order = append(order, "third") })
	order = order[:0] // drop the subscription-time deliveries

	store.Publish(snapAt(1))

	expected := []string{"first", "second", "third"}
	if len(order) != len(expected) {
		t.Fatalf("Expected %d notifications, got %d", len(expected), len(order))
	}
	for i, name := range expected {
		if order[i] != name {
			t.Errorf("notification %d: expected %s, got %s", i, name, order[i])
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	store := NewSnapshotStore(snapAt(0))

	count := 0
	id := store.Subscribe(func(Snapshot) { count++ })

	store.Publish(snapAt(1))
	store.Unsubscribe(id)
	store.Publish(snapAt(2))
	store.Publish(snapAt(3))

	if count != 2 { // subscription delivery + one publish
		t.Errorf("Expected 2 deliveries before unsubscribe, got %d", count)
	}

	// Unknown handles are ignored
	store.Unsubscribe("not-a-handle")
	store.Unsubscribe(id)
}
