package pipeline

import (
	"sync"
	"testing"
)

func TestInboxPostDrainOrder(t *testing.T) {
	in := NewInbox(4)

	for i := 1; i <= 3; i++ {
		if !in.Post(Update{Kind: KindPrice, Value: float64(i)}) {
			t.Fatalf("Post(%d) returned false", i)
		}
	}

	drained := in.DrainAll()
	if len(drained) != 3 {
		t.Fatalf("len(drained) = %d, want 3", len(drained))
	}
	for i, u := range drained {
		if u.Value != float64(i+1) {
			t.Errorf("drained[%d].Value = %v, want %v", i, u.Value, i+1)
		}
	}

	if in.Len() != 0 {
		t.Errorf("Len() = %d after drain, want 0", in.Len())
	}
}

func TestInboxDrainAllEmpty(t *testing.T) {
	in := NewInbox(4)
	if got := in.DrainAll(); got != nil {
		t.Errorf("DrainAll() on empty inbox = %v, want nil", got)
	}
}

func TestInboxGrowsInsteadOfBlocking(t *testing.T) {
	in := NewInbox(2)

	for i := 0; i < 100; i++ {
		if !in.Post(Update{Kind: KindVolatility, Value: float64(i)}) {
			t.Fatalf("Post(%d) returned false", i)
		}
	}

	stats := in.Stats()
	if stats.Queued != 100 {
		t.Errorf("Queued = %d, want 100", stats.Queued)
	}
	if stats.Capacity < 100 {
		t.Errorf("Capacity = %d, expected growth past 100", stats.Capacity)
	}

	drained := in.DrainAll()
	for i, u := range drained {
		if u.Value != float64(i) {
			t.Fatalf("order lost after growth: drained[%d].Value = %v", i, u.Value)
		}
	}
}

func TestInboxTryDrainOne(t *testing.T) {
	in := NewInbox(4)

	if _, ok := in.TryDrainOne(); ok {
		t.Error("TryDrainOne on empty inbox returned ok=true")
	}

	in.Post(Update{Kind: KindRiskFreeRate, Value: 10.75})
	u, ok := in.TryDrainOne()
	if !ok || u.Value != 10.75 {
		t.Errorf("TryDrainOne = (%v, %v), want (10.75, true)", u.Value, ok)
	}
}

func TestInboxClosedDropsSilently(t *testing.T) {
	in := NewInbox(4)
	in.Close()

	if in.Post(Update{Kind: KindPrice, Value: 1}) {
		t.Error("Post on closed inbox returned true")
	}
	if got := in.Stats().Dropped; got != 1 {
		t.Errorf("Dropped = %d, want 1", got)
	}
}

func TestInboxConcurrentProducers(t *testing.T) {
	in := NewInbox(8)

	const producers = 10
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				in.Post(Update{Kind: KindPrice, Value: 1})
			}
		}()
	}
	wg.Wait()

	total := 0
	for {
		batch := in.DrainAll()
		if len(batch) == 0 {
			break
		}
		total += len(batch)
	}
	if total != producers*perProducer {
		t.Errorf("drained %d updates, want %d", total, producers*perProducer)
	}
}
