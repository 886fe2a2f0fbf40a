package stock

import (
	"testing"
)

func samplePayload() Payload {
	return Payload{
		"normalStock": {
			{Name: "Ice-Ice", Price: 350000},
			{Name: "Bomb-Bomb", Price: 80000},
		},
		"mirageStock": {
			{Name: "Dough-Dough", Price: 2800000},
		},
	}
}

var categories = []string{"normalStock", "mirageStock"}

func TestBuildSnapshot_Deterministic(t *testing.T) {
	a := BuildSnapshot(samplePayload(), categories)
	b := BuildSnapshot(samplePayload(), categories)

	if !a.Equal(b) {
		t.Fatalf("same payload produced different snapshots: %v vs %v", a, b)
	}
	if got := a["normalStock"]["Ice-Ice"]; got != 350000 {
		t.Errorf("Ice-Ice price = %d, want 350000", got)
	}
	if got := a["mirageStock"]["Dough-Dough"]; got != 2800000 {
		t.Errorf("Dough-Dough price = %d, want 2800000", got)
	}
}

func TestBuildSnapshot_MissingCategory(t *testing.T) {
	s := BuildSnapshot(Payload{"normalStock": {{Name: "Ice-Ice", Price: 100}}}, categories)

	items, ok := s["mirageStock"]
	if !ok {
		t.Fatal("missing category should still be present in snapshot")
	}
	if len(items) != 0 {
		t.Errorf("expected empty mirageStock, got %v", items)
	}
}

func TestBuildSnapshot_IgnoresUnknownCategories(t *testing.T) {
	p := samplePayload()
	p["eventStock"] = []Item{{Name: "Kitsune-Kitsune", Price: 8000000}}

	s := BuildSnapshot(p, categories)
	if _, ok := s["eventStock"]; ok {
		t.Error("eventStock is not a configured category")
	}
}

func TestSnapshotEqual(t *testing.T) {
	a := BuildSnapshot(samplePayload(), categories)

	changedPrice := samplePayload()
	changedPrice["normalStock"][0].Price = 1
	if a.Equal(BuildSnapshot(changedPrice, categories)) {
		t.Error("price change should make snapshots differ")
	}

	removed := samplePayload()
	removed["mirageStock"] = nil
	if a.Equal(BuildSnapshot(removed, categories)) {
		t.Error("removed item should make snapshots differ")
	}

	if Snapshot(nil).Equal(a) {
		t.Error("empty snapshot should not equal a populated one")
	}
	if !Snapshot(nil).Equal(Snapshot{}) {
		t.Error("two empty snapshots should be equal")
	}
}
