package stock

import (
	"testing"
	"time"
)

func TestCooldownsTouch(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	old := Snapshot{"normalStock": {"Ice-Ice": 100}, "mirageStock": {"Dough-Dough": 2800000}}
	cur := Snapshot{"normalStock": {"Ice-Ice": 200}, "mirageStock": {"Dough-Dough": 2800000}}

	var c Cooldowns
	next := c.Touch(old, cur, categories, now)

	if got := next["normalStock"]; !got.Equal(now) {
		t.Errorf("normalStock changed at %v, want %v", got, now)
	}
	if _, ok := next["mirageStock"]; ok {
		t.Error("mirageStock did not change and should not be marked")
	}
	if len(c) != 0 {
		t.Error("Touch must not mutate the receiver")
	}
}

func TestCooldownsRemaining(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	normal := Category{Key: "normalStock", Cooldown: 4 * time.Hour}

	c := Cooldowns{}
	if got := c.Remaining(normal, now); got != "No changes yet" {
		t.Errorf("never changed: got %q", got)
	}

	c["normalStock"] = now.Add(-48 * time.Minute)
	if got := c.Remaining(normal, now); got != "3h 12m" {
		t.Errorf("in cooldown: got %q, want 3h 12m", got)
	}

	c["normalStock"] = now.Add(-5 * time.Hour)
	if got := c.Remaining(normal, now); got != "Reset" {
		t.Errorf("elapsed: got %q, want Reset", got)
	}
}
