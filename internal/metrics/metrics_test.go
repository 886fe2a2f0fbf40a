package metrics

import (
	"path/filepath"
	"testing"

	"fruitstock-telegram-bot/internal/database"
	"fruitstock-telegram-bot/internal/tracker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve(t *testing.T) {
	m := NewBotMetrics(prometheus.NewRegistry())

	m.Observe(tracker.Result{Trigger: tracker.TriggerPoll, Status: tracker.Published, Action: tracker.ActionSent})
	m.Observe(tracker.Result{Trigger: tracker.TriggerPoll, Status: tracker.Unchanged, Action: tracker.ActionNone})
	m.Observe(tracker.Result{Trigger: tracker.TriggerPoll, Status: tracker.FetchFailed, Action: tracker.ActionNone})
	m.Observe(tracker.Result{Trigger: tracker.TriggerCountdown, Status: tracker.Unchanged, Action: tracker.ActionNone})

	if got := testutil.ToFloat64(m.Ticks.WithLabelValues("poll", "published")); got != 1 {
		t.Errorf("published ticks = %v", got)
	}
	if got := testutil.ToFloat64(m.Ticks.WithLabelValues("poll", "fetch_failed")); got != 1 {
		t.Errorf("fetch_failed ticks = %v", got)
	}
	if got := testutil.ToFloat64(m.PublishActions.WithLabelValues("sent")); got != 1 {
		t.Errorf("sent actions = %v", got)
	}
	if got := testutil.CollectAndCount(m.Ticks); got != 3 {
		t.Errorf("idle countdown refreshes should not be counted, series = %d", got)
	}
	if testutil.ToFloat64(m.LastSuccess) == 0 {
		t.Error("last success gauge not set")
	}
}

func TestSaveAndLoad(t *testing.T) {
	if err := database.InitDB(filepath.Join(t.TempDir(), "bot.db")); err != nil {
		t.Fatal(err)
	}
	defer database.CloseDB()

	first := NewBotMetrics(prometheus.NewRegistry())
	first.CommandsProcessed.Add(4)
	first.Observe(tracker.Result{Trigger: tracker.TriggerPoll, Status: tracker.Published, Action: tracker.ActionEdited})
	first.Observe(tracker.Result{Trigger: tracker.TriggerPoll, Status: tracker.Published, Action: tracker.ActionEdited})
	first.SaveToDB()

	second := NewBotMetrics(prometheus.NewRegistry())
	second.LoadFromDB()

	if got := testutil.ToFloat64(second.CommandsProcessed); got != 4 {
		t.Errorf("commands_processed = %v, want 4", got)
	}
	if got := testutil.ToFloat64(second.Ticks.WithLabelValues("poll", "published")); got != 2 {
		t.Errorf("ticks = %v, want 2", got)
	}
	if got := testutil.ToFloat64(second.PublishActions.WithLabelValues("edited")); got != 2 {
		t.Errorf("edited = %v, want 2", got)
	}
}
