package database

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) {
	t.Helper()
	if err := InitDB(filepath.Join(t.TempDir(), "data", "bot.db")); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { CloseDB() })
}

func TestMetricRoundTrip(t *testing.T) {
	openTestDB(t)

	if v, err := GetMetric("commands_processed"); err != nil || v != 0 {
		t.Fatalf("missing metric = %v, %v; want 0, nil", v, err)
	}

	if err := SaveMetric("commands_processed", 12); err != nil {
		t.Fatal(err)
	}
	if err := SaveMetric("commands_processed", 15); err != nil {
		t.Fatal(err)
	}

	v, err := GetMetric("commands_processed")
	if err != nil {
		t.Fatal(err)
	}
	if v != 15 {
		t.Errorf("commands_processed = %v, want 15", v)
	}
}

func TestLabeledMetrics(t *testing.T) {
	openTestDB(t)

	SaveMetricWithLabels("ticks_total", "status", "published", 3)
	SaveMetricWithLabels("ticks_total", "status", "fetch_failed", 1)
	SaveMetric("ticks_total", 99)

	got, err := GetMetricsWithLabels("ticks_total")
	if err != nil {
		t.Fatal(err)
	}
	if got["status"]["published"] != 3 || got["status"]["fetch_failed"] != 1 {
		t.Errorf("unexpected labeled values %v", got)
	}
	if len(got) != 1 {
		t.Errorf("unlabeled value leaked into labeled result: %v", got)
	}
}
