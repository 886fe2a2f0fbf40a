package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	t.Setenv("COUNTDOWN_INTERVAL", "")
	t.Setenv("PROFILE", "")

	if got := GetDuration("countdown_interval"); got != time.Minute {
		t.Errorf("countdown_interval = %v, want 1m", got)
	}
	if got := GetString("profile"); got != "blox" {
		t.Errorf("profile = %q, want blox", got)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("CHANNEL_ID", "-1001234567890")

	if got := GetDuration("poll_interval"); got != 30*time.Second {
		t.Errorf("poll_interval = %v, want 30s", got)
	}
	if got := GetInt64("channel_id"); got != -1001234567890 {
		t.Errorf("channel_id = %d", got)
	}
}
