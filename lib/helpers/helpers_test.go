package helpers

import (
	"testing"
	"time"
)

func TestFormatPrice(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		100:      "100",
		1000:     "1,000",
		150000:   "150,000",
		3500000:  "3,500,000",
		-2500000: "-2,500,000",
	}
	for in, want := range cases {
		if got := FormatPrice(in); got != want {
			t.Errorf("FormatPrice(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeMarkdownV2(t *testing.T) {
	got := EscapeMarkdownV2("T-Rex-T-Rex (x1.5)!")
	want := `T\-Rex\-T\-Rex \(x1\.5\)\!`
	if got != want {
		t.Errorf("EscapeMarkdownV2 = %q, want %q", got, want)
	}
}

func TestEscapeMarkdownV2_Backslash(t *testing.T) {
	if got := EscapeMarkdownV2(`a\b`); got != `a\\b` {
		t.Errorf("got %q", got)
	}
}

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0h 0m"},
		{-time.Minute, "0h 0m"},
		{59 * time.Second, "0h 0m"},
		{3*time.Hour + 12*time.Minute + 40*time.Second, "3h 12m"},
		{4 * time.Hour, "4h 0m"},
	}
	for _, c := range cases {
		if got := FormatCountdown(c.in); got != c.want {
			t.Errorf("FormatCountdown(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
