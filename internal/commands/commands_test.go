package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"fruitstock-telegram-bot/internal/stock"
	"github.com/pkg/errors"
)

type fakeSource struct {
	payload stock.Payload
	err     error
	calls   int
}

func (f *fakeSource) Fetch(ctx context.Context) (stock.Payload, error) {
	f.calls++
	return f.payload, f.err
}

func bloxProfile(t *testing.T) stock.Profile {
	t.Helper()
	p, err := stock.LookupProfile("blox")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCommandStock(t *testing.T) {
	src := &fakeSource{payload: stock.Payload{"normalStock": {{Name: "Ice-Ice", Price: 350000}}}}

	text, err := CommandStock(context.Background(), src, stock.NewRenderer(bloxProfile(t)), nil)
	if err != nil {
		t.Fatalf("CommandStock: %v", err)
	}
	if !strings.Contains(text, "350,000") {
		t.Errorf("unexpected body:\n%s", text)
	}
}

func TestCommandStock_Countdown(t *testing.T) {
	src := &fakeSource{payload: stock.Payload{"normalStock": {{Name: "Ice-Ice", Price: 350000}}}}
	cooldowns := stock.Cooldowns{"normalStock": time.Now().Add(-90*time.Minute + 30*time.Second)}

	text, err := CommandStock(context.Background(), src, stock.NewRenderer(bloxProfile(t)), cooldowns)
	if err != nil {
		t.Fatalf("CommandStock: %v", err)
	}
	if !strings.Contains(text, "2h 29m") {
		t.Errorf("normalStock should show the running countdown:\n%s", text)
	}
	if strings.Count(text, "No changes yet") != 1 {
		t.Errorf("only mirageStock should be without a countdown:\n%s", text)
	}
}

func TestCommandStock_FetchError(t *testing.T) {
	src := &fakeSource{err: errors.New("down")}

	if _, err := CommandStock(context.Background(), src, stock.NewRenderer(bloxProfile(t)), nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestCommandChart(t *testing.T) {
	cacheClear()
	src := &fakeSource{payload: stock.Payload{
		"normalStock": {{Name: "Ice-Ice", Price: 350000}, {Name: "Bomb-Bomb", Price: 80000}},
	}}

	data, caption, err := CommandChart(context.Background(), src, bloxProfile(t), "normal")
	if err != nil {
		t.Fatalf("CommandChart: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("chart is not a PNG")
	}
	if !strings.Contains(caption, "Normal Stock") {
		t.Errorf("caption = %q", caption)
	}

	if _, _, err := CommandChart(context.Background(), src, bloxProfile(t), "normal"); err != nil {
		t.Fatal(err)
	}
	if src.calls != 1 {
		t.Errorf("second call should be served from cache, fetch calls = %d", src.calls)
	}
}

func TestCommandChart_EmptyCategory(t *testing.T) {
	cacheClear()
	src := &fakeSource{payload: stock.Payload{"normalStock": {{Name: "Rocket-Rocket", Price: 5000}}}}

	data, caption, err := CommandChart(context.Background(), src, bloxProfile(t), "")
	if err != nil {
		t.Fatalf("CommandChart: %v", err)
	}
	if data != nil {
		t.Error("no chart expected when only ignored items are present")
	}
	if !strings.Contains(caption, "No data") {
		t.Errorf("caption = %q", caption)
	}
}

func TestCommandChart_UnknownCategory(t *testing.T) {
	if _, _, err := CommandChart(context.Background(), &fakeSource{}, bloxProfile(t), "legendary"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestResolveCategory(t *testing.T) {
	p := bloxProfile(t)

	cases := map[string]string{
		"":            "normalStock",
		"mirage":      "mirageStock",
		"MirageStock": "mirageStock",
		"mirageStock": "mirageStock",
		"normalStock": "normalStock",
		" normal ":    "normalStock",
	}
	for arg, want := range cases {
		c, ok := resolveCategory(p, arg)
		if !ok || c.Key != want {
			t.Errorf("resolveCategory(%q) = %q, %v; want %q", arg, c.Key, ok, want)
		}
	}
}

func TestPlainLabel(t *testing.T) {
	if got := plainLabel("🏝️ Mirage Stock 🏝️"); got != "Mirage Stock" {
		t.Errorf("plainLabel = %q", got)
	}
}
