package commands

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"fruitstock-telegram-bot/internal/stock"
	"fruitstock-telegram-bot/lib/helpers"
	"fruitstock-telegram-bot/lib/translation"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const chartCacheDuration = time.Minute

// CommandChart renders a bar chart of the current prices in one category.
// When the category is empty no image is returned, only a caption.
func CommandChart(ctx context.Context, source stock.Source, profile stock.Profile, argument string) ([]byte, string, error) {
	log.Debugf("processing command /chart with argument :%s", argument)

	category, ok := resolveCategory(profile, argument)
	if !ok {
		return nil, "", errors.Errorf("unknown category %q", argument)
	}

	if cachedItem, found := cacheGet(category.Key); found {
		log.Debugf("returning cached chart for %s", category.Key)
		return cachedItem.ChartData, cachedItem.Caption, nil
	}

	payload, err := source.Fetch(ctx)
	if err != nil {
		return nil, "", errors.Wrap(err, "command /chart")
	}

	var items []stock.Item
	for _, item := range payload[category.Key] {
		if !profile.Ignored(item.Name) {
			items = append(items, item)
		}
	}

	caption := fmt.Sprintf("*%s*", helpers.EscapeMarkdownV2(categoryLabel(category)))
	if len(items) == 0 {
		return nil, caption + "\n" + helpers.EscapeMarkdownV2(translation.Translate("No data")), nil
	}

	chartData, err := renderChart(plainLabel(categoryLabel(category)), items)
	if err != nil {
		return nil, "", errors.Wrap(err, "could not render chart")
	}

	cacheSet(category.Key, chartData, caption, chartCacheDuration)

	return chartData, caption, nil
}

func renderChart(title string, items []stock.Item) ([]byte, error) {
	bars := make([]chart.Value, 0, len(items))
	var maxPrice float64
	for _, item := range items {
		price := float64(item.Price)
		if price > maxPrice {
			maxPrice = price
		}
		bars = append(bars, chart.Value{Value: price, Label: item.Name})
	}
	if maxPrice <= 0 {
		maxPrice = 1
	}

	graph := chart.BarChart{
		Title:      title,
		TitleStyle: chart.Style{FontColor: drawing.Color{R: 200, G: 200, B: 200, A: 255}},
		Background: chart.Style{
			FillColor: drawing.Color{R: 55, G: 55, B: 55, A: 255},
			Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas:     chart.Style{FillColor: drawing.Color{R: 55, G: 55, B: 55, A: 255}},
		Width:      1200,
		Height:     600,
		BarWidth:   50,
		BarSpacing: 20,
		XAxis: chart.Style{
			FontColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
			FontSize:  10,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: drawing.Color{R: 200, G: 200, B: 200, A: 255}},
			Range: &chart.ContinuousRange{Min: 0, Max: maxPrice * 1.1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return helpers.FormatPrice(int64(f))
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// resolveCategory matches "mirage", "mirageStock" or "" (first category).
func resolveCategory(profile stock.Profile, argument string) (stock.Category, bool) {
	if c, ok := profile.Category(strings.TrimSpace(argument)); ok {
		return c, true
	}

	argument = strings.ToLower(strings.TrimSpace(argument))
	if argument == "" {
		if len(profile.Categories) == 0 {
			return stock.Category{}, false
		}
		return profile.Categories[0], true
	}

	for _, c := range profile.Categories {
		if strings.HasPrefix(strings.ToLower(c.Key), argument) {
			return c, true
		}
	}
	return stock.Category{}, false
}

func categoryLabel(c stock.Category) string {
	if c.Label != "" {
		return c.Label
	}
	return c.Key
}

// plainLabel drops emoji; the chart font has no glyphs for them.
func plainLabel(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
