package stock

import (
	"fmt"
	"strings"
	"time"

	"fruitstock-telegram-bot/lib/helpers"
	"fruitstock-telegram-bot/lib/translation"
)

// Renderer turns a payload into the MarkdownV2 body of the stock message.
type Renderer struct {
	Profile Profile
}

func NewRenderer(p Profile) *Renderer {
	return &Renderer{Profile: p}
}

func (r *Renderer) Render(payload Payload, cooldowns Cooldowns, now time.Time) string {
	sections := make([]string, 0, len(r.Profile.Categories)+1)
	sections = append(sections, fmt.Sprintf("*%s*", helpers.EscapeMarkdownV2(r.Profile.Title)))

	for _, category := range r.Profile.Categories {
		sections = append(sections, r.renderSection(category, payload[category.Key], cooldowns, now))
	}

	return strings.Join(sections, "\n\n")
}

func (r *Renderer) renderSection(category Category, items []Item, cooldowns Cooldowns, now time.Time) string {
	label := category.Label
	if label == "" {
		label = category.Key
	}

	lines := []string{fmt.Sprintf("*%s*", helpers.EscapeMarkdownV2(label))}

	var shown int
	for _, item := range items {
		if r.Profile.Ignored(item.Name) {
			continue
		}
		lines = append(lines, r.renderItem(item))
		shown++
	}

	if shown == 0 {
		lines = append(lines, "_"+helpers.EscapeMarkdownV2(translation.Translate("No data"))+"_")
	}

	if r.Profile.TrackCooldown {
		lines = append(lines, "⏱️ "+helpers.EscapeMarkdownV2(
			translation.Translate("New items in: %s", cooldowns.Remaining(category, now)),
		))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderItem(item Item) string {
	line := fmt.Sprintf("%s *%s* → 💰 %s",
		r.Profile.Emoji(item.Name),
		helpers.EscapeMarkdownV2(item.Name),
		helpers.EscapeMarkdownV2(helpers.FormatPrice(int64(item.Price))),
	)
	if r.Profile.Currency != "" {
		line += " " + helpers.EscapeMarkdownV2(r.Profile.Currency)
	}
	return line
}
