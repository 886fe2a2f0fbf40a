package stock

import (
	"time"

	"fruitstock-telegram-bot/lib/helpers"
	"fruitstock-telegram-bot/lib/translation"
)

// Cooldowns holds the last time each category's stock changed.
type Cooldowns map[string]time.Time

// Touch returns a copy of c where every category whose items or prices differ
// between old and current is marked as changed at now.
func (c Cooldowns) Touch(old, current Snapshot, categories []string, now time.Time) Cooldowns {
	next := make(Cooldowns, len(c))
	for k, v := range c {
		next[k] = v
	}
	for _, category := range categories {
		if !old.CategoryEqual(current, category) {
			next[category] = now
		}
	}
	return next
}

// Remaining describes how long until the category restocks.
func (c Cooldowns) Remaining(category Category, now time.Time) string {
	last, ok := c[category.Key]
	if !ok || last.IsZero() {
		return translation.Translate("No changes yet")
	}

	remaining := last.Add(category.Cooldown).Sub(now)
	if remaining <= 0 {
		return translation.Translate("Reset")
	}
	return helpers.FormatCountdown(remaining)
}
