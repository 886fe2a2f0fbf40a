package stock

import (
	"sort"
	"time"

	"github.com/pkg/errors"
)

// Category describes one section of the stock message.
type Category struct {
	Key      string
	Label    string
	Cooldown time.Duration
}

// Profile bundles everything that differs between stock feeds: which categories
// are shown, how items are decorated and whether restock countdowns are tracked.
type Profile struct {
	Name          string
	Title         string
	Currency      string
	Categories    []Category
	Ignore        []string
	Emojis        map[string]string
	DefaultEmoji  string
	TrackCooldown bool
	LogChanges    bool
}

// CategoryKeys returns the category keys in display order.
func (p Profile) CategoryKeys() []string {
	keys := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		keys = append(keys, c.Key)
	}
	return keys
}

// Category looks a category up by key.
func (p Profile) Category(key string) (Category, bool) {
	for _, c := range p.Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

func (p Profile) Emoji(name string) string {
	if e, ok := p.Emojis[name]; ok {
		return e
	}
	return p.DefaultEmoji
}

func (p Profile) Ignored(name string) bool {
	for _, n := range p.Ignore {
		if n == name {
			return true
		}
	}
	return false
}

var profiles = map[string]Profile{
	"blox": {
		Name:     "blox",
		Title:    "🍍 Blox Fruits Stock 🍍",
		Currency: "Beli",
		Categories: []Category{
			{Key: "normalStock", Label: "🛒 Normal Stock 🛒", Cooldown: 4 * time.Hour},
			{Key: "mirageStock", Label: "🏝️ Mirage Stock 🏝️", Cooldown: 2 * time.Hour},
		},
		Ignore:        []string{"Rocket-Rocket", "Spin-Spin"},
		Emojis:        FruitEmojis,
		DefaultEmoji:  "🍎",
		TrackCooldown: true,
		LogChanges:    true,
	},
	"classic": {
		Name:     "classic",
		Title:    "🍍 Blox Fruits Stock 🍍",
		Currency: "Beli",
		Categories: []Category{
			{Key: "normalStock", Label: "🛒 Normal Stock 🛒"},
			{Key: "mirageStock", Label: "🏝️ Mirage Stock 🏝️"},
		},
		Emojis:       FruitEmojis,
		DefaultEmoji: "🍎",
	},
}

// LookupProfile returns the built-in profile registered under name.
func LookupProfile(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, errors.Errorf("unknown stock profile %q (available: %v)", name, ProfileNames())
	}
	return p, nil
}

func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
