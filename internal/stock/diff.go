package stock

import (
	"fmt"
	"sort"

	"fruitstock-telegram-bot/lib/helpers"
)

type ChangeKind string

const (
	Added   ChangeKind = "added"
	Changed ChangeKind = "changed"
	Removed ChangeKind = "removed"
)

// Change is one difference between two snapshots.
type Change struct {
	Kind     ChangeKind
	Category string
	Item     string
	OldPrice int64
	NewPrice int64
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("[%s] + %s (%s)", c.Category, c.Item, helpers.FormatPrice(c.NewPrice))
	case Removed:
		return fmt.Sprintf("[%s] - %s (%s)", c.Category, c.Item, helpers.FormatPrice(c.OldPrice))
	default:
		return fmt.Sprintf("[%s] ~ %s: %s → %s", c.Category, c.Item,
			helpers.FormatPrice(c.OldPrice), helpers.FormatPrice(c.NewPrice))
	}
}

// Diff lists what changed from old to current. Only categories present in current are
// inspected; categories and items are visited in name order so the result is stable.
func Diff(old, current Snapshot) []Change {
	var changes []Change

	for _, category := range sortedKeys(current) {
		before, after := old[category], current[category]

		for _, name := range sortedKeys(after) {
			price := after[name]
			prev, existed := before[name]
			switch {
			case !existed:
				changes = append(changes, Change{Kind: Added, Category: category, Item: name, NewPrice: price})
			case prev != price:
				changes = append(changes, Change{Kind: Changed, Category: category, Item: name, OldPrice: prev, NewPrice: price})
			}
		}

		for _, name := range sortedKeys(before) {
			if _, ok := after[name]; !ok {
				changes = append(changes, Change{Kind: Removed, Category: category, Item: name, OldPrice: before[name]})
			}
		}
	}

	return changes
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
