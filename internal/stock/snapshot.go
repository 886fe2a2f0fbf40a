package stock

// BuildSnapshot reduces payload to name -> price maps for the given categories.
// Categories missing from the payload map to an empty set.
func BuildSnapshot(payload Payload, categories []string) Snapshot {
	snapshot := make(Snapshot, len(categories))
	for _, category := range categories {
		items := make(map[string]int64, len(payload[category]))
		for _, item := range payload[category] {
			items[item.Name] = int64(item.Price)
		}
		snapshot[category] = items
	}
	return snapshot
}

func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for category := range s {
		if _, ok := other[category]; !ok {
			return false
		}
		if !s.CategoryEqual(other, category) {
			return false
		}
	}
	return true
}

// CategoryEqual reports whether both snapshots hold the same items and prices for category.
func (s Snapshot) CategoryEqual(other Snapshot, category string) bool {
	a, b := s[category], other[category]
	if len(a) != len(b) {
		return false
	}
	for name, price := range a {
		if p, ok := b[name]; !ok || p != price {
			return false
		}
	}
	return true
}
