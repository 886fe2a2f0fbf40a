package stock

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Item is a single entry of a stock category as published by the stock API.
type Item struct {
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

// Price is an integer price. The API sends it either as a JSON number or as a
// numeric string, sometimes with thousands separators.
type Price int64

func (p *Price) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(data))
	if raw == "null" {
		*p = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		*p = 0
		return nil
	}

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*p = Price(v)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Errorf("invalid price %s", string(data))
	}
	*p = Price(f)
	return nil
}

// Payload maps a category key (e.g. "normalStock") to its items in source order.
type Payload map[string][]Item

// Snapshot is the reduced name -> price view of a payload, per category.
type Snapshot map[string]map[string]int64
