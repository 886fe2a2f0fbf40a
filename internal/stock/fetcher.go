package stock

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/davecgh/go-spew/spew"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrBadStatus is returned when the stock API answers with a non-200 status.
	ErrBadStatus = errors.New("unexpected status from stock api")
	// ErrEmptyPayload is returned when the response holds no stock category at all.
	ErrEmptyPayload = errors.New("stock api returned no categories")
)

// Source provides the current stock payload.
type Source interface {
	Fetch(ctx context.Context) (Payload, error)
}

// Fetcher polls the stock API over HTTP.
type Fetcher struct {
	url    string
	client *resty.Client
}

// NewFetcher creates a fetcher for url; every request is bounded by timeout.
func NewFetcher(url string, timeout time.Duration) *Fetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Fetcher{url: url, client: client}
}

// Fetch downloads and decodes the current stock. Any error means "no data this tick".
func (f *Fetcher) Fetch(ctx context.Context) (Payload, error) {
	resp, err := f.client.R().SetContext(ctx).Get(f.url)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch stock")
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Wrapf(ErrBadStatus, "status %d", resp.StatusCode())
	}

	payload, err := DecodePayload(resp.Body())
	if err != nil {
		return nil, err
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("fetched stock payload: %s", spew.Sdump(payload))
	}
	return payload, nil
}

// DecodePayload accepts both the flat shape ({"normalStock": [...]}) and the
// wrapped one ({"status": "success", "data": {"normalStock": [...]}}).
func DecodePayload(body []byte) (Payload, error) {
	var top map[string]json.RawMessage
	if err := sonic.Unmarshal(body, &top); err != nil {
		return nil, errors.Wrap(err, "could not parse stock payload")
	}

	if rawStatus, ok := top["status"]; ok {
		var status string
		if err := sonic.Unmarshal(rawStatus, &status); err == nil && status != "" && !isSuccessStatus(status) {
			return nil, errors.Errorf("stock api reported status %q", status)
		}
	}

	for _, key := range []string{"data", "stock"} {
		nested, ok := top[key]
		if !ok {
			continue
		}
		var inner map[string]json.RawMessage
		if err := sonic.Unmarshal(nested, &inner); err == nil {
			top = inner
			break
		}
	}

	payload := make(Payload)
	for key, raw := range top {
		if string(raw) == "null" {
			continue
		}
		if !isJSONArray(raw) {
			continue
		}
		var items []Item
		if err := sonic.Unmarshal(raw, &items); err != nil {
			return nil, errors.Wrapf(err, "could not parse stock category %q", key)
		}
		payload[key] = items
	}

	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	return payload, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isSuccessStatus(status string) bool {
	switch strings.ToLower(status) {
	case "success", "ok":
		return true
	}
	return false
}
