package commands

import (
	"context"
	"time"

	"fruitstock-telegram-bot/internal/stock"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// CommandStock fetches the current stock and renders it as a one-off reply,
// with the restock countdowns the tracker currently holds.
// The tracked channel message is left alone.
func CommandStock(ctx context.Context, source stock.Source, renderer *stock.Renderer, cooldowns stock.Cooldowns) (string, error) {
	log.Debug("processing command /stock")

	payload, err := source.Fetch(ctx)
	if err != nil {
		return "", errors.Wrap(err, "command /stock")
	}

	return renderer.Render(payload, cooldowns, time.Now()), nil
}
