package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/jackc/pgx/v5"
)

// Channel returns the channel record by ledger identifier.
func (r *Repository) Channel(ctx context.Context, id string) (ch model.Channel, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("channel", err, start)
	}()

	const query = `SELECT` + channelColumns + `
FROM payment_channels
WHERE id = $1`

	ch, err = scanChannel(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Channel{}, fmt.Errorf("%w: %s", model.ErrChannelNotFound, id)
	}
	if err != nil {
		return model.Channel{}, fmt.Errorf("query channel: %w", err)
	}
	return ch, nil
}
