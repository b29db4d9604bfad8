package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// InsertChannel stores a newly registered channel and returns it with server-side timestamps.
func (r *Repository) InsertChannel(ctx context.Context, ch model.Channel) (stored model.Channel, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_channel", err, start)
	}()

	if err = ch.Validate(); err != nil {
		return model.Channel{}, err
	}
	row, err := fromModel(ch)
	if err != nil {
		return model.Channel{}, err
	}

	const query = `
INSERT INTO payment_channels (
	id,
	funder_address,
	recipient_address,
	funded_amount,
	accumulated_balance,
	settle_delay_seconds,
	status,
	expiration_time,
	closure_tx_ref,
	closed_at,
	last_synced_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING` + channelColumns

	stored, err = scanChannel(r.pool.QueryRow(ctx, query,
		row.ID,
		row.FunderAddress,
		row.RecipientAddress,
		row.FundedAmount,
		row.AccumulatedBalance,
		row.SettleDelaySeconds,
		row.Status,
		row.ExpirationTime,
		row.ClosureTxRef,
		row.ClosedAt,
		row.LastSyncedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.Channel{}, fmt.Errorf("%w: %s", model.ErrChannelExists, ch.ID)
		}
		return model.Channel{}, fmt.Errorf("insert channel: %w", err)
	}
	return stored, nil
}
