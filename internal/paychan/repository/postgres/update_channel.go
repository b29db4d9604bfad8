package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/jackc/pgx/v5"
)

// UpdateChannel locks the channel row, applies mutate and writes the result in one
// transaction; a mutation error rolls it back. Concurrent updates of the same channel are serialized by the row lock.
// It returns the stored channel and whether a write happened.
func (r *Repository) UpdateChannel(ctx context.Context, id string, mutate model.Mutation) (ch model.Channel, changed bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("update_channel", err, start)
	}()

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return model.Channel{}, false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	const selectQuery = `SELECT` + channelColumns + `
FROM payment_channels
WHERE id = $1
FOR UPDATE`

	current, err := scanChannel(tx.QueryRow(ctx, selectQuery, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Channel{}, false, fmt.Errorf("%w: %s", model.ErrChannelNotFound, id)
	}
	if err != nil {
		return model.Channel{}, false, fmt.Errorf("lock channel: %w", err)
	}

	next, changed, err := mutate(current)
	if err != nil {
		return current, false, err
	}
	if !changed {
		if err = tx.Commit(ctx); err != nil {
			return model.Channel{}, false, fmt.Errorf("commit transaction: %w", err)
		}
		return current, false, nil
	}
	if next.ID != current.ID {
		err = fmt.Errorf("%w: mutation changed channel id", model.ErrInvariantViolated)
		return current, false, err
	}
	if err = next.Validate(); err != nil {
		return current, false, err
	}
	row, err := fromModel(next)
	if err != nil {
		return current, false, err
	}

	const updateQuery = `
UPDATE payment_channels SET
	accumulated_balance = $2,
	status = $3,
	expiration_time = $4,
	closure_tx_ref = $5,
	closed_at = $6,
	validation_attempts = $7,
	last_synced_at = $8,
	unclaimed_reported_for = $9,
	version = version + 1,
	updated_at = now()
WHERE id = $1 AND version = $10
RETURNING` + channelColumns

	stored, err := scanChannel(tx.QueryRow(ctx, updateQuery,
		row.ID,
		row.AccumulatedBalance,
		row.Status,
		row.ExpirationTime,
		row.ClosureTxRef,
		row.ClosedAt,
		row.ValidationAttempts,
		row.LastSyncedAt,
		row.UnclaimedFor,
		current.Version,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("update channel %s: version %d no longer current", id, current.Version)
		return current, false, err
	}
	if err != nil {
		return current, false, fmt.Errorf("update channel: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return current, false, fmt.Errorf("commit transaction: %w", err)
	}
	return stored, true, nil
}
