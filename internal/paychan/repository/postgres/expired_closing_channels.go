package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
)

// ExpiredClosingChannels returns up to limit closing channels whose grace period ended at or before now,
// ordered by expiration then id and starting after the cursor.
func (r *Repository) ExpiredClosingChannels(ctx context.Context, now time.Time, after model.ExpiryCursor, limit int) (out []model.Channel, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("expired_closing_channels", err, start)
	}()

	if limit <= 0 {
		return nil, nil
	}

	const query = `SELECT` + channelColumns + `
FROM payment_channels
WHERE status = 'closing' AND expiration_time <= $1
  AND ($3 = '' OR (expiration_time, id) > ($2, $3))
ORDER BY expiration_time, id
LIMIT $4`

	rows, err := r.pool.Query(ctx, query, now.UTC(), after.Expiration.UTC(), after.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("query expired closing channels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		ch, scanErr := scanChannel(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan expired closing channel: %w", scanErr)
			return nil, err
		}
		out = append(out, ch)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expired closing channels: %w", err)
	}
	return out, nil
}
