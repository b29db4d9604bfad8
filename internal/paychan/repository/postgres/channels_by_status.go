package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
)

// ChannelsByStatus pages through channels in status ordered by id, starting after afterID.
func (r *Repository) ChannelsByStatus(ctx context.Context, status model.Status, afterID string, limit int) (out []model.Channel, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("channels_by_status", err, start)
	}()

	if limit <= 0 {
		return nil, nil
	}

	const query = `SELECT` + channelColumns + `
FROM payment_channels
WHERE status = $1 AND id > $2
ORDER BY id
LIMIT $3`

	rows, err := r.pool.Query(ctx, query, string(status), afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("query channels by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		ch, scanErr := scanChannel(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan channel: %w", scanErr)
			return nil, err
		}
		out = append(out, ch)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate channels by status: %w", err)
	}
	return out, nil
}
