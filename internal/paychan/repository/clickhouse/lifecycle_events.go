package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/google/uuid"
)

// LifecycleEvents returns the newest events of a channel, most recent first.
func (r *Repository) LifecycleEvents(ctx context.Context, channelID string, limit int) (out []model.LifecycleEvent, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("lifecycle_events", err, start)
	}()

	if limit <= 0 {
		return nil, nil
	}

	const query = `
SELECT
	id,
	channel_id,
	event_type,
	from_status,
	to_status,
	tx_hash,
	detail,
	occurred_at
FROM paychan_lifecycle_events FINAL
WHERE channel_id = ?
ORDER BY occurred_at DESC, id
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, channelID, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("query lifecycle events: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			id                              uuid.UUID
			ev                              model.LifecycleEvent
			eventType, fromStatus, toStatus string
		)
		if err = rows.Scan(
			&id,
			&ev.ChannelID,
			&eventType,
			&fromStatus,
			&toStatus,
			&ev.TxHash,
			&ev.Detail,
			&ev.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan lifecycle event: %w", err)
		}
		ev.ID = id
		ev.Type = model.EventType(eventType)
		ev.FromStatus = model.Status(fromStatus)
		ev.ToStatus = model.Status(toStatus)
		ev.OccurredAt = ev.OccurredAt.UTC()
		out = append(out, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lifecycle events: %w", err)
	}
	return out, nil
}
