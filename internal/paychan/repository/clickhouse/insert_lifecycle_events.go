package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
)

// InsertLifecycleEvents stores lifecycle event rows in ClickHouse.
func (r *Repository) InsertLifecycleEvents(ctx context.Context, events []model.LifecycleEvent) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_lifecycle_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO paychan_lifecycle_events (
	id,
	channel_id,
	event_type,
	from_status,
	to_status,
	tx_hash,
	detail,
	occurred_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare lifecycle events batch: %w", err)
	}

	for _, ev := range events {
		if err = batch.Append(
			ev.ID,
			ev.ChannelID,
			string(ev.Type),
			string(ev.FromStatus),
			string(ev.ToStatus),
			ev.TxHash,
			ev.Detail,
			ev.OccurredAt.UTC(),
		); err != nil {
			return fmt.Errorf("append lifecycle event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert lifecycle events: %w", err)
	}
	return nil
}
