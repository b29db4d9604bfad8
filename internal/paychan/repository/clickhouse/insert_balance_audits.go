package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
)

// InsertBalanceAudits stores balance resolution records in ClickHouse.
func (r *Repository) InsertBalanceAudits(ctx context.Context, audits []model.BalanceAudit) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_balance_audits", err, start)
	}()

	if len(audits) == 0 {
		return nil
	}

	const query = `
INSERT INTO paychan_balance_audits (
	attempt_id,
	channel_id,
	initiator,
	role,
	off_chain,
	ledger,
	ledger_known,
	source,
	unverified,
	discrepancy,
	recorded_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare balance audits batch: %w", err)
	}

	for _, a := range audits {
		if err = batch.Append(
			a.AttemptID,
			a.ChannelID,
			a.Initiator,
			string(a.Role),
			a.OffChain,
			a.Ledger,
			a.LedgerKnown,
			string(a.Source),
			a.Unverified,
			a.Discrepancy(),
			a.RecordedAt.UTC(),
		); err != nil {
			return fmt.Errorf("append balance audit: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert balance audits: %w", err)
	}
	return nil
}
