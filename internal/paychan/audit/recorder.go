// Package audit buffers lifecycle events and balance audits and writes them to the history store.
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/clock"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/goodnatureofminers/paychan-backend/pkg/batcher"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config tunes the write buffers.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
}

// DefaultConfig returns buffer settings suitable for a single API instance.
func DefaultConfig() Config {
	return Config{
		FlushSize:     500,
		FlushInterval: 2 * time.Second,
		FlushRPS:      10,
	}
}

// Recorder is the event sink of the lifecycle services.
type Recorder struct {
	store  Store
	events *batcher.Batcher[model.LifecycleEvent]
	audits *batcher.Batcher[model.BalanceAudit]
	logger *zap.Logger
	now    func() time.Time
}

// NewRecorder constructs a Recorder. Call Start before recording and Stop to flush on shutdown.
func NewRecorder(store Store, cfg Config, logger *zap.Logger) (*Recorder, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("audit_recorder")
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultConfig().FlushInterval
	}

	return &Recorder{
		store: store,
		events: batcher.New(logger.With(zap.String("stream", "lifecycle_events")),
			store.InsertLifecycleEvents, cfg.FlushSize, cfg.FlushInterval, cfg.FlushRPS),
		audits: batcher.New(logger.With(zap.String("stream", "balance_audits")),
			store.InsertBalanceAudits, cfg.FlushSize, cfg.FlushInterval, cfg.FlushRPS),
		logger: logger,
		now:    clock.NowUTC,
	}, nil
}

// Start launches the background flush loops.
func (r *Recorder) Start(ctx context.Context) {
	r.events.Start(ctx)
	r.audits.Start(ctx)
}

// Stop flushes whatever is buffered and stops the loops.
func (r *Recorder) Stop() {
	r.events.Stop()
	r.audits.Stop()
}

// RecordEvent queues a lifecycle event, assigning its id and time when unset.
func (r *Recorder) RecordEvent(ctx context.Context, ev model.LifecycleEvent) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = r.now()
	}
	r.logger.Info("lifecycle event",
		zap.String("channel_id", ev.ChannelID),
		zap.String("type", string(ev.Type)),
		zap.String("from", string(ev.FromStatus)),
		zap.String("to", string(ev.ToStatus)),
		zap.String("tx_hash", ev.TxHash),
		zap.String("detail", ev.Detail))

	if err := r.events.Add(ctx, ev); err != nil {
		return fmt.Errorf("queue lifecycle event: %w", err)
	}
	return nil
}

// RecordBalanceAudit queues the reconciliation record of one balance resolution.
func (r *Recorder) RecordBalanceAudit(ctx context.Context, a model.BalanceAudit) error {
	if a.RecordedAt.IsZero() {
		a.RecordedAt = r.now()
	}
	if d := a.Discrepancy(); d != 0 {
		r.logger.Warn("balance discrepancy",
			zap.String("channel_id", a.ChannelID),
			zap.Uint64("off_chain", a.OffChain),
			zap.Uint64("ledger", a.Ledger),
			zap.Int64("discrepancy", d),
			zap.String("source", string(a.Source)))
	}
	if err := r.audits.Add(ctx, a); err != nil {
		return fmt.Errorf("queue balance audit: %w", err)
	}
	return nil
}

// Events returns the stored history of a channel, newest first. Events still buffered are not included.
func (r *Recorder) Events(ctx context.Context, channelID string, limit int) ([]model.LifecycleEvent, error) {
	events, err := r.store.LifecycleEvents(ctx, channelID, limit)
	if err != nil {
		return nil, fmt.Errorf("load lifecycle events: %w", err)
	}
	return events, nil
}
