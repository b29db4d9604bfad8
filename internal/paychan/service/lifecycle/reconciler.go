package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/clock"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/xrpl"
	"go.uber.org/zap"
)

// ReconcileResult describes what one reconciliation did to the stored channel.
type ReconcileResult struct {
	Channel  model.Channel
	Previous model.Status
	// Modified is true when lifecycle or economic fields changed. Audit-only writes
	// (attempt counter, sync time) do not count.
	Modified bool
}

// Reconciler applies ledger observations to the stored channel. Every change is a
// read-verify-write under the channel's row lock; events are emitted after commit.
type Reconciler struct {
	repo    ChannelRepository
	events  EventSink
	metrics ReconcilerMetrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewReconciler constructs a Reconciler.
func NewReconciler(repo ChannelRepository, events EventSink, metrics ReconcilerMetrics, logger *zap.Logger) (*Reconciler, error) {
	if repo == nil {
		return nil, errors.New("channel repository is required")
	}
	if events == nil {
		return nil, errors.New("event sink is required")
	}
	if metrics == nil {
		return nil, errors.New("reconciler metrics is required")
	}
	return &Reconciler{
		repo:    repo,
		events:  events,
		metrics: metrics,
		logger:  logger.Named("reconciler"),
		now:     clock.NowUTC,
	}, nil
}

// change is the state a mutation computed plus the events it implies.
type change struct {
	modified bool
	events   []model.LifecycleEvent
}

func (c *change) emit(ch model.Channel, from model.Status, t model.EventType, txHash, detail string) {
	c.events = append(c.events, model.LifecycleEvent{
		ChannelID:  ch.ID,
		Type:       t,
		FromStatus: from,
		ToStatus:   ch.Status,
		TxHash:     txHash,
		Detail:     detail,
	})
}

// ApplyClosure applies a validation outcome of a closure claim. Anything short of a conclusive
// success leaves the lifecycle untouched and only counts the attempt. A closed channel is never
// touched, so the later of two racing confirmations is a no-op.
func (r *Reconciler) ApplyClosure(ctx context.Context, channelID string, outcome model.ValidationOutcome) (ReconcileResult, error) {
	return r.reconcile(ctx, "confirm", channelID, func(cur model.Channel, c *change) (model.Channel, bool, error) {
		if cur.Status == model.StatusClosed {
			return cur, false, nil
		}
		next := cur
		if next.ValidationAttempts < math.MaxUint32 {
			next.ValidationAttempts++
		}

		if !outcome.Conclusive() {
			c.emit(next, cur.Status, model.EventValidationFailed, outcome.TxHash, failureDetail(outcome))
			return next, true, nil
		}

		var err error
		switch {
		case !outcome.ChannelStillPresent:
			next, err = next.Close(r.now(), outcome.TxHash)
			if err != nil {
				return cur, false, err
			}
			c.modified = true
			c.emit(next, cur.Status, model.EventChannelClosed, outcome.TxHash, "claim validated and channel removed from ledger")

		case outcome.Expiration != nil && cur.Status == model.StatusOpen:
			next, err = next.ScheduleClose(*outcome.Expiration, outcome.TxHash)
			if err != nil {
				return cur, false, err
			}
			c.modified = true
			c.emit(next, cur.Status, model.EventClosingDetected, outcome.TxHash,
				fmt.Sprintf("ledger scheduled closure at %s", outcome.Expiration.UTC().Format(time.RFC3339)))

		case outcome.Expiration != nil:
			var moved bool
			next, moved, err = next.WithExpiration(*outcome.Expiration)
			if err != nil {
				return cur, false, err
			}
			if moved {
				c.modified = true
				c.emit(next, cur.Status, model.EventLedgerCorrection, outcome.TxHash, "expiration updated from ledger")
			}

		case cur.Status == model.StatusClosing:
			next, err = next.Rollback()
			if err != nil {
				return cur, false, err
			}
			c.modified = true
			c.emit(next, cur.Status, model.EventLedgerCorrection, outcome.TxHash, "ledger holds the channel without expiration")
		}
		return next, true, nil
	})
}

// FinalizeExpired closes a channel whose grace period elapsed and which the ledger no longer lists.
// It is a no-op unless the stored channel is still closing and expired.
func (r *Reconciler) FinalizeExpired(ctx context.Context, channelID string) (ReconcileResult, error) {
	return r.reconcile(ctx, "finalize_expired", channelID, func(cur model.Channel, c *change) (model.Channel, bool, error) {
		now := r.now()
		if !cur.Expired(now) {
			return cur, false, nil
		}
		next, err := cur.Close(now, "")
		if err != nil {
			return cur, false, err
		}
		c.modified = true
		c.emit(next, cur.Status, model.EventChannelClosed, "", "grace period elapsed and channel removed from ledger")
		return next, true, nil
	})
}

// CorrectFromLedger brings the stored channel in line with the validated ledger. A nil entry means
// the ledger no longer holds the channel. The ledger always wins.
func (r *Reconciler) CorrectFromLedger(ctx context.Context, channelID string, entry *xrpl.PayChannelEntry) (ReconcileResult, error) {
	return r.reconcile(ctx, "ledger_sync", channelID, func(cur model.Channel, c *change) (model.Channel, bool, error) {
		now := r.now()
		next := cur
		next.LastSyncedAt = &now

		var err error
		switch {
		case entry == nil && cur.Status == model.StatusClosed:

		case entry == nil:
			next, err = next.Close(now, "")
			if err != nil {
				return cur, false, err
			}
			c.modified = true
			c.emit(next, cur.Status, model.EventChannelClosed, "", "ledger no longer holds the channel")

		case cur.Status == model.StatusClosed:
			next, err = next.CorrectClosed(entry.Expiration, entry.Balance)
			if err != nil {
				return cur, false, err
			}
			c.modified = true
			r.logger.Warn("stored channel claims closed but ledger still holds it",
				zap.String("channel_id", cur.ID),
				zap.String("corrected_status", string(next.Status)),
				zap.Uint64("ledger_balance", entry.Balance))
			c.emit(next, cur.Status, model.EventLedgerCorrection, "", "channel reopened: ledger still holds it")

		case entry.Expiration != nil && cur.Status == model.StatusOpen:
			next, err = next.ScheduleClose(*entry.Expiration, "")
			if err != nil {
				return cur, false, err
			}
			c.modified = true
			c.emit(next, cur.Status, model.EventClosingDetected, "",
				fmt.Sprintf("ledger scheduled closure at %s", entry.Expiration.UTC().Format(time.RFC3339)))

		case entry.Expiration != nil:
			var moved bool
			next, moved, err = next.WithExpiration(*entry.Expiration)
			if err != nil {
				return cur, false, err
			}
			if moved {
				c.modified = true
				c.emit(next, cur.Status, model.EventLedgerCorrection, "", "expiration updated from ledger")
			}

		case cur.Status == model.StatusClosing:
			next, err = next.Rollback()
			if err != nil {
				return cur, false, err
			}
			c.modified = true
			c.emit(next, cur.Status, model.EventLedgerCorrection, "", "ledger cleared the scheduled expiration")
		}

		if entry != nil && next.Expired(now) && next.AccumulatedBalance > entry.Balance {
			next = reportUnclaimed(next, entry.Balance, c)
		}
		return next, true, nil
	})
}

// ReportUnclaimed records that the grace period of channelID elapsed with less than the accrued
// balance claimed on ledger. Each expiration is reported once.
func (r *Reconciler) ReportUnclaimed(ctx context.Context, channelID string, claimed uint64) (ReconcileResult, error) {
	return r.reconcile(ctx, "report_unclaimed", channelID, func(cur model.Channel, c *change) (model.Channel, bool, error) {
		if !cur.Expired(r.now()) || cur.AccumulatedBalance <= claimed || cur.HasUnclaimedReport() {
			return cur, false, nil
		}
		return reportUnclaimed(cur, claimed, c), true, nil
	})
}

func reportUnclaimed(ch model.Channel, claimed uint64, c *change) model.Channel {
	if ch.HasUnclaimedReport() {
		return ch
	}
	c.emit(ch, ch.Status, model.EventExpiredUnclaimed, "",
		fmt.Sprintf("grace period elapsed with %s XRP accrued but only %s XRP claimed on ledger",
			model.XRP(ch.AccumulatedBalance), model.XRP(claimed)))
	return ch.WithUnclaimedReport()
}

func (r *Reconciler) reconcile(
	ctx context.Context,
	operation string,
	channelID string,
	mutate func(cur model.Channel, c *change) (model.Channel, bool, error),
) (res ReconcileResult, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveApply(operation, res.Modified, err, started)
	}()

	var (
		c        change
		previous model.Status
	)
	stored, _, err := r.repo.UpdateChannel(ctx, channelID, func(cur model.Channel) (model.Channel, bool, error) {
		c = change{}
		previous = cur.Status
		return mutate(cur, &c)
	})
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("%s channel %s: %w", operation, channelID, err)
	}

	res = ReconcileResult{Channel: stored, Previous: previous, Modified: c.modified}
	if stored.Status != previous {
		r.metrics.ObserveTransition(string(previous), string(stored.Status))
		r.logger.Info("channel transition applied",
			zap.String("operation", operation),
			zap.String("channel_id", channelID),
			zap.String("from", string(previous)),
			zap.String("to", string(stored.Status)))
	}
	for _, ev := range c.events {
		if emitErr := r.events.RecordEvent(ctx, ev); emitErr != nil {
			r.logger.Error("record lifecycle event",
				zap.String("channel_id", channelID),
				zap.String("type", string(ev.Type)),
				zap.Error(emitErr))
		}
	}
	return res, nil
}

func failureDetail(o model.ValidationOutcome) string {
	switch {
	case o.Failure == model.FailureRejected:
		return fmt.Sprintf("transaction final with result %s", o.ResultCode)
	case o.Succeeded():
		return "transaction applied but channel state could not be read"
	case o.Failure == model.FailureInvalidReference:
		return "transaction reference does not identify a claim on this channel"
	default:
		return fmt.Sprintf("finality not confirmed after %d attempts (%s); outcome unknown, retry later", o.Attempts, o.Failure)
	}
}
