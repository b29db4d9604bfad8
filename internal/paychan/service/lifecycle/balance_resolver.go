package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/clock"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/xrpl"
	"go.uber.org/zap"
)

// Resolution is the balance of record chosen for one closure attempt.
type Resolution struct {
	Amount      uint64
	Source      model.BalanceSource
	Unverified  bool
	OffChain    uint64
	Ledger      uint64
	LedgerKnown bool
}

// BalanceResolver picks between the off-chain accumulated balance and the ledger's claimed balance.
type BalanceResolver struct {
	ledger     Ledger
	reconciler *Reconciler
	logger     *zap.Logger
	now        func() time.Time
}

// NewBalanceResolver constructs a BalanceResolver. Unclaimed balances it detects are reported
// through reconciler.
func NewBalanceResolver(ledger Ledger, reconciler *Reconciler, logger *zap.Logger) (*BalanceResolver, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if reconciler == nil {
		return nil, errors.New("reconciler is required")
	}
	return &BalanceResolver{
		ledger:     ledger,
		reconciler: reconciler,
		logger:     logger.Named("balance_resolver"),
		now:        clock.NowUTC,
	}, nil
}

// SourceFor returns the balance source Resolve applies to a closure of ch by initiator, without
// reading the ledger.
func (r *BalanceResolver) SourceFor(ch model.Channel, initiator string) model.BalanceSource {
	if ch.Expired(r.now()) && ch.RoleOf(initiator) == model.RoleFunder {
		return model.SourceLedger
	}
	return model.SourceOffChain
}

// Resolve returns the balance a closure of ch initiated by initiator must claim.
//
// Until the grace period has elapsed the off-chain record is the only authority. Once it has, a
// funder-initiated close reads the claimed balance from the funder's channel listing instead, so a
// stale or edited off-chain value cannot shortchange the recipient. A transient ledger failure falls
// back to the off-chain value and marks the resolution unverified.
func (r *BalanceResolver) Resolve(ctx context.Context, ch model.Channel, initiator string) (Resolution, error) {
	offChain := Resolution{
		Amount:   ch.AccumulatedBalance,
		Source:   model.SourceOffChain,
		OffChain: ch.AccumulatedBalance,
	}
	if r.SourceFor(ch, initiator) == model.SourceOffChain {
		return offChain, nil
	}

	logger := r.logger.With(zap.String("channel_id", ch.ID), zap.String("initiator", initiator))

	claimed, err := r.claimedBalance(ctx, ch)
	if err != nil {
		if xrpl.IsTransient(err) {
			logger.Warn("ledger balance unavailable, falling back to off-chain value", zap.Error(err))
			offChain.Unverified = true
			return offChain, nil
		}
		return Resolution{}, err
	}

	res := Resolution{
		Amount:      claimed,
		Source:      model.SourceLedger,
		OffChain:    ch.AccumulatedBalance,
		Ledger:      claimed,
		LedgerKnown: true,
	}
	fields := []zap.Field{
		zap.Uint64("off_chain", res.OffChain),
		zap.Uint64("ledger", res.Ledger),
		zap.Int64("discrepancy", discrepancy(res.OffChain, res.Ledger)),
	}
	if res.OffChain == res.Ledger {
		logger.Info("balance sources agree", fields...)
		return res, nil
	}
	logger.Warn("balance sources disagree, using ledger value", fields...)

	if res.Ledger < res.OffChain {
		// The recipient did not claim the accrued balance before expiry.
		if _, err = r.reconciler.ReportUnclaimed(ctx, ch.ID, res.Ledger); err != nil {
			logger.Error("report expired-unclaimed balance", zap.Error(err))
		}
	}
	return res, nil
}

func (r *BalanceResolver) claimedBalance(ctx context.Context, ch model.Channel) (uint64, error) {
	channels, err := r.ledger.AccountChannels(ctx, ch.FunderAddress)
	if err != nil {
		return 0, fmt.Errorf("list funder channels: %w", err)
	}
	for _, c := range channels {
		if model.NormalizeHash(c.ChannelID) == ch.ID {
			return c.Balance, nil
		}
	}
	return 0, fmt.Errorf("%w: %s not listed for %s", model.ErrChannelNotOnLedger, ch.ID, ch.FunderAddress)
}

func discrepancy(offChain, ledger uint64) int64 {
	return model.BalanceAudit{OffChain: offChain, Ledger: ledger, LedgerKnown: true}.Discrepancy()
}
