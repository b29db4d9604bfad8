package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/xrpl"
	"go.uber.org/zap"
)

// SyncSummary counts the channels visited by SyncStatus.
type SyncSummary struct {
	Checked  int `json:"checked"`
	Modified int `json:"modified"`
	Failed   int `json:"failed"`
}

// LedgerSync corrects the off-chain record of a channel from its validated ledger entry.
type LedgerSync struct {
	repo       ChannelRepository
	ledger     Ledger
	reconciler *Reconciler
	logger     *zap.Logger
}

// NewLedgerSync constructs a LedgerSync.
func NewLedgerSync(repo ChannelRepository, ledger Ledger, reconciler *Reconciler, logger *zap.Logger) (*LedgerSync, error) {
	if repo == nil {
		return nil, errors.New("channel repository is required")
	}
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if reconciler == nil {
		return nil, errors.New("reconciler is required")
	}
	return &LedgerSync{repo: repo, ledger: ledger, reconciler: reconciler, logger: logger.Named("ledger_sync")}, nil
}

// SyncChannel reads the channel's ledger entry and applies it to the stored record.
func (s *LedgerSync) SyncChannel(ctx context.Context, channelID string) (ReconcileResult, error) {
	id := model.NormalizeHash(channelID)
	if err := model.ValidateChannelID(id); err != nil {
		return ReconcileResult{}, err
	}
	ch, err := s.repo.Channel(ctx, id)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("load channel: %w", err)
	}

	var entry *xrpl.PayChannelEntry
	got, err := s.ledger.LedgerEntry(ctx, id)
	switch {
	case err == nil:
		if got.Account != ch.FunderAddress || got.Destination != ch.RecipientAddress {
			return ReconcileResult{}, fmt.Errorf("%w: ledger parties %s -> %s", model.ErrLedgerMismatch, got.Account, got.Destination)
		}
		if got.Amount != ch.FundedAmount {
			s.logger.Warn("ledger amount differs from recorded funding",
				zap.String("channel_id", id),
				zap.Uint64("recorded", ch.FundedAmount),
				zap.Uint64("ledger", got.Amount))
		}
		entry = &got
	case errors.Is(err, xrpl.ErrEntryNotFound):
	default:
		return ReconcileResult{}, fmt.Errorf("read channel entry: %w", err)
	}

	res, err := s.reconciler.CorrectFromLedger(ctx, id, entry)
	if err != nil {
		return ReconcileResult{}, err
	}
	s.logger.Debug("channel synced",
		zap.String("channel_id", id),
		zap.Bool("on_ledger", entry != nil),
		zap.String("status", string(res.Channel.Status)),
		zap.Bool("modified", res.Modified))
	return res, nil
}

// SyncStatus syncs every channel currently stored with status, one page at a time. A failed
// channel does not stop the walk; all failures are returned joined.
func (s *LedgerSync) SyncStatus(ctx context.Context, status model.Status, pageSize int) (SyncSummary, error) {
	if pageSize <= 0 {
		pageSize = defaultSyncPageSize
	}
	var (
		summary SyncSummary
		errs    []error
		afterID string
	)
	for {
		page, err := s.repo.ChannelsByStatus(ctx, status, afterID, pageSize)
		if err != nil {
			errs = append(errs, fmt.Errorf("list %s channels: %w", status, err))
			break
		}
		for _, ch := range page {
			if err := ctx.Err(); err != nil {
				return summary, errors.Join(append(errs, err)...)
			}
			summary.Checked++
			res, err := s.SyncChannel(ctx, ch.ID)
			if err != nil {
				summary.Failed++
				errs = append(errs, fmt.Errorf("sync channel %s: %w", ch.ID, err))
				continue
			}
			if res.Modified {
				summary.Modified++
			}
		}
		if len(page) < pageSize {
			break
		}
		afterID = page[len(page)-1].ID
	}

	s.logger.Info("status sync finished",
		zap.String("status", string(status)),
		zap.Int("checked", summary.Checked),
		zap.Int("modified", summary.Modified),
		zap.Int("failed", summary.Failed))
	return summary, errors.Join(errs...)
}
