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

// RegisterRequest describes a channel whose creation transaction has been validated.
type RegisterRequest struct {
	ChannelID          string
	FunderAddress      string
	RecipientAddress   string
	FundedAmount       uint64
	SettleDelaySeconds uint32
}

// Registry is the collaborator entry point for channel records.
type Registry struct {
	repo   ChannelRepository
	ledger Ledger
	logger *zap.Logger
	now    func() time.Time
}

// NewRegistry constructs a Registry.
func NewRegistry(repo ChannelRepository, ledger Ledger, logger *zap.Logger) (*Registry, error) {
	if repo == nil {
		return nil, errors.New("channel repository is required")
	}
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	return &Registry{repo: repo, ledger: ledger, logger: logger.Named("registry"), now: clock.NowUTC}, nil
}

// Register records a funded channel. The request must agree with the validated ledger entry,
// which also seeds the claimed balance and any scheduled expiration.
func (r *Registry) Register(ctx context.Context, req RegisterRequest) (model.Channel, error) {
	id := model.NormalizeHash(req.ChannelID)
	if err := model.ValidateChannelID(id); err != nil {
		return model.Channel{}, err
	}
	switch {
	case req.FunderAddress == "" || req.RecipientAddress == "":
		return model.Channel{}, fmt.Errorf("%w: both parties are required", model.ErrInvalidRequest)
	case req.FunderAddress == req.RecipientAddress:
		return model.Channel{}, fmt.Errorf("%w: funder and recipient must differ", model.ErrInvalidRequest)
	case req.FundedAmount == 0:
		return model.Channel{}, fmt.Errorf("%w: funded amount must be positive", model.ErrInvalidRequest)
	}

	entry, err := r.ledger.LedgerEntry(ctx, id)
	if err != nil {
		if errors.Is(err, xrpl.ErrEntryNotFound) {
			return model.Channel{}, fmt.Errorf("%w: %s", model.ErrChannelNotOnLedger, id)
		}
		return model.Channel{}, fmt.Errorf("read channel entry: %w", err)
	}
	if err = matchEntry(req, entry); err != nil {
		return model.Channel{}, err
	}

	now := r.now()
	ch := model.Channel{
		ID:                 id,
		FunderAddress:      req.FunderAddress,
		RecipientAddress:   req.RecipientAddress,
		FundedAmount:       req.FundedAmount,
		AccumulatedBalance: entry.Balance,
		SettleDelaySeconds: req.SettleDelaySeconds,
		Status:             model.StatusOpen,
		LastSyncedAt:       &now,
	}
	if entry.Expiration != nil {
		if ch, err = ch.ScheduleClose(*entry.Expiration, ""); err != nil {
			return model.Channel{}, err
		}
	}
	if err = ch.Validate(); err != nil {
		return model.Channel{}, err
	}

	stored, err := r.repo.InsertChannel(ctx, ch)
	if err != nil {
		return model.Channel{}, fmt.Errorf("insert channel: %w", err)
	}
	r.logger.Info("channel registered",
		zap.String("channel_id", id),
		zap.String("funder", req.FunderAddress),
		zap.String("recipient", req.RecipientAddress),
		zap.String("funded_xrp", model.XRP(req.FundedAmount)),
		zap.String("status", string(stored.Status)))
	return stored, nil
}

// Accrue adds earned wages to an open channel under the row lock.
func (r *Registry) Accrue(ctx context.Context, channelID string, amount uint64) (model.Channel, error) {
	id := model.NormalizeHash(channelID)
	if err := model.ValidateChannelID(id); err != nil {
		return model.Channel{}, err
	}
	if amount == 0 {
		return model.Channel{}, fmt.Errorf("%w: accrual amount must be positive", model.ErrInvalidRequest)
	}
	ch, _, err := r.repo.UpdateChannel(ctx, id, func(cur model.Channel) (model.Channel, bool, error) {
		next, err := cur.Accrue(amount)
		if err != nil {
			return cur, false, err
		}
		return next, true, nil
	})
	if err != nil {
		return model.Channel{}, fmt.Errorf("accrue channel %s: %w", id, err)
	}
	return ch, nil
}

// Channel returns the stored channel.
func (r *Registry) Channel(ctx context.Context, channelID string) (model.Channel, error) {
	id := model.NormalizeHash(channelID)
	if err := model.ValidateChannelID(id); err != nil {
		return model.Channel{}, err
	}
	return r.repo.Channel(ctx, id)
}

func matchEntry(req RegisterRequest, entry xrpl.PayChannelEntry) error {
	switch {
	case entry.Account != req.FunderAddress:
		return fmt.Errorf("%w: ledger funder %s", model.ErrLedgerMismatch, entry.Account)
	case entry.Destination != req.RecipientAddress:
		return fmt.Errorf("%w: ledger recipient %s", model.ErrLedgerMismatch, entry.Destination)
	case entry.Amount != req.FundedAmount:
		return fmt.Errorf("%w: ledger amount %d", model.ErrLedgerMismatch, entry.Amount)
	case entry.SettleDelay != req.SettleDelaySeconds:
		return fmt.Errorf("%w: ledger settle delay %d", model.ErrLedgerMismatch, entry.SettleDelay)
	}
	return nil
}
