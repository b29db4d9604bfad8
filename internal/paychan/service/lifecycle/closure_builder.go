package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"go.uber.org/zap"
)

// ClosureBuilder assembles unsigned PaymentChannelClaim transactions.
type ClosureBuilder struct {
	ledger Ledger
	logger *zap.Logger
}

// NewClosureBuilder constructs a ClosureBuilder.
func NewClosureBuilder(ledger Ledger, logger *zap.Logger) (*ClosureBuilder, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	return &ClosureBuilder{ledger: ledger, logger: logger.Named("closure_builder")}, nil
}

// Build returns the claim closing ch for initiator at amount drops. The transaction is never
// signed or submitted here.
func (b *ClosureBuilder) Build(ctx context.Context, ch model.Channel, initiator string, amount uint64) (model.UnsignedClaim, error) {
	if amount > ch.FundedAmount {
		return model.UnsignedClaim{}, fmt.Errorf("%w: claim %d > funded %d", model.ErrBalanceExceedsFunding, amount, ch.FundedAmount)
	}

	tx := model.UnsignedClaim{
		TransactionType: model.TxTypePaymentChannelClaim,
		Account:         initiator,
		Channel:         ch.ID,
		Flags:           model.FlagClose,
	}
	// The ledger requires a claimed balance above the recorded one; an explicit zero is never valid.
	if amount > 0 {
		tx.Balance = strconv.FormatUint(amount, 10)
	}

	if initiator != ch.FunderAddress {
		entry, err := b.ledger.LedgerEntry(ctx, ch.ID)
		if err != nil {
			return model.UnsignedClaim{}, fmt.Errorf("%w: read channel entry: %w", model.ErrMissingChannelKey, err)
		}
		if entry.PublicKey == "" {
			return model.UnsignedClaim{}, fmt.Errorf("%w: channel entry has no public key", model.ErrMissingChannelKey)
		}
		tx.PublicKey = entry.PublicKey
	}

	b.logger.Debug("closure transaction built",
		zap.String("channel_id", ch.ID),
		zap.String("initiator", initiator),
		zap.Bool("has_balance", tx.HasBalance()),
		zap.Bool("has_public_key", tx.PublicKey != ""))
	return tx, nil
}
