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

// TxValidator establishes whether a submitted claim reached a validated ledger and what it did
// to the channel. It never writes persisted state.
type TxValidator struct {
	ledger  Ledger
	policy  clock.Backoff
	metrics ValidatorMetrics
	logger  *zap.Logger
	sleep   func(context.Context, time.Duration) error
	now     func() time.Time
}

// NewTxValidator constructs a TxValidator polling with policy.
func NewTxValidator(ledger Ledger, policy clock.Backoff, metrics ValidatorMetrics, logger *zap.Logger) (*TxValidator, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if metrics == nil {
		return nil, errors.New("validator metrics is required")
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &TxValidator{
		ledger:  ledger,
		policy:  policy,
		metrics: metrics,
		logger:  logger.Named("tx_validator"),
		sleep:   clock.SleepWithContext,
		now:     time.Now,
	}, nil
}

// Validate waits for txHash to become final and, when it was applied, checks whether the channel
// entry survived it. The returned error is reserved for cancellation and malformed input; every
// ledger-side result is reported in the outcome.
func (v *TxValidator) Validate(ctx context.Context, txHash, channelID string) (model.ValidationOutcome, error) {
	outcome, err := v.AwaitFinality(ctx, txHash, channelID)
	if err != nil || !outcome.Succeeded() {
		return outcome, err
	}

	present, expiration, err := v.channelPresence(ctx, channelID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return outcome, ctxErr
		}
		v.logger.Warn("channel presence unknown after final transaction",
			zap.String("tx_hash", outcome.TxHash),
			zap.String("channel_id", channelID),
			zap.Error(err))
		outcome.Failure = model.FailureUnverified
		return outcome, nil
	}
	outcome.PresenceChecked = true
	outcome.ChannelStillPresent = present
	outcome.Expiration = expiration
	return outcome, nil
}

// AwaitFinality polls the ledger for txHash with capped exponential backoff. "Not found" and
// transient failures are retried; a final result code is reported immediately.
func (v *TxValidator) AwaitFinality(ctx context.Context, txHash, channelID string) (outcome model.ValidationOutcome, err error) {
	txHash = model.NormalizeHash(txHash)
	if err = model.ValidateTxHash(txHash); err != nil {
		return model.ValidationOutcome{TxHash: txHash, Failure: model.FailureInvalidReference}, err
	}

	started := v.now()
	outcome = model.ValidationOutcome{TxHash: txHash}
	defer func() {
		outcome.Elapsed = v.now().Sub(started)
		v.metrics.ObserveAwait(string(outcome.Failure), outcome.Attempts, started)
	}()

	logger := v.logger.With(zap.String("tx_hash", txHash), zap.String("channel_id", channelID))
	var lastFailure model.ValidationFailure
	for attempt := 1; attempt <= v.policy.MaxAttempts; attempt++ {
		outcome.Attempts = attempt

		status, lookupErr := v.ledger.Transaction(ctx, txHash)
		switch {
		case lookupErr == nil:
			if !status.Validated {
				lastFailure = model.FailureNotFinalized
				logger.Debug("transaction not yet validated", zap.Int("attempt", attempt), zap.String("result", status.Result))
				break
			}
			if !claimsChannel(status, channelID) {
				logger.Warn("transaction does not claim this channel",
					zap.String("type", status.TransactionType),
					zap.String("channel", status.Channel))
				outcome.Failure = model.FailureInvalidReference
				return outcome, nil
			}
			outcome.Finalized = true
			outcome.ResultCode = status.Result
			if status.Result != model.TxResultSuccess {
				logger.Warn("transaction final with failure result", zap.String("result", status.Result))
				outcome.Failure = model.FailureRejected
				return outcome, nil
			}
			outcome.Accepted = true
			logger.Debug("transaction validated", zap.Int("attempt", attempt))
			return outcome, nil

		case errors.Is(lookupErr, xrpl.ErrTxNotFound):
			lastFailure = model.FailureNotFound
			logger.Debug("transaction not found yet", zap.Int("attempt", attempt))

		case xrpl.IsTransient(lookupErr):
			if ctxErr := ctx.Err(); ctxErr != nil {
				return outcome, ctxErr
			}
			lastFailure = model.FailureUnverified
			logger.Debug("transient ledger error", zap.Int("attempt", attempt), zap.Error(lookupErr))

		default:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return outcome, ctxErr
			}
			logger.Warn("ledger refused transaction lookup", zap.Error(lookupErr))
			outcome.Failure = model.FailureInvalidReference
			return outcome, nil
		}

		if attempt == v.policy.MaxAttempts {
			break
		}
		if err = v.sleep(ctx, v.policy.Delay(attempt)); err != nil {
			return outcome, err
		}
	}

	outcome.Failure = lastFailure
	logger.Warn("transaction finality not confirmed",
		zap.Int("attempts", outcome.Attempts),
		zap.String("failure", string(outcome.Failure)))
	return outcome, nil
}

// channelPresence reads the channel entry, retrying transient failures with the same policy.
func (v *TxValidator) channelPresence(ctx context.Context, channelID string) (bool, *time.Time, error) {
	var lastErr error
	for attempt := 1; attempt <= v.policy.MaxAttempts; attempt++ {
		entry, err := v.ledger.LedgerEntry(ctx, channelID)
		switch {
		case err == nil:
			return true, entry.Expiration, nil
		case errors.Is(err, xrpl.ErrEntryNotFound):
			return false, nil, nil
		case !xrpl.IsTransient(err):
			return false, nil, fmt.Errorf("read channel entry: %w", err)
		}
		lastErr = err
		if attempt == v.policy.MaxAttempts {
			break
		}
		if err := v.sleep(ctx, v.policy.Delay(attempt)); err != nil {
			return false, nil, err
		}
	}
	return false, nil, fmt.Errorf("read channel entry after %d attempts: %w", v.policy.MaxAttempts, lastErr)
}

// claimsChannel reports whether status can be the claim submitted for channelID.
// Fields the node did not return are not held against the transaction.
func claimsChannel(status xrpl.TxStatus, channelID string) bool {
	if status.TransactionType != "" && status.TransactionType != model.TxTypePaymentChannelClaim {
		return false
	}
	return status.Channel == "" || model.NormalizeHash(status.Channel) == channelID
}
