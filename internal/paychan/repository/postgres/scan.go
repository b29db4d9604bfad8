package postgres

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/goodnatureofminers/paychan-backend/pkg/safe"
	"github.com/jackc/pgx/v5"
)

const channelColumns = `
	id,
	funder_address,
	recipient_address,
	funded_amount,
	accumulated_balance,
	settle_delay_seconds,
	status,
	expiration_time,
	closure_tx_ref,
	closed_at,
	validation_attempts,
	last_synced_at,
	unclaimed_reported_for,
	version,
	created_at,
	updated_at`

// channelRow mirrors payment_channels. Amounts are BIGINT since Postgres has no unsigned type.
type channelRow struct {
	ID                 string
	FunderAddress      string
	RecipientAddress   string
	FundedAmount       int64
	AccumulatedBalance int64
	SettleDelaySeconds int64
	Status             string
	ExpirationTime     *time.Time
	ClosureTxRef       string
	ClosedAt           *time.Time
	ValidationAttempts int32
	LastSyncedAt       *time.Time
	UnclaimedFor       *time.Time
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func scanChannel(row pgx.Row) (model.Channel, error) {
	var r channelRow
	if err := row.Scan(
		&r.ID,
		&r.FunderAddress,
		&r.RecipientAddress,
		&r.FundedAmount,
		&r.AccumulatedBalance,
		&r.SettleDelaySeconds,
		&r.Status,
		&r.ExpirationTime,
		&r.ClosureTxRef,
		&r.ClosedAt,
		&r.ValidationAttempts,
		&r.LastSyncedAt,
		&r.UnclaimedFor,
		&r.Version,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return model.Channel{}, err
	}
	return r.toModel()
}

func (r channelRow) toModel() (model.Channel, error) {
	funded, err := safe.Uint64(r.FundedAmount)
	if err != nil {
		return model.Channel{}, fmt.Errorf("funded_amount: %w", err)
	}
	balance, err := safe.Uint64(r.AccumulatedBalance)
	if err != nil {
		return model.Channel{}, fmt.Errorf("accumulated_balance: %w", err)
	}
	delay, err := safe.Uint32(r.SettleDelaySeconds)
	if err != nil {
		return model.Channel{}, fmt.Errorf("settle_delay_seconds: %w", err)
	}
	attempts, err := safe.Uint32(r.ValidationAttempts)
	if err != nil {
		return model.Channel{}, fmt.Errorf("validation_attempts: %w", err)
	}
	return model.Channel{
		ID:                 r.ID,
		FunderAddress:      r.FunderAddress,
		RecipientAddress:   r.RecipientAddress,
		FundedAmount:       funded,
		AccumulatedBalance: balance,
		SettleDelaySeconds: delay,
		Status:             model.Status(r.Status),
		ExpirationTime:     utcPtr(r.ExpirationTime),
		ClosureTxRef:       r.ClosureTxRef,
		ClosedAt:           utcPtr(r.ClosedAt),
		ValidationAttempts: attempts,
		LastSyncedAt:       utcPtr(r.LastSyncedAt),
		UnclaimedReported:  utcPtr(r.UnclaimedFor),
		Version:            r.Version,
		CreatedAt:          r.CreatedAt.UTC(),
		UpdatedAt:          r.UpdatedAt.UTC(),
	}, nil
}

func fromModel(ch model.Channel) (channelRow, error) {
	funded, err := safe.Int64(ch.FundedAmount)
	if err != nil {
		return channelRow{}, fmt.Errorf("funded amount: %w", err)
	}
	balance, err := safe.Int64(ch.AccumulatedBalance)
	if err != nil {
		return channelRow{}, fmt.Errorf("accumulated balance: %w", err)
	}
	return channelRow{
		ID:                 ch.ID,
		FunderAddress:      ch.FunderAddress,
		RecipientAddress:   ch.RecipientAddress,
		FundedAmount:       funded,
		AccumulatedBalance: balance,
		SettleDelaySeconds: int64(ch.SettleDelaySeconds),
		Status:             string(ch.Status),
		ExpirationTime:     ch.ExpirationTime,
		ClosureTxRef:       ch.ClosureTxRef,
		ClosedAt:           ch.ClosedAt,
		ValidationAttempts: int32(min(ch.ValidationAttempts, 1<<31-1)),
		LastSyncedAt:       ch.LastSyncedAt,
		UnclaimedFor:       ch.UnclaimedReported,
		Version:            ch.Version,
	}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
