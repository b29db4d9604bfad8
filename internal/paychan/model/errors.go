package model

import "errors"

var (
	// ErrChannelNotFound means no off-chain record exists for the channel id.
	ErrChannelNotFound = errors.New("channel not found")
	// ErrChannelExists means the channel id was already registered.
	ErrChannelExists = errors.New("channel already registered")
	// ErrInvalidChannelID means the id is not a 64 character hex ledger identifier.
	ErrInvalidChannelID = errors.New("invalid channel id")
	// ErrInvalidTxHash means the transaction reference is not a 64 character hex hash.
	ErrInvalidTxHash = errors.New("invalid transaction hash")
	// ErrUnauthorizedParty means the caller is neither the funding nor the recipient address.
	ErrUnauthorizedParty = errors.New("party not authorized for channel")
	// ErrGracePeriodActive means the funding party tried to finalize before expiration.
	ErrGracePeriodActive = errors.New("settlement grace period has not elapsed")
	// ErrChannelClosed means the channel already reached its terminal state.
	ErrChannelClosed = errors.New("channel is closed")
	// ErrChannelNotOpen means the operation requires an open channel.
	ErrChannelNotOpen = errors.New("channel is not open")
	// ErrInvalidTransition means no lifecycle edge connects the two states.
	ErrInvalidTransition = errors.New("invalid channel state transition")
	// ErrInvariantViolated means a channel record broke a data model invariant.
	ErrInvariantViolated = errors.New("channel invariant violated")
	// ErrBalanceExceedsFunding means the accumulated balance would exceed the escrowed amount.
	ErrBalanceExceedsFunding = errors.New("balance exceeds funded amount")
	// ErrChannelNotOnLedger means the ledger no longer lists the channel.
	ErrChannelNotOnLedger = errors.New("channel not present on ledger")
	// ErrMissingChannelKey means the channel's recorded public key could not be obtained.
	ErrMissingChannelKey = errors.New("channel public key unavailable")
	// ErrInvalidRequest means a registration or accrual carried unusable values.
	ErrInvalidRequest = errors.New("invalid channel request")
	// ErrLedgerMismatch means the ledger entry disagrees with the registration request.
	ErrLedgerMismatch = errors.New("ledger entry does not match channel")
)
