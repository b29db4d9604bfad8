package model

import "time"

// TxResultSuccess is the ledger result code for an applied transaction.
const TxResultSuccess = "tesSUCCESS"

// ValidationFailure classifies why a validation did not confirm success.
type ValidationFailure string

var (
	FailureNone ValidationFailure = ""
	// FailureRejected: the transaction is final with a non-success result code.
	FailureRejected ValidationFailure = "rejected"
	// FailureNotFound: the ledger never returned the transaction within the polling window.
	FailureNotFound ValidationFailure = "not_found"
	// FailureNotFinalized: the transaction was seen but never reached a validated ledger.
	FailureNotFinalized ValidationFailure = "not_finalized"
	// FailureUnverified: ledger queries kept failing transiently.
	FailureUnverified ValidationFailure = "unverified"
	// FailureInvalidReference: the ledger refused the lookup itself.
	FailureInvalidReference ValidationFailure = "invalid_reference"
)

// ValidationOutcome is the observation made by polling the ledger for a transaction.
type ValidationOutcome struct {
	TxHash    string
	Finalized bool
	Accepted  bool
	// PresenceChecked is false when the post-finality entry lookup could not complete.
	PresenceChecked     bool
	ChannelStillPresent bool
	// Expiration is the ledger-reported expiration when the entry survived.
	Expiration *time.Time
	ResultCode string
	Failure    ValidationFailure
	Attempts   int
	Elapsed    time.Duration
}

// Succeeded reports whether the transaction is final and applied.
func (o ValidationOutcome) Succeeded() bool {
	return o.Finalized && o.Accepted
}

// Conclusive reports whether the outcome can drive a state transition.
func (o ValidationOutcome) Conclusive() bool {
	return o.Succeeded() && o.PresenceChecked
}

// Definitive reports whether a failure is final rather than "unknown, retry later".
func (o ValidationOutcome) Definitive() bool {
	return o.Failure == FailureRejected || o.Failure == FailureInvalidReference
}
