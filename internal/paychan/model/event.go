package model

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a lifecycle event exposed to the notification layer.
type EventType string

var (
	EventClosingDetected  EventType = "closing-detected"
	EventExpiredUnclaimed EventType = "expired-unclaimed"
	EventValidationFailed EventType = "validation-failed"
	EventChannelClosed    EventType = "channel-closed"
	EventLedgerCorrection EventType = "ledger-correction"
)

// LifecycleEvent is emitted whenever the lifecycle core observes something a party should know.
type LifecycleEvent struct {
	ID         uuid.UUID
	ChannelID  string
	Type       EventType
	FromStatus Status
	ToStatus   Status
	TxHash     string
	Detail     string
	OccurredAt time.Time
}

// BalanceAudit is the reconciliation record written for every balance resolution.
type BalanceAudit struct {
	AttemptID   uuid.UUID
	ChannelID   string
	Initiator   string
	Role        Role
	OffChain    uint64
	Ledger      uint64
	LedgerKnown bool
	Source      BalanceSource
	Unverified  bool
	RecordedAt  time.Time
}

// Discrepancy is off-chain minus ledger, zero when the ledger value is unknown.
func (a BalanceAudit) Discrepancy() int64 {
	if !a.LedgerKnown {
		return 0
	}
	if a.OffChain >= a.Ledger {
		return int64(a.OffChain - a.Ledger)
	}
	return -int64(a.Ledger - a.OffChain)
}
