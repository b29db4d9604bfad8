package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// BalanceSource records where the balance used for a closure came from.
type BalanceSource string

var (
	SourceOffChain BalanceSource = "off_chain"
	SourceLedger   BalanceSource = "ledger"
)

const (
	// TxTypePaymentChannelClaim is the ledger transaction type for channel claims.
	TxTypePaymentChannelClaim = "PaymentChannelClaim"
	// FlagRenew clears a scheduled expiration. Never set by this system.
	FlagRenew uint32 = 0x00010000
	// FlagClose requests that the claim terminate the channel.
	FlagClose uint32 = 0x00020000
)

// UnsignedClaim is the PaymentChannelClaim handed to the external wallet signer.
// Field names and encodings follow the ledger's JSON transaction format.
type UnsignedClaim struct {
	TransactionType string `json:"TransactionType"`
	Account         string `json:"Account"`
	Channel         string `json:"Channel"`
	Balance         string `json:"Balance,omitempty"`
	PublicKey       string `json:"PublicKey,omitempty"`
	Flags           uint32 `json:"Flags"`
}

// HasBalance reports whether an explicit Balance field is present.
func (c UnsignedClaim) HasBalance() bool {
	return c.Balance != ""
}

// BalanceDrops returns the claimed balance, zero when the field is omitted.
func (c UnsignedClaim) BalanceDrops() uint64 {
	if c.Balance == "" {
		return 0
	}
	v, err := strconv.ParseUint(c.Balance, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ClosureAttempt is the ephemeral result of preparing a closure. It is not persisted.
type ClosureAttempt struct {
	ID              uuid.UUID
	ChannelID       string
	Initiator       string
	Role            Role
	ResolvedBalance uint64
	Source          BalanceSource
	Unverified      bool
	OffChainBalance uint64
	LedgerBalance   uint64
	LedgerKnown     bool
	Tx              UnsignedClaim
	PreparedAt      time.Time
}
