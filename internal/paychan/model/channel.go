// Package model defines the payment channel domain: the off-chain channel record, its
// lifecycle state machine, closure attempts and validation outcomes.
package model

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a channel.
type Status string

var (
	// StatusOpen accrues wages; the ledger has seen no closing claim.
	StatusOpen Status = "open"
	// StatusClosing is inside the settle-delay grace period scheduled by the ledger.
	StatusClosing Status = "closing"
	// StatusClosed is terminal; the ledger removed the channel entry.
	StatusClosed Status = "closed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusClosing, StatusClosed:
		return true
	}
	return false
}

// Role identifies which side of a channel an address is.
type Role string

var (
	RoleFunder    Role = "funder"
	RoleRecipient Role = "recipient"
	RoleUnknown   Role = "unknown"
)

// Channel is the off-chain record of a ledger payment channel.
type Channel struct {
	ID                 string
	FunderAddress      string
	RecipientAddress   string
	FundedAmount       uint64
	AccumulatedBalance uint64
	SettleDelaySeconds uint32
	Status             Status
	ExpirationTime     *time.Time
	ClosureTxRef       string
	ClosedAt           *time.Time
	ValidationAttempts uint32
	LastSyncedAt       *time.Time
	// UnclaimedReported is the expiration an expired-unclaimed event was last recorded for.
	UnclaimedReported  *time.Time
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ExpiryCursor is a keyset position in the (expiration, id) ordering of expired closing channels.
// The zero value starts from the beginning.
type ExpiryCursor struct {
	Expiration time.Time
	ID         string
}

// CursorAfter returns the position just past ch.
func CursorAfter(ch Channel) ExpiryCursor {
	var exp time.Time
	if ch.ExpirationTime != nil {
		exp = ch.ExpirationTime.UTC()
	}
	return ExpiryCursor{Expiration: exp, ID: ch.ID}
}

// Before reports whether ch sorts strictly after the cursor position.
func (c ExpiryCursor) Before(ch Channel) bool {
	if c.ID == "" {
		return true
	}
	exp := CursorAfter(ch).Expiration
	if !exp.Equal(c.Expiration) {
		return exp.After(c.Expiration)
	}
	return ch.ID > c.ID
}

// RoleOf returns the role address plays in the channel.
func (c Channel) RoleOf(address string) Role {
	switch address {
	case "":
		return RoleUnknown
	case c.FunderAddress:
		return RoleFunder
	case c.RecipientAddress:
		return RoleRecipient
	default:
		return RoleUnknown
	}
}

// Expired reports whether the grace period has elapsed at now.
func (c Channel) Expired(now time.Time) bool {
	return c.Status == StatusClosing && c.ExpirationTime != nil && !now.Before(*c.ExpirationTime)
}

// HasUnclaimedReport reports whether expired-unclaimed was already recorded for the current expiration.
func (c Channel) HasUnclaimedReport() bool {
	return c.UnclaimedReported != nil && c.ExpirationTime != nil && c.UnclaimedReported.Equal(*c.ExpirationTime)
}

// WithUnclaimedReport marks the current expiration as reported.
func (c Channel) WithUnclaimedReport() Channel {
	if c.ExpirationTime == nil {
		return c
	}
	exp := c.ExpirationTime.UTC()
	c.UnclaimedReported = &exp
	return c
}

// Validate checks the data model invariants.
func (c Channel) Validate() error {
	if !c.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvariantViolated, c.Status)
	}
	if c.AccumulatedBalance > c.FundedAmount {
		return fmt.Errorf("%w: accumulated %d > funded %d", ErrInvariantViolated, c.AccumulatedBalance, c.FundedAmount)
	}
	if (c.Status == StatusClosing) != (c.ExpirationTime != nil) {
		return fmt.Errorf("%w: status %s with expiration set=%t", ErrInvariantViolated, c.Status, c.ExpirationTime != nil)
	}
	if c.Status == StatusClosed && c.AccumulatedBalance != 0 {
		return fmt.Errorf("%w: closed channel holds balance %d", ErrInvariantViolated, c.AccumulatedBalance)
	}
	return nil
}

// ValidateChannelID checks the 64 hex character ledger identifier format.
func ValidateChannelID(id string) error {
	if !isHash256(id) {
		return fmt.Errorf("%w: %q", ErrInvalidChannelID, id)
	}
	return nil
}

// ValidateTxHash checks the 64 hex character transaction hash format.
func ValidateTxHash(hash string) error {
	if !isHash256(hash) {
		return fmt.Errorf("%w: %q", ErrInvalidTxHash, hash)
	}
	return nil
}

// NormalizeHash upper-cases a ledger hash the way rippled renders it.
func NormalizeHash(h string) string {
	return strings.ToUpper(strings.TrimSpace(h))
}

func isHash256(s string) bool {
	if len(s) != 64 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// Mutation computes the next state of a locked channel. Returning changed=false leaves the
// stored row untouched; returning an error aborts the write.
type Mutation func(current Channel) (next Channel, changed bool, err error)
