package model

import (
	"fmt"
	"time"
)

type edgeKind int

const (
	edgeNone edgeKind = iota
	edgeForward
	edgeRollback
	edgeCorrection
)

// edges is the complete lifecycle graph. Corrections exist only so a ledger that still
// holds a channel can overrule an off-chain record that already claims it is closed.
var edges = map[Status]map[Status]edgeKind{
	StatusOpen: {
		StatusClosing: edgeForward,
		StatusClosed:  edgeForward,
	},
	StatusClosing: {
		StatusClosed: edgeForward,
		StatusOpen:   edgeRollback,
	},
	StatusClosed: {
		StatusOpen:    edgeCorrection,
		StatusClosing: edgeCorrection,
	},
}

// CanTransition reports whether from -> to is a regular lifecycle edge
// (forward or rollback, excluding ledger corrections).
func CanTransition(from, to Status) bool {
	k := edges[from][to]
	return k == edgeForward || k == edgeRollback
}

func checkEdge(from, to Status, allowed ...edgeKind) error {
	k := edges[from][to]
	for _, a := range allowed {
		if k == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// Close moves the channel to closed: the balance is cleared as disbursed and the close
// time and transaction reference are recorded. An empty txRef keeps the existing one.
func (c Channel) Close(at time.Time, txRef string) (Channel, error) {
	if err := checkEdge(c.Status, StatusClosed, edgeForward); err != nil {
		return c, err
	}
	next := c
	next.Status = StatusClosed
	next.AccumulatedBalance = 0
	next.ExpirationTime = nil
	closedAt := at.UTC()
	next.ClosedAt = &closedAt
	if txRef != "" {
		next.ClosureTxRef = txRef
	}
	return next, next.Validate()
}

// ScheduleClose moves an open channel into the grace period ending at expiration.
func (c Channel) ScheduleClose(expiration time.Time, txRef string) (Channel, error) {
	if err := checkEdge(c.Status, StatusClosing, edgeForward); err != nil {
		return c, err
	}
	next := c
	next.Status = StatusClosing
	exp := expiration.UTC()
	next.ExpirationTime = &exp
	if txRef != "" {
		next.ClosureTxRef = txRef
	}
	return next, next.Validate()
}

// Rollback returns a closing channel to open, clearing the expiration.
func (c Channel) Rollback() (Channel, error) {
	if err := checkEdge(c.Status, StatusOpen, edgeRollback); err != nil {
		return c, err
	}
	next := c
	next.Status = StatusOpen
	next.ExpirationTime = nil
	return next, next.Validate()
}

// WithExpiration replaces the expiration of a closing channel with the ledger's value.
func (c Channel) WithExpiration(expiration time.Time) (Channel, bool, error) {
	if c.Status != StatusClosing {
		return c, false, fmt.Errorf("%w: expiration update on %s channel", ErrInvalidTransition, c.Status)
	}
	exp := expiration.UTC()
	if c.ExpirationTime != nil && c.ExpirationTime.Equal(exp) {
		return c, false, nil
	}
	next := c
	next.ExpirationTime = &exp
	return next, true, next.Validate()
}

// CorrectClosed reopens a record that claims closed while the ledger still holds the channel.
// expiration selects closing (non-nil) or open. ledgerBalance seeds the accumulated balance,
// since the off-chain value was cleared when the record was closed.
func (c Channel) CorrectClosed(expiration *time.Time, ledgerBalance uint64) (Channel, error) {
	to := StatusOpen
	if expiration != nil {
		to = StatusClosing
	}
	if err := checkEdge(c.Status, to, edgeCorrection); err != nil {
		return c, err
	}
	if ledgerBalance > c.FundedAmount {
		return c, fmt.Errorf("%w: ledger balance %d > funded %d", ErrBalanceExceedsFunding, ledgerBalance, c.FundedAmount)
	}
	next := c
	next.Status = to
	next.AccumulatedBalance = ledgerBalance
	next.ClosedAt = nil
	next.ExpirationTime = nil
	if expiration != nil {
		exp := expiration.UTC()
		next.ExpirationTime = &exp
	}
	return next, next.Validate()
}

// Accrue adds earned wages to an open channel.
func (c Channel) Accrue(amount uint64) (Channel, error) {
	if c.Status != StatusOpen {
		return c, fmt.Errorf("%w: status %s", ErrChannelNotOpen, c.Status)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	if amount > c.FundedAmount-c.AccumulatedBalance {
		return c, fmt.Errorf("%w: %d + %d > %d", ErrBalanceExceedsFunding, c.AccumulatedBalance, amount, c.FundedAmount)
	}
	next := c
	next.AccumulatedBalance += amount
	return next, next.Validate()
}
