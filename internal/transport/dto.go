package transport

import (
	"strconv"
	"time"

	"github.com/goodnatureofminers/paychan-backend/internal/paychan/model"
	"github.com/goodnatureofminers/paychan-backend/internal/paychan/service/lifecycle"
)

// Amounts travel as decimal strings of drops, the way the ledger's JSON encodes them.

type registerRequest struct {
	ChannelID          string `json:"channel_id"`
	Funder             string `json:"funder"`
	Recipient          string `json:"recipient"`
	FundedDrops        string `json:"funded_drops"`
	SettleDelaySeconds int64  `json:"settle_delay_seconds"`
}

type accrualRequest struct {
	AmountDrops string `json:"amount_drops"`
}

type prepareClosureRequest struct {
	Initiator string `json:"initiator"`
}

// confirmClosureRequest carries no balance source; the service decides it from the stored channel.
type confirmClosureRequest struct {
	Initiator string `json:"initiator"`
	TxHash    string `json:"tx_hash"`
}

type channelResponse struct {
	ID                 string     `json:"id"`
	Funder             string     `json:"funder"`
	Recipient          string     `json:"recipient"`
	FundedDrops        string     `json:"funded_drops"`
	FundedXRP          string     `json:"funded_xrp"`
	AccumulatedDrops   string     `json:"accumulated_drops"`
	AccumulatedXRP     string     `json:"accumulated_xrp"`
	SettleDelaySeconds uint32     `json:"settle_delay_seconds"`
	Status             string     `json:"status"`
	ExpirationTime     *time.Time `json:"expiration_time,omitempty"`
	ClosureTx          string     `json:"closure_tx,omitempty"`
	ClosedAt           *time.Time `json:"closed_at,omitempty"`
	ValidationAttempts uint32     `json:"validation_attempts"`
	LastSyncedAt       *time.Time `json:"last_synced_at,omitempty"`
	Version            int64      `json:"version"`
}

type closureAttemptResponse struct {
	AttemptID     string              `json:"attempt_id"`
	ChannelID     string              `json:"channel_id"`
	Initiator     string              `json:"initiator"`
	Role          string              `json:"role"`
	BalanceSource string              `json:"balance_source"`
	Unverified    bool                `json:"unverified"`
	ResolvedDrops string              `json:"resolved_drops"`
	ResolvedXRP   string              `json:"resolved_xrp"`
	OffChainDrops string              `json:"off_chain_drops"`
	LedgerDrops   *string             `json:"ledger_drops,omitempty"`
	Transaction   model.UnsignedClaim `json:"transaction"`
	PreparedAt    time.Time           `json:"prepared_at"`
}

type closureResultResponse struct {
	Channel             channelResponse `json:"channel"`
	Finalized           bool            `json:"finalized"`
	Accepted            bool            `json:"accepted"`
	PresenceChecked     bool            `json:"presence_checked"`
	ChannelStillPresent bool            `json:"channel_still_present"`
	ResultCode          string          `json:"result_code,omitempty"`
	Failure             string          `json:"failure,omitempty"`
	Attempts            int             `json:"attempts"`
	ElapsedMillis       int64           `json:"elapsed_ms"`
	Modified            bool            `json:"modified"`
	BalanceSource       string          `json:"balance_source,omitempty"`
	Message             string          `json:"message"`
}

type syncResponse struct {
	Channel        channelResponse `json:"channel"`
	PreviousStatus string          `json:"previous_status"`
	Modified       bool            `json:"modified"`
}

type eventResponse struct {
	ID         string    `json:"id"`
	ChannelID  string    `json:"channel_id"`
	Type       string    `json:"type"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status,omitempty"`
	TxHash     string    `json:"tx_hash,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func drops(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func toChannelResponse(ch model.Channel) channelResponse {
	return channelResponse{
		ID:                 ch.ID,
		Funder:             ch.FunderAddress,
		Recipient:          ch.RecipientAddress,
		FundedDrops:        drops(ch.FundedAmount),
		FundedXRP:          model.XRP(ch.FundedAmount),
		AccumulatedDrops:   drops(ch.AccumulatedBalance),
		AccumulatedXRP:     model.XRP(ch.AccumulatedBalance),
		SettleDelaySeconds: ch.SettleDelaySeconds,
		Status:             string(ch.Status),
		ExpirationTime:     ch.ExpirationTime,
		ClosureTx:          ch.ClosureTxRef,
		ClosedAt:           ch.ClosedAt,
		ValidationAttempts: ch.ValidationAttempts,
		LastSyncedAt:       ch.LastSyncedAt,
		Version:            ch.Version,
	}
}

func toAttemptResponse(a model.ClosureAttempt) closureAttemptResponse {
	resp := closureAttemptResponse{
		AttemptID:     a.ID.String(),
		ChannelID:     a.ChannelID,
		Initiator:     a.Initiator,
		Role:          string(a.Role),
		BalanceSource: string(a.Source),
		Unverified:    a.Unverified,
		ResolvedDrops: drops(a.ResolvedBalance),
		ResolvedXRP:   model.XRP(a.ResolvedBalance),
		OffChainDrops: drops(a.OffChainBalance),
		Transaction:   a.Tx,
		PreparedAt:    a.PreparedAt,
	}
	if a.LedgerKnown {
		ledger := drops(a.LedgerBalance)
		resp.LedgerDrops = &ledger
	}
	return resp
}

func toClosureResultResponse(r lifecycle.ClosureResult) closureResultResponse {
	return closureResultResponse{
		Channel:             toChannelResponse(r.Channel),
		Finalized:           r.Outcome.Finalized,
		Accepted:            r.Outcome.Accepted,
		PresenceChecked:     r.Outcome.PresenceChecked,
		ChannelStillPresent: r.Outcome.ChannelStillPresent,
		ResultCode:          r.Outcome.ResultCode,
		Failure:             string(r.Outcome.Failure),
		Attempts:            r.Outcome.Attempts,
		ElapsedMillis:       r.Outcome.Elapsed.Milliseconds(),
		Modified:            r.Modified,
		BalanceSource:       string(r.Source),
		Message:             r.Message,
	}
}

func toEventResponses(events []model.LifecycleEvent) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, eventResponse{
			ID:         ev.ID.String(),
			ChannelID:  ev.ChannelID,
			Type:       string(ev.Type),
			FromStatus: string(ev.FromStatus),
			ToStatus:   string(ev.ToStatus),
			TxHash:     ev.TxHash,
			Detail:     ev.Detail,
			OccurredAt: ev.OccurredAt,
		})
	}
	return out
}
