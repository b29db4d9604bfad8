// Package xrpl reads payment channel and transaction state from a rippled node over JSON-RPC.
package xrpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/paychan-backend/pkg/safe"
	"go.uber.org/zap"
)

const (
	methodLedgerEntry     = "ledger_entry"
	methodTx              = "tx"
	methodAccountChannels = "account_channels"

	ledgerValidated = "validated"
	statusSuccess   = "success"

	defaultPageLimit = 200
	maxPages         = 1000
)

// Gateway is the read-only view of the ledger used by the channel lifecycle.
// Every read targets the latest validated ledger.
type Gateway struct {
	rpc    RawRequester
	logger *zap.Logger
}

// NewGateway constructs a Gateway.
func NewGateway(rpc RawRequester, logger *zap.Logger) (*Gateway, error) {
	if rpc == nil {
		return nil, fmt.Errorf("rpc client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		rpc:    rpc,
		logger: logger.Named("xrpl_gateway"),
	}, nil
}

// LedgerEntry returns the validated PayChannel object for channelID.
// ErrEntryNotFound means the ledger no longer (or never) held the channel.
func (g *Gateway) LedgerEntry(ctx context.Context, channelID string) (PayChannelEntry, error) {
	var res ledgerEntryResult
	err := g.call(ctx, methodLedgerEntry, ledgerEntryParams{
		PaymentChannel: channelID,
		LedgerIndex:    ledgerValidated,
	}, &res)
	if err != nil {
		return PayChannelEntry{}, err
	}
	if res.Node.LedgerEntryType != "" && res.Node.LedgerEntryType != "PayChannel" {
		return PayChannelEntry{}, fmt.Errorf("%s: unexpected entry type %q", methodLedgerEntry, res.Node.LedgerEntryType)
	}

	amount, err := safe.ParseUint64(res.Node.Amount)
	if err != nil {
		return PayChannelEntry{}, fmt.Errorf("%s: amount: %w", methodLedgerEntry, err)
	}
	balance, err := safe.ParseUint64(res.Node.Balance)
	if err != nil {
		return PayChannelEntry{}, fmt.Errorf("%s: balance: %w", methodLedgerEntry, err)
	}
	index := res.Index
	if index == "" {
		index = channelID
	}
	return PayChannelEntry{
		Index:       index,
		Account:     res.Node.Account,
		Destination: res.Node.Destination,
		Amount:      amount,
		Balance:     balance,
		SettleDelay: res.Node.SettleDelay,
		PublicKey:   res.Node.PublicKey,
		Expiration:  optionalTime(res.Node.Expiration),
		CancelAfter: optionalTime(res.Node.CancelAfter),
	}, nil
}

// Transaction returns the finality status of hash.
// ErrTxNotFound means the node does not know the transaction yet.
func (g *Gateway) Transaction(ctx context.Context, hash string) (TxStatus, error) {
	var res txResult
	if err := g.call(ctx, methodTx, txParams{Transaction: hash}, &res); err != nil {
		return TxStatus{}, err
	}
	status := TxStatus{
		Hash:            res.Hash,
		TransactionType: res.TransactionType,
		Account:         res.Account,
		Channel:         res.Channel,
		Validated:       res.Validated,
		LedgerIndex:     res.LedgerIndex,
	}
	if status.Hash == "" {
		status.Hash = hash
	}
	if res.Meta != nil {
		status.Result = res.Meta.TransactionResult
	}
	return status, nil
}

// AccountChannels lists every channel account funds in the validated ledger,
// following pagination markers until the listing is complete.
func (g *Gateway) AccountChannels(ctx context.Context, account string) ([]AccountChannel, error) {
	var (
		out    []AccountChannel
		marker json.RawMessage
	)
	for page := 0; ; page++ {
		if page >= maxPages {
			return nil, fmt.Errorf("%s: listing for %s exceeds %d pages", methodAccountChannels, account, maxPages)
		}
		var res accountChannelsResult
		err := g.call(ctx, methodAccountChannels, accountChannelsParams{
			Account:     account,
			LedgerIndex: ledgerValidated,
			Limit:       defaultPageLimit,
			Marker:      marker,
		}, &res)
		if err != nil {
			return nil, err
		}
		for _, raw := range res.Channels {
			ch, err := convertAccountChannel(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: channel %s: %w", methodAccountChannels, raw.ChannelID, err)
			}
			out = append(out, ch)
		}
		if isEmptyMarker(res.Marker) {
			break
		}
		if bytes.Equal(res.Marker, marker) {
			return nil, fmt.Errorf("%s: marker did not advance", methodAccountChannels)
		}
		marker = res.Marker
		g.logger.Debug("following account_channels marker",
			zap.String("account", account),
			zap.Int("page", page+1),
			zap.Int("channels", len(out)))
	}
	return out, nil
}

func convertAccountChannel(raw accountChannelJSON) (AccountChannel, error) {
	amount, err := safe.ParseUint64(raw.Amount)
	if err != nil {
		return AccountChannel{}, fmt.Errorf("amount: %w", err)
	}
	balance, err := safe.ParseUint64(raw.Balance)
	if err != nil {
		return AccountChannel{}, fmt.Errorf("balance: %w", err)
	}
	return AccountChannel{
		ChannelID:          raw.ChannelID,
		Account:            raw.Account,
		DestinationAccount: raw.DestinationAccount,
		Amount:             amount,
		Balance:            balance,
		SettleDelay:        raw.SettleDelay,
		PublicKey:          raw.PublicKey,
		PublicKeyHex:       raw.PublicKeyHex,
		Expiration:         optionalTime(raw.Expiration),
	}, nil
}

func isEmptyMarker(m json.RawMessage) bool {
	m = bytes.TrimSpace(m)
	return len(m) == 0 || bytes.Equal(m, []byte("null"))
}

// call issues one request and decodes the result object into out. rippled reports
// request-level failures inside the result with status "error".
func (g *Gateway) call(ctx context.Context, method string, params any, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("%s: marshal params: %w", method, err)
	}

	raw, err := g.rpc.RawRequest(method, []json.RawMessage{body})
	if err != nil {
		return classifyRequestError(method, err)
	}

	var env statusEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &TransportError{Method: method, Err: fmt.Errorf("decode envelope: %w", err)}
	}
	if (env.Status != "" && env.Status != statusSuccess) || env.Error != "" {
		return classifyResultError(method, env)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Method: method, Err: fmt.Errorf("decode result: %w", err)}
	}
	return nil
}
