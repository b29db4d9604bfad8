package xrpl

import (
	"encoding/json"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RawRequester sends one JSON-RPC method call to a rippled node.
	RawRequester interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// PayChannelEntry is the validated ledger object of a payment channel.
type PayChannelEntry struct {
	Index       string
	Account     string
	Destination string
	Amount      uint64
	Balance     uint64
	SettleDelay uint32
	PublicKey   string
	Expiration  *time.Time
	CancelAfter *time.Time
}

// TxStatus is what the ledger knows about a submitted transaction.
type TxStatus struct {
	Hash            string
	TransactionType string
	Account         string
	Channel         string
	Validated       bool
	Result          string
	LedgerIndex     uint32
}

// AccountChannel is one row of an account_channels listing.
type AccountChannel struct {
	ChannelID          string
	Account            string
	DestinationAccount string
	Amount             uint64
	Balance            uint64
	SettleDelay        uint32
	PublicKey          string
	PublicKeyHex       string
	Expiration         *time.Time
}

type statusEnvelope struct {
	Status       string `json:"status"`
	Error        string `json:"error"`
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

type ledgerEntryParams struct {
	PaymentChannel string `json:"payment_channel"`
	LedgerIndex    string `json:"ledger_index"`
}

type ledgerEntryResult struct {
	Index string         `json:"index"`
	Node  payChannelNode `json:"node"`
}

type payChannelNode struct {
	LedgerEntryType string  `json:"LedgerEntryType"`
	Account         string  `json:"Account"`
	Destination     string  `json:"Destination"`
	Amount          string  `json:"Amount"`
	Balance         string  `json:"Balance"`
	SettleDelay     uint32  `json:"SettleDelay"`
	PublicKey       string  `json:"PublicKey"`
	Expiration      *uint32 `json:"Expiration,omitempty"`
	CancelAfter     *uint32 `json:"CancelAfter,omitempty"`
}

type txParams struct {
	Transaction string `json:"transaction"`
	Binary      bool   `json:"binary"`
}

type txResult struct {
	Hash            string `json:"hash"`
	TransactionType string `json:"TransactionType"`
	Account         string `json:"Account"`
	Channel         string `json:"Channel"`
	Validated       bool   `json:"validated"`
	LedgerIndex     uint32 `json:"ledger_index"`
	Meta            *struct {
		TransactionResult string `json:"TransactionResult"`
	} `json:"meta"`
}

type accountChannelsParams struct {
	Account     string          `json:"account"`
	LedgerIndex string          `json:"ledger_index"`
	Limit       int             `json:"limit,omitempty"`
	Marker      json.RawMessage `json:"marker,omitempty"`
}

type accountChannelsResult struct {
	Account  string               `json:"account"`
	Channels []accountChannelJSON `json:"channels"`
	Marker   json.RawMessage      `json:"marker,omitempty"`
}

type accountChannelJSON struct {
	ChannelID          string  `json:"channel_id"`
	Account            string  `json:"account"`
	DestinationAccount string  `json:"destination_account"`
	Amount             string  `json:"amount"`
	Balance            string  `json:"balance"`
	SettleDelay        uint32  `json:"settle_delay"`
	PublicKey          string  `json:"public_key"`
	PublicKeyHex       string  `json:"public_key_hex"`
	Expiration         *uint32 `json:"expiration,omitempty"`
}
