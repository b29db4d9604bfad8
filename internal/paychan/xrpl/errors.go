package xrpl

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
)

var (
	// ErrEntryNotFound means the validated ledger holds no such object.
	ErrEntryNotFound = errors.New("ledger entry not found")
	// ErrTxNotFound means the transaction is not (yet) known to the node.
	ErrTxNotFound = errors.New("transaction not found")
)

// transientTokens are rippled error tokens that describe node state, not the request.
var transientTokens = map[string]bool{
	"noNetwork":        true,
	"noCurrent":        true,
	"noClosed":         true,
	"lgrNotFound":      true,
	"tooBusy":          true,
	"slowDown":         true,
	"notSynced":        true,
	"amendmentBlocked": true,
	"internal":         true,
}

// RPCError is an error reported by rippled inside a JSON-RPC result.
type RPCError struct {
	Method  string
	Token   string
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s (%d)", e.Method, e.Token, e.Code)
	}
	return fmt.Sprintf("%s: %s (%d): %s", e.Method, e.Token, e.Code, e.Message)
}

// Transient reports whether retrying the identical request may succeed.
func (e *RPCError) Transient() bool {
	return transientTokens[e.Token]
}

// TransportError wraps a failure to reach the node or decode its reply.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is worth retrying: transport failures and node-state
// errors are, protocol-level refusals and not-found answers are not.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrEntryNotFound) || errors.Is(err, ErrTxNotFound) {
		return false
	}
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Transient()
	}
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

func classifyRequestError(method string, err error) error {
	var jsonErr *btcjson.RPCError
	if errors.As(err, &jsonErr) {
		return &RPCError{
			Method:  method,
			Token:   "jsonrpc",
			Code:    int(jsonErr.Code),
			Message: jsonErr.Message,
		}
	}
	return &TransportError{Method: method, Err: err}
}

func classifyResultError(method string, env statusEnvelope) error {
	switch env.Error {
	case "entryNotFound":
		return ErrEntryNotFound
	case "txnNotFound":
		return ErrTxNotFound
	}
	token := env.Error
	if token == "" {
		token = env.Status
	}
	return &RPCError{
		Method:  method,
		Token:   token,
		Code:    env.ErrorCode,
		Message: env.ErrorMessage,
	}
}
