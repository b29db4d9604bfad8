package xrpl

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/ratelimit"
)

// RPCClient wraps a rippled JSON-RPC connection with rate limiting and metrics instrumentation.
type RPCClient struct {
	client     RawRequester
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client allowing at most rps requests per second.
func NewRPCClient(client RawRequester, rps int, rpcMetrics RPCMetrics) (*RPCClient, error) {
	if client == nil {
		return nil, fmt.Errorf("rpc client is required")
	}
	if rpcMetrics == nil {
		return nil, fmt.Errorf("rpc metrics is required")
	}
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &RPCClient{
		client:     client,
		limiter:    limiter,
		rpcMetrics: rpcMetrics,
	}, nil
}

// RawRequest sends method with params and returns the raw result object.
func (r *RPCClient) RawRequest(method string, params []json.RawMessage) (res json.RawMessage, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe(method, err, started)
	}()
	return r.client.RawRequest(method, params)
}

// Dial opens an HTTP POST mode JSON-RPC connection to the node at rawURL
// (http://host:port or https://host:port).
func Dial(rawURL, user, pass string) (*rpcclient.Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse node url: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse node url: missing host in %q", rawURL)
	}
	var disableTLS bool
	switch u.Scheme {
	case "http":
		disableTLS = true
	case "https":
	default:
		return nil, fmt.Errorf("parse node url: unsupported scheme %q", u.Scheme)
	}

	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         u.Host + u.Path,
		User:         user,
		Pass:         pass,
		HTTPPostMode: true,
		DisableTLS:   disableTLS,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("create rpc client: %w", err)
	}
	return client, nil
}
