package lightning

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/vincenzopalazzo/funds/internal/domain"
)

// Client is a JSON-RPC 2.0 client for a c-lightning node's unix socket.
// The socket path is resolved once at plugin init; each call dials its own
// connection, so a Client is safe for concurrent use.
type Client struct {
	socketPath string
	timeout    time.Duration
	nextID     atomic.Int64
}

// NewClient creates a client for the RPC socket at socketPath.
func NewClient(socketPath string, timeout time.Duration) *Client {
	return &Client{
		socketPath: socketPath,
		timeout:    timeout,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// RPCError is an error object returned by the node.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// call performs one JSON-RPC exchange over a fresh connection.
func (c *Client) call(ctx context.Context, method string, result any) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", c.socketPath, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("setting deadline: %w", err)
	}

	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  map[string]any{},
	}
	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return fmt.Errorf("sending %s: %w", method, err)
	}

	var resp rpcResponse
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return fmt.Errorf("reading %s response: %w", method, err)
	}
	if resp.Error != nil {
		return fmt.Errorf("%s: %w", method, resp.Error)
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return fmt.Errorf("parsing %s result: %w", method, err)
	}
	return nil
}

// ListFunds fetches a fresh snapshot of the node's on-chain outputs and
// channel balances.
func (c *Client) ListFunds(ctx context.Context) (domain.FundSnapshot, error) {
	var snapshot domain.FundSnapshot
	if err := c.call(ctx, "listfunds", &snapshot); err != nil {
		return domain.FundSnapshot{}, err
	}
	return snapshot, nil
}

// GetInfo fetches the node's identity and network information.
func (c *Client) GetInfo(ctx context.Context) (domain.NodeInfo, error) {
	var info domain.NodeInfo
	if err := c.call(ctx, "getinfo", &info); err != nil {
		return domain.NodeInfo{}, err
	}
	return info, nil
}
