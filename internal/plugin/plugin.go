// Package plugin implements the c-lightning plugin wire protocol: JSON-RPC
// 2.0 requests from lightningd on stdin, responses on stdout. A plugin
// answers getmanifest with its methods and options, receives its runtime
// configuration in init, and then serves method calls until stdin closes.
package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Handler serves one plugin RPC method.
type Handler func(ctx context.Context, params json.RawMessage) (any, error)

// Method is an RPC method advertised in the manifest.
type Method struct {
	Name            string
	Usage           string
	Description     string
	LongDescription string
	Handler         Handler
}

// Option is a startup option advertised in the manifest. Only string options
// are supported, matching what lightningd passes through init.
type Option struct {
	Name        string
	Default     string
	Description string
}

// InitFunc receives the option values and lightningd configuration from the
// init request. Returning an error aborts the plugin.
type InitFunc func(ctx context.Context, options, configuration map[string]string) error

// Plugin speaks the plugin protocol over a reader/writer pair, normally
// stdin/stdout.
type Plugin struct {
	in  io.Reader
	out io.Writer

	writeMu sync.Mutex

	methods map[string]Method
	names   []string
	options []Option
	onInit  InitFunc
}

// New creates a Plugin reading requests from in and writing frames to out.
func New(in io.Reader, out io.Writer) *Plugin {
	return &Plugin{
		in:      in,
		out:     out,
		methods: make(map[string]Method),
	}
}

// AddMethod registers an RPC method. Manifest order follows registration order.
func (p *Plugin) AddMethod(m Method) {
	p.methods[m.Name] = m
	p.names = append(p.names, m.Name)
}

// AddOption registers a startup option.
func (p *Plugin) AddOption(o Option) {
	p.options = append(p.options, o)
}

// OnInit registers the init callback.
func (p *Plugin) OnInit(f InitFunc) {
	p.onInit = f
}

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type errObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *errObject      `json:"error,omitempty"`
}

type manifestOption struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Default     string `json:"default"`
	Description string `json:"description"`
}

type manifestMethod struct {
	Name            string `json:"name"`
	Usage           string `json:"usage"`
	Description     string `json:"description"`
	LongDescription string `json:"long_description,omitempty"`
}

type manifest struct {
	Options    []manifestOption `json:"options"`
	RPCMethods []manifestMethod `json:"rpcmethods"`
	Dynamic    bool             `json:"dynamic"`
}

type initParams struct {
	Options       map[string]any `json:"options"`
	Configuration map[string]any `json:"configuration"`
}

// Run serves requests until in is exhausted or the context is cancelled.
// Requests are handled sequentially, one at a time.
func (p *Plugin) Run(ctx context.Context) error {
	decoder := json.NewDecoder(p.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var req request
		if err := decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decoding request: %w", err)
		}

		if err := p.dispatch(ctx, &req); err != nil {
			return err
		}
	}
}

func (p *Plugin) dispatch(ctx context.Context, req *request) error {
	// Notifications carry no id and expect no reply.
	if len(req.ID) == 0 {
		slog.Debug("plugin: ignoring notification", "method", req.Method)
		return nil
	}

	switch req.Method {
	case "getmanifest":
		return p.reply(req.ID, p.manifest())
	case "init":
		return p.handleInit(ctx, req)
	default:
		m, ok := p.methods[req.Method]
		if !ok {
			return p.replyError(req.ID, -32601, fmt.Sprintf("unknown method %q", req.Method))
		}
		result, err := m.Handler(ctx, req.Params)
		if err != nil {
			slog.Error("plugin: method failed", "method", req.Method, "error", err)
			return p.replyError(req.ID, -1, err.Error())
		}
		return p.reply(req.ID, result)
	}
}

func (p *Plugin) manifest() manifest {
	m := manifest{
		Options:    []manifestOption{},
		RPCMethods: []manifestMethod{},
		Dynamic:    true,
	}
	for _, o := range p.options {
		m.Options = append(m.Options, manifestOption{
			Name:        o.Name,
			Type:        "string",
			Default:     o.Default,
			Description: o.Description,
		})
	}
	for _, name := range p.names {
		method := p.methods[name]
		m.RPCMethods = append(m.RPCMethods, manifestMethod{
			Name:            method.Name,
			Usage:           method.Usage,
			Description:     method.Description,
			LongDescription: method.LongDescription,
		})
	}
	return m
}

func (p *Plugin) handleInit(ctx context.Context, req *request) error {
	var params initParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return p.replyError(req.ID, -32602, fmt.Sprintf("invalid init params: %v", err))
	}

	if p.onInit != nil {
		options := stringValues(params.Options)
		configuration := stringValues(params.Configuration)
		if err := p.onInit(ctx, options, configuration); err != nil {
			slog.Error("plugin: init failed", "error", err)
			if replyErr := p.replyError(req.ID, -1, err.Error()); replyErr != nil {
				return replyErr
			}
			return fmt.Errorf("init: %w", err)
		}
	}

	return p.reply(req.ID, map[string]any{})
}

// stringValues flattens a JSON object into string form; lightningd sends
// option and configuration values of mixed scalar types.
func stringValues(m map[string]any) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}

// Log sends a log notification to lightningd. Level is one of debug, info,
// warn, error.
func (p *Plugin) Log(level, message string) {
	notification := struct {
		JSONRPC string `json:"jsonrpc"`
		Method  string `json:"method"`
		Params  struct {
			Level   string `json:"level"`
			Message string `json:"message"`
		} `json:"params"`
	}{JSONRPC: "2.0", Method: "log"}
	notification.Params.Level = level
	notification.Params.Message = message

	if err := p.write(notification); err != nil {
		slog.Warn("plugin: sending log notification failed", "error", err)
	}
}

func (p *Plugin) reply(id json.RawMessage, result any) error {
	return p.write(response{JSONRPC: "2.0", ID: id, Result: result})
}

func (p *Plugin) replyError(id json.RawMessage, code int, message string) error {
	return p.write(response{JSONRPC: "2.0", ID: id, Error: &errObject{Code: code, Message: message}})
}

// write emits one protocol frame, terminated by a blank line as lightningd
// expects.
func (p *Plugin) write(v any) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	encoder := json.NewEncoder(p.out)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	if _, err := io.WriteString(p.out, "\n"); err != nil {
		return fmt.Errorf("writing frame delimiter: %w", err)
	}
	return nil
}
