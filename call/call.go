// Package call binds typed requests to contract functions: clients assemble
// view requests from generated constants, and a node resolves the selectors
// and dispatches to handlers.
package call

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/codec"
	"github.com/reoring/scbind/hname"
	"github.com/reoring/scbind/models"
	"github.com/reoring/scbind/registry"
	"github.com/reoring/scbind/wire"
)

var (
	ErrMissingTarget    = errors.New("call: neither hname nor name given")
	ErrFunctionNotFound = errors.New("call: function not found")
	ErrContractMismatch = errors.New("call: request targets another contract")
)

// Resolve returns the selector named by hn, or the hash of name when hn is
// empty.
func Resolve(hn, name string) (hname.Hname, error) {
	if hn != "" {
		h, err := hname.FromString(hn)
		if err != nil {
			return hname.Nil, fmt.Errorf("call: hname %q: %w", hn, err)
		}
		return h, nil
	}
	if name == "" {
		return hname.Nil, ErrMissingTarget
	}
	return hname.Hn(name), nil
}

// EncodeArgs serializes every parameter value as JSON under its key.
func EncodeArgs(params codec.Record) (map[string][]byte, error) {
	args := make(map[string][]byte, len(params))
	for k, v := range params {
		b, err := wire.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("call: argument %q: %w", k, err)
		}
		args[k] = b
	}
	return args, nil
}

// DecodeArgs is the inverse of EncodeArgs.
func DecodeArgs(args map[string][]byte) (codec.Record, error) {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rec := make(codec.Record, len(args))
	var iss scbind.Issues
	for _, k := range keys {
		v, err := wire.UnmarshalValue(args[k])
		if err != nil {
			if sub, ok := scbind.AsIssues(err); ok {
				iss = append(iss, sub.Rebase("/arguments/"+k)...)
				continue
			}
			return nil, err
		}
		rec[k] = v
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return rec, nil
}

// Handler runs one function on decoded parameters.
type Handler func(ctx context.Context, params codec.Record) (codec.Record, error)

type handler struct {
	name string
	run  Handler
}

// Processor dispatches view and function calls of one contract by selector.
// It is immutable after NewProcessor and safe for concurrent use.
type Processor struct {
	contract registry.Entry
	handlers map[hname.Hname]handler
	log      *zap.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// NewProcessor binds handlers, keyed by function name, to the selectors of
// tbl. Every name must be declared in tbl.
func NewProcessor(tbl *registry.Table, handlers map[string]Handler, opts ...Option) (*Processor, error) {
	c, ok := tbl.Contract()
	if !ok {
		return nil, fmt.Errorf("call: table declares no contract")
	}
	p := &Processor{contract: c, handlers: make(map[hname.Hname]handler, len(handlers)), log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	for name, h := range handlers {
		sel, ok := tbl.Selector(registry.NamespaceFunction, name)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no function %q", ErrFunctionNotFound, c.Name, name)
		}
		p.handlers[sel] = handler{name: name, run: h}
	}
	return p, nil
}

// Contract returns the selector of the contract served by p.
func (p *Processor) Contract() hname.Hname { return p.contract.Selector }

// Call runs the handler registered for fn.
func (p *Processor) Call(ctx context.Context, fn hname.Hname, params codec.Record) (codec.Record, error) {
	h, ok := p.handlers[fn]
	if !ok {
		p.log.Debug("unknown function", zap.String("contract", p.contract.Name), zap.Stringer("function", fn))
		return nil, fmt.Errorf("%w: %s in %s", ErrFunctionNotFound, fn, p.contract.Name)
	}
	p.log.Debug("call", zap.String("contract", p.contract.Name), zap.String("function", h.name))
	return h.run(ctx, params)
}

// Handle resolves a view request and runs it.
func (p *Processor) Handle(ctx context.Context, req models.ContractCallViewRequest) (codec.Record, error) {
	contract, err := Resolve(req.ContractHName, req.ContractName)
	if err != nil {
		return nil, err
	}
	if contract != p.contract.Selector {
		return nil, fmt.Errorf("%w: %s, serving %s", ErrContractMismatch, contract, p.contract.Selector)
	}
	fn, err := Resolve(req.FunctionHName, req.FunctionName)
	if err != nil {
		return nil, err
	}
	params, err := DecodeArgs(req.Arguments)
	if err != nil {
		return nil, err
	}
	return p.Call(ctx, fn, params)
}
