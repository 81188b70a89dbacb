package call

import (
	"context"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/codec"
	"github.com/reoring/scbind/hname"
	"github.com/reoring/scbind/models"
)

// Func is a typed binding of one contract function with parameters P and
// results R. The wire names of the P and R attribute tables are the param
// and result keys of the contract.
type Func[P, R any] struct {
	Contract hname.Hname
	Name     string
	Hname    hname.Hname
	params   *codec.Type[P]
	results  *codec.Type[R]
}

// NewFunc binds function name of contract.
func NewFunc[P, R any](contract hname.Hname, name string, params *codec.Type[P], results *codec.Type[R]) *Func[P, R] {
	return &Func[P, R]{Contract: contract, Name: name, Hname: hname.Hn(name), params: params, results: results}
}

// Request builds a view request addressed by selector. block may be empty.
func (f *Func[P, R]) Request(p P, block string) (models.ContractCallViewRequest, error) {
	args, err := EncodeArgs(f.params.Encode(p))
	if err != nil {
		return models.ContractCallViewRequest{}, err
	}
	return models.ContractCallViewRequest{
		ContractHName: f.Contract.String(),
		FunctionHName: f.Hname.String(),
		Arguments:     args,
		Block:         block,
	}, nil
}

// Result decodes the result record of a call.
func (f *Func[P, R]) Result(rec codec.Record, opts ...scbind.DecodeOpt) (R, error) {
	return f.results.Decode(rec, opts...)
}

// Handler adapts a typed implementation to a Processor handler.
func (f *Func[P, R]) Handler(fn func(context.Context, P) (R, error), opts ...scbind.DecodeOpt) Handler {
	return func(ctx context.Context, params codec.Record) (codec.Record, error) {
		p, err := f.params.Decode(params, opts...)
		if err != nil {
			return nil, err
		}
		r, err := fn(ctx, p)
		if err != nil {
			return nil, err
		}
		return f.results.Encode(r), nil
	}
}
