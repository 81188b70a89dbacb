package call_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/call"
	"github.com/reoring/scbind/codec"
	"github.com/reoring/scbind/corecontracts"
	"github.com/reoring/scbind/corecontracts/coreblocklog"
	"github.com/reoring/scbind/hname"
	"github.com/reoring/scbind/models"
	"github.com/reoring/scbind/registry"
)

type blockIndexParams struct {
	BlockIndex uint32
}

var blockIndexParamsType = codec.NewType("GetBlockInfoParams",
	codec.Uint32("BlockIndex", coreblocklog.ParamBlockIndex, func(v *blockIndexParams) *uint32 { return &v.BlockIndex }),
)

type blockInfoResults struct {
	BlockIndex uint32
	BlockInfo  []byte
}

var blockInfoResultsType = codec.NewType("GetBlockInfoResults",
	codec.Uint32("BlockIndex", coreblocklog.ResultBlockIndex, func(v *blockInfoResults) *uint32 { return &v.BlockIndex }),
	codec.Bytes("BlockInfo", coreblocklog.ResultBlockInfo, codec.FormatHex, func(v *blockInfoResults) *[]byte { return &v.BlockInfo }),
)

var getBlockInfo = call.NewFunc(coreblocklog.HScName, coreblocklog.ViewGetBlockInfo, blockIndexParamsType, blockInfoResultsType)

func newProcessor(t *testing.T) *call.Processor {
	t.Helper()
	sc, err := corecontracts.Schema(coreblocklog.ScName)
	require.NoError(t, err)
	tbl, err := registry.FromSchema(sc)
	require.NoError(t, err)
	p, err := call.NewProcessor(tbl, map[string]call.Handler{
		coreblocklog.ViewGetBlockInfo: getBlockInfo.Handler(func(_ context.Context, p blockIndexParams) (blockInfoResults, error) {
			return blockInfoResults{BlockIndex: p.BlockIndex, BlockInfo: []byte{byte(p.BlockIndex)}}, nil
		}),
	})
	require.NoError(t, err)
	return p
}

func TestResolve(t *testing.T) {
	h, err := call.Resolve("", "getBlockInfo")
	require.NoError(t, err)
	require.Equal(t, coreblocklog.HViewGetBlockInfo, h)

	h, err = call.Resolve("be89f9b3", "ignored")
	require.NoError(t, err)
	require.Equal(t, hname.Hname(0xbe89f9b3), h)

	_, err = call.Resolve("", "")
	require.ErrorIs(t, err, call.ErrMissingTarget)

	_, err = call.Resolve("zz", "")
	require.ErrorIs(t, err, hname.ErrInvalidString)
}

func TestProcessor_TypedRoundTrip(t *testing.T) {
	p := newProcessor(t)
	require.Equal(t, coreblocklog.HScName, p.Contract())

	req, err := getBlockInfo.Request(blockIndexParams{BlockIndex: 7}, "")
	require.NoError(t, err)
	require.Equal(t, "f538ef2b", req.ContractHName)
	require.Equal(t, "be89f9b3", req.FunctionHName)

	// across the wire and back
	back, err := models.ContractCallViewRequestType.Decode(models.ContractCallViewRequestType.Encode(req))
	require.NoError(t, err)

	rec, err := p.Handle(context.Background(), back)
	require.NoError(t, err)
	res, err := getBlockInfo.Result(rec)
	require.NoError(t, err)
	require.Equal(t, blockInfoResults{BlockIndex: 7, BlockInfo: []byte{7}}, res)
}

func TestProcessor_ByName(t *testing.T) {
	p := newProcessor(t)
	args, err := call.EncodeArgs(codec.Record{coreblocklog.ParamBlockIndex: 3})
	require.NoError(t, err)
	rec, err := p.Handle(context.Background(), models.ContractCallViewRequest{
		ContractName: coreblocklog.ScName,
		FunctionName: coreblocklog.ViewGetBlockInfo,
		Arguments:    args,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(3), rec[coreblocklog.ResultBlockIndex])
}

func TestProcessor_Errors(t *testing.T) {
	p := newProcessor(t)
	ctx := context.Background()

	_, err := p.Handle(ctx, models.ContractCallViewRequest{ContractName: "governance", FunctionName: "getChainInfo"})
	require.ErrorIs(t, err, call.ErrContractMismatch)

	_, err = p.Call(ctx, coreblocklog.HViewIsRequestProcessed, nil)
	require.ErrorIs(t, err, call.ErrFunctionNotFound)
	require.Contains(t, err.Error(), "d57d50a9")

	_, err = p.Handle(ctx, models.ContractCallViewRequest{ContractName: coreblocklog.ScName})
	require.ErrorIs(t, err, call.ErrMissingTarget)

	// parameters are validated against the declared width
	args, err := call.EncodeArgs(codec.Record{coreblocklog.ParamBlockIndex: -1})
	require.NoError(t, err)
	_, err = p.Call(ctx, coreblocklog.HViewGetBlockInfo, mustDecode(t, args))
	require.True(t, scbind.IsRangeError(err), "got %v", err)

	_, err = p.Handle(ctx, models.ContractCallViewRequest{
		ContractName: coreblocklog.ScName,
		FunctionName: coreblocklog.ViewGetBlockInfo,
		Arguments:    map[string][]byte{"n": []byte("{")},
	})
	iss, ok := scbind.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, "/arguments/n", iss[0].Path)
}

func TestNewProcessor_UndeclaredHandler(t *testing.T) {
	sc, err := corecontracts.Schema(coreblocklog.ScName)
	require.NoError(t, err)
	tbl, err := registry.FromSchema(sc)
	require.NoError(t, err)
	_, err = call.NewProcessor(tbl, map[string]call.Handler{"mint": nil})
	require.True(t, errors.Is(err, call.ErrFunctionNotFound))
}

func TestProcessor_Concurrent(t *testing.T) {
	p := newProcessor(t)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i uint32) {
			defer wg.Done()
			rec, err := p.Call(context.Background(), coreblocklog.HViewGetBlockInfo, codec.Record{"n": i})
			if err != nil || rec["n"] != uint64(i) {
				t.Errorf("call %d: %v %v", i, err, rec)
			}
		}(uint32(i))
	}
	wg.Wait()
}

func mustDecode(t *testing.T, args map[string][]byte) codec.Record {
	t.Helper()
	rec, err := call.DecodeArgs(args)
	require.NoError(t, err)
	return rec
}
