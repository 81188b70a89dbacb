package models_test

import (
	"reflect"
	"testing"
	"time"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/codec"
	"github.com/reoring/scbind/hname"
	"github.com/reoring/scbind/models"
	"github.com/reoring/scbind/wire"
)

func TestTxInclusionStateMsg_Wire(t *testing.T) {
	in := models.TxInclusionStateMsg{State: "confirmed", TxID: "abc123"}
	rec := models.TxInclusionStateMsgType.Encode(in)
	if !reflect.DeepEqual(rec, codec.Record{"state": "confirmed", "txId": "abc123"}) {
		t.Fatalf("unexpected record %v", rec)
	}
	out, err := models.TxInclusionStateMsgType.Decode(rec)
	if err != nil || out != in {
		t.Fatalf("round trip: %v %+v", err, out)
	}
}

func TestL1Params_FromJSON(t *testing.T) {
	body := []byte(`{
		"baseToken": {"name":"Shimmer","tickerSymbol":"SMR","unit":"SMR","subunit":"glow","decimals":6,"useMetricPrefix":false},
		"maxPayloadSize": 32768,
		"protocol": {
			"version": 2, "networkName": "testnet", "bech32Hrp": "rms", "minPowScore": 0, "belowMaxDepth": 15,
			"rentStructure": {"vByteCost": 100, "vByteFactorData": 1, "vByteFactorKey": 10},
			"tokenSupply": 1813620509061365
		},
		"futureField": true
	}`)
	rec, err := wire.Unmarshal(body)
	if err != nil {
		t.Fatal(err)
	}
	p, err := models.L1ParamsType.Decode(rec)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.MaxPayloadSize != 32768 || p.BaseToken.TickerSymbol != "SMR" || p.Protocol.RentStructure.VByteFactorKey != 10 || p.Protocol.TokenSupply != 1813620509061365 {
		t.Fatalf("unexpected params %+v", p)
	}

	if _, err := models.L1ParamsType.Decode(rec, scbind.Strict()); !scbind.IsUnknownKey(err) {
		t.Fatalf("strict decode must report futureField, got %v", err)
	}
}

func TestL1Params_RangeError(t *testing.T) {
	rec, err := wire.Unmarshal([]byte(`{"baseToken":{},"maxPayloadSize":2147483648,"protocol":{}}`))
	if err != nil {
		t.Fatal(err)
	}
	_, err = models.L1ParamsType.Decode(rec)
	iss, ok := scbind.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	it, ok := iss.First(scbind.CodeOverflow)
	if !ok || it.Path != "/maxPayloadSize" || it.Expected != "int32" {
		t.Fatalf("expected int32 overflow at /maxPayloadSize, got %v", iss)
	}
	if it, ok := iss.First(scbind.CodeRequired); !ok || it.Path != "/baseToken/name" {
		t.Fatalf("expected nested required issue, got %v", iss)
	}
}

func TestContractCallViewRequest_OptionalFields(t *testing.T) {
	in := models.ContractCallViewRequest{
		ContractHName: hname.Hn("blocklog").String(),
		FunctionName:  "getBlockInfo",
		Arguments:     map[string][]byte{"n": {5, 0, 0, 0}},
	}
	rec := models.ContractCallViewRequestType.Encode(in)
	if len(rec) != 3 {
		t.Fatalf("empty optional fields must be omitted: %v", rec)
	}
	data, err := wire.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	back, err := wire.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	out, err := models.ContractCallViewRequestType.Decode(back)
	if err != nil || !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip: %v %+v", err, out)
	}
}

func TestEvents_Union(t *testing.T) {
	events := []models.Event{
		models.NewBlockEvent{
			Envelope: models.Envelope{ChainID: "chain"},
			Block:    models.BlockInfoResponse{BlockIndex: 7, Timestamp: time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), TotalRequests: 2, GasBurned: 10},
			TrieRoot: []byte{1, 2, 3},
		},
		models.ReceiptEvent{
			Envelope:   models.Envelope{ChainID: "chain", Issuer: "agent", RequestID: "req"},
			BlockIndex: 7, RequestIndex: 1, GasBurned: 10, Error: "out of gas",
		},
		models.BlockEventsEvent{
			Envelope:   models.Envelope{ChainID: "chain"},
			BlockIndex: 7,
			Events:     []models.ContractEvent{{Contract: hname.Hn("governance"), Topic: "owner", Payload: []byte{9}}},
		},
	}
	for _, in := range events {
		data, err := wire.Marshal(models.Events.EncodeOrdered(in))
		if err != nil {
			t.Fatal(err)
		}
		rec, err := wire.Unmarshal(data, wire.Options{RejectDuplicateKeys: true})
		if err != nil {
			t.Fatal(err)
		}
		if rec["kind"] != in.Kind() {
			t.Fatalf("kind: got %v, want %s", rec["kind"], in.Kind())
		}
		out, err := models.Events.Decode(rec, scbind.Strict())
		if err != nil {
			t.Fatalf("%s: %v", in.Kind(), err)
		}
		if !reflect.DeepEqual(out, in) {
			t.Fatalf("round trip:\n got %#v\nwant %#v", out, in)
		}
	}

	_, err := models.Events.Decode(codec.Record{"kind": "state_changed"})
	if iss, _ := scbind.AsIssues(err); !iss.Has(scbind.CodeDiscriminatorUnknown) {
		t.Fatalf("expected discriminator_unknown, got %v", err)
	}
}
