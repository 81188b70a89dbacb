package models

import (
	"github.com/reoring/scbind/codec"
	"github.com/reoring/scbind/hname"
)

// Event kinds published by a node.
const (
	KindNewBlock    = "new_block"
	KindReceipt     = "receipt"
	KindBlockEvents = "block_events"
)

// Envelope carries the fields every event shares.
type Envelope struct {
	ChainID   string
	Issuer    string // empty when issued by the VM
	RequestID string
}

func envelopeAttrs[T any](env func(*T) *Envelope) []codec.Attr[T] {
	return []codec.Attr[T]{
		codec.String("ChainID", "chainID", func(v *T) *string { return &env(v).ChainID }),
		codec.String("Issuer", "issuer", func(v *T) *string { return &env(v).Issuer }).Optional(),
		codec.String("RequestID", "requestID", func(v *T) *string { return &env(v).RequestID }).Optional(),
	}
}

// Event is one of NewBlockEvent, ReceiptEvent or BlockEventsEvent.
type Event interface {
	Kind() string
	Env() Envelope
}

type NewBlockEvent struct {
	Envelope
	Block    BlockInfoResponse
	TrieRoot []byte
}

func (NewBlockEvent) Kind() string    { return KindNewBlock }
func (e NewBlockEvent) Env() Envelope { return e.Envelope }

type ReceiptEvent struct {
	Envelope
	BlockIndex   uint32
	RequestIndex uint16
	GasBurned    uint64
	Error        string
}

func (ReceiptEvent) Kind() string    { return KindReceipt }
func (e ReceiptEvent) Env() Envelope { return e.Envelope }

// ContractEvent is a single event emitted by a contract during a block.
type ContractEvent struct {
	Contract hname.Hname
	Topic    string
	Payload  []byte
}

var ContractEventType = codec.NewType("ContractEvent",
	codec.Hname("Contract", "contractID", func(v *ContractEvent) *hname.Hname { return &v.Contract }),
	codec.String("Topic", "topic", func(v *ContractEvent) *string { return &v.Topic }),
	codec.Bytes("Payload", "payload", codec.FormatHex, func(v *ContractEvent) *[]byte { return &v.Payload }),
)

type BlockEventsEvent struct {
	Envelope
	BlockIndex uint32
	Events     []ContractEvent
}

func (BlockEventsEvent) Kind() string    { return KindBlockEvents }
func (e BlockEventsEvent) Env() Envelope { return e.Envelope }

var NewBlockEventType = codec.NewType("NewBlockEvent", append(
	envelopeAttrs(func(v *NewBlockEvent) *Envelope { return &v.Envelope }),
	codec.Object("Block", "blockInfo", BlockInfoResponseType, func(v *NewBlockEvent) *BlockInfoResponse { return &v.Block }),
	codec.Bytes("TrieRoot", "trieRoot", codec.FormatHex, func(v *NewBlockEvent) *[]byte { return &v.TrieRoot }),
)...)

var ReceiptEventType = codec.NewType("ReceiptEvent", append(
	envelopeAttrs(func(v *ReceiptEvent) *Envelope { return &v.Envelope }),
	codec.Uint32("BlockIndex", "blockIndex", func(v *ReceiptEvent) *uint32 { return &v.BlockIndex }),
	codec.Uint16("RequestIndex", "requestIndex", func(v *ReceiptEvent) *uint16 { return &v.RequestIndex }),
	codec.Uint64("GasBurned", "gasBurned", func(v *ReceiptEvent) *uint64 { return &v.GasBurned }),
	codec.String("Error", "errorMessage", func(v *ReceiptEvent) *string { return &v.Error }).Optional(),
)...)

var BlockEventsEventType = codec.NewType("BlockEventsEvent", append(
	envelopeAttrs(func(v *BlockEventsEvent) *Envelope { return &v.Envelope }),
	codec.Uint32("BlockIndex", "blockIndex", func(v *BlockEventsEvent) *uint32 { return &v.BlockIndex }),
	codec.List("Events", "events", ContractEventType, func(v *BlockEventsEvent) *[]ContractEvent { return &v.Events }),
)...)

// Events decodes and encodes any Event by its "kind" key.
var Events = codec.NewUnion[Event]("Event", "kind",
	codec.CaseOf[Event](KindNewBlock, NewBlockEventType),
	codec.CaseOf[Event](KindReceipt, ReceiptEventType),
	codec.CaseOf[Event](KindBlockEvents, BlockEventsEventType),
)
