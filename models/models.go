// Package models declares the data-transfer objects exchanged with a node and
// their attribute tables.
package models

import (
	"time"

	"github.com/reoring/scbind/codec"
)

// TxInclusionStateMsg reports the ledger inclusion state of a transaction.
type TxInclusionStateMsg struct {
	State string // inclusion state, e.g. "confirmed"
	TxID  string
}

var TxInclusionStateMsgType = codec.NewType("TxInclusionStateMsg",
	codec.String("State", "state", func(v *TxInclusionStateMsg) *string { return &v.State }),
	codec.String("TxID", "txId", func(v *TxInclusionStateMsg) *string { return &v.TxID }),
)

type BaseToken struct {
	Name            string
	TickerSymbol    string
	Unit            string
	Subunit         string
	Decimals        uint32
	UseMetricPrefix bool
}

var BaseTokenType = codec.NewType("BaseToken",
	codec.String("Name", "name", func(v *BaseToken) *string { return &v.Name }),
	codec.String("TickerSymbol", "tickerSymbol", func(v *BaseToken) *string { return &v.TickerSymbol }),
	codec.String("Unit", "unit", func(v *BaseToken) *string { return &v.Unit }),
	codec.String("Subunit", "subunit", func(v *BaseToken) *string { return &v.Subunit }).Optional(),
	codec.Uint32("Decimals", "decimals", func(v *BaseToken) *uint32 { return &v.Decimals }),
	codec.Bool("UseMetricPrefix", "useMetricPrefix", func(v *BaseToken) *bool { return &v.UseMetricPrefix }),
)

type RentStructure struct {
	VByteCost       uint32
	VByteFactorData uint8
	VByteFactorKey  uint8
}

var RentStructureType = codec.NewType("RentStructure",
	codec.Uint32("VByteCost", "vByteCost", func(v *RentStructure) *uint32 { return &v.VByteCost }),
	codec.Uint8("VByteFactorData", "vByteFactorData", func(v *RentStructure) *uint8 { return &v.VByteFactorData }),
	codec.Uint8("VByteFactorKey", "vByteFactorKey", func(v *RentStructure) *uint8 { return &v.VByteFactorKey }),
)

type ProtocolParameters struct {
	Version       uint8
	NetworkName   string
	Bech32Hrp     string
	MinPowScore   uint32
	BelowMaxDepth uint8
	RentStructure RentStructure
	TokenSupply   uint64
}

var ProtocolParametersType = codec.NewType("ProtocolParameters",
	codec.Uint8("Version", "version", func(v *ProtocolParameters) *uint8 { return &v.Version }),
	codec.String("NetworkName", "networkName", func(v *ProtocolParameters) *string { return &v.NetworkName }),
	codec.String("Bech32Hrp", "bech32Hrp", func(v *ProtocolParameters) *string { return &v.Bech32Hrp }),
	codec.Uint32("MinPowScore", "minPowScore", func(v *ProtocolParameters) *uint32 { return &v.MinPowScore }),
	codec.Uint8("BelowMaxDepth", "belowMaxDepth", func(v *ProtocolParameters) *uint8 { return &v.BelowMaxDepth }),
	codec.Object("RentStructure", "rentStructure", RentStructureType, func(v *ProtocolParameters) *RentStructure { return &v.RentStructure }),
	codec.Uint64("TokenSupply", "tokenSupply", func(v *ProtocolParameters) *uint64 { return &v.TokenSupply }),
)

// L1Params are the layer 1 parameters a chain runs with.
type L1Params struct {
	BaseToken      BaseToken
	MaxPayloadSize int32
	Protocol       ProtocolParameters
}

var L1ParamsType = codec.NewType("L1Params",
	codec.Object("BaseToken", "baseToken", BaseTokenType, func(v *L1Params) *BaseToken { return &v.BaseToken }),
	codec.Int32("MaxPayloadSize", "maxPayloadSize", func(v *L1Params) *int32 { return &v.MaxPayloadSize }),
	codec.Object("Protocol", "protocol", ProtocolParametersType, func(v *L1Params) *ProtocolParameters { return &v.Protocol }),
)

type PublicChainMetadata struct {
	EVMJsonRPCURL   string
	EVMWebSocketURL string
	Name            string
	Description     string
	Website         string
}

var PublicChainMetadataType = codec.NewType("PublicChainMetadata",
	codec.String("EVMJsonRPCURL", "evmJsonRpcURL", func(v *PublicChainMetadata) *string { return &v.EVMJsonRPCURL }),
	codec.String("EVMWebSocketURL", "evmWebSocketURL", func(v *PublicChainMetadata) *string { return &v.EVMWebSocketURL }),
	codec.String("Name", "name", func(v *PublicChainMetadata) *string { return &v.Name }),
	codec.String("Description", "description", func(v *PublicChainMetadata) *string { return &v.Description }),
	codec.String("Website", "website", func(v *PublicChainMetadata) *string { return &v.Website }),
)

type ChainInfoResponse struct {
	IsActive     bool
	ChainID      string
	ChainOwnerID string
	EVMChainID   uint16
	PublicURL    string
	Metadata     PublicChainMetadata
}

var ChainInfoResponseType = codec.NewType("ChainInfoResponse",
	codec.Bool("IsActive", "isActive", func(v *ChainInfoResponse) *bool { return &v.IsActive }),
	codec.String("ChainID", "chainID", func(v *ChainInfoResponse) *string { return &v.ChainID }),
	codec.String("ChainOwnerID", "chainOwnerId", func(v *ChainInfoResponse) *string { return &v.ChainOwnerID }),
	codec.Uint16("EVMChainID", "evmChainId", func(v *ChainInfoResponse) *uint16 { return &v.EVMChainID }),
	codec.String("PublicURL", "publicURL", func(v *ChainInfoResponse) *string { return &v.PublicURL }).Optional(),
	codec.Object("Metadata", "metadata", PublicChainMetadataType, func(v *ChainInfoResponse) *PublicChainMetadata { return &v.Metadata }),
)

// BlockInfoResponse describes one block of the block log.
type BlockInfoResponse struct {
	BlockIndex            uint32
	Timestamp             time.Time
	TotalRequests         uint16
	NumSuccessfulRequests uint16
	NumOffLedgerRequests  uint16
	PreviousAliasOutput   []byte
	GasBurned             uint64
	GasFeeCharged         uint64
}

var BlockInfoResponseType = codec.NewType("BlockInfoResponse",
	codec.Uint32("BlockIndex", "blockIndex", func(v *BlockInfoResponse) *uint32 { return &v.BlockIndex }),
	codec.Time("Timestamp", "timestamp", func(v *BlockInfoResponse) *time.Time { return &v.Timestamp }),
	codec.Uint16("TotalRequests", "totalRequests", func(v *BlockInfoResponse) *uint16 { return &v.TotalRequests }),
	codec.Uint16("NumSuccessfulRequests", "numSuccessfulRequests", func(v *BlockInfoResponse) *uint16 { return &v.NumSuccessfulRequests }),
	codec.Uint16("NumOffLedgerRequests", "numOffLedgerRequests", func(v *BlockInfoResponse) *uint16 { return &v.NumOffLedgerRequests }),
	codec.Bytes("PreviousAliasOutput", "previousAliasOutput", codec.FormatHex, func(v *BlockInfoResponse) *[]byte { return &v.PreviousAliasOutput }).Optional(),
	codec.Uint64("GasBurned", "gasBurned", func(v *BlockInfoResponse) *uint64 { return &v.GasBurned }),
	codec.Uint64("GasFeeCharged", "gasFeeCharged", func(v *BlockInfoResponse) *uint64 { return &v.GasFeeCharged }),
)

// ContractCallViewRequest asks a node to run a view. The contract and the
// function are each given by hname, by name, or both; the hname wins.
type ContractCallViewRequest struct {
	ContractHName string
	FunctionHName string
	ContractName  string
	FunctionName  string
	Arguments     map[string][]byte // param key to encoded value
	Block         string            // block index or hash; empty means latest
}

var ContractCallViewRequestType = codec.NewType("ContractCallViewRequest",
	codec.String("ContractHName", "contractHName", func(v *ContractCallViewRequest) *string { return &v.ContractHName }).Optional(),
	codec.String("FunctionHName", "functionHName", func(v *ContractCallViewRequest) *string { return &v.FunctionHName }).Optional(),
	codec.String("ContractName", "contractName", func(v *ContractCallViewRequest) *string { return &v.ContractName }).Optional(),
	codec.String("FunctionName", "functionName", func(v *ContractCallViewRequest) *string { return &v.FunctionName }).Optional(),
	codec.Map("Arguments", "arguments", codec.FormatHex, func(v *ContractCallViewRequest) *map[string][]byte { return &v.Arguments }).Optional(),
	codec.String("Block", "block", func(v *ContractCallViewRequest) *string { return &v.Block }).Optional(),
)
