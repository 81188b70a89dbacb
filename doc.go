// Package scbind binds off-chain callers to on-chain contract entry points.
//
// It provides:
//
// - Deterministic 4-byte selectors (hnames) for contract, function, parameter
// and result names (package hname)
// - A per-contract selector registry with build-time collision detection
// (package registry) and a constants generator (cmd/scbind)
// - A descriptor-driven codec between typed objects and string-keyed wire
// records (package codec)
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only the shared error model and decode options in the root package.
// - Place selector hashing under hname/, descriptor tables under codec/, and the
// CLI under cmd/scbind.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	sel := hname.Hn("getBlockInfo")
//	rec := blockInfoType.Encode(info)
//	v, err := blockInfoType.Decode(rec, scbind.Strict())
package scbind
