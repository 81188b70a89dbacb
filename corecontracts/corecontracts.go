// Package corecontracts holds the schemas of the built-in contracts. The
// constants modules in the core* subpackages are generated from them.
package corecontracts

import (
	"embed"
	"fmt"
	"path"

	"github.com/reoring/scbind/schema"
)

//go:generate go run github.com/reoring/scbind/cmd/scbind gen --schema schemas/root.yaml --out coreroot/consts.go
//go:generate go run github.com/reoring/scbind/cmd/scbind gen --schema schemas/blob.yaml --out coreblob/consts.go
//go:generate go run github.com/reoring/scbind/cmd/scbind gen --schema schemas/blocklog.yaml --out coreblocklog/consts.go
//go:generate go run github.com/reoring/scbind/cmd/scbind gen --schema schemas/governance.yaml --out coregovernance/consts.go

//go:embed schemas/*.yaml
var schemas embed.FS

// Names lists the core contracts in deployment order.
var Names = []string{"root", "blob", "blocklog", "governance"}

// Schema parses the embedded schema of one core contract.
func Schema(name string) (*schema.Contract, error) {
	data, err := schemas.ReadFile(path.Join("schemas", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("corecontracts: unknown contract %q", name)
	}
	return schema.Parse(data, schema.FormatYAML)
}

// Schemas parses every embedded schema, in Names order.
func Schemas() ([]*schema.Contract, error) {
	out := make([]*schema.Contract, 0, len(Names))
	for _, n := range Names {
		c, err := Schema(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
