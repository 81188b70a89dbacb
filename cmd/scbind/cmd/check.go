package cmd

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/scbind/corecontracts"
	"github.com/reoring/scbind/registry"
	"github.com/reoring/scbind/schema"
)

func newCheckCmd(a *app) *cobra.Command {
	var schemaPaths []string
	var verbose bool
	c := &cobra.Command{
		Use:   "check",
		Short: "Build the selector tables of schemas and report collisions",
		Long:  `check builds the selector table of every given schema, or of the core contracts when no schema is given, and fails on the first collision.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var contracts []*schema.Contract
			if len(schemaPaths) == 0 {
				all, err := corecontracts.Schemas()
				if err != nil {
					return err
				}
				contracts = all
			}
			for _, p := range schemaPaths {
				sc, err := schema.Load(p)
				if err != nil {
					return err
				}
				contracts = append(contracts, sc)
			}

			summary := pterm.TableData{{"Contract", "Hname", "Functions", "Params", "Results"}}
			for _, sc := range contracts {
				tbl, err := registry.FromSchema(sc, registry.WithLogger(a.log))
				if err != nil {
					a.log.Error("check failed", zap.String("contract", sc.Name), zap.Error(err))
					return err
				}
				ct, _ := tbl.Contract()
				summary = append(summary, []string{
					sc.Name,
					ct.Selector.String(),
					strconv.Itoa(len(tbl.Entries(registry.NamespaceFunction))),
					strconv.Itoa(len(tbl.Entries(registry.NamespaceParam))),
					strconv.Itoa(len(tbl.Entries(registry.NamespaceResult))),
				})
				if verbose {
					if err := renderEntries(cmd, tbl); err != nil {
						return err
					}
				}
			}
			return renderTable(cmd, summary)
		},
	}
	c.Flags().StringSliceVar(&schemaPaths, "schema", nil, "contract schema files (default: core contracts)")
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every selector")
	return c
}

func renderEntries(cmd *cobra.Command, tbl *registry.Table) error {
	data := pterm.TableData{{"Namespace", "Name", "Key", "Hname"}}
	for _, ns := range []registry.Namespace{registry.NamespaceContract, registry.NamespaceFunction, registry.NamespaceParam, registry.NamespaceResult} {
		for _, e := range tbl.Entries(ns) {
			data = append(data, []string{ns.String(), e.Name, e.HashKey(), e.Selector.String()})
		}
	}
	return renderTable(cmd, data)
}
