package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/scbind/internal/gen"
	"github.com/reoring/scbind/registry"
	"github.com/reoring/scbind/schema"
)

func newGenCmd(a *app) *cobra.Command {
	var schemaPath, pkg, out string
	c := &cobra.Command{
		Use:   "gen",
		Short: "Generate the constants module of a contract schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := schema.Load(schemaPath)
			if err != nil {
				return err
			}
			tbl, err := registry.FromSchema(sc, registry.WithLogger(a.log))
			if err != nil {
				return err
			}
			src, err := gen.Render(sc, tbl, gen.Options{
				Package:     pkg,
				HnameImport: a.cfg.Gen.HnameImport,
				Header:      a.cfg.Gen.Header,
			})
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("creating output dir: %w", err)
			}
			if err := os.WriteFile(out, src, 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			a.log.Info("generated constants", zap.String("contract", sc.Name), zap.String("out", out))
			return nil
		},
	}
	c.Flags().StringVar(&schemaPath, "schema", "", "contract schema file (yaml or json)")
	c.Flags().StringVar(&pkg, "package", "", "package name (default core<contract>)")
	c.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	_ = c.MarkFlagRequired("schema")
	return c
}
