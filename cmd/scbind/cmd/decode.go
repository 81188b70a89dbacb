package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/codec"
	"github.com/reoring/scbind/models"
	"github.com/reoring/scbind/wire"
)

type decodeFunc func(codec.Record, scbind.DecodeOpt) (codec.Ordered, error)

func typed[T any](typ *codec.Type[T]) decodeFunc {
	return func(rec codec.Record, opt scbind.DecodeOpt) (codec.Ordered, error) {
		v, err := typ.Decode(rec, opt)
		if err != nil {
			return nil, err
		}
		return typ.EncodeOrdered(v), nil
	}
}

var decoders = map[string]decodeFunc{
	"TxInclusionStateMsg":     typed(models.TxInclusionStateMsgType),
	"L1Params":                typed(models.L1ParamsType),
	"ChainInfoResponse":       typed(models.ChainInfoResponseType),
	"BlockInfoResponse":       typed(models.BlockInfoResponseType),
	"ContractCallViewRequest": typed(models.ContractCallViewRequestType),
	"Event": func(rec codec.Record, opt scbind.DecodeOpt) (codec.Ordered, error) {
		v, err := models.Events.Decode(rec, opt)
		if err != nil {
			return nil, err
		}
		return models.Events.EncodeOrdered(v), nil
	},
}

func modelNames() []string {
	names := make([]string, 0, len(decoders))
	for n := range decoders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func newDecodeCmd(a *app) *cobra.Command {
	var model string
	c := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a JSON document as a model and print it canonically",
		Long:  "decode reads a JSON object from file or stdin, decodes it as --model and prints the normalized object. Models: " + strings.Join(modelNames(), ", "),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dec, ok := decoders[model]
			if !ok {
				return fmt.Errorf("unknown model %q (known: %s)", model, strings.Join(modelNames(), ", "))
			}
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return err
			}
			rec, err := wire.Unmarshal(data, wire.Options{RejectDuplicateKeys: a.cfg.Decode.RejectDupKeys})
			if err == nil {
				var out codec.Ordered
				if out, err = dec(rec, a.cfg.Decode.Opt()); err == nil {
					b, err := wire.Marshal(out)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
					return err
				}
			}
			if iss, ok := scbind.AsIssues(err); ok {
				rows := pterm.TableData{{"Path", "Code", "Message", "Expected", "Actual"}}
				for _, it := range iss {
					rows = append(rows, []string{it.Path, it.Code, it.Message, it.Expected, it.Actual})
				}
				if rerr := renderTable(cmd, rows); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}
	c.Flags().StringVarP(&model, "model", "m", "", "model name")
	_ = c.MarkFlagRequired("model")
	return c
}
