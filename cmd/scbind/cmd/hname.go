package cmd

import (
	"encoding/hex"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/reoring/scbind/hname"
)

func newHnameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hname <name>...",
		Short: "Print the selector of each name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"Name", "Hname", "Bytes (LE)"}}
			for _, name := range args {
				h := hname.Hn(name)
				data = append(data, []string{name, h.String(), hex.EncodeToString(h.Bytes())})
			}
			a.log.Debug("hashed names")
			return renderTable(cmd, data)
		},
	}
}
