package console

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-curp/curp"
)

func newStatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List the valid birth-state codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, code := range curp.StateCodes() {
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}
}
