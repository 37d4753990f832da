package cli

import (
	"fmt"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/instance"
	"github.com/spf13/cobra"
)

func newInstancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instances",
		Short: "List the built-in instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range instance.Names() {
				in, err := instance.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-10s N=%d  %s\n", in.Name, in.Size(), in.Description)
			}
			return nil
		},
	}
}
