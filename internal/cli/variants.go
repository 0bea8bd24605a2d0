package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ppinet/centrality"
)

func (c *CLI) variantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the supported centrality measures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, v := range centrality.Variants() {
				fmt.Fprintf(w, "%-28s %s\n", v.String(), StyleDim.Render(v.Label()))
			}
			return nil
		},
	}
}
