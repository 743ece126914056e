package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tshet release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/tshetuinh"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tshet version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "tshet v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
