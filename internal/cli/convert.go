package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tshetuinh/pkg/scheme"
)

func newConvertCmd() *cobra.Command {
	var schemeName string
	var concise bool
	var all bool
	cmd := &cobra.Command{
		Use:   "convert <descriptor>...",
		Short: "Render positions under a reconstruction scheme",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := schemeName
			if name == "" {
				name = configuredScheme()
			}
			for _, arg := range args {
				p, err := parseDescriptor(arg, concise)
				if err != nil {
					return err
				}

				names := []string{name}
				if all {
					names = scheme.Names()
				}
				rendered := map[string]string{}
				for _, n := range names {
					out, err := scheme.Convert(n, p)
					if err != nil {
						return err
					}
					rendered[n] = out
				}

				if flags.jsonMode {
					enc := json.NewEncoder(cmd.OutOrStdout())
					if err := enc.Encode(map[string]any{
						"descriptor": p.Descriptor(),
						"renderings": rendered,
					}); err != nil {
						return err
					}
					continue
				}
				for _, n := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", p.Descriptor(), n, rendered[n])
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&schemeName, "scheme", "", "scheme name (default from config.yaml)")
	cmd.Flags().BoolVar(&all, "all", false, "render under every registered scheme")
	cmd.Flags().BoolVar(&concise, "concise", false, "accept concise descriptors")
	return cmd
}

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List registered reconstruction schemes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.jsonMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(scheme.Names())
			}
			for _, name := range scheme.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
