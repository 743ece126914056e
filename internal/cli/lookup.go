package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tshetuinh/internal/store"
)

// entryReport is the JSON shape of one dictionary entry.
type entryReport struct {
	Headword   string `json:"headword"`
	Descriptor string `json:"descriptor"`
	Code       string `json:"code"`
	Fanqie     string `json:"fanqie,omitempty"`
	Gloss      string `json:"gloss,omitempty"`
	Source     string `json:"source,omitempty"`
}

func newLookupCmd() *cobra.Command {
	var byDescriptor bool
	var byCode bool
	cmd := &cobra.Command{
		Use:   "lookup <headword|descriptor|code>",
		Short: "Look up dictionary entries",
		Long: "Look up entries by headword (default), by canonical descriptor\n" +
			"with --descriptor, or by compact code with --code.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := resolvedDataDir()
			if err != nil {
				return fmt.Errorf("resolve data directory: %w", err)
			}
			s, err := store.Open(dataDir)
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}
			defer s.Close()

			var entries []store.Entry
			switch {
			case byDescriptor:
				p, err := parseDescriptor(args[0], false)
				if err != nil {
					return err
				}
				entries, err = s.LookupDescriptor(p.Descriptor())
				if err != nil {
					return err
				}
			case byCode:
				entries, err = s.LookupCode(args[0])
				if err != nil {
					return err
				}
			default:
				entries, err = s.LookupHeadword(args[0])
				if err != nil {
					return err
				}
			}

			if len(entries) == 0 {
				return fmt.Errorf("%w: %s", store.ErrNotFound, args[0])
			}
			return printEntries(cmd, entries)
		},
	}
	cmd.Flags().BoolVar(&byDescriptor, "descriptor", false, "look up by canonical descriptor")
	cmd.Flags().BoolVar(&byCode, "code", false, "look up by compact code")
	cmd.MarkFlagsMutuallyExclusive("descriptor", "code")
	return cmd
}

func printEntries(cmd *cobra.Command, entries []store.Entry) error {
	if flags.jsonMode {
		reports := make([]entryReport, len(entries))
		for i, e := range entries {
			reports[i] = entryReport{
				Headword:   e.Headword,
				Descriptor: e.Descriptor,
				Code:       e.Code,
				Fanqie:     e.Fanqie,
				Gloss:      e.Gloss,
				Source:     e.Source,
			}
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(reports)
	}
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
			e.Headword, e.Descriptor, e.Code, e.Fanqie, e.Gloss)
	}
	return nil
}
