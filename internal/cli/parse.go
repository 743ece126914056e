package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tshetuinh/pkg/position"
)

// positionReport is the JSON shape of one parsed position.
type positionReport struct {
	Descriptor string `json:"descriptor"`
	Concise    string `json:"concise"`
	Code       string `json:"code"`
	Initial    string `json:"initial"`
	Medial     string `json:"medial"`
	Rank       string `json:"rank"`
	Rhyme      string `json:"rhyme"`
	Tone       string `json:"tone"`
	Voicing    string `json:"voicing"`
	Place      string `json:"place"`
	Group      string `json:"group,omitempty"`
	Family     string `json:"family"`
	RimeType   string `json:"rime_type"`
	Openness   string `json:"openness"`
	ChartRank  string `json:"chart_rank"`
	Letter     string `json:"letter"`
}

func newParseCmd() *cobra.Command {
	var concise bool
	cmd := &cobra.Command{
		Use:   "parse <descriptor>...",
		Short: "Parse descriptors and print their derived attributes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				p, err := parseDescriptor(arg, concise)
				if err != nil {
					return err
				}
				if err := printPosition(cmd, p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&concise, "concise", false, "accept concise descriptors")
	return cmd
}

// parseDescriptor parses and validates one descriptor.
func parseDescriptor(descriptor string, concise bool) (position.Position, error) {
	parse := position.Parse
	if concise {
		parse = position.ParseConcise
	}
	draft, err := parse(descriptor)
	if err != nil {
		return position.Position{}, err
	}
	return position.Validate(draft)
}

func printPosition(cmd *cobra.Command, p position.Position) error {
	derived, err := p.Derived()
	if err != nil {
		return err
	}
	code, err := position.Encode(p)
	if err != nil {
		return err
	}

	if flags.jsonMode {
		report := positionReport{
			Descriptor: p.Descriptor(),
			Concise:    p.ConciseDescriptor(),
			Code:       code,
			Initial:    p.Initial(),
			Medial:     p.Medial(),
			Rank:       p.Rank(),
			Rhyme:      p.Rhyme(),
			Tone:       p.Tone(),
			Voicing:    derived.Voicing,
			Place:      derived.Place,
			Group:      derived.Group,
			Family:     derived.Family,
			RimeType:   derived.RimeType,
			Openness:   derived.Openness,
			ChartRank:  derived.ChartRank,
			Letter:     derived.Letter,
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		return enc.Encode(report)
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"%s\tcode=%s\t%s母 %s %s等 %s韻 %s聲\t%s %s音 %s攝 %s %s 韻圖%s等 %s母(字母)\n",
		p.Descriptor(), code,
		p.Initial(), openLabel(p.Medial()), p.Rank(), p.Rhyme(), p.Tone(),
		derived.Voicing, derived.Place, derived.Family, derived.RimeType+"聲韻",
		derived.Openness, derived.ChartRank, derived.Letter,
	)
	return nil
}

func openLabel(medial string) string {
	if medial == position.MedialNeutral {
		return "開合中立"
	}
	return medial + "口"
}
