package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tshetuinh/pkg/position"
)

func newSortCmd() *cobra.Command {
	var concise bool
	var unique bool
	cmd := &cobra.Command{
		Use:   "sort [<descriptor>...]",
		Short: "Sort descriptors into canonical dictionary order",
		Long:  "Sort descriptors given as arguments, or read one per line from\nstandard input when no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors := args
			if len(descriptors) == 0 {
				var err error
				descriptors, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			positions := make([]position.Position, 0, len(descriptors))
			for _, d := range descriptors {
				p, err := parseDescriptor(d, concise)
				if err != nil {
					return err
				}
				positions = append(positions, p)
			}

			if unique {
				positions = position.Dedupe(positions)
			} else {
				position.Sort(positions)
			}
			for _, p := range positions {
				fmt.Fprintln(cmd.OutOrStdout(), p.Descriptor())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&concise, "concise", false, "accept concise descriptors")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "drop duplicate positions")
	return cmd
}

func newFilterCmd() *cobra.Command {
	var concise bool
	cmd := &cobra.Command{
		Use:   "filter <expression>",
		Short: "Filter descriptors from standard input by a categorical expression",
		Long: "Read descriptors one per line from standard input and print those\n" +
			"matching the expression, e.g. '見組 且 (止攝 或 蟹攝)'.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := args[0]
			lines, err := readLines(cmd.InOrStdin())
			if err != nil {
				return err
			}
			for _, line := range lines {
				p, err := parseDescriptor(line, concise)
				if err != nil {
					return err
				}
				ok, err := p.Matches(expr)
				if err != nil {
					return err
				}
				if ok {
					fmt.Fprintln(cmd.OutOrStdout(), p.Descriptor())
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&concise, "concise", false, "accept concise descriptors")
	return cmd
}

// readLines collects non-empty lines from r.
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
