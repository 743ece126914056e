package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tshetuinh/internal/paths"
	"github.com/mesh-intelligence/tshetuinh/internal/store"
)

func newInitCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize tshet storage",
		Long:  "Create the configuration and data directories, write a default\nconfig.yaml, and initialize the entry database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "load the bundled sample of Guangyun readings")
	return cmd
}

func runInit(cmd *cobra.Command, seed bool) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return err
	}

	dataDir, err := resolvedDataDir()
	if err != nil {
		return fmt.Errorf("resolve data directory: %w", err)
	}
	s, err := store.Open(dataDir)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer s.Close()

	if seed {
		added, err := s.Seed()
		if err != nil {
			return fmt.Errorf("seed entries: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d entries\n", added)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Tshet initialized successfully")
	return nil
}
