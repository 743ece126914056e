// Package cli implements the tshet command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tshetuinh/internal/store"
	"github.com/mesh-intelligence/tshetuinh/pkg/position"
	"github.com/mesh-intelligence/tshetuinh/pkg/scheme"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "tshet" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tshet",
		Short: "Query and convert Middle Chinese phonological positions",
		Long: "Tshet parses, validates, and derives attributes of Qieyun-system\n" +
			"phonological positions, converts them under reconstruction schemes,\n" +
			"and looks up dictionary readings.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .tshet)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .tshet-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newSchemesCmd())
	root.AddCommand(newSortCmd())
	root.AddCommand(newFilterCmd())
	root.AddCommand(newLookupCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code: 1 for
// bad input, 2 for system failures.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode classifies an error as a user error or a system error.
func exitCode(err error) int {
	var parseErr *position.ParseError
	var invalid *position.InvalidPositionError
	var unknown *scheme.UnknownSchemeError
	if errors.As(err, &parseErr) || errors.As(err, &invalid) || errors.As(err, &unknown) {
		return exitUserError
	}
	if errors.Is(err, store.ErrNotFound) {
		return exitUserError
	}
	return exitSysError
}
