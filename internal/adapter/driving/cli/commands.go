package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/fishledger/internal/application"
	"github.com/ericfisherdev/fishledger/internal/domain/model"
)

// NewQueryCommand creates the interactive query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "query",
		Short: "Prompt for timestamps and print each matching withdrawal",
		Long: `Open the ledger and prompt for unix timestamps until input ends.

A lookup that finds nothing or hits a malformed payload is reported and the
prompt continues.

Example:
  fishledger query
  fishledger --db ./fish_addon_db.db3 --payload-format bincode query`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withLedger(cmd, func(l *ledger) error {
				p := rootOpts.printer(cmd)
				p.Opened(rootOpts.cfg.DBPath)
				err := NewSession(l.service, p, cmd.InOrStdin()).Run(cmd.Context())
				if err != nil {
					return exitWith(ExitCommandError, "query session", err)
				}
				return nil
			})
		},
	}
}

// NewLookupCommand creates the one-shot lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <timestamp>",
		Short: "Print the withdrawal received at one timestamp",
		Long: `Look up a single withdrawal and exit. The exit code is 1 when no record
matches or its payload cannot be decoded.

Example:
  fishledger lookup 1718000000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			receivedAt, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return exitWith(ExitCommandError, fmt.Sprintf("%q is not a unix timestamp", args[0]), err)
			}

			return rootOpts.withLedger(cmd, func(l *ledger) error {
				err := NewSession(l.service, rootOpts.printer(cmd), nil).Query(cmd.Context(), receivedAt)
				if err == nil {
					return nil
				}
				if application.IsFatal(err) {
					return exitWith(ExitCommandError, fmt.Sprintf("lookup %d", receivedAt), err)
				}
				return errLookup(receivedAt, err)
			})
		},
	}
}

// NewSchemaCommand creates the command that only prepares the ledger file.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the withdrawals table if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withLedger(cmd, func(l *ledger) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Schema ready in %s\n", l.db.Path())
				return nil
			})
		},
	}
}

// NewSpeciesCommand creates the command that lists the species catalog.
func NewSpeciesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "species",
		Short: "List the species catalog in payload order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rootOpts.printer(cmd).Species(model.SpeciesNames())
			return nil
		},
	}
}
