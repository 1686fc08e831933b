package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joshuapare/identkit/ident"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPrivateCmd())
}

func newPrivateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "private <offset>...",
		Short: "Print private-use sentinel identifiers",
		Long: `The private command prints the fixed identifier for each private-use
offset (0-255). These identifiers are deterministic and never touch the
allocator's registry.

Example:
  identctl private 0
  identctl private 0 1 255 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrivate(args)
		},
	}
	return cmd
}

func runPrivate(args []string) error {
	type entry struct {
		Offset     uint8  `json:"offset"`
		Identifier string `json:"identifier"`
	}

	entries := make([]entry, 0, len(args))
	for _, arg := range args {
		offset, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return fmt.Errorf("invalid offset %q (must be 0-255): %w", arg, err)
		}
		entries = append(entries, entry{
			Offset:     uint8(offset),
			Identifier: ident.PrivateUse(uint8(offset)).String(),
		})
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(entries)
	}

	for _, e := range entries {
		printInfo("%d\t%s\n", e.Offset, e.Identifier)
	}
	return nil
}
