package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/identkit/ident"
	"github.com/spf13/cobra"
)

var allocCount int

func init() {
	cmd := newAllocCmd()
	cmd.Flags().IntVarP(&allocCount, "count", "n", 1, "Number of identifiers to allocate")
	rootCmd.AddCommand(cmd)
}

func newAllocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alloc",
		Short: "Allocate fresh identifiers",
		Long: `The alloc command allocates identifiers from an empty registry and
prints them one per line, demonstrating the sequential allocation order.

Example:
  identctl alloc
  identctl alloc -n 10
  identctl alloc -n 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlloc()
		},
	}
	return cmd
}

func runAlloc() error {
	a := ident.New(nil)

	ids := make([]ident.Identifier, 0, allocCount)
	for i := 0; i < allocCount; i++ {
		id, err := a.Allocate()
		if err != nil {
			return fmt.Errorf("failed to allocate: %w", err)
		}
		ids = append(ids, id)
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(ids)
	}

	for _, id := range ids {
		printInfo("%s\n", id)
	}
	return nil
}
