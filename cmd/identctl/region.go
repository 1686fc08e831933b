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
	rootCmd.AddCommand(newRegionCmd())
}

func newRegionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "region <value>...",
		Short: "Classify raw values into identifier regions",
		Long: `The region command maps each raw value to the region containing it:
general-use, reserved, private-use, or error.

Example:
  identctl region 42
  identctl region 0 9223372036854775808 18446744073709551615
  identctl region 42 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegion(args)
		},
	}
	return cmd
}

func runRegion(args []string) error {
	type entry struct {
		Value  uint64 `json:"value"`
		Region string `json:"region"`
	}

	entries := make([]entry, 0, len(args))
	for _, arg := range args {
		raw, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid raw value %q: %w", arg, err)
		}
		entries = append(entries, entry{
			Value:  raw,
			Region: ident.RegionOf(raw).String(),
		})
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(entries)
	}

	for _, e := range entries {
		printInfo("%d\t%s\n", e.Value, e.Region)
	}
	return nil
}
