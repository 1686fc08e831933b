package main

import (
	"encoding/json"
	"os"

	"github.com/joshuapare/identkit/ident"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newParseCmd())
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <string>...",
		Short: "Check strings against the identifier parse grammar",
		Long: `The parse command runs each argument through the strict decode grammar
(decimal digits only, no sign, no leading zeros) and reports the result.
A reserved value parses but is substituted with the error identifier, the
same behavior the library's decode path has.

Example:
  identctl parse 42
  identctl parse 42 007 -- -1
  identctl parse 42 abc --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args)
		},
	}
	return cmd
}

func runParse(args []string) error {
	type result struct {
		Input      string `json:"input"`
		Valid      bool   `json:"valid"`
		Identifier string `json:"identifier,omitempty"`
		Region     string `json:"region,omitempty"`
	}

	a := ident.New(nil)

	results := make([]result, 0, len(args))
	for _, arg := range args {
		id, err := a.Parse(arg)
		if err != nil {
			results = append(results, result{Input: arg})
			continue
		}
		results = append(results, result{
			Input:      arg,
			Valid:      true,
			Identifier: id.String(),
			Region:     id.Region().String(),
		})
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(results)
	}

	for _, r := range results {
		if !r.Valid {
			printInfo("%s\tinvalid\n", r.Input)
			continue
		}
		printInfo("%s\t%s\t%s\n", r.Input, r.Identifier, r.Region)
	}
	return nil
}
