package main

import (
	"encoding/json"
	"fmt"

	"lpm/internal/catalog"

	"github.com/spf13/cobra"
)

var verbsCmd = &cobra.Command{
	Use:   "verbs [query]",
	Short: "Search the winetricks verb catalog",
	Long: `List known winetricks verbs. A query of at least two characters filters
the catalog by case-insensitive substring match.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerbs,
}

func init() {
	rootCmd.AddCommand(verbsCmd)
}

func runVerbs(cmd *cobra.Command, args []string) error {
	var verbs []string
	if len(args) == 1 {
		verbs = catalog.Search(args[0])
	} else {
		verbs = catalog.All()
	}

	if jsonOutput {
		if verbs == nil {
			verbs = []string{}
		}
		out, err := json.Marshal(verbs)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, verb := range verbs {
		fmt.Println(verb)
	}
	if len(verbs) == 0 {
		fmt.Println("no matching verbs")
	}
	return nil
}
