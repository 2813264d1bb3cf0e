package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	ruletrie "github.com/sarthakjha889/go-rule-trie"
	"github.com/sarthakjha889/go-rule-trie/ruleset"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rules found in the rules directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		texts, err := ruleset.NewLoader(cfg.RulesDir).Load()
		if err != nil {
			return err
		}

		tr := ruletrie.New()
		defer tr.Close()
		tr.Insert(texts...)

		rows := pterm.TableData{{"Rule", "Normalised"}}
		for _, text := range texts {
			rows = append(rows, []string{text, ruletrie.Normalise(text)})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}

		pterm.Info.Printfln("%d rule texts, %d distinct after normalisation", len(texts), tr.Len())
		return nil
	},
}
