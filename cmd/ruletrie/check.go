package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	ruletrie "github.com/sarthakjha889/go-rule-trie"
	"github.com/sarthakjha889/go-rule-trie/ruleset"
)

var checkCmd = &cobra.Command{
	Use:   "check <phrase>...",
	Short: "Check phrases for membership in the rule set",
	Long: `Check loads every rule file from the rules directory and reports, for
each phrase, whether it is an exact member of the rule set after
normalisation. The exit status is 1 when any phrase is not a member.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := buildTrie()
		if err != nil {
			return err
		}
		defer tr.Close()

		results := evaluate(tr, args)
		rows := pterm.TableData{{"Phrase", "Normalised", "Member"}}
		misses := 0
		for _, r := range results {
			member := "yes"
			if !r.Member {
				member = "no"
				misses++
			}
			rows = append(rows, []string{r.Phrase, r.Normalised, member})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}

		if misses > 0 {
			return fmt.Errorf("%d of %d phrases are not in the rule set", misses, len(results))
		}
		pterm.Success.Printfln("%d phrases matched", len(results))
		return nil
	},
}

// result is the outcome of a single membership query.
type result struct {
	Phrase     string
	Normalised string
	Member     bool
}

func evaluate(tr *ruletrie.Trie, phrases []string) []result {
	results := make([]result, 0, len(phrases))
	for _, phrase := range phrases {
		results = append(results, result{
			Phrase:     phrase,
			Normalised: ruletrie.Normalise(phrase),
			Member:     tr.Search(phrase),
		})
	}
	return results
}

// buildTrie loads the configured rule files into a fresh trie.
func buildTrie() (*ruletrie.Trie, error) {
	texts, err := ruleset.NewLoader(cfg.RulesDir).Load()
	if err != nil {
		return nil, err
	}
	tr := ruletrie.New()
	tr.Insert(texts...)
	return tr, nil
}
