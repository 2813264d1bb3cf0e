package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ruletrie "github.com/sarthakjha889/go-rule-trie"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rules.yaml"), []byte(content), 0o644))
	return dir
}

func TestEvaluate(t *testing.T) {
	tr := ruletrie.New()
	defer tr.Close()
	tr.Insert("Stop-Loss")

	results := evaluate(tr, []string{"stoploss", "stop"})
	require.Len(t, results, 2)

	assert.Equal(t, "stoploss", results[0].Normalised)
	assert.True(t, results[0].Member)
	assert.Equal(t, "stop", results[1].Normalised)
	assert.False(t, results[1].Member)
}

func TestBuildTrie(t *testing.T) {
	cfg = config{RulesDir: writeRules(t, "rules:\n  - Stop-Loss\n  - STOPLOSS\n")}

	tr, err := buildTrie()
	require.NoError(t, err)
	defer tr.Close()

	assert.Equal(t, 1, tr.Len())
	assert.True(t, tr.Search("stop loss"))
}

func TestBuildTrieMissingDir(t *testing.T) {
	cfg = config{RulesDir: filepath.Join(t.TempDir(), "nope")}

	_, err := buildTrie()
	require.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	isolateXDG(t)
	dir := writeRules(t, "rules:\n  - Avoid NSAIDs in advanced CKD\n")

	rootCmd.SetArgs([]string{"check", "--rules-dir", dir, "AVOID-NSAIDS-IN-ADVANCED-CKD"})
	require.NoError(t, rootCmd.Execute())
}

func TestCheckCommandMiss(t *testing.T) {
	isolateXDG(t)
	dir := writeRules(t, "rules:\n  - Avoid NSAIDs in advanced CKD\n")

	rootCmd.SetArgs([]string{"check", "--rules-dir", dir, "ibuprofen"})
	require.Error(t, rootCmd.Execute())
}

func TestRulesCommand(t *testing.T) {
	isolateXDG(t)
	dir := writeRules(t, "rules:\n  - Stop-Loss\n  - stop loss\n")

	rootCmd.SetArgs([]string{"rules", "--rules-dir", dir})
	require.NoError(t, rootCmd.Execute())
}
