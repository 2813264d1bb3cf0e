// Package ruleset loads rule texts from YAML and JSON rule files, ready for
// trie insertion.
//
// A rule document is either a mapping with a "rules" sequence or a bare
// sequence. Each entry is the rule text itself, or a mapping carrying the
// text under a "text" key; entries of any other shape are ignored.
package ruleset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/sarthakjha889/go-rule-trie/internal/logging"
)

// ErrUnsupportedFormat is returned by LoadFile for rule files whose
// extension is neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported rule file format")

// Loader reads rule files out of a single directory.
type Loader struct {
	dir    string
	logger zerolog.Logger
}

// NewLoader creates a loader over the given rules directory.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:    dir,
		logger: logging.GetLogger("ruleset.loader"),
	}
}

// Load parses every rule file in the directory and returns the extracted
// rule texts in directory order. Subdirectories and files in unsupported
// formats are skipped. The directory must exist, and a rule file that fails
// to parse aborts the whole load.
func (l *Loader) Load() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("rules directory %s: %w", l.dir, err)
	}

	var texts []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(l.dir, entry.Name())
		fileTexts, err := LoadFile(path)
		if errors.Is(err, ErrUnsupportedFormat) {
			l.logger.Debug().Str("file", path).Msg("Skipping unsupported rule file")
			continue
		}
		if err != nil {
			return nil, err
		}
		l.logger.Debug().
			Str("file", path).
			Int("rules", len(fileTexts)).
			Msg("Loaded rule file")
		texts = append(texts, fileTexts...)
	}

	l.logger.Info().
		Str("dir", l.dir).
		Int("rules", len(texts)).
		Msg("Loaded rule set")
	return texts, nil
}

// LoadFile parses a single rule file, dispatching on its extension.
// Unrecognised extensions yield ErrUnsupportedFormat.
func LoadFile(path string) ([]string, error) {
	var extract func([]byte) ([]string, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		extract = extractYAML
	case ".json":
		extract = extractJSON
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rule file %s: %w", path, err)
	}
	texts, err := extract(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return texts, nil
}

func extractYAML(data []byte) ([]string, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	switch v := doc.(type) {
	case map[string]interface{}:
		raw, ok := v["rules"]
		if !ok {
			return nil, nil
		}
		entries, ok := raw.([]interface{})
		if !ok {
			return nil, errors.New("rules must be a sequence")
		}
		return extractEntries(entries), nil
	case []interface{}:
		return extractEntries(v), nil
	}
	return nil, nil
}

func extractEntries(entries []interface{}) []string {
	var texts []string
	for _, entry := range entries {
		switch e := entry.(type) {
		case string:
			texts = append(texts, e)
		case map[string]interface{}:
			if text, ok := e["text"].(string); ok {
				texts = append(texts, text)
			}
		}
	}
	return texts
}

func extractJSON(data []byte) ([]string, error) {
	var texts []string
	collect := func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if err != nil {
			return
		}
		switch dataType {
		case jsonparser.String:
			if text, err := jsonparser.ParseString(value); err == nil {
				texts = append(texts, text)
			}
		case jsonparser.Object:
			if text, err := jsonparser.GetString(value, "text"); err == nil {
				texts = append(texts, text)
			}
		}
	}

	switch firstToken(data) {
	case '[':
		if _, err := jsonparser.ArrayEach(data, collect); err != nil {
			return nil, err
		}
	case '{':
		_, err := jsonparser.ArrayEach(data, collect, "rules")
		if err != nil && err != jsonparser.KeyPathNotFoundError {
			return nil, err
		}
	default:
		return nil, errors.New("rule document must be an object or an array")
	}
	return texts, nil
}

// firstToken returns the first non-whitespace byte of data, or zero.
func firstToken(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b
	}
	return 0
}
