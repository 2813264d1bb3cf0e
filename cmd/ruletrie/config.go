package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

// config holds the resolved CLI configuration.
type config struct {
	RulesDir string `koanf:"rules_dir"`
}

// loadConfig merges configuration in ascending precedence: built-in
// defaults, the YAML config file, RULETRIE_* environment variables, then
// flags. The default config file is optional; one named with --config must
// exist.
func loadConfig(cmd *cobra.Command) (config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"rules_dir": "rules",
	}, "."), nil); err != nil {
		return config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := cfgFile
	if path == "" {
		path = filepath.Join(xdg.ConfigHome, "ruletrie", "config.yaml")
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return config{}, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if cfgFile != "" {
		return config{}, fmt.Errorf("config file %s: %w", cfgFile, err)
	}

	if err := k.Load(env.Provider("RULETRIE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "RULETRIE_"))
	}), nil); err != nil {
		return config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	var c config
	if err := k.Unmarshal("", &c); err != nil {
		return config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cmd.Flags().Changed("rules-dir") {
		dir, err := cmd.Flags().GetString("rules-dir")
		if err != nil {
			return config{}, err
		}
		c.RulesDir = dir
	}
	return c, nil
}
