// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/arbor/avl"
)

const configFileName = ".arbor.yaml"

type InputConfig struct {
	DefaultFile string `yaml:"default_file"`
}

type OutputConfig struct {
	Format    string   `yaml:"format"`
	Orders    []string `yaml:"orders"`
	Separator string   `yaml:"separator"`
	Color     bool     `yaml:"color"`
}

type IngestConfig struct {
	ShowProgress       bool    `yaml:"show_progress"`
	ProgressThreshold  int     `yaml:"progress_threshold"`
	BloomFalsePositive float64 `yaml:"bloom_false_positive"`
}

type LoggingConfig struct {
	Directory string            `yaml:"directory"`
	File      string            `yaml:"file"`
	Size      int               `yaml:"size"`
	Count     int               `yaml:"count"`
	Levels    map[string]string `yaml:"levels"`
}

type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Ingest  IngestConfig  `yaml:"ingest"`
	Logging LoggingConfig `yaml:"logging"`
}

// defaultConfig returns a fresh copy so callers may mutate slices and maps
func defaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			DefaultFile: "tree.txt",
		},
		Output: OutputConfig{
			Format:    "text",
			Orders:    []string{"pre", "in", "post", "level"},
			Separator: " ",
			Color:     true,
		},
		Ingest: IngestConfig{
			ShowProgress:       true,
			ProgressThreshold:  10000,
			BloomFalsePositive: 0.01,
		},
		Logging: LoggingConfig{
			Directory: "~/.arbor/log",
			File:      "arbor.log",
			Size:      1048576,
			Count:     5,
			Levels: map[string]string{
				"DEFAULT": "info",
			},
		},
	}
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom reads a config file over the defaults. Keys missing from
// the file keep their default value; an unreadable or invalid file yields
// the defaults.
func loadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaultConfig(), nil
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaultConfig(), nil
	}
	config.normalise()
	return config, nil
}

// normalise replaces values that cannot be used with their defaults
func (c *Config) normalise() {
	def := defaultConfig()
	if c.Input.DefaultFile == "" {
		c.Input.DefaultFile = def.Input.DefaultFile
	}
	if c.Output.Format == "" {
		c.Output.Format = def.Output.Format
	}
	if len(c.Output.Orders) == 0 {
		c.Output.Orders = def.Output.Orders
	}
	if c.Output.Separator == "" {
		c.Output.Separator = def.Output.Separator
	}
	if c.Ingest.BloomFalsePositive <= 0 || c.Ingest.BloomFalsePositive >= 1 {
		c.Ingest.BloomFalsePositive = def.Ingest.BloomFalsePositive
	}
	if c.Ingest.ProgressThreshold < 0 {
		c.Ingest.ProgressThreshold = 0
	}
	if c.Logging.File == "" {
		c.Logging.File = def.Logging.File
	}
	if c.Logging.Size <= 0 {
		c.Logging.Size = def.Logging.Size
	}
	if c.Logging.Count <= 0 {
		c.Logging.Count = def.Logging.Count
	}
	if len(c.Logging.Levels) == 0 {
		c.Logging.Levels = def.Logging.Levels
	}
}

// orders resolves the configured traversal names
func (c *Config) orders() ([]avl.Order, error) {
	return parseOrders(c.Output.Orders)
}

func parseOrders(names []string) ([]avl.Order, error) {
	orders := make([]avl.Order, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		o, err := avl.ParseOrder(name)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if len(orders) == 0 {
		return avl.AllOrders(), nil
	}
	return orders, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// expandHome turns a leading "~/" into the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Arbor Configuration Settings\n")
	fmt.Printf("═══════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n\n", configPath)
	}

	setting := func(name string, value any) {
		fmt.Printf("  • %s%s%s: %v\n", Green, name, Reset, value)
	}

	fmt.Printf("📥 Input:\n")
	setting("default_file", config.Input.DefaultFile)

	fmt.Printf("\n📤 Output:\n")
	setting("format", config.Output.Format)
	setting("orders", strings.Join(config.Output.Orders, ", "))
	setting("separator", fmt.Sprintf("%q", config.Output.Separator))
	setting("color", config.Output.Color)

	fmt.Printf("\n🌳 Ingest:\n")
	setting("show_progress", config.Ingest.ShowProgress)
	setting("progress_threshold", config.Ingest.ProgressThreshold)
	setting("bloom_false_positive", config.Ingest.BloomFalsePositive)

	fmt.Printf("\n📜 Logging:\n")
	setting("directory", expandHome(config.Logging.Directory))
	setting("file", config.Logging.File)
	setting("size", config.Logging.Size)
	setting("count", config.Logging.Count)
	for tag, level := range config.Logging.Levels {
		setting("levels."+tag, level)
	}

	if _, err := config.orders(); err != nil {
		fmt.Printf("\n%s⚠️  %v%s\n", Yellow, err, Reset)
	}

	fmt.Printf("\n💡 Edit %s to change these values. Command line flags take precedence.\n", configPath)
}
