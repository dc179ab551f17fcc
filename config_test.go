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
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cybrota/arbor/avl"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if !reflect.DeepEqual(config, defaultConfig()) {
		t.Errorf("expected defaults, got %+v", config)
	}
}

func TestLoadConfigFromPartialFile(t *testing.T) {
	path := writeConfig(t, `
input:
  default_file: keys.txt
output:
  format: json
  orders: [in, level]
ingest:
  show_progress: false
`)

	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}

	if config.Input.DefaultFile != "keys.txt" {
		t.Errorf("DefaultFile = %q; want keys.txt", config.Input.DefaultFile)
	}
	if config.Output.Format != "json" {
		t.Errorf("Format = %q; want json", config.Output.Format)
	}
	if config.Ingest.ShowProgress {
		t.Errorf("ShowProgress = true; want false")
	}

	// untouched keys keep their defaults
	if config.Output.Separator != " " || !config.Output.Color {
		t.Errorf("output defaults lost: %+v", config.Output)
	}
	if config.Ingest.ProgressThreshold != 10000 || config.Ingest.BloomFalsePositive != 0.01 {
		t.Errorf("ingest defaults lost: %+v", config.Ingest)
	}
	if config.Logging.File != "arbor.log" {
		t.Errorf("logging defaults lost: %+v", config.Logging)
	}

	orders, err := config.orders()
	if err != nil {
		t.Fatalf("orders() returned error: %v", err)
	}
	if want := []avl.Order{avl.InOrder, avl.LevelOrder}; !reflect.DeepEqual(orders, want) {
		t.Errorf("orders() = %v; want %v", orders, want)
	}
}

func TestLoadConfigFromInvalidYAML(t *testing.T) {
	path := writeConfig(t, "output: [not, a, map\n")

	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if !reflect.DeepEqual(config, defaultConfig()) {
		t.Errorf("expected defaults for invalid YAML, got %+v", config)
	}
}

func TestNormaliseRejectsUnusableValues(t *testing.T) {
	path := writeConfig(t, `
output:
  format: ""
  separator: ""
ingest:
  progress_threshold: -5
  bloom_false_positive: 1.5
logging:
  size: 0
  count: -1
`)

	config, _ := loadConfigFrom(path)
	def := defaultConfig()

	if config.Output.Format != def.Output.Format || config.Output.Separator != def.Output.Separator {
		t.Errorf("output not normalised: %+v", config.Output)
	}
	if config.Ingest.ProgressThreshold != 0 {
		t.Errorf("ProgressThreshold = %d; want 0", config.Ingest.ProgressThreshold)
	}
	if config.Ingest.BloomFalsePositive != def.Ingest.BloomFalsePositive {
		t.Errorf("BloomFalsePositive = %v; want default", config.Ingest.BloomFalsePositive)
	}
	if config.Logging.Size != def.Logging.Size || config.Logging.Count != def.Logging.Count {
		t.Errorf("logging not normalised: %+v", config.Logging)
	}
}

func TestParseOrders(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []avl.Order
		wantErr bool
	}{
		{"all", []string{"pre", "in", "post", "level"}, avl.AllOrders(), false},
		{"spaced", []string{" post-order ", "bfs"}, []avl.Order{avl.PostOrder, avl.LevelOrder}, false},
		{"empty falls back", []string{"", " "}, avl.AllOrders(), false},
		{"unknown", []string{"sideways"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOrders(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseOrders(%v) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseOrders(%v) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCreateDefaultConfigFileRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatalf("createDefaultConfigFile returned error: %v", err)
	}

	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if !reflect.DeepEqual(config, defaultConfig()) {
		t.Errorf("written defaults do not load back: %+v", config)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got, want := expandHome("~/.arbor/log"), filepath.Join(home, ".arbor/log"); got != want {
		t.Errorf("expandHome = %q; want %q", got, want)
	}
	if got := expandHome("/var/log"); got != "/var/log" {
		t.Errorf("expandHome(/var/log) = %q", got)
	}
}
