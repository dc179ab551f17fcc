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
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/formats"
	"github.com/cybrota/arbor/keysource"
)

// keys between progress bar refreshes
const progressStep = 1024

var (
	ingestLog = newChannel(tagIngest)

	// progressOutput receives the insertion progress bar
	progressOutput io.Writer = os.Stderr
)

// IngestStats describes one run of the key pipeline
type IngestStats struct {
	Source     string
	Keys       int
	Inserted   int
	Duplicates int
	Nodes      int
	Height     int
	Elapsed    time.Duration
	LoadedAt   time.Time
}

func (s IngestStats) report() formats.Stats {
	return formats.Stats{
		Source:     s.Source,
		Keys:       s.Keys,
		Inserted:   s.Inserted,
		Duplicates: s.Duplicates,
		Nodes:      s.Nodes,
		Height:     s.Height,
	}
}

// loadTree reads the first line of path, parses the bracketed tree and
// feeds its pre-order key walk into a new AVL tree.
func loadTree(path string, cfg *Config) (*avl.Tree, IngestStats, error) {
	ingestLog.Infof("reading keys from %s", path)

	keys, err := keysource.Load(path)
	if err != nil {
		ingestLog.Errorf("load %s: %v", path, err)
		return nil, IngestStats{Source: path}, err
	}
	ingestLog.Debugf("parsed %d keys from %s", len(keys), path)

	tree, stats := buildTree(keys, cfg.Ingest)
	stats.Source = path
	return tree, stats, nil
}

func buildTree(keys []int, cfg IngestConfig) (*avl.Tree, IngestStats) {
	tree := avl.New()
	stats := insertKeys(tree, keys, cfg)
	return tree, stats
}

// insertKeys applies keys to tree one at a time in slice order. A bloom
// filter seeded with the keys already in the tree screens the input: a
// key the filter has never seen goes straight to Insert, a possible
// repeat is confirmed with Contains and dropped without an insert walk.
func insertKeys(tree *avl.Tree, keys []int, cfg IngestConfig) IngestStats {
	start := time.Now()
	stats := IngestStats{Keys: len(keys), LoadedAt: start}

	filter := newKeyFilter(tree.Len()+len(keys), cfg.BloomFalsePositive)
	for key := range tree.InOrder() {
		filter.Add(encodeKey(key))
	}

	var bar *progressbar.ProgressBar
	if cfg.ShowProgress && len(keys) > 0 && len(keys) >= cfg.ProgressThreshold {
		bar = newInsertProgressBar(len(keys))
	}

	for i, key := range keys {
		if filter.TestAndAdd(encodeKey(key)) && tree.Contains(key) {
			stats.Duplicates++
			ingestLog.Debugf("duplicate key %d at position %d dropped", key, i)
		} else if tree.Insert(key) {
			stats.Inserted++
		} else {
			stats.Duplicates++
		}

		if bar != nil && (i+1)%progressStep == 0 {
			_ = bar.Add(progressStep)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	stats.Nodes = tree.Len()
	stats.Height = tree.Height()
	stats.Elapsed = time.Since(start)

	ingestLog.Infof("inserted %d of %d keys (%d duplicates), height %d, took %s",
		stats.Inserted, stats.Keys, stats.Duplicates, stats.Height, stats.Elapsed)
	return stats
}

func newKeyFilter(n int, falsePositive float64) *bloom.BloomFilter {
	if n < 1 {
		n = 1
	}
	if falsePositive <= 0 || falsePositive >= 1 {
		falsePositive = defaultConfig().Ingest.BloomFalsePositive
	}
	return bloom.NewWithEstimates(uint(n), falsePositive)
}

func encodeKey(key int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(key))
	return buf[:]
}

func newInsertProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(progressOutput),
		progressbar.OptionSetDescription("🌳 Balancing keys..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintf(progressOutput, "\n✅ Tree built!\n")
		}),
	)
}
