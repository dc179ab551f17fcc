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
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/formats"
)

// sessionError is a command the explorer could not carry out
type sessionError string

func (e sessionError) Error() string { return string(e) }

var (
	errUnknownCommand = sessionError("unknown command")
	errMissingArgs    = sessionError("missing arguments")
	errBadKey         = sessionError("key is not an integer")
)

var exploreLog = newChannel(tagExplore)

// session is the tree state behind the explore UI. Every mutation bumps
// revision, which keys the traversal cache.
type session struct {
	tree     *avl.Tree
	stats    IngestStats
	cfg      *Config
	selected avl.Order
	revision int
	cache    *cache.Cache
}

// commandResult tells the UI what to do after a command
type commandResult struct {
	message string
	copy    bool
	quit    bool
}

func newSession(tree *avl.Tree, stats IngestStats, cfg *Config) *session {
	if tree == nil {
		tree = avl.New()
	}
	return &session{
		tree:     tree,
		stats:    stats,
		cfg:      cfg,
		selected: avl.PreOrder,
		cache:    NewTraversalCache(),
	}
}

// execute runs one line typed into the command input
func (s *session) execute(line string) (commandResult, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return commandResult{}, fmt.Errorf("cannot parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return commandResult{}, nil
	}

	exploreLog.Debugf("command: %q", args)

	switch strings.ToLower(args[0]) {
	case "insert", "i", "add":
		return s.insert(args[1:])
	case "load":
		if len(args) != 2 {
			return commandResult{}, fmt.Errorf("%w: load <file>", errMissingArgs)
		}
		return s.load(args[1])
	case "reset", "clear":
		s.tree = avl.New()
		s.stats = IngestStats{}
		s.revision++
		return commandResult{message: "tree cleared"}, nil
	case "order":
		if len(args) != 2 {
			return commandResult{}, fmt.Errorf("%w: order <pre|in|post|level>", errMissingArgs)
		}
		o, err := avl.ParseOrder(args[1])
		if err != nil {
			return commandResult{}, err
		}
		s.selected = o
		return commandResult{message: "showing " + o.String()}, nil
	case "copy":
		return commandResult{copy: true}, nil
	case "help", "?":
		return commandResult{message: "insert <k>... | load <file> | reset | order <name> | copy | quit"}, nil
	case "quit", "exit", "q":
		return commandResult{quit: true}, nil
	}

	return commandResult{}, fmt.Errorf("%w: %s", errUnknownCommand, args[0])
}

func (s *session) insert(args []string) (commandResult, error) {
	if len(args) == 0 {
		return commandResult{}, fmt.Errorf("%w: insert <key>...", errMissingArgs)
	}

	keys := make([]int, 0, len(args))
	for _, arg := range args {
		// allow "insert 1,2,3" as well as separate words
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' }) {
			key, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return commandResult{}, fmt.Errorf("%w: %q", errBadKey, field)
			}
			keys = append(keys, key)
		}
	}

	ingest := s.cfg.Ingest
	ingest.ShowProgress = false
	stats := insertKeys(s.tree, keys, ingest)

	s.stats.Keys += stats.Keys
	s.stats.Inserted += stats.Inserted
	s.stats.Duplicates += stats.Duplicates
	s.stats.Nodes = stats.Nodes
	s.stats.Height = stats.Height
	if stats.Inserted > 0 {
		s.revision++
	}

	return commandResult{
		message: fmt.Sprintf("inserted %d of %d keys, %d duplicates dropped", stats.Inserted, stats.Keys, stats.Duplicates),
	}, nil
}

func (s *session) load(path string) (commandResult, error) {
	cfg := *s.cfg
	cfg.Ingest.ShowProgress = false

	tree, stats, err := loadTree(expandHome(path), &cfg)
	if err != nil {
		return commandResult{}, err
	}
	s.tree = tree
	s.stats = stats
	s.revision++
	return commandResult{message: fmt.Sprintf("loaded %d keys from %s", stats.Keys, path)}, nil
}

// traversal renders o for the current revision, memoised
func (s *session) traversal(o avl.Order) string {
	if rendered, ok := GetTraversal(s.cache, o, s.revision); ok {
		return rendered
	}
	rendered := formats.JoinKeys(avl.Collect(s.tree.Walk(o)), s.cfg.Output.Separator)
	CacheTraversal(s.cache, o, s.revision, rendered)
	return rendered
}

// document is the markdown shown in the detail pane
func (s *session) document() string {
	var sb strings.Builder

	keys := s.traversal(s.selected)
	if keys == "" {
		keys = "(empty tree)"
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n```\n%s\n```\n\n", s.selected.Label(), keys))

	sb.WriteString("## Stats\n\n")
	sb.WriteString("| | |\n|---|---|\n")
	if s.stats.Source != "" {
		sb.WriteString(fmt.Sprintf("| Source | `%s` |\n", s.stats.Source))
	}
	sb.WriteString(fmt.Sprintf("| Nodes | %d |\n", s.tree.Len()))
	sb.WriteString(fmt.Sprintf("| Height | %d |\n", s.tree.Height()))
	sb.WriteString(fmt.Sprintf("| Keys read | %d |\n", s.stats.Keys))
	sb.WriteString(fmt.Sprintf("| Duplicates dropped | %d |\n", s.stats.Duplicates))
	sb.WriteString(fmt.Sprintf("| Revision | %d |\n\n", s.revision))

	if !s.tree.IsEmpty() {
		var diagram bytes.Buffer
		s.tree.Print(&diagram)
		sb.WriteString("## Diagram\n\n```\n")
		sb.WriteString(diagram.String())
		sb.WriteString("```\n")
	}
	return sb.String()
}
