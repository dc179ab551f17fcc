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
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
)

const (
	tagMain      = "main"
	tagIngest    = "ingest"
	tagExplore   = "explore"
	tagDashboard = "dashboard"
)

var (
	loggingMu      sync.Mutex
	loggingEnabled bool
)

// setupLogging starts the rotating file logger. The caller warns and
// carries on without logs when this fails.
func setupLogging(cfg LoggingConfig) error {
	dir := expandHome(cfg.Directory)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}

	levels := make(map[string]string, len(cfg.Levels)+1)
	levels[logger.DefaultTag] = "info"
	for tag, level := range cfg.Levels {
		if strings.EqualFold(tag, "default") {
			tag = logger.DefaultTag
		}
		levels[tag] = strings.ToLower(level)
	}

	err := logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      cfg.File,
		Size:      cfg.Size,
		Count:     cfg.Count,
		Console:   false,
		Levels:    levels,
	})
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}

	loggingMu.Lock()
	loggingEnabled = true
	loggingMu.Unlock()
	return nil
}

func finaliseLogging() {
	loggingMu.Lock()
	defer loggingMu.Unlock()
	if loggingEnabled {
		logger.Finalise()
		loggingEnabled = false
	}
}

// channel is a tagged log channel. Until setupLogging succeeds every
// call is dropped, so components and tests can log unconditionally.
type channel struct {
	tag string

	mu  sync.Mutex
	log *logger.L
}

func newChannel(tag string) *channel {
	return &channel{tag: tag}
}

func (c *channel) get() *logger.L {
	loggingMu.Lock()
	enabled := loggingEnabled
	loggingMu.Unlock()
	if !enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.log == nil {
		c.log = logger.New(c.tag)
	}
	return c.log
}

func (c *channel) Debugf(format string, args ...interface{}) {
	if l := c.get(); l != nil {
		l.Debugf(format, args...)
	}
}

func (c *channel) Infof(format string, args ...interface{}) {
	if l := c.get(); l != nil {
		l.Infof(format, args...)
	}
}

func (c *channel) Warnf(format string, args ...interface{}) {
	if l := c.get(); l != nil {
		l.Warnf(format, args...)
	}
}

func (c *channel) Errorf(format string, args ...interface{}) {
	if l := c.get(); l != nil {
		l.Errorf(format, args...)
	}
}
