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

package formats

import (
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by Get for an unregistered name
type ErrUnknownFormat string

func (e ErrUnknownFormat) Error() string {
	return fmt.Sprintf("unknown output format %q", string(e))
}

// FormatterManager manages the available output formats
type FormatterManager struct {
	formatters []Formatter
}

// NewFormatterManager creates a manager with all built-in formats
func NewFormatterManager(opts Options) *FormatterManager {
	manager := &FormatterManager{}

	// Registered in the order they are listed by Names
	manager.RegisterFormatter(NewTextFormatter(opts))
	manager.RegisterFormatter(NewPlainFormatter(opts))
	manager.RegisterFormatter(NewJSONFormatter(opts))
	manager.RegisterFormatter(NewMarkdownFormatter(opts))

	return manager
}

// RegisterFormatter adds a formatter, replacing one with the same name
func (fm *FormatterManager) RegisterFormatter(formatter Formatter) {
	for i, f := range fm.formatters {
		if f.Name() == formatter.Name() {
			fm.formatters[i] = formatter
			return
		}
	}
	fm.formatters = append(fm.formatters, formatter)
}

// Get looks a formatter up by name, case-insensitively
func (fm *FormatterManager) Get(name string) (Formatter, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range fm.formatters {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, ErrUnknownFormat(name)
}

// Names lists registered formats
func (fm *FormatterManager) Names() []string {
	names := make([]string, 0, len(fm.formatters))
	for _, f := range fm.formatters {
		names = append(names, f.Name())
	}
	return names
}
