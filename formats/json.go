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
	"encoding/json"
	"io"
)

type jsonTraversal struct {
	Order string `json:"order"`
	Keys  []int  `json:"keys"`
}

type jsonReport struct {
	Stats      Stats           `json:"stats"`
	Traversals []jsonTraversal `json:"traversals"`
}

// JSONFormatter emits the report as one indented JSON document
type JSONFormatter struct {
	opts Options
}

func NewJSONFormatter(opts Options) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

func (j *JSONFormatter) Name() string {
	return "json"
}

func (j *JSONFormatter) Format(w io.Writer, r *Report) error {
	out := jsonReport{
		Stats:      r.Stats,
		Traversals: make([]jsonTraversal, 0, len(r.Orders)),
	}
	for _, o := range r.Orders {
		keys := r.Sequences[o]
		if keys == nil {
			keys = []int{}
		}
		out.Traversals = append(out.Traversals, jsonTraversal{Order: o.String(), Keys: keys})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
