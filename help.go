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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

var version = "v0.1.0"

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Arbor %s**

Reads a bracketed tree description, rebuilds its keys into a height-balanced AVL tree and prints the pre-order, in-order, post-order and level-order traversals.

Built with Go %s

# 1. Input
Only the first line of the input file is read (default *tree.txt*). Each number opens a node, brackets nest children:

    (8 (3 (1) (6)) (10))

The keys are taken in pre-order (8 3 1 6 10) and inserted one by one. Duplicate keys are dropped.

# 2. Commands
* *arbor [file]* prints the configured traversals
* *arbor traverse --order level [file]* prints one traversal
* *arbor diagram [file]* draws the balanced tree sideways
* *arbor check [file]* verifies ordering, balance and heights
* *arbor explore [file]* opens the interactive explorer
* *arbor dashboard [file]* opens the dashboard
* *arbor settings* shows the configuration in ~/.arbor.yaml

# 3. Output formats
* text, plain, json, markdown (use --format)

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	return string(markdown.Render(message, 80, 3))
}
