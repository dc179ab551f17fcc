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

package keysource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("(12 (-3), 0)")
	require.NoError(t, err)

	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{Open, Number, Open, Number, Close, Number, Close}, kinds)
	assert.Equal(t, 12, tokens[1].Value)
	assert.Equal(t, 1, tokens[1].Offset)
	assert.Equal(t, -3, tokens[3].Value)
	assert.Equal(t, 0, tokens[5].Value)
}

func TestTokenizeRejects(t *testing.T) {
	testCases := []struct {
		input string
		want  error
	}{
		{"(1 x)", ErrInvalidToken},
		{"(- 1)", ErrInvalidToken},
		{"(5-3)", ErrInvalidToken},
		{"(1 +2)", ErrInvalidToken},
		{"(99999999999999999999999)", ErrKeyOutOfRange},
		{"(-99999999999999999999999)", ErrKeyOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := Tokenize(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, IsErrParse(err))
			assert.False(t, IsErrInvalid(err))
		})
	}
}

func TestParseShape(t *testing.T) {
	root, err := Parse("(8 (3 (1) (6)) (10))")
	require.NoError(t, err)

	assert.Equal(t, 8, root.Value)
	require.NotNil(t, root.Left)
	require.NotNil(t, root.Right)
	assert.Equal(t, 3, root.Left.Value)
	assert.Equal(t, 10, root.Right.Value)
	assert.Equal(t, 1, root.Left.Left.Value)
	assert.Equal(t, 6, root.Left.Right.Value)
	assert.Nil(t, root.Right.Left)
}

func TestKeys(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []int
	}{
		{"single", "10", []int{10}},
		{"single bracketed", "(10)", []int{10}},
		{"nested", "(8 (3 (1) (6)) (10))", []int{8, 3, 1, 6, 10}},
		{"unbracketed children", "8 (3) (10)", []int{8, 3, 10}},
		{"negatives", "(-5 (-10) (0))", []int{-5, -10, 0}},
		{"duplicates kept", "(5 (5) (3))", []int{5, 5, 3}},
		{"left spine", "(30 (20 (10)))", []int{30, 20, 10}},
		{"extra whitespace", " ( 1 ,( 2 ) ) \t", []int{1, 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			keys, err := Keys(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, keys)
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyInput},
		{"blank", "   ", ErrEmptyInput},
		{"only brackets", "()", ErrUnbalancedBrackets},
		{"stray close", "(1))", ErrUnbalancedBrackets},
		{"unclosed", "(1 (2)", ErrUnbalancedBrackets},
		{"double wrap", "((1))", ErrUnbalancedBrackets},
		{"two roots", "(1) (2)", ErrMultipleRoots},
		{"three children", "(1 (2) (3) (4))", ErrTooManyChildren},
		{"no keys", "( , )", ErrUnbalancedBrackets},
		{"bad token", "(1 a)", ErrInvalidToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseOnlyOpenBrackets(t *testing.T) {
	_, err := Parse("(((")
	assert.ErrorIs(t, err, ErrUnbalancedBrackets)

	_, err = Parse(",")
	assert.ErrorIs(t, err, ErrNoTree)
}

func TestPreOrderDeepSpine(t *testing.T) {
	// a degenerate chain well beyond comfortable recursion depth
	const depth = 100000
	var sb strings.Builder
	for i := 0; i < depth; i++ {
		sb.WriteString("(1 ")
	}
	sb.WriteString(strings.Repeat(")", depth))

	root, err := Parse(sb.String())
	require.NoError(t, err)
	assert.Len(t, root.PreOrder(), depth)
}

func TestPreOrderNil(t *testing.T) {
	var root *Node
	assert.Empty(t, root.PreOrder())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "tree.txt")
	require.NoError(t, os.WriteFile(path, []byte("(30 (20 (10)))\r\nignored (1)\n"), 0644))
	keys, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 20, 10}, keys)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = Load(empty)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.True(t, IsErrInvalid(err))

	blank := filepath.Join(dir, "blank.txt")
	require.NoError(t, os.WriteFile(blank, []byte("\n(1)\n"), 0644))
	_, err = Load(blank)
	assert.ErrorIs(t, err, ErrEmptyInput)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("(1))"), 0644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrUnbalancedBrackets)
	assert.Contains(t, err.Error(), "bad.txt")

	_, err = Load(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, IsErrParse(err))
}
