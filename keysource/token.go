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
	"errors"
	"fmt"
	"strconv"
)

// TokenKind classifies a lexical token of the bracket notation.
type TokenKind int

const (
	Open TokenKind = iota
	Close
	Number
)

func (k TokenKind) String() string {
	switch k {
	case Open:
		return "("
	case Close:
		return ")"
	case Number:
		return "number"
	}
	return fmt.Sprintf("token(%d)", int(k))
}

// Token is one lexical unit. Value is only meaningful for Number.
type Token struct {
	Kind   TokenKind
	Value  int
	Offset int // byte offset in the input
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Tokenize splits the input into brackets and signed integers. Whitespace
// and commas separate tokens; anything else is rejected.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token

	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == '(':
			tokens = append(tokens, Token{Kind: Open, Offset: i})
			i++
		case c == ')':
			tokens = append(tokens, Token{Kind: Close, Offset: i})
			i++
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ',':
			i++
		case isDigit(c) || (c == '-' && i+1 < len(input) && isDigit(input[i+1])):
			start := i
			if c == '-' {
				i++
			}
			for i < len(input) && isDigit(input[i]) {
				i++
			}
			// "5-3" is not two keys
			if i < len(input) && input[i] == '-' {
				return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidToken, input[start:i+1], start)
			}
			value, err := strconv.ParseInt(input[start:i], 10, strconv.IntSize)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return nil, fmt.Errorf("%w: %s at offset %d", ErrKeyOutOfRange, input[start:i], start)
				}
				return nil, fmt.Errorf("%w %q at offset %d: %v", ErrInvalidToken, input[start:i], start, err)
			}
			tokens = append(tokens, Token{Kind: Number, Value: int(value), Offset: start})
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidToken, c, i)
		}
	}

	return tokens, nil
}
