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

import "errors"

// error classes
type InvalidError string
type ParseError string

// common errors - keep in alphabetic order
var (
	ErrEmptyInput         = InvalidError("input is empty")
	ErrInvalidToken       = ParseError("invalid token")
	ErrKeyOutOfRange      = ParseError("key out of range")
	ErrMultipleRoots      = ParseError("more than one top-level node")
	ErrNoTree             = ParseError("no keys found")
	ErrTooManyChildren    = ParseError("node has more than two children")
	ErrUnbalancedBrackets = ParseError("unbalanced brackets")
)

func (e InvalidError) Error() string { return string(e) }
func (e ParseError) Error() string   { return string(e) }

// determine the class of an error, looking through wrapping
func IsErrInvalid(e error) bool { var t InvalidError; return errors.As(e, &t) }
func IsErrParse(e error) bool   { var t ParseError; return errors.As(e, &t) }
