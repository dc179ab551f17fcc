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

// dateutil.go
// The placeholder scheme follows https://github.com/metakeule/fmtdate by Marc René Arns

package main

import (
	"fmt"
	"strings"
	"time"
)

/*
	Formats:

	MMM  - month (Jan)
	MM   - month (01)
	DDDD - day (Monday)
	DDD  - day (Mon)
	DD   - day (02)
	YYYY - year (2006)
	hh   - hours (15)
	mm   - minutes (04)
	ss   - seconds (05)
*/

type placeholder struct{ find, subst string }

// Longer patterns first so "MMM" is not eaten by "MM"
var placeholders = []placeholder{
	{"hh", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"YYYY", "2006"},
	{"DDDD", "Monday"},
	{"DDD", "Mon"},
	{"DD", "02"},
}

const (
	DefaultDateTimeFormat = "DDD, DD MMM YYYY hh:mm:ss"
	DefaultClockFormat    = "hh:mm:ss"
)

// Translate turns a memorable format into Go's reference layout
func Translate(format string) string {
	out := format
	for _, ph := range placeholders {
		out = strings.ReplaceAll(out, ph.find, ph.subst)
	}
	return out
}

// FormatDate formats date with a memorable format, or the default one
func FormatDate(format string, date time.Time) string {
	if format == "" {
		format = DefaultDateTimeFormat
	}
	return date.Format(Translate(format))
}

func FormatDateTime(date time.Time) string {
	return FormatDate(DefaultDateTimeFormat, date)
}

func FormatClock(date time.Time) string {
	return FormatDate(DefaultClockFormat, date)
}

// FormatElapsed renders a build duration at a readable precision
func FormatElapsed(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}
