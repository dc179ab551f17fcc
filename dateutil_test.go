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
	"testing"
	"time"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"YYYY-MM-DD", "2006-01-02"},
		{"hh:mm:ss", "15:04:05"},
		{"DDDD, DD MMM YYYY", "Monday, 02 Jan 2006"},
		{"DDD", "Mon"},
	}
	for _, tt := range tests {
		if got := Translate(tt.in); got != tt.want {
			t.Errorf("Translate(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFunctions(t *testing.T) {
	// Fixed time for deterministic output
	testTime := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

	t.Run("FormatDateTime", func(t *testing.T) {
		expected := "Mon, 02 Jan 2006 15:04:05"
		if got := FormatDateTime(testTime); got != expected {
			t.Errorf("FormatDateTime: expected %q, got %q", expected, got)
		}
	})

	t.Run("FormatClock", func(t *testing.T) {
		expected := "15:04:05"
		if got := FormatClock(testTime); got != expected {
			t.Errorf("FormatClock: expected %q, got %q", expected, got)
		}
	})

	t.Run("EmptyFormatUsesDefault", func(t *testing.T) {
		if got, want := FormatDate("", testTime), FormatDateTime(testTime); got != want {
			t.Errorf("FormatDate(\"\"): expected %q, got %q", want, got)
		}
	})

	t.Run("CustomFormat", func(t *testing.T) {
		expected := "2006-01-02"
		if got := FormatDate("YYYY-MM-DD", testTime); got != expected {
			t.Errorf("FormatDate: expected %q, got %q", expected, got)
		}
	})
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "500ns"},
		{1500 * time.Nanosecond, "1.5µs"},
		{2500 * time.Microsecond, "2.5ms"},
		{1234 * time.Millisecond, "1.23s"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q; want %q", tt.d, got, tt.want)
		}
	}
}
