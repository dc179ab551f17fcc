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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

// ANSI escapes for plain terminal output. Empty when colour is off.
var (
	Green  = ""
	Cyan   = ""
	Yellow = ""
	Red    = ""
	Reset  = ""
)

type ColorScheme struct {
	Primary     ui.Color
	Accent      ui.Color
	Success     ui.Color
	Warning     ui.Color
	OnPrimary   ui.Color
	Border      ui.Color
	BorderFocus ui.Color
	Text        ui.Color
	TextMuted   ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// detectTerminalMode guesses light or dark background from the environment
func detectTerminalMode(getenv func(string) string) TerminalMode {
	// COLORFGBG is "foreground;background"
	if fgbg := getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		switch parts[len(parts)-1] {
		case "0", "8", "16":
			return TerminalModeDark
		case "7", "15", "255":
			return TerminalModeLight
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(getenv(name))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		}
		if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     ui.Color(4),
		Accent:      ui.ColorMagenta,
		Success:     ui.Color(2),
		Warning:     ui.Color(3),
		OnPrimary:   ui.ColorWhite,
		Border:      ui.Color(8),
		BorderFocus: ui.Color(4),
		Text:        ui.ColorBlack,
		TextMuted:   ui.Color(240),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     ui.Color(6),
		Accent:      ui.ColorMagenta,
		Success:     ui.Color(2),
		Warning:     ui.Color(11),
		OnPrimary:   ui.ColorBlack,
		Border:      ui.Color(240),
		BorderFocus: ui.Color(14),
		Text:        ui.ColorWhite,
		TextMuted:   ui.Color(245),
	}
}

// InitializeColors picks the dashboard scheme and the ANSI escapes used
// by the plain commands.
func InitializeColors(enabled bool) {
	detectedMode = detectTerminalMode(os.Getenv)

	if detectedMode == TerminalModeLight {
		currentColorScheme = createLightColorScheme()
	} else {
		currentColorScheme = createDarkColorScheme()
	}

	if !enabled {
		Green, Cyan, Yellow, Red, Reset = "", "", "", "", ""
		return
	}
	if detectedMode == TerminalModeLight {
		Green, Cyan, Yellow, Red = "\033[32m", "\033[34m", "\033[33m", "\033[31m"
	} else {
		Green, Cyan, Yellow, Red = "\033[92m", "\033[96m", "\033[93m", "\033[91m"
	}
	Reset = "\033[0m"
}

func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors(false)
	}
	return currentColorScheme
}

func StyleBorder(focused bool) ui.Style {
	scheme := GetColorScheme()
	if focused {
		return ui.NewStyle(scheme.BorderFocus)
	}
	return ui.NewStyle(scheme.Border)
}

func StyleText() ui.Style {
	return ui.NewStyle(GetColorScheme().Text)
}

func StyleTextMuted() ui.Style {
	return ui.NewStyle(GetColorScheme().TextMuted)
}

func StylePrimary() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.OnPrimary, scheme.Primary)
}
