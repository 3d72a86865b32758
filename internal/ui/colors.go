package ui

// ColorGreen, ColorCyan, ColorYellow, ColorRed, and ColorReset are
// convenience accessors onto the active theme's ANSI codes, for call
// sites that want a single color inline rather than a whole Theme value.
func ColorGreen() string { return GetCurrentTheme().Success }
func ColorCyan() string  { return GetCurrentTheme().Info }
func ColorYellow() string { return GetCurrentTheme().Warning }
func ColorRed() string   { return GetCurrentTheme().Error }
func ColorReset() string { return GetCurrentTheme().Reset }
