package ui

// Accessors for the active theme's escape codes. They read the theme under
// the lock so output remains consistent even if the theme changes mid-run.

// ColorPrimary returns the active theme's primary accent code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the active theme's secondary code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the active theme's success code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the active theme's warning code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the active theme's error code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorCyan returns the active theme's info code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorBold returns the active theme's bold code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the active theme's underline code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the active theme's reset code.
func ColorReset() string { return GetCurrentTheme().Reset }
