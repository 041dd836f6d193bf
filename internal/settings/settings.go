package settings

// Display preferences, persisted per browser in two cookies and reapplied on
// every render. Purely client-local; the backend never sees them.

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

const (
	ThemeCookie    = "b2fy_theme"
	FontSizeCookie = "b2fy_font_size"
)

// ParseTheme falls back to light on anything unrecognized.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// ParseFontSize falls back to medium on anything unrecognized.
func ParseFontSize(s string) FontSize {
	switch FontSize(s) {
	case FontSmall, FontLarge:
		return FontSize(s)
	}
	return FontMedium
}

// Pixels maps a font size to the fixed root font-size applied to the document.
func (f FontSize) Pixels() string {
	switch f {
	case FontSmall:
		return "14px"
	case FontLarge:
		return "18px"
	}
	return "16px"
}

func (f FontSize) Label() string {
	switch f {
	case FontSmall:
		return "Pequeno"
	case FontLarge:
		return "Grande"
	}
	return "Médio"
}
