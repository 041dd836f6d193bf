package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ParseTheme("dark"))
	assert.Equal(t, ThemeLight, ParseTheme("light"))

	// Qualquer valor desconhecido cai no padrão claro.
	assert.Equal(t, ThemeLight, ParseTheme(""))
	assert.Equal(t, ThemeLight, ParseTheme("blue"))
}

func TestParseFontSize(t *testing.T) {
	assert.Equal(t, FontSmall, ParseFontSize("small"))
	assert.Equal(t, FontMedium, ParseFontSize("medium"))
	assert.Equal(t, FontLarge, ParseFontSize("large"))

	assert.Equal(t, FontMedium, ParseFontSize(""))
	assert.Equal(t, FontMedium, ParseFontSize("xlarge"))
}

func TestFontSizePixels(t *testing.T) {
	assert.Equal(t, "14px", FontSmall.Pixels())
	assert.Equal(t, "16px", FontMedium.Pixels())
	assert.Equal(t, "18px", FontLarge.Pixels())
}

func TestFontSizeLabel(t *testing.T) {
	assert.Equal(t, "Pequeno", FontSmall.Label())
	assert.Equal(t, "Médio", FontMedium.Label())
	assert.Equal(t, "Grande", FontLarge.Label())
}
