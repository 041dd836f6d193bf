package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"b2fy-web/internal/settings"
)

// Preference cookies live for a year; expiring them just falls back to the
// defaults.
const preferenceMaxAge = 365 * 24 * 60 * 60

func (h *Handlers) ShowConfiguracoes(c *gin.Context) {
	h.render(c, http.StatusOK, "configuracoes.html", nil)
}

func (h *Handlers) SalvarTema(c *gin.Context) {
	theme := settings.ParseTheme(c.PostForm("theme"))
	c.SetCookie(settings.ThemeCookie, string(theme), preferenceMaxAge, "/", "", false, false)
	c.Redirect(http.StatusFound, "/configuracoes")
}

func (h *Handlers) SalvarFonte(c *gin.Context) {
	size := settings.ParseFontSize(c.PostForm("font_size"))
	c.SetCookie(settings.FontSizeCookie, string(size), preferenceMaxAge, "/", "", false, false)
	c.Redirect(http.StatusFound, "/configuracoes")
}

func (h *Handlers) Conversas(c *gin.Context) {
	h.render(c, http.StatusOK, "conversas.html", nil)
}
