package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"b2fy-web/internal/api"
	"b2fy-web/internal/middleware"
	"b2fy-web/internal/settings"
)

// Handlers holds the page handlers' dependencies. Every page-level action
// catches its own errors and renders them inline near the triggering control;
// there is no global error boundary.
type Handlers struct {
	api *api.Client
	log zerolog.Logger
}

func New(client *api.Client, log zerolog.Logger) *Handlers {
	return &Handlers{api: client, log: log}
}

// render wraps c.HTML and feeds every template the current user and the
// display preferences read back from the cookies.
func (h *Handlers) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if user, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = user
		data["IsEmpresa"] = user.Tipo.IsEmpresa()
		data["IsFornecedor"] = user.Tipo.IsFornecedor()
	}

	theme, _ := c.Cookie(settings.ThemeCookie)
	fontSize, _ := c.Cookie(settings.FontSizeCookie)
	data["Theme"] = string(settings.ParseTheme(theme))
	data["FontSize"] = string(settings.ParseFontSize(fontSize))
	data["FontSizePx"] = settings.ParseFontSize(fontSize).Pixels()
	data["nav"] = navFor(c.FullPath())

	c.HTML(status, tmpl, data)
}

func navFor(route string) string {
	switch route {
	case "/":
		return "home"
	case "/agendar-licitacao":
		return "agendar"
	case "/conversas":
		return "conversas"
	case "/perfil":
		return "perfil"
	case "/configuracoes", "/configuracoes/tema", "/configuracoes/fonte":
		return "configuracoes"
	}
	return ""
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return id, true
}

func (h *Handlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
