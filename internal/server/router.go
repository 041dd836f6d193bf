package server

import (
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"b2fy-web/internal/api"
	"b2fy-web/internal/config"
	"b2fy-web/internal/handlers"
	"b2fy-web/internal/middleware"
	"b2fy-web/internal/models"
)

// fmtMoney renders a backend amount the Brazilian way: two decimals, comma
// separator, no thousands grouping (matches what the API already returns).
func fmtMoney(d decimal.Decimal) string {
	return strings.ReplaceAll(d.StringFixed(2), ".", ",")
}

// fmtDate turns the backend's ISO closing date into dd/mm/yyyy.
func fmtDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func faseBadge(f models.Fase) string {
	switch f {
	case models.FaseSegundaFase:
		return "badge-segunda"
	case models.FaseEncerrada:
		return "badge-encerrada"
	}
	return "badge-aberta"
}

// initial is the avatar fallback when there is no profile picture.
func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// dict builds the argument map for parameterized partials.
func dict(pairs ...any) map[string]any {
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		m[key] = pairs[i+1]
	}
	return m
}

// NewRouter builds the full route table. webDir points at the templates and
// static assets; tests pass their own path.
func NewRouter(cfg *config.Config, client *api.Client, log zerolog.Logger, webDir string) *gin.Engine {
	registerValidators()

	r := gin.Default()

	r.Static("/static", filepath.Join(webDir, "static"))

	r.SetFuncMap(template.FuncMap{
		"fmtMoney":    fmtMoney,
		"fmtDate":     fmtDate,
		"faseLabel":   func(f models.Fase) string { return f.Label() },
		"faseBadge":   faseBadge,
		"statusLabel": func(s models.StatusProposta) string { return s.Label() },
		"tipoLabel":   func(t models.TipoUsuario) string { return t.Label() },
		"contains":    contains,
		"initial":     initial,
		"dict":        dict,
	})
	r.LoadHTMLGlob(filepath.Join(webDir, "templates", "*.html"))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("b2fy_session", store))

	r.Use(middleware.InjectUser(client, log))

	h := handlers.New(client, log)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/registro", h.ShowRegistro)
	r.POST("/registro", h.Registro)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// HOME (role switch)
	auth.GET("/", h.Home)

	// LICITAÇÕES
	auth.GET("/agendar-licitacao",
		middleware.RequireTipo(models.TipoEmpresa),
		h.ShowNovaLicitacao,
	)
	auth.POST("/agendar-licitacao",
		middleware.RequireTipo(models.TipoEmpresa),
		h.CriarLicitacao,
	)
	auth.GET("/licitacao/:id", h.ShowLicitacao)
	auth.GET("/licitacao/:id/editar",
		middleware.RequireTipo(models.TipoEmpresa),
		h.ShowEditarLicitacao,
	)
	auth.POST("/licitacao/:id/editar",
		middleware.RequireTipo(models.TipoEmpresa),
		h.AtualizarLicitacao,
	)

	// PROPOSTAS E WORKFLOW
	auth.POST("/licitacao/:id/proposta",
		middleware.RequireTipo(models.TipoFornecedor),
		h.EnviarProposta,
	)
	auth.POST("/licitacao/:id/ganhador",
		middleware.RequireTipo(models.TipoEmpresa),
		h.DefinirGanhador,
	)
	auth.POST("/licitacao/:id/segunda-fase",
		middleware.RequireTipo(models.TipoEmpresa),
		h.IrParaSegundaFase,
	)

	// PERFIL E PREFERÊNCIAS
	auth.GET("/perfil", h.ShowPerfil)
	auth.POST("/perfil", h.AtualizarPerfil)
	auth.GET("/configuracoes", h.ShowConfiguracoes)
	auth.POST("/configuracoes/tema", h.SalvarTema)
	auth.POST("/configuracoes/fonte", h.SalvarFonte)
	auth.GET("/conversas", h.Conversas)

	// NOTIFICAÇÕES (JSON para o sino do cabeçalho)
	auth.GET("/notificacoes/dados", h.NotificacoesDados)
	auth.POST("/notificacoes/:id/lida", h.MarcarNotificacaoLida)

	// HEALTHCHECK
	r.GET("/health", h.Health)

	return r
}
