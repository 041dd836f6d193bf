package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"b2fy-web/internal/api"
	"b2fy-web/internal/middleware"
)

// Home switches on the session role. The two roles see structurally different
// data, so there is no shared dashboard template.
func (h *Handlers) Home(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	if user.Tipo.IsEmpresa() {
		h.homeEmpresa(c)
		return
	}
	h.homeFornecedor(c)
}

func (h *Handlers) homeEmpresa(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	// The list and the analytics are independent; issue them concurrently and
	// await jointly.
	var (
		dash    *api.DashboardEmpresaResponse
		dashErr error
		done    = make(chan struct{})
	)
	go func() {
		defer close(done)
		dash, dashErr = h.api.DashboardEmpresa(ctx, user.Token)
	}()

	licitacoes, err := h.api.LicitacoesEmpresa(ctx, user.Token)
	<-done

	if err != nil {
		h.render(c, http.StatusOK, "home_empresa.html", gin.H{"error": err.Error()})
		return
	}

	data := gin.H{
		"error":      "",
		"licitacoes": licitacoes,
		"dashboard":  dash,
	}
	if dashErr != nil {
		h.log.Warn().Err(dashErr).Msg("dashboard da empresa indisponível")
		data["dashboardError"] = dashErr.Error()
	}
	h.render(c, http.StatusOK, "home_empresa.html", data)
}

// homeFornecedor lists only the open requests whose niche set intersects the
// supplier's niches; the filtering itself is done by the backend.
func (h *Handlers) homeFornecedor(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	licitacoes, err := h.api.LicitacoesFornecedor(c.Request.Context(), user.Token)
	if err != nil {
		h.render(c, http.StatusOK, "home_fornecedor.html", gin.H{"error": err.Error()})
		return
	}

	h.render(c, http.StatusOK, "home_fornecedor.html", gin.H{
		"error":      "",
		"licitacoes": licitacoes,
	})
}
