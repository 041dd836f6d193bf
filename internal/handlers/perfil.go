package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"b2fy-web/internal/api"
	"b2fy-web/internal/middleware"
)

func (h *Handlers) ShowPerfil(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	var (
		nichos []api.NichoResponse
		done   = make(chan struct{})
	)
	go func() {
		defer close(done)
		// Catalog failure just leaves the suggestion list empty.
		nichos, _ = h.api.Nichos(ctx, user.Token)
	}()

	perfil, err := h.api.Me(ctx, user.Token)
	<-done
	if err != nil {
		h.render(c, http.StatusOK, "perfil.html", gin.H{"error": err.Error()})
		return
	}

	h.render(c, http.StatusOK, "perfil.html", gin.H{
		"error":   "",
		"success": "",
		"perfil":  perfil,
		"nichos":  nichos,
	})
}

type perfilForm struct {
	SenhaAtual    string   `form:"senha_atual"`
	Nome          string   `form:"nome" binding:"required"`
	Email         string   `form:"email" binding:"required,email"`
	Telefone      string   `form:"telefone"`
	Cep           string   `form:"cep"`
	Endereco      string   `form:"endereco"`
	Estado        string   `form:"estado" binding:"omitempty,len=2"`
	FotoPerfilURL string   `form:"foto_perfil_url"`
	Nichos        []string `form:"nichos"`
	NovosNichos   string   `form:"novos_nichos"`
}

// AtualizarPerfil requires re-entering the current password; that check runs
// before any request is issued.
func (h *Handlers) AtualizarPerfil(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	var form perfilForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderPerfilError(c, form, "Verifique os campos: nome e email válidos são obrigatórios")
		return
	}
	if form.SenhaAtual == "" {
		h.renderPerfilError(c, form, "Informe sua senha atual para confirmar as alterações.")
		return
	}

	perfil, err := h.api.AtualizarPerfil(ctx, user.Token, api.AtualizarPerfilRequest{
		SenhaAtual:    form.SenhaAtual,
		Email:         strings.TrimSpace(form.Email),
		Telefone:      strings.TrimSpace(form.Telefone),
		Nome:          strings.TrimSpace(form.Nome),
		Cep:           strings.TrimSpace(form.Cep),
		Endereco:      strings.TrimSpace(form.Endereco),
		Estado:        strings.ToUpper(strings.TrimSpace(form.Estado)),
		Nichos:        mergeNichos(form.Nichos, form.NovosNichos),
		FotoPerfilURL: strings.TrimSpace(form.FotoPerfilURL),
	})
	if err != nil {
		h.renderPerfilError(c, form, err.Error())
		return
	}

	nichos, _ := h.api.Nichos(ctx, user.Token)
	h.render(c, http.StatusOK, "perfil.html", gin.H{
		"error":   "",
		"success": "Perfil atualizado com sucesso.",
		"perfil":  perfil,
		"nichos":  nichos,
	})
}

func (h *Handlers) renderPerfilError(c *gin.Context, form perfilForm, msg string) {
	user, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	perfil, err := h.api.Me(ctx, user.Token)
	if err != nil {
		h.render(c, http.StatusOK, "perfil.html", gin.H{"error": err.Error()})
		return
	}
	// Keep what the user typed, not what the backend last saw.
	perfil.Nome = form.Nome
	perfil.Email = form.Email
	perfil.Telefone = form.Telefone
	perfil.Cep = form.Cep
	perfil.Endereco = form.Endereco
	perfil.Estado = form.Estado
	perfil.FotoPerfilURL = form.FotoPerfilURL
	perfil.Nichos = mergeNichos(form.Nichos, form.NovosNichos)

	nichos, _ := h.api.Nichos(ctx, user.Token)
	h.render(c, http.StatusBadRequest, "perfil.html", gin.H{
		"error":   msg,
		"success": "",
		"perfil":  perfil,
		"nichos":  nichos,
	})
}
