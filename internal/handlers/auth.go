package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"b2fy-web/internal/api"
	"b2fy-web/internal/middleware"
	"b2fy-web/internal/models"
)

var naoDigitos = regexp.MustCompile(`\D`)

func (h *Handlers) ShowLogin(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	CpfOuCnpj string `form:"cpf_ou_cnpj" binding:"required"`
	Senha     string `form:"senha" binding:"required"`
}

func (h *Handlers) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Informe CPF/CNPJ e senha"})
		return
	}

	res, err := h.api.Login(c.Request.Context(), api.LoginRequest{
		CpfOuCnpj: strings.TrimSpace(form.CpfOuCnpj),
		Senha:     form.Senha,
	})
	if err != nil {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{
			"error":     err.Error(),
			"cpfOuCnpj": form.CpfOuCnpj,
		})
		return
	}

	if err := middleware.SetSessionUser(c, res); err != nil {
		h.render(c, http.StatusInternalServerError, "login.html", gin.H{"error": "Erro ao iniciar sessão"})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) ShowRegistro(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	// Public listing so new accounts can pick their niches before having a token.
	nichos, err := h.api.Nichos(c.Request.Context(), "")
	if err != nil {
		nichos = nil
	}
	h.render(c, http.StatusOK, "registro.html", gin.H{
		"error":  "",
		"nichos": nichos,
		"form":   registroForm{Tipo: string(models.TipoEmpresa)},
	})
}

type registroForm struct {
	Tipo        string   `form:"tipo" binding:"required"`
	CpfOuCnpj   string   `form:"cpf_ou_cnpj" binding:"required"`
	Email       string   `form:"email" binding:"required,email"`
	Senha       string   `form:"senha" binding:"required,min=6"`
	Telefone    string   `form:"telefone"`
	Nome        string   `form:"nome" binding:"required"`
	Cep         string   `form:"cep"`
	Endereco    string   `form:"endereco"`
	Estado      string   `form:"estado" binding:"omitempty,len=2"`
	Nichos      []string `form:"nichos"`
	NovosNichos string   `form:"novos_nichos"`
}

func (h *Handlers) Registro(c *gin.Context) {
	var form registroForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRegistroError(c, form, "Verifique os campos obrigatórios (email válido, senha com no mínimo 6 caracteres)")
		return
	}

	tipo := models.TipoUsuario(form.Tipo)
	if !tipo.Valid() {
		h.renderRegistroError(c, form, "Tipo de usuário inválido")
		return
	}

	nichos := mergeNichos(form.Nichos, form.NovosNichos)
	if len(nichos) == 0 {
		h.renderRegistroError(c, form, "Selecione ou informe pelo menos um nicho.")
		return
	}

	res, err := h.api.Registro(c.Request.Context(), api.RegistroRequest{
		Tipo:      tipo,
		CpfOuCnpj: naoDigitos.ReplaceAllString(form.CpfOuCnpj, ""),
		Email:     strings.TrimSpace(form.Email),
		Senha:     form.Senha,
		Telefone:  strings.TrimSpace(form.Telefone),
		Nome:      strings.TrimSpace(form.Nome),
		Cep:       strings.TrimSpace(form.Cep),
		Endereco:  strings.TrimSpace(form.Endereco),
		Estado:    strings.ToUpper(strings.TrimSpace(form.Estado)),
		Nichos:    nichos,
	})
	if err != nil {
		h.renderRegistroError(c, form, err.Error())
		return
	}

	if err := middleware.SetSessionUser(c, res); err != nil {
		h.renderRegistroError(c, form, "Erro ao iniciar sessão")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) renderRegistroError(c *gin.Context, form registroForm, msg string) {
	nichos, _ := h.api.Nichos(c.Request.Context(), "")
	h.render(c, http.StatusBadRequest, "registro.html", gin.H{
		"error":  msg,
		"nichos": nichos,
		"form":   form,
	})
}

func (h *Handlers) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusFound, "/login")
}

// mergeNichos combines the checked catalog niches with the free-form,
// comma-separated additions, dropping blanks and duplicates.
func mergeNichos(selected []string, extra string) []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(n string) {
		n = strings.TrimSpace(n)
		if n == "" {
			return
		}
		if _, dup := seen[n]; dup {
			return
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	for _, n := range selected {
		add(n)
	}
	for _, n := range strings.Split(extra, ",") {
		add(n)
	}
	return out
}
