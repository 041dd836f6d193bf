package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"b2fy-web/internal/api"
	"b2fy-web/internal/middleware"
	"b2fy-web/internal/models"
)

// MinDiasFechamento is the minimum lead time for a closing date.
const MinDiasFechamento = 3

func minDataFechamento() string {
	return time.Now().AddDate(0, 0, MinDiasFechamento).Format("2006-01-02")
}

var okMessages = map[string]string{
	"proposta":     "Proposta enviada com sucesso.",
	"ganhador":     "Ganhador definido com sucesso.",
	"segunda-fase": "Licitação avançou para a segunda fase.",
	"editada":      "Licitação atualizada com sucesso.",
}

// loadDetalhe assembles the detail view data for the (viewer role, fase,
// ownership) tuple. Proposals of the current phase are loaded only for the
// owning empresa while the request is not closed.
func (h *Handlers) loadDetalhe(c *gin.Context, user models.SessionUser, id int64) (gin.H, error) {
	ctx := c.Request.Context()

	lic, err := h.api.Licitacao(ctx, user.Token, id)
	if err != nil {
		return nil, err
	}

	isDona := user.Tipo.IsEmpresa() && lic.EmpresaID == user.ID
	data := gin.H{
		"error":               "",
		"success":             "",
		"licitacao":           lic,
		"isDona":              isDona,
		"segundaFase":         lic.Fase == models.FaseSegundaFase,
		"podeEnviarProposta":  user.Tipo.IsFornecedor() && lic.Fase.AceitaPropostas(),
		"podeEditar":          isDona && lic.Fase.Editavel(),
		"podeSelecionar":      isDona && lic.Fase.CanAdvanceTo(models.FaseSegundaFase),
		"podeDefinirGanhador": isDona && lic.Fase.CanAdvanceTo(models.FaseEncerrada),
	}

	if isDona && !lic.Fase.Encerrada() {
		propostas, err := h.api.Propostas(ctx, user.Token, id)
		if err != nil {
			data["error"] = err.Error()
		} else {
			data["propostas"] = propostas
		}
	}
	return data, nil
}

func (h *Handlers) ShowLicitacao(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)

	data, err := h.loadDetalhe(c, user, id)
	if err != nil {
		h.render(c, http.StatusOK, "licitacao_detail.html", gin.H{"error": err.Error()})
		return
	}
	if msg, found := okMessages[c.Query("ok")]; found {
		data["success"] = msg
	}
	h.render(c, http.StatusOK, "licitacao_detail.html", data)
}

type licitacaoForm struct {
	Nome           string   `form:"nome" binding:"required,max=255"`
	Descricao      string   `form:"descricao" binding:"max=5000"`
	DataFechamento string   `form:"data_fechamento" binding:"required,datafechamento"`
	Nichos         []string `form:"nichos"`
	NovosNichos    string   `form:"novos_nichos"`
}

func (h *Handlers) ShowNovaLicitacao(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	nichos, _ := h.api.Nichos(c.Request.Context(), user.Token)

	h.render(c, http.StatusOK, "licitacao_new.html", gin.H{
		"error":   "",
		"nichos":  nichos,
		"minData": minDataFechamento(),
		"form":    licitacaoForm{DataFechamento: minDataFechamento()},
	})
}

func (h *Handlers) CriarLicitacao(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var form licitacaoForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderNovaLicitacaoError(c, form, "Verifique os campos: nome e data de fechamento (mínimo de 3 dias a partir de hoje) são obrigatórios")
		return
	}

	nichos := mergeNichos(form.Nichos, form.NovosNichos)
	if len(nichos) == 0 {
		h.renderNovaLicitacaoError(c, form, "Selecione pelo menos um nicho.")
		return
	}

	_, err := h.api.CriarLicitacao(c.Request.Context(), user.Token, api.NovaLicitacaoRequest{
		Nome:                      strings.TrimSpace(form.Nome),
		DescricaoProdutosServicos: strings.TrimSpace(form.Descricao),
		DataFechamento:            form.DataFechamento,
		Nichos:                    nichos,
	})
	if err != nil {
		h.renderNovaLicitacaoError(c, form, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) renderNovaLicitacaoError(c *gin.Context, form licitacaoForm, msg string) {
	user, _ := middleware.CurrentUser(c)
	nichos, _ := h.api.Nichos(c.Request.Context(), user.Token)
	h.render(c, http.StatusBadRequest, "licitacao_new.html", gin.H{
		"error":   msg,
		"nichos":  nichos,
		"minData": minDataFechamento(),
		"form":    form,
	})
}

// ShowEditarLicitacao is reachable only for the owning empresa while the
// request is still open; everyone else bounces back to the detail view.
func (h *Handlers) ShowEditarLicitacao(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	lic, err := h.api.Licitacao(ctx, user.Token, id)
	if err != nil {
		h.render(c, http.StatusOK, "licitacao_detail.html", gin.H{"error": err.Error()})
		return
	}
	if lic.EmpresaID != user.ID || !lic.Fase.Editavel() {
		c.Redirect(http.StatusFound, "/licitacao/"+strconv.FormatInt(id, 10))
		return
	}

	nichos, _ := h.api.Nichos(ctx, user.Token)
	h.render(c, http.StatusOK, "licitacao_edit.html", gin.H{
		"error":     "",
		"licitacao": lic,
		"nichos":    nichos,
		"minData":   minDataFechamento(),
		"form": licitacaoForm{
			Nome:           lic.Nome,
			Descricao:      lic.DescricaoProdutosServicos,
			DataFechamento: lic.DataFechamento,
			Nichos:         lic.Nichos,
		},
	})
}

func (h *Handlers) AtualizarLicitacao(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	lic, err := h.api.Licitacao(ctx, user.Token, id)
	if err != nil {
		h.render(c, http.StatusOK, "licitacao_detail.html", gin.H{"error": err.Error()})
		return
	}
	if lic.EmpresaID != user.ID || !lic.Fase.Editavel() {
		c.Redirect(http.StatusFound, "/licitacao/"+strconv.FormatInt(id, 10))
		return
	}

	var form licitacaoForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderEditarLicitacaoError(c, lic, form, "Verifique os campos: nome e data de fechamento (mínimo de 3 dias a partir de hoje) são obrigatórios")
		return
	}
	nichos := mergeNichos(form.Nichos, form.NovosNichos)
	if len(nichos) == 0 {
		h.renderEditarLicitacaoError(c, lic, form, "Selecione pelo menos um nicho.")
		return
	}

	_, err = h.api.AtualizarLicitacao(ctx, user.Token, id, api.AtualizarLicitacaoRequest{
		Nome:                      strings.TrimSpace(form.Nome),
		DescricaoProdutosServicos: strings.TrimSpace(form.Descricao),
		DataFechamento:            form.DataFechamento,
		Nichos:                    nichos,
	})
	if err != nil {
		h.renderEditarLicitacaoError(c, lic, form, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/licitacao/"+strconv.FormatInt(id, 10)+"?ok=editada")
}

func (h *Handlers) renderEditarLicitacaoError(c *gin.Context, lic *api.LicitacaoResponse, form licitacaoForm, msg string) {
	user, _ := middleware.CurrentUser(c)
	nichos, _ := h.api.Nichos(c.Request.Context(), user.Token)
	h.render(c, http.StatusBadRequest, "licitacao_edit.html", gin.H{
		"error":     msg,
		"licitacao": lic,
		"nichos":    nichos,
		"minData":   minDataFechamento(),
		"form":      form,
	})
}

type propostaForm struct {
	Descricao string `form:"descricao"`
	Valor     string `form:"valor" binding:"required"`
}

// EnviarProposta submits a supplier proposal for the current phase. The
// segundaFase flag is derived from the authoritative fase at submit time.
// There is no duplicate-submission guard here; the backend is authoritative.
func (h *Handlers) EnviarProposta(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	lic, err := h.api.Licitacao(ctx, user.Token, id)
	if err != nil {
		h.render(c, http.StatusOK, "licitacao_detail.html", gin.H{"error": err.Error()})
		return
	}
	if !lic.Fase.AceitaPropostas() {
		c.Redirect(http.StatusFound, "/licitacao/"+strconv.FormatInt(id, 10))
		return
	}

	var form propostaForm
	_ = c.ShouldBind(&form)

	valor, parseErr := parseValorBRL(form.Valor)
	if parseErr != nil || !valor.IsPositive() {
		h.renderPropostaError(c, user, id, form, "Informe um valor de orçamento válido, maior que zero.")
		return
	}

	err = h.api.EnviarProposta(ctx, user.Token, id, lic.Fase == models.FaseSegundaFase, api.NovaPropostaRequest{
		DescricaoProdutosServicos: strings.TrimSpace(form.Descricao),
		ValorOrcamento:            valor,
	})
	if err != nil {
		h.renderPropostaError(c, user, id, form, err.Error())
		return
	}

	// Success: the redirect clears the form and re-fetches the request.
	c.Redirect(http.StatusFound, "/licitacao/"+strconv.FormatInt(id, 10)+"?ok=proposta")
}

// On failure the entered fields are kept so the supplier can correct and
// resubmit; nothing is retried automatically.
func (h *Handlers) renderPropostaError(c *gin.Context, user models.SessionUser, id int64, form propostaForm, msg string) {
	data, err := h.loadDetalhe(c, user, id)
	if err != nil {
		h.render(c, http.StatusOK, "licitacao_detail.html", gin.H{"error": err.Error()})
		return
	}
	data["propostaError"] = msg
	data["formDescricao"] = form.Descricao
	data["formValor"] = form.Valor
	h.render(c, http.StatusBadRequest, "licitacao_detail.html", data)
}

func (h *Handlers) DefinirGanhador(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)

	propostaID, err := strconv.ParseInt(c.PostForm("proposta_id"), 10, 64)
	if err != nil || propostaID <= 0 {
		c.String(http.StatusBadRequest, "Proposta inválida")
		return
	}

	if err := h.api.DefinirGanhador(c.Request.Context(), user.Token, id, propostaID); err != nil {
		data, loadErr := h.loadDetalhe(c, user, id)
		if loadErr != nil {
			h.render(c, http.StatusOK, "licitacao_detail.html", gin.H{"error": loadErr.Error()})
			return
		}
		data["error"] = err.Error()
		h.render(c, http.StatusBadRequest, "licitacao_detail.html", data)
		return
	}
	c.Redirect(http.StatusFound, "/licitacao/"+strconv.FormatInt(id, 10)+"?ok=ganhador")
}

// IrParaSegundaFase commits the shortlist in a single request carrying exactly
// the checked proposal ids.
func (h *Handlers) IrParaSegundaFase(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(c)

	var propostaIDs []int64
	for _, raw := range c.PostFormArray("proposta_ids") {
		pid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || pid <= 0 {
			c.String(http.StatusBadRequest, "Proposta inválida")
			return
		}
		propostaIDs = append(propostaIDs, pid)
	}

	if len(propostaIDs) == 0 {
		data, loadErr := h.loadDetalhe(c, user, id)
		if loadErr != nil {
			h.render(c, http.StatusOK, "licitacao_detail.html", gin.H{"error": loadErr.Error()})
			return
		}
		data["error"] = "Selecione pelo menos uma proposta para a segunda fase."
		h.render(c, http.StatusBadRequest, "licitacao_detail.html", data)
		return
	}

	if err := h.api.IrParaSegundaFase(c.Request.Context(), user.Token, id, propostaIDs); err != nil {
		data, loadErr := h.loadDetalhe(c, user, id)
		if loadErr != nil {
			h.render(c, http.StatusOK, "licitacao_detail.html", gin.H{"error": loadErr.Error()})
			return
		}
		data["error"] = err.Error()
		h.render(c, http.StatusBadRequest, "licitacao_detail.html", data)
		return
	}
	c.Redirect(http.StatusFound, "/licitacao/"+strconv.FormatInt(id, 10)+"?ok=segunda-fase")
}

// parseValorBRL accepts the pt-BR "1.234,56" and the plain "1234.56" input
// forms.
func parseValorBRL(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}
