package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"b2fy-web/internal/models"
)

func TestBearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	var out map[string]any
	require.NoError(t, c.Get(context.Background(), "/usuarios/me", "tok-123", &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)

	// Token vazio nunca gera header Authorization.
	require.NoError(t, c.Get(context.Background(), "/nichos", "", &out))
	assert.Empty(t, gotAuth)
}

func TestErrorMessageDoCorpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"CNPJ já cadastrado"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Post(context.Background(), "/auth/registro", map[string]string{}, "", nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "CNPJ já cadastrado", apiErr.Error())
}

func TestErrorFallbackStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Get(context.Background(), "/dashboard/empresa", "tok", nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestNoContentNaoDecodifica(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	out := map[string]any{"intacto": true}
	require.NoError(t, c.Patch(context.Background(), "/notificacoes/1/lida", nil, "tok", &out))
	assert.Equal(t, map[string]any{"intacto": true}, out)
}

func TestEnviarPropostaRequisicao(t *testing.T) {
	var (
		gotMethod string
		gotURI    string
		gotBody   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotURI = r.URL.RequestURI()
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL)
	valor := decimal.RequireFromString("1234.56")
	err := c.EnviarProposta(context.Background(), "tok", 7, true, NovaPropostaRequest{
		DescricaoProdutosServicos: "200 canetas azuis",
		ValorOrcamento:            valor,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/licitacoes/7/propostas?segundaFase=true", gotURI)

	// O valor vai como número JSON, sem aspas.
	assert.Contains(t, string(gotBody), `"valorOrcamento":1234.56`)
}

func TestIrParaSegundaFaseCorpo(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.IrParaSegundaFase(context.Background(), "tok", 5, []int64{2, 3}))

	var body struct {
		PropostaIDs []int64 `json:"propostaIds"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &body))
	assert.Equal(t, []int64{2, 3}, body.PropostaIDs)
}

func TestDefinirGanhadorCorpo(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DefinirGanhador(context.Background(), "tok", 5, 9))

	var body struct {
		PropostaID int64 `json:"propostaId"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &body))
	assert.Equal(t, int64(9), body.PropostaID)
}

func TestMeDecodifica(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/usuarios/me", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":3,"tipo":"FORNECEDOR","email":"f@ex.com","nome":"Fornece Tudo","nichos":["Papelaria"]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.Me(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, models.TipoFornecedor, user.Tipo)
	assert.Equal(t, []string{"Papelaria"}, user.Nichos)
}

func TestPropostasDecodificaDecimais(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"fornecedorNome":"A","valorOrcamento":100,"valorComTaxa":110.00,"status":"ENVIADA","fase":"FASE_1"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	propostas, err := c.Propostas(context.Background(), "tok", 5)
	require.NoError(t, err)
	require.Len(t, propostas, 1)
	assert.Equal(t, "110.00", propostas[0].ValorComTaxa.StringFixed(2))
	assert.Equal(t, models.PropostaEnviada, propostas[0].Status)
}
