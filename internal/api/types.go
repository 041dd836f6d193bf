package api

import (
	"time"

	"github.com/shopspring/decimal"

	"b2fy-web/internal/models"
)

func init() {
	// The backend serializes money as JSON numbers and expects the same on
	// requests (valorOrcamento).
	decimal.MarshalJSONWithoutQuotes = true
}

type LoginRequest struct {
	CpfOuCnpj string `json:"cpfOuCnpj"`
	Senha     string `json:"senha"`
}

type LoginResponse struct {
	Token         string             `json:"token"`
	ID            int64              `json:"id"`
	Email         string             `json:"email"`
	Nome          string             `json:"nome"`
	Tipo          models.TipoUsuario `json:"tipo"`
	FotoPerfilURL string             `json:"fotoPerfilUrl"`
	Nichos        []string           `json:"nichos"`
}

type RegistroRequest struct {
	Tipo      models.TipoUsuario `json:"tipo"`
	CpfOuCnpj string             `json:"cpfOuCnpj"`
	Email     string             `json:"email"`
	Senha     string             `json:"senha"`
	Telefone  string             `json:"telefone,omitempty"`
	Nome      string             `json:"nome"`
	Cep       string             `json:"cep,omitempty"`
	Endereco  string             `json:"endereco,omitempty"`
	Estado    string             `json:"estado,omitempty"`
	Nichos    []string           `json:"nichos"`
}

type UsuarioResponse struct {
	ID            int64              `json:"id"`
	Tipo          models.TipoUsuario `json:"tipo"`
	Email         string             `json:"email"`
	Telefone      string             `json:"telefone"`
	Nome          string             `json:"nome"`
	Cep           string             `json:"cep"`
	Endereco      string             `json:"endereco"`
	Estado        string             `json:"estado"`
	FotoPerfilURL string             `json:"fotoPerfilUrl"`
	Nichos        []string           `json:"nichos"`
}

type AtualizarPerfilRequest struct {
	SenhaAtual    string   `json:"senhaAtual"`
	Email         string   `json:"email"`
	Telefone      string   `json:"telefone,omitempty"`
	Nome          string   `json:"nome"`
	Cep           string   `json:"cep,omitempty"`
	Endereco      string   `json:"endereco,omitempty"`
	Estado        string   `json:"estado,omitempty"`
	Nichos        []string `json:"nichos,omitempty"`
	FotoPerfilURL string   `json:"fotoPerfilUrl,omitempty"`
}

type LicitacaoResponse struct {
	ID                        int64       `json:"id"`
	Nome                      string      `json:"nome"`
	DescricaoProdutosServicos string      `json:"descricaoProdutosServicos"`
	DataFechamento            string      `json:"dataFechamento"`
	Fase                      models.Fase `json:"fase"`
	EmpresaID                 int64       `json:"empresaId"`
	EmpresaNome               string      `json:"empresaNome"`
	GanhadorID                int64       `json:"ganhadorId"`
	GanhadorNome              string      `json:"ganhadorNome"`
	CreatedAt                 time.Time   `json:"createdAt"`
	Nichos                    []string    `json:"nichos"`
	TotalPropostasFaseAtual   int         `json:"totalPropostasFaseAtual"`
}

type NovaLicitacaoRequest struct {
	Nome                      string   `json:"nome"`
	DescricaoProdutosServicos string   `json:"descricaoProdutosServicos,omitempty"`
	DataFechamento            string   `json:"dataFechamento"`
	Nichos                    []string `json:"nichos"`
}

type AtualizarLicitacaoRequest struct {
	Nome                      string   `json:"nome"`
	DescricaoProdutosServicos string   `json:"descricaoProdutosServicos,omitempty"`
	DataFechamento            string   `json:"dataFechamento"`
	Nichos                    []string `json:"nichos"`
}

type PropostaResponse struct {
	ID                        int64                 `json:"id"`
	FornecedorID              int64                 `json:"fornecedorId"`
	FornecedorNome            string                `json:"fornecedorNome"`
	FornecedorEmail           string                `json:"fornecedorEmail"`
	Fase                      models.FaseProposta   `json:"fase"`
	DescricaoProdutosServicos string                `json:"descricaoProdutosServicos"`
	ValorOrcamento            decimal.Decimal       `json:"valorOrcamento"`
	ValorComTaxa              decimal.Decimal       `json:"valorComTaxa"`
	Status                    models.StatusProposta `json:"status"`
	CreatedAt                 time.Time             `json:"createdAt"`
}

type NovaPropostaRequest struct {
	DescricaoProdutosServicos string          `json:"descricaoProdutosServicos,omitempty"`
	ValorOrcamento            decimal.Decimal `json:"valorOrcamento"`
}

type NichoResponse struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

type NotificacaoResponse struct {
	ID            int64                  `json:"id"`
	LicitacaoID   int64                  `json:"licitacaoId"`
	LicitacaoNome string                 `json:"licitacaoNome"`
	Tipo          models.TipoNotificacao `json:"tipo"`
	Mensagem      string                 `json:"mensagem"`
	Lida          bool                   `json:"lida"`
	CreatedAt     time.Time              `json:"createdAt"`
}

type NaoLidasResponse struct {
	Count int64 `json:"count"`
}

type DashboardEmpresaResponse struct {
	Abertas         int64            `json:"abertas"`
	SegundaFase     int64            `json:"segundaFase"`
	Encerradas      int64            `json:"encerradas"`
	Atrasadas       int64            `json:"atrasadas"`
	PorNicho        []NichoConcluido `json:"porNicho"`
	GastoMesAtual   decimal.Decimal  `json:"gastoMesAtual"`
	HistoricoGastos []GastoMes       `json:"historicoGastos"`
}

type NichoConcluido struct {
	NichoNome  string `json:"nichoNome"`
	Quantidade int64  `json:"quantidade"`
}

type GastoMes struct {
	Ano   int             `json:"ano"`
	Mes   int             `json:"mes"`
	Valor decimal.Decimal `json:"valor"`
}
