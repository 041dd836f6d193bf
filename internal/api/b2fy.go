package api

import (
	"context"
	"fmt"
)

// Typed wrappers over the generic verbs, one per backend endpoint the UI
// consumes. Endpoints taking an empty token are public.

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.Post(ctx, "/auth/login", req, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Registro(ctx context.Context, req RegistroRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.Post(ctx, "/auth/registro", req, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context, token string) (*UsuarioResponse, error) {
	var out UsuarioResponse
	if err := c.Get(ctx, "/usuarios/me", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AtualizarPerfil(ctx context.Context, token string, req AtualizarPerfilRequest) (*UsuarioResponse, error) {
	var out UsuarioResponse
	if err := c.Put(ctx, "/usuarios/me", req, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LicitacoesEmpresa(ctx context.Context, token string) ([]LicitacaoResponse, error) {
	var out []LicitacaoResponse
	if err := c.Get(ctx, "/licitacoes/empresa", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LicitacoesFornecedor(ctx context.Context, token string) ([]LicitacaoResponse, error) {
	var out []LicitacaoResponse
	if err := c.Get(ctx, "/licitacoes/fornecedor", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Licitacao(ctx context.Context, token string, id int64) (*LicitacaoResponse, error) {
	var out LicitacaoResponse
	if err := c.Get(ctx, fmt.Sprintf("/licitacoes/%d", id), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CriarLicitacao(ctx context.Context, token string, req NovaLicitacaoRequest) (*LicitacaoResponse, error) {
	var out LicitacaoResponse
	if err := c.Post(ctx, "/licitacoes", req, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AtualizarLicitacao(ctx context.Context, token string, id int64, req AtualizarLicitacaoRequest) (*LicitacaoResponse, error) {
	var out LicitacaoResponse
	if err := c.Put(ctx, fmt.Sprintf("/licitacoes/%d", id), req, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Propostas(ctx context.Context, token string, licitacaoID int64) ([]PropostaResponse, error) {
	var out []PropostaResponse
	if err := c.Get(ctx, fmt.Sprintf("/licitacoes/%d/propostas", licitacaoID), token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) EnviarProposta(ctx context.Context, token string, licitacaoID int64, segundaFase bool, req NovaPropostaRequest) error {
	path := fmt.Sprintf("/licitacoes/%d/propostas?segundaFase=%t", licitacaoID, segundaFase)
	return c.Post(ctx, path, req, token, nil)
}

func (c *Client) DefinirGanhador(ctx context.Context, token string, licitacaoID, propostaID int64) error {
	body := map[string]int64{"propostaId": propostaID}
	return c.Post(ctx, fmt.Sprintf("/licitacoes/%d/ganhador", licitacaoID), body, token, nil)
}

func (c *Client) IrParaSegundaFase(ctx context.Context, token string, licitacaoID int64, propostaIDs []int64) error {
	body := map[string][]int64{"propostaIds": propostaIDs}
	return c.Post(ctx, fmt.Sprintf("/licitacoes/%d/segunda-fase", licitacaoID), body, token, nil)
}

func (c *Client) Nichos(ctx context.Context, token string) ([]NichoResponse, error) {
	var out []NichoResponse
	if err := c.Get(ctx, "/nichos", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Notificacoes(ctx context.Context, token string) ([]NotificacaoResponse, error) {
	var out []NotificacaoResponse
	if err := c.Get(ctx, "/notificacoes", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) NotificacoesNaoLidas(ctx context.Context, token string) (int64, error) {
	var out NaoLidasResponse
	if err := c.Get(ctx, "/notificacoes/nao-lidas", token, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) MarcarNotificacaoLida(ctx context.Context, token string, id int64) error {
	return c.Patch(ctx, fmt.Sprintf("/notificacoes/%d/lida", id), nil, token, nil)
}

func (c *Client) DashboardEmpresa(ctx context.Context, token string) (*DashboardEmpresaResponse, error) {
	var out DashboardEmpresaResponse
	if err := c.Get(ctx, "/dashboard/empresa", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
