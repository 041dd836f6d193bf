package models

// TipoNotificacao enumerates the workflow events the backend notifies about.
type TipoNotificacao string

const (
	NotificacaoLicitacaoAberta TipoNotificacao = "LICITACAO_ABERTA"
	NotificacaoSelecionado     TipoNotificacao = "SELECIONADO_2FASE"
	NotificacaoGanhador        TipoNotificacao = "GANHADOR"
)
