package models

// FaseProposta tags a proposal with the round it was submitted in.
type FaseProposta string

const (
	PropostaFase1 FaseProposta = "FASE_1"
	PropostaFase2 FaseProposta = "FASE_2"
)

// StatusProposta is the backend-owned proposal status.
type StatusProposta string

const (
	PropostaEnviada          StatusProposta = "ENVIADA"
	PropostaSelecionada2Fase StatusProposta = "SELECIONADA_2FASE"
	PropostaGanhadora        StatusProposta = "GANHADORA"
)

func (s StatusProposta) Label() string {
	switch s {
	case PropostaEnviada:
		return "Enviada"
	case PropostaSelecionada2Fase:
		return "Selecionada para 2ª fase"
	case PropostaGanhadora:
		return "Ganhadora"
	}
	return string(s)
}
