package models

// Fase is the lifecycle stage of a licitação. The value is owned by the
// backend; the view only mirrors it. Transitions are monotonic, there is no
// reverse edge.
type Fase string

const (
	FaseAberta      Fase = "ABERTA"
	FaseSegundaFase Fase = "SEGUNDA_FASE"
	FaseEncerrada   Fase = "ENCERRADA"
)

// faseTransitions is the complete legal transition set:
// ABERTA → SEGUNDA_FASE, ABERTA → ENCERRADA (outright winner),
// SEGUNDA_FASE → ENCERRADA. ENCERRADA is terminal.
var faseTransitions = map[Fase][]Fase{
	FaseAberta:      {FaseSegundaFase, FaseEncerrada},
	FaseSegundaFase: {FaseEncerrada},
	FaseEncerrada:   {},
}

func (f Fase) Valid() bool {
	_, ok := faseTransitions[f]
	return ok
}

func (f Fase) CanAdvanceTo(next Fase) bool {
	for _, n := range faseTransitions[f] {
		if n == next {
			return true
		}
	}
	return false
}

// AceitaPropostas reports whether suppliers may still submit proposals.
func (f Fase) AceitaPropostas() bool {
	return f == FaseAberta || f == FaseSegundaFase
}

// Editavel reports whether the owning empresa may still edit the request's
// metadata. Only the open phase allows edits.
func (f Fase) Editavel() bool {
	return f == FaseAberta
}

func (f Fase) Encerrada() bool { return f == FaseEncerrada }

func (f Fase) Label() string {
	switch f {
	case FaseAberta:
		return "Aberta"
	case FaseSegundaFase:
		return "Segunda fase"
	case FaseEncerrada:
		return "Encerrada"
	}
	return string(f)
}
