package models

// TipoUsuario is the closed set of account roles the backend issues.
type TipoUsuario string

const (
	TipoEmpresa    TipoUsuario = "EMPRESA"
	TipoFornecedor TipoUsuario = "FORNECEDOR"
)

func (t TipoUsuario) Valid() bool {
	return t == TipoEmpresa || t == TipoFornecedor
}

func (t TipoUsuario) IsEmpresa() bool    { return t == TipoEmpresa }
func (t TipoUsuario) IsFornecedor() bool { return t == TipoFornecedor }

func (t TipoUsuario) Label() string {
	switch t {
	case TipoEmpresa:
		return "Empresa"
	case TipoFornecedor:
		return "Fornecedor"
	}
	return string(t)
}

// SessionUser is the composed session: the bearer token plus the profile
// fields returned by the auth endpoints. It is transient and non-authoritative;
// the backend owns the record.
type SessionUser struct {
	Token         string
	ID            int64
	Email         string
	Nome          string
	Tipo          TipoUsuario
	FotoPerfilURL string
	Nichos        []string
}
