package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTipoUsuario(t *testing.T) {
	assert.True(t, TipoEmpresa.Valid())
	assert.True(t, TipoFornecedor.Valid())
	assert.False(t, TipoUsuario("ADMIN").Valid())
	assert.False(t, TipoUsuario("").Valid())

	assert.True(t, TipoEmpresa.IsEmpresa())
	assert.False(t, TipoEmpresa.IsFornecedor())
	assert.True(t, TipoFornecedor.IsFornecedor())
	assert.False(t, TipoFornecedor.IsEmpresa())

	assert.Equal(t, "Empresa", TipoEmpresa.Label())
	assert.Equal(t, "Fornecedor", TipoFornecedor.Label())
}
