package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeNichos(t *testing.T) {
	// Dedup entre marcados e adicionais, descartando vazios.
	got := mergeNichos(
		[]string{"Papelaria", "Limpeza", "Papelaria"},
		"Limpeza, Gráfica , , Uniformes",
	)
	assert.Equal(t, []string{"Papelaria", "Limpeza", "Gráfica", "Uniformes"}, got)

	assert.Empty(t, mergeNichos(nil, ""))
	assert.Empty(t, mergeNichos([]string{"  "}, " , , "))
	assert.Equal(t, []string{"Papelaria"}, mergeNichos(nil, "Papelaria"))
}

func TestParseValorBRL(t *testing.T) {
	v, err := parseValorBRL("1.234,56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", v.String())

	v, err = parseValorBRL("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", v.String())

	v, err = parseValorBRL("  100,00 ")
	require.NoError(t, err)
	assert.Equal(t, "100.00", v.StringFixed(2))

	_, err = parseValorBRL("abc")
	assert.Error(t, err)
	_, err = parseValorBRL("")
	assert.Error(t, err)

	v, err = parseValorBRL("-5,00")
	require.NoError(t, err)
	assert.False(t, v.IsPositive())
}

func TestNavFor(t *testing.T) {
	assert.Equal(t, "home", navFor("/"))
	assert.Equal(t, "agendar", navFor("/agendar-licitacao"))
	assert.Equal(t, "conversas", navFor("/conversas"))
	assert.Equal(t, "perfil", navFor("/perfil"))
	assert.Equal(t, "configuracoes", navFor("/configuracoes"))
	assert.Equal(t, "", navFor("/licitacao/:id"))
}

func TestMinDataFechamento(t *testing.T) {
	min := minDataFechamento()
	require.Len(t, min, len("2006-01-02"))
	// Datas ISO comparam lexicograficamente.
	assert.Greater(t, min, time.Now().Format("2006-01-02"))
}
