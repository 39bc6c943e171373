package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMontoMarshalJSON(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{"1000.50", "1000.5"}, // trailing zeros dropped
		{"100.00", "100"},
		{"0", "0"},
		{"0.1", "0.1"},
		{"1", "1"},
		{"121.21", "121.21"},
	}
	for _, tc := range cases {
		m := NuevoMonto(decimal.RequireFromString(tc.raw))
		b, err := m.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, tc.expected, string(b), "raw=%q", tc.raw)
	}
}

func TestSerializeOrdenDeCampos(t *testing.T) {
	p := FiscalQRPayload{
		Ver:        1,
		Fecha:      "2024-03-01",
		Moneda:     "ARS",
		Ctz:        MontoEntero(1),
		TipoDocRec: 80,
		TipoCodAut: "E",
	}

	texto, err := p.Serialize()
	require.NoError(t, err)

	assert.Equal(t, `{"ver":1,"fecha":"2024-03-01","cuit":0,"ptoVta":0,`+
		`"tipoCmp":0,"nroCmp":0,"importe":0,"moneda":"ARS","ctz":1,`+
		`"tipoDocRec":80,"nroDocRec":0,"tipoCodAut":"E","codAut":0}`, texto)
}

func TestSerializeSinEscapeHTML(t *testing.T) {
	p := FiscalQRPayload{Moneda: "<&>", Importe: MontoEntero(0), Ctz: MontoEntero(0)}

	texto, err := p.Serialize()
	require.NoError(t, err)
	assert.Contains(t, texto, `"moneda":"<&>"`)

	// compact, single line
	assert.NotContains(t, texto, "\n")
	assert.NotContains(t, texto, ": ")
}
