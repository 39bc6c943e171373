package service

import (
	"testing"
	"time"

	"arcalinux/internal/coerce"
	"arcalinux/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFacturaDefaults(t *testing.T) {
	s := NewDocumentoService()

	doc := s.BuildFactura(dto.Campos{}, nil)

	hoy := time.Now().Format(coerce.FormatoFecha)

	assert.Equal(t, "EMPRESA S.A.", doc.Negocio.Nombre)
	assert.Equal(t, "Calle 123, Ciudad", doc.Negocio.Domicilio)
	assert.Equal(t, "Responsable Inscripto", doc.Negocio.CondicionIVA)
	assert.Equal(t, "30-12345678-9", doc.Negocio.CUIT)
	assert.Equal(t, "123-456789-0", doc.Negocio.IngresosBrutos)
	assert.Equal(t, hoy, doc.Negocio.InicioActividades)

	assert.Equal(t, "A", doc.Comprobante.Tipo)
	assert.Equal(t, "0001", doc.Comprobante.PuntoDeVenta)
	assert.Equal(t, "00001234", doc.Comprobante.Numero)
	assert.Equal(t, hoy, doc.Comprobante.Fecha)
	assert.Equal(t, "12345678901234", doc.Comprobante.CAE)

	assert.Equal(t, "Cliente S.A.", doc.Cliente.Nombre)
	assert.Equal(t, "Calle 456, Ciudad", doc.Cliente.Domicilio)
	assert.Equal(t, "30-98765432-1", doc.Cliente.CUIT)
	assert.Equal(t, "Contado", doc.Cliente.CondicionVenta)

	assert.Equal(t, "100.00", doc.Totales.Subtotal)
	assert.Equal(t, "21.00", doc.Totales.Impuestos)
	assert.Equal(t, "121.00", doc.Totales.Total)
}

func TestBuildFacturaItemNuncaVacio(t *testing.T) {
	s := NewDocumentoService()

	doc := s.BuildFactura(dto.Campos{}, nil)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Producto/Servicio", doc.Items[0].Nombre)
	assert.Equal(t, "001", doc.Items[0].Codigo)
	assert.Equal(t, "unidad", doc.Items[0].Unidad)
}

func TestBuildFacturaItemPorCampo(t *testing.T) {
	s := NewDocumentoService()

	// a row that exists but is partially blank defaults field by field,
	// with the row default name, not the synthetic one
	doc := s.BuildFactura(dto.Campos{}, []dto.ItemFacturaRequest{
		{Codigo: "X9", Precio: "250.00"},
	})
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "X9", doc.Items[0].Codigo)
	assert.Equal(t, "Producto", doc.Items[0].Nombre)
	assert.Equal(t, "250.00", doc.Items[0].Precio)
	assert.Equal(t, "1", doc.Items[0].Cantidad)
}

func TestBuildTicketDefaults(t *testing.T) {
	s := NewDocumentoService()

	doc := s.BuildTicket(dto.Campos{}, nil)

	assert.Equal(t, "COD001", doc.Comprobante.Codigo)
	assert.Equal(t, "Venta de productos", doc.Comprobante.Concepto)
	assert.Equal(t, "Consumidor Final", doc.Cliente.CondicionIVA)
	assert.Equal(t, "121.00", doc.Totales.Total)

	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Producto", doc.Items[0].Nombre)
	assert.Equal(t, "21", doc.Items[0].IVAPorcentaje)
}

func TestPayloadFacturaTipoCmp(t *testing.T) {
	s := NewDocumentoService()

	cases := []struct {
		tipo     string
		expected int64
	}{
		{"A", 1},
		{"B", 6},
		{"C", 6},
		{"", 6},
		{"a", 6},
		{"A ", 6}, // exact match only
	}
	for _, tc := range cases {
		p := s.PayloadFactura(dto.Campos{dto.CampoCompTipo: tc.tipo})
		assert.Equal(t, tc.expected, p.TipoCmp, "tipo=%q", tc.tipo)
	}
}

func TestPayloadFactura(t *testing.T) {
	s := NewDocumentoService()

	p := s.PayloadFactura(dto.Campos{
		dto.CampoNegocioCUIT:    "30123456789",
		dto.CampoCompPuntoVenta: "4",
		dto.CampoCompNumero:     "1234",
		dto.CampoCompFecha:      "2024-03-01",
		dto.CampoTotalTotal:     "121.00",
		dto.CampoClienteCUIT:    "20987654321",
		dto.CampoCompCAE:        "70123456789012",
	})

	assert.Equal(t, 1, p.Ver)
	assert.Equal(t, "2024-03-01", p.Fecha)
	assert.Equal(t, int64(30123456789), p.CUIT)
	assert.Equal(t, int64(4), p.PtoVta)
	assert.Equal(t, int64(1234), p.NroCmp)
	assert.Equal(t, "ARS", p.Moneda)
	assert.Equal(t, int64(80), p.TipoDocRec)
	assert.Equal(t, int64(20987654321), p.NroDocRec)
	assert.Equal(t, "E", p.TipoCodAut)
	assert.Equal(t, int64(70123456789012), p.CodAut)
}

func TestPayloadFacturaCUITConGuiones(t *testing.T) {
	s := NewDocumentoService()

	// dashed tax ids are display text, not numbers: they coerce to 0
	p := s.PayloadFactura(dto.Campos{dto.CampoClienteCUIT: "30-98765432-1"})
	assert.Equal(t, int64(0), p.NroDocRec)
}

func TestPayloadTicket(t *testing.T) {
	s := NewDocumentoService()

	p := s.PayloadTicket(dto.Campos{
		dto.CampoCompTipo:    "A",
		dto.CampoClienteCUIT: "20987654321",
	})

	// receiver is always an unidentified consumer
	assert.Equal(t, int64(99), p.TipoDocRec)
	assert.Equal(t, int64(0), p.NroDocRec)
	assert.Equal(t, int64(1), p.TipoCmp)
}
