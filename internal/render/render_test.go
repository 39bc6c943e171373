package render

import (
	"testing"

	"arcalinux/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func facturaEjemplo() model.Factura {
	return model.Factura{
		Negocio: model.Negocio{
			Nombre:            "EMPRESA S.A.",
			Domicilio:         "Calle 123, Ciudad",
			CondicionIVA:      "Responsable Inscripto",
			CUIT:              "30-12345678-9",
			IngresosBrutos:    "123-456789-0",
			InicioActividades: "2020-01-01",
		},
		Comprobante: model.ComprobanteFactura{
			Tipo:            "A",
			PuntoDeVenta:    "0001",
			Numero:          "00001234",
			Fecha:           "2024-03-01",
			PeriodoDesde:    "2024-03-01",
			PeriodoHasta:    "2024-03-31",
			VencimientoPago: "2024-04-10",
			CAE:             "12345678901234",
			CAEVencimiento:  "2024-03-11",
		},
		Cliente: model.ClienteFactura{
			Nombre:         "Cliente S.A.",
			Domicilio:      "Calle 456, Ciudad",
			CUIT:           "30-98765432-1",
			CondicionIVA:   "Responsable Inscripto",
			CondicionVenta: "Contado",
		},
		Items: []model.ItemFactura{{
			Codigo:          "001",
			Nombre:          "Producto",
			Cantidad:        "1",
			Unidad:          "unidad",
			Precio:          "100.00",
			PorcentajeBonif: "0",
			ImporteBonif:    "0.00",
			Subtotal:        "100.00",
		}},
		Totales: model.TotalesFactura{Subtotal: "100.00", Impuestos: "21.00", Total: "121.00"},
	}
}

func TestFactura(t *testing.T) {
	html, err := Factura(facturaEjemplo(), "qr_code.png")
	require.NoError(t, err)

	assert.Contains(t, html, `src="qr_code.png"`)
	assert.Contains(t, html, "EMPRESA S.A.")
	assert.Contains(t, html, "Cliente S.A.")
	assert.Contains(t, html, "00001234")
	assert.Contains(t, html, "12345678901234")
	assert.Contains(t, html, "121.00")
}

func TestFacturaDataURI(t *testing.T) {
	html, err := Factura(facturaEjemplo(), "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Contains(t, html, `src="data:image/png;base64,AAAA"`)
}

func TestFacturaSinEscape(t *testing.T) {
	doc := facturaEjemplo()
	doc.Negocio.Nombre = "<b>Negocio & Cía</b>"

	html, err := Factura(doc, "qr_code.png")
	require.NoError(t, err)
	// field text passes through verbatim, markup included
	assert.Contains(t, html, "<b>Negocio & Cía</b>")
	assert.NotContains(t, html, "&lt;b&gt;")
}

func TestFacturaVariosItems(t *testing.T) {
	doc := facturaEjemplo()
	doc.Items = append(doc.Items, model.ItemFactura{
		Codigo: "002", Nombre: "Servicio", Cantidad: "2", Unidad: "hora",
		Precio: "500.00", PorcentajeBonif: "10", ImporteBonif: "100.00", Subtotal: "900.00",
	})

	html, err := Factura(doc, "qr_code.png")
	require.NoError(t, err)
	assert.Contains(t, html, "Servicio")
	assert.Contains(t, html, "900.00")
}

func TestTicket(t *testing.T) {
	doc := model.Ticket{
		Negocio: model.Negocio{
			Nombre:            "EMPRESA S.A.",
			Domicilio:         "Calle 123, Ciudad",
			CondicionIVA:      "Responsable Inscripto",
			CUIT:              "30-12345678-9",
			IngresosBrutos:    "123-456789-0",
			InicioActividades: "2020-01-01",
		},
		Comprobante: model.ComprobanteTicket{
			Tipo:           "A",
			Codigo:         "COD001",
			PuntoDeVenta:   "0001",
			Numero:         "00001234",
			Fecha:          "2024-03-01",
			Concepto:       "Venta de productos",
			CAE:            "12345678901234",
			CAEVencimiento: "2024-03-11",
		},
		Cliente: model.ClienteTicket{CondicionIVA: "Consumidor Final"},
		Items: []model.ItemTicket{{
			Cantidad: "1", Nombre: "Producto", IVAPorcentaje: "21", Precio: "100.00",
		}},
		Totales: model.TotalesTicket{Total: "121.00"},
	}

	html, err := Ticket(doc, "qr_code.png")
	require.NoError(t, err)
	assert.Contains(t, html, `src="qr_code.png"`)
	assert.Contains(t, html, "COD001")
	assert.Contains(t, html, "Consumidor Final")
	assert.Contains(t, html, "Venta de productos")
	assert.Contains(t, html, "121.00")
}
