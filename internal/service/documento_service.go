package service

import (
	"arcalinux/internal/coerce"
	"arcalinux/internal/dto"
	"arcalinux/internal/model"

	"github.com/shopspring/decimal"
)

// DocumentoService assembles fully-defaulted document models for the two
// document kinds, and derives the best-effort fiscal payload used when a QR
// must be auto-generated from the document's own fields.
type DocumentoService interface {
	BuildFactura(campos dto.Campos, items []dto.ItemFacturaRequest) model.Factura
	BuildTicket(campos dto.Campos, items []dto.ItemTicketRequest) model.Ticket
	PayloadFactura(campos dto.Campos) model.FiscalQRPayload
	PayloadTicket(campos dto.Campos) model.FiscalQRPayload
}

type documentoService struct{}

func NewDocumentoService() DocumentoService { return &documentoService{} }

func buildNegocio(campos dto.Campos) model.Negocio {
	return model.Negocio{
		Nombre:            coerce.Texto(campos[dto.CampoNegocioNombre], "EMPRESA S.A."),
		Domicilio:         coerce.Texto(campos[dto.CampoNegocioDomicilio], "Calle 123, Ciudad"),
		CondicionIVA:      coerce.Texto(campos[dto.CampoNegocioIVA], "Responsable Inscripto"),
		CUIT:              coerce.Texto(campos[dto.CampoNegocioCUIT], "30-12345678-9"),
		IngresosBrutos:    coerce.Texto(campos[dto.CampoNegocioIIBB], "123-456789-0"),
		InicioActividades: coerce.FechaISO(campos[dto.CampoNegocioInicio]),
	}
}

func (s *documentoService) BuildFactura(campos dto.Campos, items []dto.ItemFacturaRequest) model.Factura {
	doc := model.Factura{
		Negocio: buildNegocio(campos),
		Comprobante: model.ComprobanteFactura{
			Tipo:            coerce.Texto(campos[dto.CampoCompTipo], "A"),
			PuntoDeVenta:    coerce.Texto(campos[dto.CampoCompPuntoVenta], "0001"),
			Numero:          coerce.Texto(campos[dto.CampoCompNumero], "00001234"),
			Fecha:           coerce.FechaISO(campos[dto.CampoCompFecha]),
			PeriodoDesde:    coerce.FechaISO(campos[dto.CampoCompDesde]),
			PeriodoHasta:    coerce.FechaISO(campos[dto.CampoCompHasta]),
			VencimientoPago: coerce.FechaISO(campos[dto.CampoCompVencimiento]),
			CAE:             coerce.Texto(campos[dto.CampoCompCAE], "12345678901234"),
			CAEVencimiento:  coerce.FechaISO(campos[dto.CampoCompCAEVto]),
		},
		Cliente: model.ClienteFactura{
			Nombre:         coerce.Texto(campos[dto.CampoClienteNombre], "Cliente S.A."),
			Domicilio:      coerce.Texto(campos[dto.CampoClienteDomicilio], "Calle 456, Ciudad"),
			CUIT:           coerce.Texto(campos[dto.CampoClienteCUIT], "30-98765432-1"),
			CondicionIVA:   coerce.Texto(campos[dto.CampoClienteIVA], "Responsable Inscripto"),
			CondicionVenta: coerce.Texto(campos[dto.CampoClientePago], "Contado"),
		},
		Totales: model.TotalesFactura{
			Subtotal:  coerce.Texto(campos[dto.CampoTotalSubtotal], "100.00"),
			Impuestos: coerce.Texto(campos[dto.CampoTotalImpuestos], "21.00"),
			Total:     coerce.Texto(campos[dto.CampoTotalTotal], "121.00"),
		},
	}

	for _, it := range items {
		doc.Items = append(doc.Items, model.ItemFactura{
			Codigo:          coerce.Texto(it.Codigo, "001"),
			Nombre:          coerce.Texto(it.Nombre, "Producto"),
			Cantidad:        coerce.Texto(it.Cantidad, "1"),
			Unidad:          coerce.Texto(it.Unidad, "unidad"),
			Precio:          coerce.Texto(it.Precio, "100.00"),
			PorcentajeBonif: coerce.Texto(it.PorcentajeBonif, "0"),
			ImporteBonif:    coerce.Texto(it.ImporteBonif, "0.00"),
			Subtotal:        coerce.Texto(it.Subtotal, "100.00"),
		})
	}
	// Items is never empty: an empty row list yields one synthetic item.
	if len(doc.Items) == 0 {
		doc.Items = []model.ItemFactura{{
			Codigo:          "001",
			Nombre:          "Producto/Servicio",
			Cantidad:        "1",
			Unidad:          "unidad",
			Precio:          "100.00",
			PorcentajeBonif: "0",
			ImporteBonif:    "0.00",
			Subtotal:        "100.00",
		}}
	}
	return doc
}

func (s *documentoService) BuildTicket(campos dto.Campos, items []dto.ItemTicketRequest) model.Ticket {
	doc := model.Ticket{
		Negocio: buildNegocio(campos),
		Comprobante: model.ComprobanteTicket{
			Tipo:           coerce.Texto(campos[dto.CampoCompTipo], "A"),
			Codigo:         coerce.Texto(campos[dto.CampoCompCodigo], "COD001"),
			PuntoDeVenta:   coerce.Texto(campos[dto.CampoCompPuntoVenta], "0001"),
			Numero:         coerce.Texto(campos[dto.CampoCompNumero], "00001234"),
			Fecha:          coerce.FechaISO(campos[dto.CampoCompFecha]),
			Concepto:       coerce.Texto(campos[dto.CampoCompConcepto], "Venta de productos"),
			CAE:            coerce.Texto(campos[dto.CampoCompCAE], "12345678901234"),
			CAEVencimiento: coerce.FechaISO(campos[dto.CampoCompCAEVto]),
		},
		Cliente: model.ClienteTicket{
			CondicionIVA: coerce.Texto(campos[dto.CampoClienteIVA], "Consumidor Final"),
		},
		Totales: model.TotalesTicket{
			Total: coerce.Texto(campos[dto.CampoTotalTotal], "121.00"),
		},
	}

	for _, it := range items {
		doc.Items = append(doc.Items, model.ItemTicket{
			Cantidad:      coerce.Texto(it.Cantidad, "1"),
			Nombre:        coerce.Texto(it.Nombre, "Producto"),
			IVAPorcentaje: coerce.Texto(it.IVAPorcentaje, "21"),
			Precio:        coerce.Texto(it.Precio, "100.00"),
		})
	}
	if len(doc.Items) == 0 {
		doc.Items = []model.ItemTicket{{
			Cantidad:      "1",
			Nombre:        "Producto",
			IVAPorcentaje: "21",
			Precio:        "100.00",
		}}
	}
	return doc
}

// tipoCmpDe derives the comprobante type code from the raw bill type text:
// "A" → 1 (factura A), anything else → 6.
func tipoCmpDe(tipo string) int64 {
	if tipo == "A" {
		return 1
	}
	return 6
}

// PayloadFactura derives a best-effort payload from the invoice's own fields
// (used when the caller wants an auto-generated QR without having filled the
// dedicated QR form). The receiver document number comes from the client tax
// id; moneda/ctz/tipoDocRec take their schema defaults.
func (s *documentoService) PayloadFactura(campos dto.Campos) model.FiscalQRPayload {
	return model.FiscalQRPayload{
		Ver:        1,
		Fecha:      coerce.FechaISO(campos[dto.CampoCompFecha]),
		CUIT:       coerce.Entero(campos[dto.CampoNegocioCUIT], 0),
		PtoVta:     coerce.Entero(campos[dto.CampoCompPuntoVenta], 0),
		TipoCmp:    tipoCmpDe(campos[dto.CampoCompTipo]),
		NroCmp:     coerce.Entero(campos[dto.CampoCompNumero], 0),
		Importe:    model.NuevoMonto(coerce.Monto(campos[dto.CampoTotalTotal], decimal.Zero)),
		Moneda:     "ARS",
		Ctz:        model.MontoEntero(1),
		TipoDocRec: 80,
		NroDocRec:  coerce.Entero(campos[dto.CampoClienteCUIT], 0),
		TipoCodAut: "E",
		CodAut:     coerce.Entero(campos[dto.CampoCompCAE], 0),
	}
}

// PayloadTicket is the ticket variant: receiver is always an unidentified
// consumer (tipoDocRec 99, nroDocRec 0).
func (s *documentoService) PayloadTicket(campos dto.Campos) model.FiscalQRPayload {
	return model.FiscalQRPayload{
		Ver:        1,
		Fecha:      coerce.FechaISO(campos[dto.CampoCompFecha]),
		CUIT:       coerce.Entero(campos[dto.CampoNegocioCUIT], 0),
		PtoVta:     coerce.Entero(campos[dto.CampoCompPuntoVenta], 0),
		TipoCmp:    tipoCmpDe(campos[dto.CampoCompTipo]),
		NroCmp:     coerce.Entero(campos[dto.CampoCompNumero], 0),
		Importe:    model.NuevoMonto(coerce.Monto(campos[dto.CampoTotalTotal], decimal.Zero)),
		Moneda:     "ARS",
		Ctz:        model.MontoEntero(1),
		TipoDocRec: 99,
		NroDocRec:  0,
		TipoCodAut: "E",
		CodAut:     coerce.Entero(campos[dto.CampoCompCAE], 0),
	}
}
