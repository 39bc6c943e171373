package model

// Document models consumed once by the template renderer. Every field is a
// fully-defaulted display string: totals and subtotals are pass-through
// values, never recomputed or cross-checked here.

// Negocio holds the issuing business block shared by factura and ticket.
type Negocio struct {
	Nombre            string
	Domicilio         string
	CondicionIVA      string
	CUIT              string
	IngresosBrutos    string
	InicioActividades string
}

// ComprobanteFactura is the invoice header (tipo A/B/C, numbering, CAE).
type ComprobanteFactura struct {
	Tipo            string
	PuntoDeVenta    string
	Numero          string
	Fecha           string
	PeriodoDesde    string
	PeriodoHasta    string
	VencimientoPago string
	CAE             string
	CAEVencimiento  string
}

// ComprobanteTicket is the ticket header.
type ComprobanteTicket struct {
	Tipo           string
	Codigo         string
	PuntoDeVenta   string
	Numero         string
	Fecha          string
	Concepto       string
	CAE            string
	CAEVencimiento string
}

type ClienteFactura struct {
	Nombre         string
	Domicilio      string
	CUIT           string
	CondicionIVA   string
	CondicionVenta string
}

type ClienteTicket struct {
	CondicionIVA string
}

type ItemFactura struct {
	Codigo          string
	Nombre          string
	Cantidad        string
	Unidad          string
	Precio          string
	PorcentajeBonif string
	ImporteBonif    string
	Subtotal        string
}

type ItemTicket struct {
	Cantidad      string
	Nombre        string
	IVAPorcentaje string
	Precio        string
}

type TotalesFactura struct {
	Subtotal  string
	Impuestos string
	Total     string
}

type TotalesTicket struct {
	Total string
}

// Factura is the full invoice document model. Items is never empty: builders
// substitute a single synthetic default item when no rows were supplied.
type Factura struct {
	Negocio     Negocio
	Comprobante ComprobanteFactura
	Cliente     ClienteFactura
	Items       []ItemFactura
	Totales     TotalesFactura
}

// Ticket is the full ticket document model. Same never-empty Items invariant.
type Ticket struct {
	Negocio     Negocio
	Comprobante ComprobanteTicket
	Cliente     ClienteTicket
	Items       []ItemTicket
	Totales     TotalesTicket
}
