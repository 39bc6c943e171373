package dto

// ─── Field bags ──────────────────────────────────────────────────────────────

// Campos is the loosely-typed field-value bag the builders consume. Values
// are raw user input: possibly blank, possibly unparsable; coercion and
// defaulting happen downstream, never here.
type Campos map[string]string

// Bag keys shared by the document builders. Names follow the field ids of
// the original capture form.
const (
	CampoNegocioNombre     = "business_name"
	CampoNegocioDomicilio  = "business_address"
	CampoNegocioIVA        = "business_vat"
	CampoNegocioCUIT       = "business_tax_id"
	CampoNegocioIIBB       = "business_gross_income"
	CampoNegocioInicio     = "business_start_date"
	CampoCompTipo          = "bill_type"
	CampoCompCodigo        = "bill_code"
	CampoCompPuntoVenta    = "bill_point_of_sale"
	CampoCompNumero        = "bill_number"
	CampoCompFecha         = "bill_date"
	CampoCompDesde         = "bill_since"
	CampoCompHasta         = "bill_until"
	CampoCompVencimiento   = "bill_expiration"
	CampoCompConcepto      = "bill_concept"
	CampoCompCAE           = "bill_cae"
	CampoCompCAEVto        = "bill_cae_expiration"
	CampoClienteNombre     = "client_name"
	CampoClienteDomicilio  = "client_address"
	CampoClienteCUIT       = "client_tax_id"
	CampoClienteIVA        = "client_vat"
	CampoClientePago       = "client_payment"
	CampoTotalSubtotal     = "total_subtotal"
	CampoTotalImpuestos    = "total_tax"
	CampoTotalTotal        = "total_total"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemFacturaRequest is one explicit, ordered invoice line-item view-model.
// Rows arrive as data, never recovered from a presentation tree.
type ItemFacturaRequest struct {
	Codigo          string `json:"codigo"`
	Nombre          string `json:"nombre"`
	Cantidad        string `json:"cantidad"`
	Unidad          string `json:"unidad"`
	Precio          string `json:"precio"`
	PorcentajeBonif string `json:"porcentaje_bonif"`
	ImporteBonif    string `json:"importe_bonif"`
	Subtotal        string `json:"subtotal"`
}

type ItemTicketRequest struct {
	Cantidad      string `json:"cantidad"`
	Nombre        string `json:"nombre"`
	IVAPorcentaje string `json:"iva_porcentaje"`
	Precio        string `json:"precio"`
}

// FacturaRequest carries the raw invoice field values plus item rows. Every
// field may be blank; the builder defaults each one independently.
type FacturaRequest struct {
	NegocioNombre     string `json:"negocio_nombre"`
	NegocioDomicilio  string `json:"negocio_domicilio"`
	NegocioIVA        string `json:"negocio_condicion_iva"`
	NegocioCUIT       string `json:"negocio_cuit"`
	NegocioIIBB       string `json:"negocio_ingresos_brutos"`
	NegocioInicio     string `json:"negocio_inicio_actividades"`
	Tipo              string `json:"tipo"`
	PuntoDeVenta      string `json:"punto_de_venta"`
	Numero            string `json:"numero"`
	Fecha             string `json:"fecha"`
	PeriodoDesde      string `json:"periodo_desde"`
	PeriodoHasta      string `json:"periodo_hasta"`
	VencimientoPago   string `json:"vencimiento_pago"`
	CAE               string `json:"cae"`
	CAEVencimiento    string `json:"cae_vencimiento"`
	ClienteNombre     string `json:"cliente_nombre"`
	ClienteDomicilio  string `json:"cliente_domicilio"`
	ClienteCUIT       string `json:"cliente_cuit"`
	ClienteIVA        string `json:"cliente_condicion_iva"`
	ClientePago       string `json:"cliente_condicion_venta"`
	Subtotal          string `json:"subtotal"`
	Impuestos         string `json:"impuestos"`
	Total             string `json:"total"`

	Items []ItemFacturaRequest `json:"items"`

	// QRBase64 optionally carries a pre-generated QR image ("Cargar QR");
	// when present it is used verbatim, never re-encoded.
	QRBase64 string `json:"qr_base64,omitempty"`
}

// Bag flattens the request into the builder's field bag.
func (r FacturaRequest) Bag() Campos {
	return Campos{
		CampoNegocioNombre:    r.NegocioNombre,
		CampoNegocioDomicilio: r.NegocioDomicilio,
		CampoNegocioIVA:       r.NegocioIVA,
		CampoNegocioCUIT:      r.NegocioCUIT,
		CampoNegocioIIBB:      r.NegocioIIBB,
		CampoNegocioInicio:    r.NegocioInicio,
		CampoCompTipo:         r.Tipo,
		CampoCompPuntoVenta:   r.PuntoDeVenta,
		CampoCompNumero:       r.Numero,
		CampoCompFecha:        r.Fecha,
		CampoCompDesde:        r.PeriodoDesde,
		CampoCompHasta:        r.PeriodoHasta,
		CampoCompVencimiento:  r.VencimientoPago,
		CampoCompCAE:          r.CAE,
		CampoCompCAEVto:       r.CAEVencimiento,
		CampoClienteNombre:    r.ClienteNombre,
		CampoClienteDomicilio: r.ClienteDomicilio,
		CampoClienteCUIT:      r.ClienteCUIT,
		CampoClienteIVA:       r.ClienteIVA,
		CampoClientePago:      r.ClientePago,
		CampoTotalSubtotal:    r.Subtotal,
		CampoTotalImpuestos:   r.Impuestos,
		CampoTotalTotal:       r.Total,
	}
}

// TicketRequest carries the raw ticket field values plus item rows.
type TicketRequest struct {
	NegocioNombre    string `json:"negocio_nombre"`
	NegocioDomicilio string `json:"negocio_domicilio"`
	NegocioIVA       string `json:"negocio_condicion_iva"`
	NegocioCUIT      string `json:"negocio_cuit"`
	NegocioIIBB      string `json:"negocio_ingresos_brutos"`
	NegocioInicio    string `json:"negocio_inicio_actividades"`
	Tipo             string `json:"tipo"`
	Codigo           string `json:"codigo"`
	PuntoDeVenta     string `json:"punto_de_venta"`
	Numero           string `json:"numero"`
	Fecha            string `json:"fecha"`
	Concepto         string `json:"concepto"`
	CAE              string `json:"cae"`
	CAEVencimiento   string `json:"cae_vencimiento"`
	ClienteIVA       string `json:"cliente_condicion_iva"`
	Total            string `json:"total"`

	Items []ItemTicketRequest `json:"items"`

	QRBase64 string `json:"qr_base64,omitempty"`
}

func (r TicketRequest) Bag() Campos {
	return Campos{
		CampoNegocioNombre:    r.NegocioNombre,
		CampoNegocioDomicilio: r.NegocioDomicilio,
		CampoNegocioIVA:       r.NegocioIVA,
		CampoNegocioCUIT:      r.NegocioCUIT,
		CampoNegocioIIBB:      r.NegocioIIBB,
		CampoNegocioInicio:    r.NegocioInicio,
		CampoCompTipo:         r.Tipo,
		CampoCompCodigo:       r.Codigo,
		CampoCompPuntoVenta:   r.PuntoDeVenta,
		CampoCompNumero:       r.Numero,
		CampoCompFecha:        r.Fecha,
		CampoCompConcepto:     r.Concepto,
		CampoCompCAE:          r.CAE,
		CampoCompCAEVto:       r.CAEVencimiento,
		CampoClienteIVA:       r.ClienteIVA,
		CampoTotalTotal:       r.Total,
	}
}
