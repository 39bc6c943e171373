package dto

// Bag keys for the fiscal QR payload builder — these match the payload's own
// field names, since the capture form mirrors the schema 1:1.
const (
	CampoQRFecha      = "fecha"
	CampoQRCUIT       = "cuit"
	CampoQRPtoVta     = "ptoVta"
	CampoQRTipoCmp    = "tipoCmp"
	CampoQRNroCmp     = "nroCmp"
	CampoQRImporte    = "importe"
	CampoQRMoneda     = "moneda"
	CampoQRCtz        = "ctz"
	CampoQRTipoDocRec = "tipoDocRec"
	CampoQRNroDocRec  = "nroDocRec"
	CampoQRTipoCodAut = "tipoCodAut"
	CampoQRCodAut     = "codAut"
)

// QRRequest carries the raw values for a standalone fiscal QR action.
// "ver" is not accepted from input: the payload version is pinned.
type QRRequest struct {
	Fecha      string `json:"fecha"`
	CUIT       string `json:"cuit"`
	PtoVta     string `json:"ptoVta"`
	TipoCmp    string `json:"tipoCmp"`
	NroCmp     string `json:"nroCmp"`
	Importe    string `json:"importe"`
	Moneda     string `json:"moneda"`
	Ctz        string `json:"ctz"`
	TipoDocRec string `json:"tipoDocRec"`
	NroDocRec  string `json:"nroDocRec"`
	TipoCodAut string `json:"tipoCodAut"`
	CodAut     string `json:"codAut"`
}

func (r QRRequest) Bag() Campos {
	return Campos{
		CampoQRFecha:      r.Fecha,
		CampoQRCUIT:       r.CUIT,
		CampoQRPtoVta:     r.PtoVta,
		CampoQRTipoCmp:    r.TipoCmp,
		CampoQRNroCmp:     r.NroCmp,
		CampoQRImporte:    r.Importe,
		CampoQRMoneda:     r.Moneda,
		CampoQRCtz:        r.Ctz,
		CampoQRTipoDocRec: r.TipoDocRec,
		CampoQRNroDocRec:  r.NroDocRec,
		CampoQRTipoCodAut: r.TipoCodAut,
		CampoQRCodAut:     r.CodAut,
	}
}

// RutaResponse reports server-side bundle writes.
type RutaResponse struct {
	Carpeta string `json:"carpeta"`
	HTML    string `json:"html"`
	QR      string `json:"qr"`
}
