package model

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Monto is a decimal amount that serializes as a bare JSON number in its
// shortest float form ("1000.50" → 1000.5), matching what third-party QR
// readers already parse from documents issued by existing tooling.
type Monto struct {
	decimal.Decimal
}

func NuevoMonto(d decimal.Decimal) Monto { return Monto{d} }

func MontoEntero(n int64) Monto { return Monto{decimal.NewFromInt(n)} }

func (m Monto) MarshalJSON() ([]byte, error) {
	f, _ := m.Float64()
	return json.Marshal(f)
}

// FiscalQRPayload is the versioned data schema encoded into the fiscal QR
// symbol, mirroring the tax authority's visual-QR specification. Field order
// matters: the serialized text is the contract scanned and parsed by third
// parties, not an internal detail.
type FiscalQRPayload struct {
	Ver        int    `json:"ver"`
	Fecha      string `json:"fecha"`
	CUIT       int64  `json:"cuit"`
	PtoVta     int64  `json:"ptoVta"`
	TipoCmp    int64  `json:"tipoCmp"`
	NroCmp     int64  `json:"nroCmp"`
	Importe    Monto  `json:"importe"`
	Moneda     string `json:"moneda"`
	Ctz        Monto  `json:"ctz"`
	TipoDocRec int64  `json:"tipoDocRec"`
	NroDocRec  int64  `json:"nroDocRec"`
	TipoCodAut string `json:"tipoCodAut"`
	CodAut     int64  `json:"codAut"`
}

// Serialize returns the canonical payload text handed to the QR symbol
// encoder: a compact JSON object with the fixed key order above and no HTML
// escaping of string values.
func (p FiscalQRPayload) Serialize() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	// Encode appends a newline that is not part of the payload.
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
