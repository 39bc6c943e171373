package service

import (
	"arcalinux/internal/coerce"
	"arcalinux/internal/dto"
	"arcalinux/internal/infra"
	"arcalinux/internal/model"

	"github.com/shopspring/decimal"
)

// QRService builds the canonical fiscal QR payload from a raw field bag and
// produces the PNG symbol for it. Building and serializing are pure and
// deterministic; every field falls back to its documented default.
type QRService interface {
	BuildPayload(campos dto.Campos) model.FiscalQRPayload
	Generar(campos dto.Campos) (png []byte, texto string, err error)
}

type qrService struct {
	encoder *infra.QREncoder
}

func NewQRService(encoder *infra.QREncoder) QRService {
	return &qrService{encoder: encoder}
}

// BuildPayload coerces the 13 payload fields. "ver" never comes from input;
// it is always 1.
func (s *qrService) BuildPayload(campos dto.Campos) model.FiscalQRPayload {
	return model.FiscalQRPayload{
		Ver:        1,
		Fecha:      coerce.FechaISO(campos[dto.CampoQRFecha]),
		CUIT:       coerce.Entero(campos[dto.CampoQRCUIT], 0),
		PtoVta:     coerce.Entero(campos[dto.CampoQRPtoVta], 0),
		TipoCmp:    coerce.Entero(campos[dto.CampoQRTipoCmp], 6),
		NroCmp:     coerce.Entero(campos[dto.CampoQRNroCmp], 0),
		Importe:    model.NuevoMonto(coerce.Monto(campos[dto.CampoQRImporte], decimal.Zero)),
		Moneda:     coerce.Texto(campos[dto.CampoQRMoneda], "ARS"),
		Ctz:        model.NuevoMonto(coerce.Monto(campos[dto.CampoQRCtz], decimal.NewFromInt(1))),
		TipoDocRec: coerce.Entero(campos[dto.CampoQRTipoDocRec], 80),
		NroDocRec:  coerce.Entero(campos[dto.CampoQRNroDocRec], 0),
		TipoCodAut: coerce.Texto(campos[dto.CampoQRTipoCodAut], "E"),
		CodAut:     coerce.Entero(campos[dto.CampoQRCodAut], 0),
	}
}

// Generar builds, serializes and encodes in one step. The returned texto is
// the exact byte sequence inside the symbol.
func (s *qrService) Generar(campos dto.Campos) ([]byte, string, error) {
	payload := s.BuildPayload(campos)
	texto, err := payload.Serialize()
	if err != nil {
		return nil, "", err
	}
	png, err := s.encoder.Encode(texto)
	if err != nil {
		return nil, "", err
	}
	return png, texto, nil
}
