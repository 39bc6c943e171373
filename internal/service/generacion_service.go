package service

// generacion_service.go
// The document generation workflow: an explicit state machine over the
// dialog capability.
//
//	Start → NeedQR? → (AutoGenerateConfirm) → HaveQR
//	      → StorageModeConfirm → {FolderBundle | SingleFile | Aborted} → Done
//
// One action runs to completion (or abort) before another may start; every
// dialog blocks on the user, so no step carries a timeout. An abort performs
// zero file writes and the caller's QR buffer is never mutated.

import (
	"encoding/base64"
	"fmt"
	"path/filepath"

	"arcalinux/internal/dialog"
	"arcalinux/internal/dto"
	"arcalinux/internal/output"
	"arcalinux/internal/render"

	"github.com/rs/zerolog/log"
)

// PlaceholderQRTexto is encoded into the symbol when the user declines
// auto-generation of a fiscal QR.
const PlaceholderQRTexto = "Sin datos"

const (
	preguntaSinQR   = "No se ha generado o cargado un QR. ¿Desea generar uno automáticamente?"
	preguntaGuardar = "¿Desea guardar los archivos en una carpeta?\n\n" +
		"Sí: Crear carpeta con HTML y QR PNG\n" +
		"No: Guardar solo HTML con QR embebido"
)

// Estado is the terminal state of one generation action.
type Estado string

const (
	EstadoCompletado Estado = "completado"
	EstadoAbortado   Estado = "abortado"
)

// Resultado reports what one generation action produced. On EstadoAbortado
// nothing was written and QR echoes the caller's original buffer. On
// EstadoCompletado exactly one of Bundle or ArchivoHTML is set, and QR is
// the buffer embedded in the output (the caller may keep it for the session).
type Resultado struct {
	Estado      Estado
	Bundle      *output.Bundle
	ArchivoHTML string
	QR          []byte
}

// GeneracionService drives the interactive generation workflow for both
// document kinds, plus the standalone save-QR action.
type GeneracionService interface {
	GenerarFactura(d dialog.Dialog, req dto.FacturaRequest, qr []byte) (*Resultado, error)
	GenerarTicket(d dialog.Dialog, req dto.TicketRequest, qr []byte) (*Resultado, error)
	GuardarQR(d dialog.Dialog, campos dto.Campos) (string, error)
}

type generacionService struct {
	docs DocumentoService
	qrs  QRService
	enc  encoder
}

// encoder is the raw symbol capability the workflow needs for the
// placeholder path (plain text, not a payload).
type encoder interface {
	Encode(texto string) ([]byte, error)
}

func NewGeneracionService(docs DocumentoService, qrs QRService, enc encoder) GeneracionService {
	return &generacionService{docs: docs, qrs: qrs, enc: enc}
}

func (s *generacionService) GenerarFactura(d dialog.Dialog, req dto.FacturaRequest, qr []byte) (*Resultado, error) {
	campos := req.Bag()
	abortado := &Resultado{Estado: EstadoAbortado, QR: qr}

	// NeedQR?
	buf := qr
	if len(buf) == 0 {
		var err error
		buf, err = s.resolverQR(d, func() (string, error) {
			p := s.docs.PayloadFactura(campos)
			return p.Serialize()
		})
		if err != nil {
			return abortado, err
		}
		if buf == nil {
			return abortado, nil
		}
	}

	doc := s.docs.BuildFactura(campos, req.Items)
	prefijo := "factura_" + doc.Comprobante.Numero

	// StorageModeConfirm
	switch d.Confirmar(preguntaGuardar) {
	case dialog.Si:
		carpeta, ok := d.ElegirCarpeta()
		if !ok {
			return abortado, nil
		}
		html, err := render.Factura(doc, output.QRFileName)
		if err != nil {
			return abortado, err
		}
		dir := filepath.Join(carpeta, prefijo)
		bundle, err := output.WriteCarpeta(dir, html, buf, "factura")
		if err != nil {
			d.Fallar(err.Error())
			return abortado, err
		}
		log.Info().Str("dir", bundle.Dir).Msg("factura generada en carpeta")
		d.Informar(fmt.Sprintf("Archivos guardados en:\n%s\n\n• factura.html\n• qr_code.png", bundle.Dir))
		return &Resultado{Estado: EstadoCompletado, Bundle: bundle, QR: buf}, nil

	case dialog.No:
		ruta, ok := d.ElegirArchivo(prefijo + ".html")
		if !ok {
			return abortado, nil
		}
		html, err := render.Factura(doc, dataURI(buf))
		if err != nil {
			return abortado, err
		}
		if _, err := output.WriteArchivo(ruta, html); err != nil {
			d.Fallar(err.Error())
			return abortado, err
		}
		log.Info().Str("ruta", ruta).Msg("factura generada como archivo único")
		d.Informar("Factura HTML guardada en:\n" + ruta)
		return &Resultado{Estado: EstadoCompletado, ArchivoHTML: ruta, QR: buf}, nil

	default:
		return abortado, nil
	}
}

func (s *generacionService) GenerarTicket(d dialog.Dialog, req dto.TicketRequest, qr []byte) (*Resultado, error) {
	campos := req.Bag()
	abortado := &Resultado{Estado: EstadoAbortado, QR: qr}

	buf := qr
	if len(buf) == 0 {
		var err error
		buf, err = s.resolverQR(d, func() (string, error) {
			p := s.docs.PayloadTicket(campos)
			return p.Serialize()
		})
		if err != nil {
			return abortado, err
		}
		if buf == nil {
			return abortado, nil
		}
	}

	doc := s.docs.BuildTicket(campos, req.Items)
	prefijo := "ticket_" + doc.Comprobante.Numero

	switch d.Confirmar(preguntaGuardar) {
	case dialog.Si:
		carpeta, ok := d.ElegirCarpeta()
		if !ok {
			return abortado, nil
		}
		html, err := render.Ticket(doc, output.QRFileName)
		if err != nil {
			return abortado, err
		}
		dir := filepath.Join(carpeta, prefijo)
		bundle, err := output.WriteCarpeta(dir, html, buf, "ticket")
		if err != nil {
			d.Fallar(err.Error())
			return abortado, err
		}
		log.Info().Str("dir", bundle.Dir).Msg("ticket generado en carpeta")
		d.Informar(fmt.Sprintf("Archivos guardados en:\n%s\n\n• ticket.html\n• qr_code.png", bundle.Dir))
		return &Resultado{Estado: EstadoCompletado, Bundle: bundle, QR: buf}, nil

	case dialog.No:
		ruta, ok := d.ElegirArchivo(prefijo + ".html")
		if !ok {
			return abortado, nil
		}
		html, err := render.Ticket(doc, dataURI(buf))
		if err != nil {
			return abortado, err
		}
		if _, err := output.WriteArchivo(ruta, html); err != nil {
			d.Fallar(err.Error())
			return abortado, err
		}
		log.Info().Str("ruta", ruta).Msg("ticket generado como archivo único")
		d.Informar("Ticket HTML guardado en:\n" + ruta)
		return &Resultado{Estado: EstadoCompletado, ArchivoHTML: ruta, QR: buf}, nil

	default:
		return abortado, nil
	}
}

// resolverQR handles the NeedQR? branch. Returns (nil, nil) when the user
// cancelled the question (clean abort); an error only on encoding failure.
func (s *generacionService) resolverQR(d dialog.Dialog, serializar func() (string, error)) ([]byte, error) {
	switch d.Confirmar(preguntaSinQR) {
	case dialog.Si:
		texto, err := serializar()
		if err == nil {
			var buf []byte
			buf, err = s.enc.Encode(texto)
			if err == nil {
				return buf, nil
			}
		}
		d.Fallar("Error generando QR automático: " + err.Error())
		return nil, err
	case dialog.No:
		buf, err := s.enc.Encode(PlaceholderQRTexto)
		if err != nil {
			d.Fallar("Error generando QR: " + err.Error())
			return nil, err
		}
		return buf, nil
	default:
		// The original dialog offers only Yes/No; a closed dialog aborts
		// cleanly like any other cancellation.
		return nil, nil
	}
}

// GuardarQR is the standalone QR action: build → encode → write bytes to a
// chosen path. No storage-mode branching.
func (s *generacionService) GuardarQR(d dialog.Dialog, campos dto.Campos) (string, error) {
	png, _, err := s.qrs.Generar(campos)
	if err != nil {
		d.Fallar("Error generando QR: " + err.Error())
		return "", err
	}
	ruta, ok := d.ElegirArchivo("qr_generado.png")
	if !ok {
		return "", nil
	}
	if _, err := output.WriteBytes(ruta, png); err != nil {
		d.Fallar(err.Error())
		return "", err
	}
	d.Informar("QR guardado en " + ruta)
	return ruta, nil
}

func dataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
