package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"path/filepath"

	"arcalinux/internal/apierror"
	"arcalinux/internal/dto"
	"arcalinux/internal/infra"
	"arcalinux/internal/model"
	"arcalinux/internal/output"
	"arcalinux/internal/render"
	"arcalinux/internal/service"

	"github.com/gin-gonic/gin"
)

// DocumentosHandler exposes the non-interactive document pipeline over HTTP.
// Unlike the dialog-driven workflow, the storage mode is chosen with the
// ?modo query param: "archivo" (default) returns a self-contained HTML,
// "carpeta" writes a bundle under the configured output path.
type DocumentosHandler struct {
	docs       service.DocumentoService
	encoder    *infra.QREncoder
	outputPath string
}

func NewDocumentosHandler(docs service.DocumentoService, encoder *infra.QREncoder, outputPath string) *DocumentosHandler {
	return &DocumentosHandler{docs: docs, encoder: encoder, outputPath: outputPath}
}

// GenerarFactura godoc
// @Summary      Generar factura HTML
// @Description  Construye el modelo de factura con defaults, genera (o usa) el QR y devuelve el HTML o escribe el bundle.
// @Tags         documentos
// @Accept       json
// @Produce      html
// @Param        modo query  string false "archivo | carpeta"
// @Param        body body   dto.FacturaRequest true "Campos e ítems"
// @Success      200  {string} string "HTML (modo archivo) o rutas JSON (modo carpeta)"
// @Failure      422  {object} apierror.APIError
// @Router       /v1/documentos/factura [post]
func (h *DocumentosHandler) GenerarFactura(c *gin.Context) {
	var req dto.FacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	campos := req.Bag()
	qr, ok := h.resolverQR(c, req.QRBase64, func() model.FiscalQRPayload { return h.docs.PayloadFactura(campos) })
	if !ok {
		return
	}

	doc := h.docs.BuildFactura(campos, req.Items)

	if c.DefaultQuery("modo", "archivo") == "carpeta" {
		dir := filepath.Join(h.outputPath, "factura_"+doc.Comprobante.Numero)
		html, err := render.Factura(doc, output.QRFileName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
			return
		}
		bundle, err := output.WriteCarpeta(dir, html, qr, "factura")
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("No se pudo escribir la carpeta de salida"))
			return
		}
		c.JSON(http.StatusCreated, dto.RutaResponse{Carpeta: bundle.Dir, HTML: bundle.HTMLPath, QR: bundle.QRPath})
		return
	}

	html, err := render.Factura(doc, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(qr))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GenerarTicket godoc
// @Summary      Generar ticket HTML
// @Tags         documentos
// @Accept       json
// @Produce      html
// @Param        modo query  string false "archivo | carpeta"
// @Param        body body   dto.TicketRequest true "Campos e ítems"
// @Success      200  {string} string
// @Failure      422  {object} apierror.APIError
// @Router       /v1/documentos/ticket [post]
func (h *DocumentosHandler) GenerarTicket(c *gin.Context) {
	var req dto.TicketRequest
	if !bindAndValidate(c, &req) {
		return
	}
	campos := req.Bag()
	qr, ok := h.resolverQR(c, req.QRBase64, func() model.FiscalQRPayload { return h.docs.PayloadTicket(campos) })
	if !ok {
		return
	}

	doc := h.docs.BuildTicket(campos, req.Items)

	if c.DefaultQuery("modo", "archivo") == "carpeta" {
		dir := filepath.Join(h.outputPath, "ticket_"+doc.Comprobante.Numero)
		html, err := render.Ticket(doc, output.QRFileName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
			return
		}
		bundle, err := output.WriteCarpeta(dir, html, qr, "ticket")
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("No se pudo escribir la carpeta de salida"))
			return
		}
		c.JSON(http.StatusCreated, dto.RutaResponse{Carpeta: bundle.Dir, HTML: bundle.HTMLPath, QR: bundle.QRPath})
		return
	}

	html, err := render.Ticket(doc, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(qr))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// resolverQR returns the QR buffer for a document request: a client-supplied
// image is used verbatim, otherwise the symbol is derived from the document's
// own fields. Writes the error response itself when ok is false.
func (h *DocumentosHandler) resolverQR(c *gin.Context, qrBase64 string, payload func() model.FiscalQRPayload) ([]byte, bool) {
	if qrBase64 != "" {
		qr, err := base64.StdEncoding.DecodeString(qrBase64)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("qr_base64 invalido"))
			return nil, false
		}
		return qr, true
	}

	texto, err := payload().Serialize()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return nil, false
	}
	qr, err := h.encoder.Encode(texto)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, infra.ErrEncoding) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, apierror.New(err.Error()))
		return nil, false
	}
	return qr, true
}
