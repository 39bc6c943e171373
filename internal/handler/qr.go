package handler

import (
	"errors"
	"net/http"

	"arcalinux/internal/apierror"
	"arcalinux/internal/dto"
	"arcalinux/internal/infra"
	"arcalinux/internal/service"

	"github.com/gin-gonic/gin"
)

type QRHandler struct{ svc service.QRService }

func NewQRHandler(svc service.QRService) *QRHandler { return &QRHandler{svc: svc} }

// Generar godoc
// @Summary      Generar QR fiscal
// @Description  Construye el payload fiscal (campos vacíos toman su default) y devuelve el símbolo QR como PNG.
// @Tags         qr
// @Accept       json
// @Produce      png
// @Param        body body dto.QRRequest true "Campos del payload"
// @Success      200 {file} binary
// @Failure      422 {object} apierror.APIError
// @Router       /v1/qr [post]
func (h *QRHandler) Generar(c *gin.Context) {
	var req dto.QRRequest
	if !bindAndValidate(c, &req) {
		return
	}
	png, _, err := h.svc.Generar(req.Bag())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, infra.ErrEncoding) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// Payload godoc
// @Summary      Payload fiscal serializado
// @Description  Devuelve el texto exacto que se codifica dentro del símbolo QR.
// @Tags         qr
// @Accept       json
// @Produce      json
// @Param        body body dto.QRRequest true "Campos del payload"
// @Success      200 {object} model.FiscalQRPayload
// @Router       /v1/qr/payload [post]
func (h *QRHandler) Payload(c *gin.Context) {
	var req dto.QRRequest
	if !bindAndValidate(c, &req) {
		return
	}
	texto, err := h.svc.BuildPayload(req.Bag()).Serialize()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(texto))
}
