package router

import (
	"time"

	"arcalinux/internal/config"
	"arcalinux/internal/handler"
	"arcalinux/internal/infra"
	"arcalinux/internal/middleware"
	"arcalinux/internal/service"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Infra (QR encoder)
func New(cfg *config.Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	encoder := infra.NewQREncoder(cfg.QRBoxSize, cfg.QRBorder)

	// ── Services ─────────────────────────────────────────────────────────────
	qrSvc := service.NewQRService(encoder)
	docSvc := service.NewDocumentoService()

	// ── Handlers ─────────────────────────────────────────────────────────────
	qrH := handler.NewQRHandler(qrSvc)
	documentosH := handler.NewDocumentosHandler(docSvc, encoder, cfg.OutputPath)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health())

	v1 := r.Group("/v1")
	{
		v1.POST("/qr", qrH.Generar)
		v1.POST("/qr/payload", qrH.Payload)
		v1.POST("/documentos/factura", documentosH.GenerarFactura)
		v1.POST("/documentos/ticket", documentosH.GenerarTicket)
	}

	return r
}
