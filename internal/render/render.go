// Package render turns a document model plus a QR image reference into one
// of the two fixed HTML documents (factura, ticket). The templates are
// versioned assets embedded in the binary; template selection is a pure
// function of the document kind.
//
// Rendering uses text/template on purpose: interpolated business and client
// text is NOT HTML-escaped, keeping output byte-compatible with documents
// already produced and archived by the original tooling (see DESIGN.md).
package render

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"arcalinux/internal/model"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var plantillas = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

type datosFactura struct {
	Doc      model.Factura
	QRImagen string
}

type datosTicket struct {
	Doc      model.Ticket
	QRImagen string
}

// Factura renders the invoice template. qrImagen is opaque: either a relative
// filename ("qr_code.png") or a data:image/png;base64 URI.
func Factura(doc model.Factura, qrImagen string) (string, error) {
	var sb strings.Builder
	if err := plantillas.ExecuteTemplate(&sb, "factura.html.tmpl", datosFactura{Doc: doc, QRImagen: qrImagen}); err != nil {
		return "", fmt.Errorf("render: factura: %w", err)
	}
	return sb.String(), nil
}

// Ticket renders the ticket template. Same qrImagen contract as Factura.
func Ticket(doc model.Ticket, qrImagen string) (string, error) {
	var sb strings.Builder
	if err := plantillas.ExecuteTemplate(&sb, "ticket.html.tmpl", datosTicket{Doc: doc, QRImagen: qrImagen}); err != nil {
		return "", fmt.Errorf("render: ticket: %w", err)
	}
	return sb.String(), nil
}
