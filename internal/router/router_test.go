package router

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arcalinux/internal/config"
	"arcalinux/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func testRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	out := t.TempDir()
	return New(&config.Config{
		Port:       8000,
		Env:        "test",
		OutputPath: out,
		QRBoxSize:  10,
		QRBorder:   5,
	}), out
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestPostQR(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/qr", dto.QRRequest{Importe: "1000.50"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), pngMagic))
}

func TestPostQRPayload(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/qr/payload", dto.QRRequest{
		Fecha:      "2024-03-01",
		CUIT:       "30123456789",
		PtoVta:     "1",
		TipoCmp:    "1",
		NroCmp:     "45",
		Importe:    "1000.50",
		Moneda:     "ARS",
		Ctz:        "1",
		TipoDocRec: "80",
		NroDocRec:  "20987654321",
		TipoCodAut: "E",
		CodAut:     "70123456789012",
	})

	require.Equal(t, http.StatusOK, w.Code)
	expected := `{"ver":1,"fecha":"2024-03-01","cuit":30123456789,"ptoVta":1,` +
		`"tipoCmp":1,"nroCmp":45,"importe":1000.5,"moneda":"ARS","ctz":1,` +
		`"tipoDocRec":80,"nroDocRec":20987654321,"tipoCodAut":"E","codAut":70123456789012}`
	assert.Equal(t, expected, w.Body.String())
}

func TestPostFacturaArchivo(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/documentos/factura", dto.FacturaRequest{Tipo: "A"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "data:image/png;base64,")
	assert.Contains(t, w.Body.String(), "EMPRESA S.A.")
}

func TestPostFacturaCarpeta(t *testing.T) {
	r, out := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/documentos/factura?modo=carpeta", dto.FacturaRequest{Numero: "00009999"})

	require.Equal(t, http.StatusCreated, w.Code)

	var rutas dto.RutaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rutas))
	assert.Equal(t, filepath.Join(out, "factura_00009999"), rutas.Carpeta)

	html, err := os.ReadFile(rutas.HTML)
	require.NoError(t, err)
	assert.Contains(t, string(html), `src="qr_code.png"`)

	png, err := os.ReadFile(rutas.QR)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestPostFacturaQRPrecargado(t *testing.T) {
	r, _ := testRouter(t)

	qr := []byte("imagen-precargada")
	w := doJSON(t, r, http.MethodPost, "/v1/documentos/factura", dto.FacturaRequest{
		QRBase64: base64.StdEncoding.EncodeToString(qr),
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "data:image/png;base64,"+base64.StdEncoding.EncodeToString(qr))
}

func TestPostFacturaQRBase64Invalido(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/documentos/factura", dto.FacturaRequest{QRBase64: "!!!"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "qr_base64")
}

func TestPostTicketArchivo(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/documentos/ticket", dto.TicketRequest{})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Consumidor Final")
	assert.Contains(t, w.Body.String(), "data:image/png;base64,")
}

func TestPostTicketCarpeta(t *testing.T) {
	r, out := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/documentos/ticket?modo=carpeta", dto.TicketRequest{Numero: "00000001"})

	require.Equal(t, http.StatusCreated, w.Code)

	var rutas dto.RutaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rutas))
	assert.Equal(t, filepath.Join(out, "ticket_00000001"), rutas.Carpeta)
	assert.FileExists(t, rutas.HTML)
	assert.FileExists(t, rutas.QR)
}

func TestPostJSONInvalido(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/qr", strings.NewReader("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JSON invalido")
}
