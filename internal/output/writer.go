// Package output persists generation results. Two modes exist: a folder
// bundle (qr_code.png + the kind's HTML referencing it by relative name) and
// a single self-contained HTML file with the QR embedded as a data URI.
// Both overwrite existing files at the target paths without warning.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// QRFileName is the fixed image filename inside a folder bundle; the HTML's
// <img> tag references it by this relative name.
const QRFileName = "qr_code.png"

// Bundle describes the files written by WriteCarpeta.
type Bundle struct {
	Dir      string
	HTMLPath string
	QRPath   string
}

// WriteCarpeta writes a folder bundle at dir: QRFileName plus baseName+".html"
// (e.g. "factura" → factura.html). dir is created if absent; an existing dir
// is reused. Both files are staged in a temp directory and renamed into
// place, so a failed HTML write never leaves a lone qr_code.png behind.
func WriteCarpeta(dir, htmlText string, qrBytes []byte, baseName string) (*Bundle, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("output: crear carpeta %s: %w", dir, err)
	}

	tmp, err := os.MkdirTemp(filepath.Dir(dir), ".arcalinux-*")
	if err != nil {
		return nil, fmt.Errorf("output: carpeta temporal: %w", err)
	}
	defer os.RemoveAll(tmp)

	htmlName := baseName + ".html"
	if err := os.WriteFile(filepath.Join(tmp, QRFileName), qrBytes, 0644); err != nil {
		return nil, fmt.Errorf("output: escribir %s: %w", QRFileName, err)
	}
	if err := os.WriteFile(filepath.Join(tmp, htmlName), []byte(htmlText), 0644); err != nil {
		return nil, fmt.Errorf("output: escribir %s: %w", htmlName, err)
	}

	b := &Bundle{
		Dir:      dir,
		HTMLPath: filepath.Join(dir, htmlName),
		QRPath:   filepath.Join(dir, QRFileName),
	}
	if err := os.Rename(filepath.Join(tmp, QRFileName), b.QRPath); err != nil {
		return nil, fmt.Errorf("output: publicar %s: %w", QRFileName, err)
	}
	if err := os.Rename(filepath.Join(tmp, htmlName), b.HTMLPath); err != nil {
		return nil, fmt.Errorf("output: publicar %s: %w", htmlName, err)
	}
	return b, nil
}

// WriteArchivo writes a single self-contained HTML file (the QR is already
// inlined as a data URI in htmlText). Returns the path written.
func WriteArchivo(path, htmlText string) (string, error) {
	if err := os.WriteFile(path, []byte(htmlText), 0644); err != nil {
		return "", fmt.Errorf("output: escribir %s: %w", path, err)
	}
	return path, nil
}

// WriteBytes writes raw bytes (the standalone QR save action).
func WriteBytes(path string, data []byte) (string, error) {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("output: escribir %s: %w", path, err)
	}
	return path, nil
}
