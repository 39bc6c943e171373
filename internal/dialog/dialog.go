// Package dialog abstracts the user-confirmation capability the generation
// workflow drives: modal questions, path pickers and notices. The workflow
// never talks to a UI toolkit; any implementation of Dialog (terminal, test
// stub, future GUI) can host the flow.
package dialog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Respuesta is the outcome of a Confirmar question.
type Respuesta int

const (
	Si Respuesta = iota
	No
	Cancelar
)

// Dialog is the collaborator capability for one generation action. All
// methods block until the user answers; picker methods return ok=false when
// the user cancels the picker (a silent no-op for the caller, not an error).
type Dialog interface {
	Confirmar(pregunta string) Respuesta
	ElegirCarpeta() (ruta string, ok bool)
	ElegirArchivo(sugerido string) (ruta string, ok bool)
	Informar(mensaje string)
	Fallar(mensaje string)
}

// Terminal implements Dialog over a line-oriented reader/writer pair
// (normally stdin/stdout, used by the CLI).
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(r), out: w}
}

func (t *Terminal) Confirmar(pregunta string) Respuesta {
	fmt.Fprintf(t.out, "%s [s/n/c]: ", pregunta)
	switch strings.ToLower(strings.TrimSpace(t.leer())) {
	case "s", "si", "sí", "y":
		return Si
	case "n", "no":
		return No
	default:
		return Cancelar
	}
}

func (t *Terminal) ElegirCarpeta() (string, bool) {
	fmt.Fprint(t.out, "Carpeta destino (vacío para cancelar): ")
	ruta := strings.TrimSpace(t.leer())
	return ruta, ruta != ""
}

func (t *Terminal) ElegirArchivo(sugerido string) (string, bool) {
	fmt.Fprintf(t.out, "Ruta de archivo [%s] (\"-\" para cancelar): ", sugerido)
	ruta := strings.TrimSpace(t.leer())
	if ruta == "-" {
		return "", false
	}
	if ruta == "" {
		ruta = sugerido
	}
	return ruta, true
}

func (t *Terminal) Informar(mensaje string) { fmt.Fprintln(t.out, mensaje) }

func (t *Terminal) Fallar(mensaje string) { fmt.Fprintln(t.out, "Error: "+mensaje) }

func (t *Terminal) leer() string {
	if !t.in.Scan() {
		return ""
	}
	return t.in.Text()
}
