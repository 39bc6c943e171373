package main

// arcalinux — interactive CLI for fiscal document generation.
//
//	arcalinux qr       --datos campos.json [--out qr.png]
//	arcalinux factura  --datos factura.json [--qr imagen.png]
//	arcalinux ticket   --datos ticket.json  [--qr imagen.png]
//
// The factura/ticket commands drive the same dialog-confirmed workflow the
// desktop tool exposes: missing QR → offer auto-generation, then choose
// between a folder bundle and a single self-contained HTML.

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"arcalinux/internal/config"
	"arcalinux/internal/dialog"
	"arcalinux/internal/dto"
	"arcalinux/internal/infra"
	"arcalinux/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	datosPath string
	qrPath    string
	outPath   string
)

var rootCmd = &cobra.Command{
	Use:   "arcalinux",
	Short: "Generador de documentos fiscales (QR, factura y ticket HTML)",
	Long: `Genera el código QR fiscal y los documentos HTML (factura / ticket)
a partir de un archivo JSON con los valores de los campos. Los campos
vacíos toman sus valores por defecto documentados.`,
	SilenceUsage: true,
}

var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Genera el QR fiscal y lo guarda como PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.QRRequest
		if err := leerDatos(&req); err != nil {
			return err
		}
		svc, gen := construirServicios()

		if outPath != "" {
			png, _, err := svc.Generar(req.Bag())
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, png, 0644); err != nil {
				return err
			}
			fmt.Println("QR guardado en " + outPath)
			return nil
		}

		_, err := gen.GuardarQR(terminal(), req.Bag())
		return err
	},
}

var facturaCmd = &cobra.Command{
	Use:   "factura",
	Short: "Genera la factura HTML (carpeta o archivo único, a elección)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.FacturaRequest
		if err := leerDatos(&req); err != nil {
			return err
		}
		qr, err := leerQR()
		if err != nil {
			return err
		}
		_, gen := construirServicios()
		res, err := gen.GenerarFactura(terminal(), req, qr)
		if err != nil {
			return err
		}
		if res.Estado == service.EstadoAbortado {
			fmt.Println("Operación cancelada, no se escribió ningún archivo.")
		}
		return nil
	},
}

var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "Genera el ticket HTML (carpeta o archivo único, a elección)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.TicketRequest
		if err := leerDatos(&req); err != nil {
			return err
		}
		qr, err := leerQR()
		if err != nil {
			return err
		}
		_, gen := construirServicios()
		res, err := gen.GenerarTicket(terminal(), req, qr)
		if err != nil {
			return err
		}
		if res.Estado == service.EstadoAbortado {
			fmt.Println("Operación cancelada, no se escribió ningún archivo.")
		}
		return nil
	},
}

func construirServicios() (service.QRService, service.GeneracionService) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	encoder := infra.NewQREncoder(cfg.QRBoxSize, cfg.QRBorder)
	qrSvc := service.NewQRService(encoder)
	docSvc := service.NewDocumentoService()
	return qrSvc, service.NewGeneracionService(docSvc, qrSvc, encoder)
}

func terminal() dialog.Dialog { return dialog.NewTerminal(os.Stdin, os.Stdout) }

// leerDatos decodes the --datos JSON file into req. A missing flag means an
// all-defaults document, which is valid.
func leerDatos(req interface{}) error {
	if datosPath == "" {
		return nil
	}
	raw, err := os.ReadFile(datosPath)
	if err != nil {
		return fmt.Errorf("leer %s: %w", datosPath, err)
	}
	if err := json.Unmarshal(raw, req); err != nil {
		return fmt.Errorf("datos inválidos en %s: %w", datosPath, err)
	}
	return nil
}

// leerQR loads the optional pre-generated QR image ("Cargar QR"); the bytes
// are embedded verbatim, never re-encoded.
func leerQR() ([]byte, error) {
	if qrPath == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(qrPath)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", qrPath, err)
	}
	return raw, nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.WarnLevel)

	rootCmd.PersistentFlags().StringVar(&datosPath, "datos", "", "archivo JSON con los valores de los campos")
	qrCmd.Flags().StringVar(&outPath, "out", "", "ruta del PNG de salida (omitir para elegir interactivamente)")
	facturaCmd.Flags().StringVar(&qrPath, "qr", "", "imagen QR pre-generada a embeber tal cual")
	ticketCmd.Flags().StringVar(&qrPath, "qr", "", "imagen QR pre-generada a embeber tal cual")

	rootCmd.AddCommand(qrCmd, facturaCmd, ticketCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
