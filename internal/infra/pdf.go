package infra

// pdf.go — Guía de transporte rendering using go-pdf/fpdf.
// Produces a legal-size (oficio) manifest with:
//   - Colored header line: guia id (green) - código INVIMA (red) - year (red)
//   - Yellow marca diferencial box at the top right
//   - Five numbered sections: planta, destino, producto, vehículo, decomisos
//   - Per-block pagination for the sections, row-by-row for the producto and
//     decomisos tables
//
// The file is written as a temp file and then renamed into the reports
// directory, so a reader never sees a half-written manifest there.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/Juan-204/evc-backend/internal/dto"
)

const (
	marginLeft   = 30.0
	marginBottom = 50.0
	topY         = 58.0
)

// GuiaPDFGenerator renders committed guias into the reports directory.
// It implements service.PDFGenerator.
type GuiaPDFGenerator struct {
	storagePath string
	plantaEmail string
}

func NewGuiaPDFGenerator(storagePath, plantaEmail string) *GuiaPDFGenerator {
	return &GuiaPDFGenerator{storagePath: storagePath, plantaEmail: plantaEmail}
}

// Ruta returns the path where the manifest for a guia lives once rendered.
func (g *GuiaPDFGenerator) Ruta(idGuia uint) string {
	return filepath.Join(g.storagePath, fmt.Sprintf("guia_transporte_%d.pdf", idGuia))
}

// GenerarGuiaPDF renders the document and returns the final path inside the
// reports directory.
func (g *GuiaPDFGenerator) GenerarGuiaPDF(doc *dto.GuiaDocumento) (string, error) {
	pdf := fpdf.New("P", "pt", "Legal", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*marginLeft

	especies := make([]string, 0, len(doc.Detalles))
	for _, d := range doc.Detalles {
		especies = append(especies, d.Especie)
	}
	codigoINVIMA := CodigoINVIMA(especies)

	anio := "N/A"
	if len(doc.Guia.Fecha) >= 4 {
		anio = doc.Guia.Fecha[2:4] // fecha comes back as YYYY-MM-DD
	}

	// ── Header line: id - INVIMA - year ──────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(15, 30)
	pdf.SetTextColor(0, 128, 0)
	pdf.CellFormat(pdf.GetStringWidth(fmt.Sprint(doc.ID))+2, 18, fmt.Sprint(doc.ID), "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(pdf.GetStringWidth("-")+6, 18, "-", "", 0, "C", false, 0, "")
	pdf.SetTextColor(255, 0, 0)
	pdf.CellFormat(pdf.GetStringWidth(codigoINVIMA)+2, 18, codigoINVIMA, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(pdf.GetStringWidth("-")+6, 18, "-", "", 0, "C", false, 0, "")
	pdf.SetTextColor(255, 0, 0)
	pdf.CellFormat(pdf.GetStringWidth(anio)+2, 18, anio, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// ── Marca diferencial box, top right ─────────────────────────────────────
	const boxSize = 50.0
	boxX := pageW - marginLeft - boxSize
	pdf.SetFillColor(255, 255, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)
	pdf.Rect(boxX, 20, boxSize, boxSize, "FD")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(boxX, 20+boxSize/2-6)
	pdf.CellFormat(boxSize, 12, strOrNA(doc.Destino.MarcaDiferencial), "", 0, "C", false, 0, "")

	y := topY + 15

	// ── 1. Planta de procedencia ─────────────────────────────────────────────
	y = breakIfNeeded(pdf, y, 15+15+kvTableHeight(6), pageH)
	y = g.sectionTitle(pdf, y, "1. IDENTIFICACION DE LA PLANTA DE BENEFICIO DE PROCEDENCIA")
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentW, 12, g.plantaEmail, "", 1, "L", false, 0, "")
	y += 15

	y = g.keyValueTable(pdf, y, [][2]string{
		{"Planta", strOrNA(doc.Guia.NombrePlanta)},
		{"Departamento", strOrNA(doc.Destino.NombreDepartamento)},
		{"Municipio o Ciudad", strOrNA(doc.Destino.NombreMunicipios)},
		{"Codigo INVIMA", codigoINVIMA},
		{"Direccion", strOrNA(doc.Guia.DireccionPlanta)},
		{"Sacrificio y Despacho", doc.Guia.Fecha},
	})

	// ── 2. Destino ───────────────────────────────────────────────────────────
	y = breakIfNeeded(pdf, y, 15+kvTableHeight(3), pageH)
	y = g.sectionTitle(pdf, y, "2. DESTINO")
	y = g.keyValueTable(pdf, y, [][2]string{
		{"Nombre Dueño", strOrNA(doc.Destino.NombreDueno)},
		{"Nombre Establecimiento", strOrNA(doc.Destino.NombreEstablecimiento)},
		{"Direccion", strOrNA(doc.Destino.Direccion)},
	})

	// ── 3. Descripción del producto ──────────────────────────────────────────
	y = breakIfNeeded(pdf, y, 15+16+14, pageH)
	y = g.sectionTitle(pdf, y, "3. DESCRIPCION DEL PRODUCTO")

	detalleHeaders := []string{"ID Animal", "Especie", "Carne en Octavos", "Viseras Blancas", "Viseras Rojas", "Cabezas", "Temp. Promedio", "Dictamen"}
	detalleWidths := []float64{60, 66, 84, 76, 70, 54, 82, 60}

	pdf.SetLineWidth(1)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	pdf.SetXY(marginLeft, y)
	for i, h := range detalleHeaders {
		pdf.CellFormat(detalleWidths[i], 16, h, "1", 0, "C", true, 0, "")
	}
	y += 16

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, d := range doc.Detalles {
		// Row-by-row check so long detalle lists paginate instead of
		// overflowing the page.
		y = breakIfNeeded(pdf, y, 14, pageH)
		row := []string{
			intOrNA(d.NumeroAnimal),
			d.Especie,
			intOrNA(d.CarneOctavos),
			intOrNA(d.ViserasBlancas),
			intOrNA(d.ViserasRojas),
			intOrNA(d.Cabezas),
			decOrNA(d.TemperaturaPromedio),
			strOrNA(d.Dictamen),
		}
		pdf.SetXY(marginLeft, y)
		for i, cell := range row {
			pdf.CellFormat(detalleWidths[i], 14, cell, "1", 0, "C", false, 0, "")
		}
		y += 14
	}
	y += 20

	// ── 4. Vehículo transportador ────────────────────────────────────────────
	y = breakIfNeeded(pdf, y, 15+kvTableHeight(5), pageH)
	y = g.sectionTitle(pdf, y, "4. VEHICULO TRANSPORTADOR")
	y = g.keyValueTable(pdf, y, [][2]string{
		{"Tipo Vehiculo", strOrNA(doc.Guia.TipoVehiculo)},
		{"Placa", strOrNA(doc.Guia.Placa)},
		{"Nombre del Conductor", strOrNA(doc.Guia.NombreConductor)},
		{"N° Cedula", strOrNA(doc.Guia.NumeroCedula)},
		{"Tipo Refrigeracion", strOrNA(doc.Guia.TipoRefrigeracion)},
	})

	// ── 5. Decomisos ─────────────────────────────────────────────────────────
	const rowH = 14.0
	y = breakIfNeeded(pdf, y, 15+2*rowH, pageH)
	y = g.sectionTitle(pdf, y, "5. DECOMISOS")

	decomisoHeaders := []string{"Producto", "ID Animal", "Cantidad", "Motivo"}
	decomisoWidths := []float64{120, 80, 80, 180}

	rows := [][]string{decomisoHeaders}
	for _, de := range doc.Decomisos {
		rows = append(rows, []string{
			strOrNA(de.Producto),
			intOrNA(de.NumeroAnimal),
			decOrNA(de.Cantidad),
			strOrNA(de.Motivo),
		})
	}

	pdf.SetLineWidth(1)
	for i, row := range rows {
		y = breakIfNeeded(pdf, y, rowH, pageH)
		if i == 0 {
			pdf.SetFont("Helvetica", "B", 9)
			pdf.SetFillColor(128, 128, 128)
			pdf.SetTextColor(245, 245, 245)
		} else {
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.SetXY(marginLeft, y)
		for j, cell := range row {
			pdf.CellFormat(decomisoWidths[j], rowH, cell, "1", 0, "C", i == 0, 0, "")
		}
		y += rowH
	}

	if err := pdf.Error(); err != nil {
		return "", fmt.Errorf("pdf: render guia %d: %w", doc.ID, err)
	}

	if err := os.MkdirAll(g.storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	finalPath := g.Ruta(doc.ID)
	tmpPath := filepath.Join(g.storagePath, "."+filepath.Base(finalPath)+".tmp")
	if err := pdf.OutputFileAndClose(tmpPath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return "", fmt.Errorf("pdf: move into reports dir: %w", err)
	}

	return finalPath, nil
}

// breakIfNeeded opens a new page when the next blockH points would cross the
// bottom margin and returns the Y to draw at.
func breakIfNeeded(pdf *fpdf.Fpdf, y, blockH, pageH float64) float64 {
	if y+blockH > pageH-marginBottom {
		pdf.AddPage()
		return topY
	}
	return y
}

// kvTableHeight is the vertical space keyValueTable takes for n rows,
// trailing gap included.
func kvTableHeight(n int) float64 {
	return float64(n)*18 + 20
}

// sectionTitle draws a red bold section heading and returns the next Y.
func (g *GuiaPDFGenerator) sectionTitle(pdf *fpdf.Fpdf, y float64, title string) float64 {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(255, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(500, 12, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return y + 15
}

// keyValueTable draws a two-column table with a light grey key column and
// returns the Y below it.
func (g *GuiaPDFGenerator) keyValueTable(pdf *fpdf.Fpdf, y float64, rows [][2]string) float64 {
	const keyW, valW, rowH = 150.0, 280.0, 18.0
	pdf.SetLineWidth(0.5)
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.SetXY(marginLeft, y)
		pdf.SetFillColor(211, 211, 211)
		pdf.CellFormat(keyW, rowH, r[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(valW, rowH, r[1], "1", 1, "L", false, 0, "")
		y += rowH
	}
	return y + 20
}

func strOrNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func intOrNA(n *int) string {
	if n == nil {
		return "N/A"
	}
	return fmt.Sprint(*n)
}

func decOrNA(d *decimal.Decimal) string {
	if d == nil {
		return "N/A"
	}
	return d.String()
}
