// Package importer normalizes uploaded stock spreadsheets into typed rows.
//
// Warehouse exports arrive with SAP-style headers in arbitrary casing and
// accenting ("Código EAN/UPC", "Libre utilización", …). A static alias table
// maps every known variant to the seven canonical fields; adding a new header
// synonym is a one-line change to that table.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Canonical field names, in the column order of the normalized output.
const (
	CampoSku       = "sku"
	CampoModelo    = "modelo"
	CampoCategoria = "categoria"
	CampoTalla     = "talla"
	CampoStock     = "stock"
	CampoEan       = "ean"
	CampoPrecio    = "precio"
)

var camposRequeridos = []string{
	CampoSku, CampoModelo, CampoCategoria, CampoTalla, CampoStock, CampoEan, CampoPrecio,
}

// aliasColumnas maps trimmed, lower-cased header variants to canonical names.
// Accented and non-accented duplicates are both listed so the mapping never
// depends on how the export tool encoded the header. Note the legacy quirk:
// a column headed "modelo" carries the SKU; the display name comes from
// "texto breve de material".
var aliasColumnas = map[string]string{
	"modelo":                  CampoSku,
	"texto breve de material": CampoModelo,
	"categoria":               CampoCategoria,
	"categoría":               CampoCategoria,
	"tamaño principal":        CampoTalla,
	"tamano principal":        CampoTalla,
	"talla":                   CampoTalla,
	"libre utilización":       CampoStock,
	"libre utilizacion":       CampoStock,
	"stock":                   CampoStock,
	"codigo ean/upc":          CampoEan,
	"código ean/upc":          CampoEan,
	"ean":                     CampoEan,
	"valor total":             CampoPrecio,
	"precio":                  CampoPrecio,
}

// Fila is one normalized spreadsheet row with all seven fields typed.
type Fila struct {
	Sku       string
	Modelo    string
	Categoria string
	Talla     string
	Stock     int
	Ean       string
	Precio    decimal.Decimal
}

// ColumnaFaltanteError reports which canonical field could not be resolved
// from the spreadsheet headers. This is a hard precondition of every upload.
type ColumnaFaltanteError struct {
	Campo string
}

func (e *ColumnaFaltanteError) Error() string {
	return fmt.Sprintf("falta la columna: %s en el Excel", e.Campo)
}

// Normalizador parses stock spreadsheets into ordered, typed rows.
type Normalizador struct{}

func NewNormalizador() *Normalizador { return &Normalizador{} }

// LeerArchivo opens an .xlsx file and normalizes the first sheet.
func (n *Normalizador) LeerArchivo(path string) ([]Fila, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el archivo no tiene hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return n.Normalizar(rows)
}

// Normalizar maps headers through the alias table and coerces every cell.
// Input order is preserved. Fully blank rows are skipped; a row is never
// rejected for a malformed quantity or price (those default to 0 / 0.0).
func (n *Normalizador) Normalizar(rows [][]string) ([]Fila, error) {
	if len(rows) == 0 {
		return nil, &ColumnaFaltanteError{Campo: CampoSku}
	}

	indices, err := resolverColumnas(rows[0])
	if err != nil {
		return nil, err
	}

	filas := make([]Fila, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if filaVacia(row) {
			continue
		}
		filas = append(filas, Fila{
			Sku:       celda(row, indices[CampoSku]),
			Modelo:    celda(row, indices[CampoModelo]),
			Categoria: celda(row, indices[CampoCategoria]),
			Talla:     celda(row, indices[CampoTalla]),
			Stock:     coerceStock(celda(row, indices[CampoStock])),
			Ean:       limpiarEan(celda(row, indices[CampoEan])),
			Precio:    coercePrecio(celda(row, indices[CampoPrecio])),
		})
	}
	return filas, nil
}

// resolverColumnas returns the column index of each canonical field, failing
// with the first missing field in canonical order.
func resolverColumnas(headers []string) (map[string]int, error) {
	indices := make(map[string]int, len(camposRequeridos))
	for i, h := range headers {
		nombre := strings.ToLower(strings.TrimSpace(h))
		if canon, ok := aliasColumnas[nombre]; ok {
			nombre = canon
		}
		if _, seen := indices[nombre]; !seen {
			indices[nombre] = i
		}
	}
	for _, campo := range camposRequeridos {
		if _, ok := indices[campo]; !ok {
			return nil, &ColumnaFaltanteError{Campo: campo}
		}
	}
	return indices, nil
}

// celda returns the trimmed cell at idx; short rows yield "".
func celda(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func filaVacia(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// coerceStock parses a quantity as float and truncates to int. Exports write
// integer counts as "12.0"; anything unparseable defaults to 0 rather than
// rejecting the row.
func coerceStock(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// limpiarEan strips the ".0" artifact left by numeric cell formatting.
func limpiarEan(s string) string {
	return strings.TrimSpace(strings.TrimSuffix(s, ".0"))
}

// coercePrecio normalizes a comma decimal separator and parses; failures
// default to zero.
func coercePrecio(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
