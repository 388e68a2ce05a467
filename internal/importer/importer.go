// Package importer reads cabinet schedules from CSV and Excel files. It
// supports automatic delimiter detection, flexible column mapping,
// case-insensitive header recognition and shop-style fractional inches.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/CabFace/internal/model"
)

// Catalog resolves the style and type cells of a schedule row, which may
// hold either a numeric id or a catalog name.
type Catalog interface {
	Style(id int) (model.StyleInfo, bool)
	ItemType(id int) (model.TypeInfo, bool)
	StyleByName(name string) (model.StyleInfo, bool)
	ItemTypeByName(name string) (model.TypeInfo, bool)
}

// Defaults fill the optional columns a schedule leaves out.
type Defaults struct {
	Depth   float64
	StyleID int
	TypeID  int
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Cabinets []model.Cabinet
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label    int
	Width    int
	Height   int
	Depth    int
	Style    int
	Type     int
	Quantity int
}

// positional is the column order assumed when the first row is not a header.
var positional = ColumnMapping{Label: 0, Width: 1, Height: 2, Depth: 3, Style: 4, Type: 5, Quantity: 6}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":    {"label", "name", "cabinet", "tag", "mark", "description", "item"},
	"width":    {"width", "w", "wide"},
	"height":   {"height", "h", "tall"},
	"depth":    {"depth", "d", "deep"},
	"style":    {"style", "construction", "style id"},
	"type":     {"type", "item type", "kind", "type id"},
	"quantity": {"quantity", "qty", "count", "num", "pcs"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range []rune{',', ';', '\t', '|'} {
		records, err := readCSV(bytes.NewReader(data), delim)
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}
		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Consistency first, then column count
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

func readCSV(r io.Reader, delim rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping and false if no header cell was recognized.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{-1, -1, -1, -1, -1, -1, -1}
	slots := map[string]*int{
		"label":    &mapping.Label,
		"width":    &mapping.Width,
		"height":   &mapping.Height,
		"depth":    &mapping.Depth,
		"style":    &mapping.Style,
		"type":     &mapping.Type,
		"quantity": &mapping.Quantity,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if slot := slots[role]; *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		return positional, false
	}
	return mapping, true
}

// ParseInches parses a dimension the way it is written on shop drawings:
// "30", "30.5", "34 1/2", "34-1/2", "3/4", with an optional trailing ".
func ParseInches(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), `"`))
	if s == "" {
		return 0, fmt.Errorf("empty dimension")
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("invalid dimension %q", s)
		}
		return v, nil
	}

	whole, frac := "", s
	if i := strings.LastIndexAny(s, " -"); i > 0 {
		whole, frac = strings.TrimSpace(s[:i]), s[i+1:]
	}
	num, den, ok := strings.Cut(frac, "/")
	if !ok {
		return 0, fmt.Errorf("invalid dimension %q", s)
	}
	n, err1 := strconv.Atoi(strings.TrimSpace(num))
	d, err2 := strconv.Atoi(strings.TrimSpace(den))
	if err1 != nil || err2 != nil || d <= 0 || n < 0 {
		return 0, fmt.Errorf("invalid dimension %q", s)
	}
	v := float64(n) / float64(d)
	if whole != "" {
		w, err := strconv.Atoi(whole)
		if err != nil || w < 0 {
			return 0, fmt.Errorf("invalid dimension %q", s)
		}
		v += float64(w)
	}
	return v, nil
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

type rowParser struct {
	mapping  ColumnMapping
	catalog  Catalog
	defaults Defaults
}

// parse extracts a cabinet and its quantity from a row.
// Returns the cabinet, the quantity, any error message, and any warnings.
func (p rowParser) parse(row []string, rowLabel string, count int) (model.Cabinet, int, string, []string) {
	var warnings []string

	label := getCell(row, p.mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Cabinet %d", count+1)
	}

	dims := [3]float64{0, 0, p.defaults.Depth}
	for i, col := range []struct {
		name string
		idx  int
	}{{"width", p.mapping.Width}, {"height", p.mapping.Height}, {"depth", p.mapping.Depth}} {
		cell := getCell(row, col.idx)
		if cell == "" {
			if col.name == "depth" {
				continue
			}
			return model.Cabinet{}, 0, fmt.Sprintf("%s: Missing %s value", rowLabel, col.name), nil
		}
		v, err := ParseInches(cell)
		if err != nil || v <= 0 {
			return model.Cabinet{}, 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, col.name, cell), nil
		}
		dims[i] = v
	}
	if dims[2] <= 0 {
		return model.Cabinet{}, 0, fmt.Sprintf("%s: Missing depth value", rowLabel), nil
	}

	styleID := p.defaults.StyleID
	if cell := getCell(row, p.mapping.Style); cell != "" {
		id, ok := p.resolveStyle(cell)
		if !ok {
			return model.Cabinet{}, 0, fmt.Sprintf("%s: Unknown style '%s'", rowLabel, cell), nil
		}
		styleID = id
	}
	typeID := p.defaults.TypeID
	if cell := getCell(row, p.mapping.Type); cell != "" {
		id, ok := p.resolveType(cell)
		if !ok {
			return model.Cabinet{}, 0, fmt.Sprintf("%s: Unknown item type '%s'", rowLabel, cell), nil
		}
		typeID = id
	}

	qty := 1
	if cell := getCell(row, p.mapping.Quantity); cell != "" {
		q, err := strconv.Atoi(cell)
		if err != nil || q < 1 {
			warnings = append(warnings, fmt.Sprintf("%s: Invalid quantity '%s', defaulting to 1", rowLabel, cell))
		} else {
			qty = q
		}
	}

	return model.NewCabinet(label, dims[0], dims[1], dims[2], styleID, typeID), qty, "", warnings
}

func (p rowParser) resolveStyle(cell string) (int, bool) {
	if id, err := strconv.Atoi(cell); err == nil {
		_, ok := p.catalog.Style(id)
		return id, ok
	}
	s, ok := p.catalog.StyleByName(cell)
	return s.ID, ok
}

func (p rowParser) resolveType(cell string) (int, bool) {
	if id, err := strconv.Atoi(cell); err == nil {
		_, ok := p.catalog.ItemType(id)
		return id, ok
	}
	t, ok := p.catalog.ItemTypeByName(cell)
	return t.ID, ok
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Import reads a schedule, choosing the Excel or CSV reader by extension.
func Import(path string, cat Catalog, defaults Defaults) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path, cat, defaults)
	}
	return ImportCSV(path, cat, defaults)
}

// ImportCSV imports cabinets from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportCSV(path string, cat Catalog, defaults Defaults) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	return importFromRows(records, "Line", rowParser{catalog: cat, defaults: defaults}, result.Warnings)
}

// ImportCSVFromReader imports cabinets from a CSV reader with a known delimiter.
func ImportCSVFromReader(r io.Reader, delimiter rune, cat Catalog, defaults Defaults) ImportResult {
	records, err := readCSV(r, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	return importFromRows(records, "Line", rowParser{catalog: cat, defaults: defaults}, nil)
}

// ImportExcel imports cabinets from the first sheet of an Excel workbook.
func ImportExcel(path string, cat Catalog, defaults Defaults) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}
	return importFromRows(rows, "Row", rowParser{catalog: cat, defaults: defaults}, nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and expands each row into Quantity cabinets.
func importFromRows(rows [][]string, rowPrefix string, p rowParser, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		var missing []string
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// An unrecognized header still has a non-numeric width cell
		if _, err := ParseInches(rows[0][positional.Width]); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Unrecognized header row, using column order")
		}
	}
	p.mapping = mapping

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		cab, qty, errMsg, warnings := p.parse(row, rowLabel, len(result.Cabinets))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)

		for n := 0; n < qty; n++ {
			c := cab
			if n > 0 {
				c = model.NewCabinet(cab.Label, cab.Width, cab.Height, cab.Depth, cab.StyleID, cab.TypeID)
			}
			result.Cabinets = append(result.Cabinets, c)
		}
	}

	return result
}
