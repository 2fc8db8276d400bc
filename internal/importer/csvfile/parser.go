package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/lsantos-dev/moneta/internal/encoding"
	"github.com/lsantos-dev/moneta/internal/report"
)

// Parser reads ledger CSV exports into transaction params. The header
// row may appear after leading junk lines; columns are matched by name,
// case-insensitively.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

const (
	colDate        = "date"
	colType        = "type"
	colAmount      = "amount"
	colDescription = "description"
	colCategory    = "category"
)

var requiredCols = []string{colDate, colType, colAmount, colDescription}

// colIndex maps normalized column names to their index in the row.
type colIndex map[string]int

func (p *Parser) Parse(r io.Reader) ([]report.TransactionParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := detectHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no header row found: expected columns %s", strings.Join(requiredCols, ", "))
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx+1)
}

// detectHeader scans rows for one carrying every required column.
func detectHeader(rows [][]string) (colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		if matchesHeader(cols) {
			return cols, rowIdx
		}
	}

	return nil, 0
}

func matchesHeader(cols colIndex) bool {
	for _, name := range requiredCols {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRows(cols colIndex, rows [][]string, headerRowNum int) ([]report.TransactionParams, error) {
	var params []report.TransactionParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(cellValue(row, cols[colDate]))
		if !ok {
			// Footer/blank lines never carry a date; skip them.
			continue
		}

		kind := report.Kind(strings.ToLower(cellValue(row, cols[colType])))
		if !kind.Valid() {
			return nil, fmt.Errorf("row %d: unknown type %q", rowNum, cellValue(row, cols[colType]))
		}

		amount, err := parseAmount(cellValue(row, cols[colAmount]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		p := report.TransactionParams{
			Kind:        kind,
			Amount:      amount,
			Description: cellValue(row, cols[colDescription]),
			Date:        date,
		}

		if idx, ok := cols[colCategory]; ok {
			p.Category = cellValue(row, idx)
		}

		params = append(params, p)
	}

	return params, nil
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount accepts both "1,234.56" and "1.234,56" style values. When
// both separators appear, the rightmost one is the decimal mark.
func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	comma := strings.LastIndex(s, ",")
	dot := strings.LastIndex(s, ".")

	switch {
	case comma >= 0 && dot >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %v", amount)
	}

	return amount, nil
}
