package export

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet = "Sheet1"
	minColWidth  = 10
	maxColWidth  = 60
)

// Sheet is one tab of an exported workbook.
type Sheet struct {
	Title  string
	Header []string
	Rows   [][]string
}

// NewWorkbook renders sheets in order. The header row is bold and filterable.
func NewWorkbook(sheets ...Sheet) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook needs at least one sheet")
	}
	f := excelize.NewFile()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("new header style: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, s.Title); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.Title); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("new sheet %q: %w", s.Title, err)
		}
		if err := writeSheet(f, s, bold); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

// Render builds the workbook and returns the .xlsx bytes.
func Render(sheets ...Sheet) ([]byte, error) {
	f, err := NewWorkbook(sheets...)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, s Sheet, headerStyle int) error {
	if len(s.Header) == 0 {
		return nil
	}
	for r, row := range append([][]string{s.Header}, s.Rows...) {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(s.Title, cell, val); err != nil {
				return fmt.Errorf("set cell %s!%s: %w", s.Title, cell, err)
			}
		}
	}

	last, err := excelize.ColumnNumberToName(len(s.Header))
	if err != nil {
		return err
	}
	_ = f.SetCellStyle(s.Title, "A1", last+"1", headerStyle)
	_ = f.AutoFilter(s.Title, "A1:"+last+"1", nil)

	for c := range s.Header {
		col, _ := excelize.ColumnNumberToName(c + 1)
		_ = f.SetColWidth(s.Title, col, col, columnWidth(s, c))
	}
	return nil
}

// columnWidth approximates a readable width from the header and cell lengths.
func columnWidth(s Sheet, c int) float64 {
	w := float64(utf8.RuneCountInString(s.Header[c])) + 2
	for _, row := range s.Rows {
		if c < len(row) {
			if l := float64(utf8.RuneCountInString(row[c])) * 1.1; l > w {
				w = l
			}
		}
	}
	switch {
	case w < minColWidth:
		return minColWidth
	case w > maxColWidth:
		return maxColWidth
	}
	return w
}
