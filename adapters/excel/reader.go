package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"calfit/domain/core"
	"calfit/domain/sample"
	"calfit/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading two-column (x, y) data from Excel and CSV files.
// The first row is treated as a header when its cells do not parse as
// numbers; subsequent malformed rows are skipped with a warning.
type DataReader struct{}

// NewDataReader creates a data reader that handles both Excel and CSV files
func NewDataReader() *DataReader {
	return &DataReader{}
}

// Supports reports whether the reader handles the file's extension
func (r *DataReader) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".csv":
		return true
	}
	return false
}

// Read parses the spreadsheet at path into a sample set
func (r *DataReader) Read(ctx context.Context, path string) (*sample.Set, []string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, errors.IOFailure(path, err)
	}

	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = r.readCSVRows(path)
	case ".xlsx":
		rows, err = r.readExcelRows(path)
	default:
		return nil, nil, core.NewUnsupportedFormatError(ext)
	}
	if err != nil {
		return nil, nil, err
	}

	return r.processRows(path, rows)
}

// readExcelRows reads all rows from the first sheet
func (r *DataReader) readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open Excel file %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.InvalidInput("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}
	return rows, nil
}

// readCSVRows reads all records from a CSV file
func (r *DataReader) readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.IOFailure(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", path)
	}
	return rows, nil
}

// processRows converts raw string rows into a sample set
func (r *DataReader) processRows(path string, rows [][]string) (*sample.Set, []string, error) {
	set := sample.NewSet(len(rows))
	var warnings []string

	for i, row := range rows {
		if rowBlank(row) {
			continue
		}
		x, y, ok := parseRow(row)
		if !ok {
			// A non-numeric first row is a header, not bad data
			if i == 0 {
				continue
			}
			warnings = append(warnings, fmt.Sprintf("row %d: cannot parse %v, skipped", i+1, row))
			continue
		}
		set.Append(x, y)
	}

	if set.Len() == 0 {
		return nil, warnings, fmt.Errorf("%w: %s", core.ErrNoParseableData, path)
	}
	return set, warnings, nil
}

// parseRow extracts (x, y) from the first two cells
func parseRow(row []string) (float64, float64, bool) {
	if len(row) < 2 {
		return 0, 0, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}

func rowBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
