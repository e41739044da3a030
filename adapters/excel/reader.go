package excel

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files into numeric column samples.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadData reads the file into a column-oriented dataset. Cells that do not
// parse as numbers (including blanks) become NaN so downstream sanitization
// treats them as missing values.
func (r *DataReader) ReadData() (*Dataset, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// readExcelData reads Sheet1 of an Excel workbook
func (r *DataReader) readExcelData() (*Dataset, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("Excel file must have at least a header row and one data row")
	}

	return processRows(rows)
}

// readCSVData reads a CSV file
func (r *DataReader) readCSVData() (*Dataset, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV file must have at least a header row and one data row")
	}

	return processRows(rows)
}

// processRows converts raw string rows into a numeric Dataset
func processRows(rows [][]string) (*Dataset, error) {
	headerRow := rows[0]
	headers := make([]string, 0, len(headerRow))
	for _, header := range headerRow {
		name := strings.TrimSpace(header)
		if name == "" {
			continue
		}
		headers = append(headers, name)
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("header row has no column names")
	}

	columns := make(map[string][]float64, len(headers))
	for _, h := range headers {
		columns[h] = make([]float64, 0, len(rows)-1)
	}

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		for j, h := range headers {
			value := math.NaN()
			if j < len(row) {
				cell := strings.TrimSpace(row[j])
				if cell != "" {
					if parsed, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", "."), 64); err == nil {
						value = parsed
					}
				}
			}
			columns[h] = append(columns[h], value)
		}
	}

	return &Dataset{
		Headers: headers,
		Columns: columns,
		RowsN:   len(rows) - 1,
	}, nil
}
