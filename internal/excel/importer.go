// Package excel loads a default-word catalog from an operator-supplied
// spreadsheet: column A english, column B russian, optional header row.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/cardbot/pkg/models"
)

// ImportCatalog reads a catalog from an Excel or CSV file
func ImportCatalog(path string) ([]models.Word, error) {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return importFromCSV(path)
	}
	return importFromExcel(path)
}

func importFromExcel(path string) ([]models.Word, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	return collectWords(rows)
}

func importFromCSV(path string) ([]models.Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}
		rows = append(rows, row)
	}

	return collectWords(rows)
}

// collectWords turns raw rows into a catalog, skipping a header row and
// anything without both columns filled
func collectWords(rows [][]string) ([]models.Word, error) {
	var words []models.Word
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}

		english := strings.TrimSpace(row[0])
		russian := strings.TrimSpace(row[1])
		if english == "" || russian == "" {
			continue
		}
		if i == 0 && strings.EqualFold(english, "english") {
			continue
		}

		words = append(words, models.Word{English: english, Russian: russian})
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("no words found in catalog file")
	}

	return words, nil
}
