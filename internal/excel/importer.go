package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/alphalearn/internal/database"
	"github.com/example/alphalearn/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath         string // Path to the Excel or CSV file
	WordColumn       string // Column with the word
	DefinitionColumn string // Column with the definition
	ExampleColumn    string // Column with the example sentence
	SheetName        string // Name of the sheet to import
	StartRow         int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig(filePath string) ImportConfig {
	return ImportConfig{
		FilePath:         filePath,
		WordColumn:       "A",
		DefinitionColumn: "B",
		ExampleColumn:    "C",
		SheetName:        "Sheet1",
		StartRow:         2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportWords imports catalog words from an Excel or CSV file
func ImportWords(ctx context.Context, db database.Queryer, config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(ctx, db, config)
	}
	return importFromExcel(ctx, db, config)
}

// importFromExcel imports words from an Excel file
func importFromExcel(ctx context.Context, db database.Queryer, config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	wordRepo := database.NewWordRepository(db)
	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}

		result.TotalProcessed++

		word := cellValue(row, config.WordColumn)
		definition := cellValue(row, config.DefinitionColumn)
		example := cellValue(row, config.ExampleColumn)

		if err := importWord(ctx, wordRepo, word, definition, example, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV imports words from a CSV file with word,definition,example rows
func importFromCSV(ctx context.Context, db database.Queryer, config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	wordRepo := database.NewWordRepository(db)
	result := &ImportResult{Errors: make([]string, 0)}

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}

		result.TotalProcessed++

		var word, definition, example string
		if len(row) > 0 {
			word = row[0]
		}
		if len(row) > 1 {
			definition = row[1]
		}
		if len(row) > 2 {
			example = row[2]
		}

		if err := importWord(ctx, wordRepo, word, definition, example, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// importWord looks up or inserts one catalog row
func importWord(ctx context.Context, wordRepo *database.WordRepository, word, definition, example string, result *ImportResult) error {
	word = strings.TrimSpace(word)
	if word == "" {
		result.Skipped++
		return nil
	}

	existing, err := wordRepo.FindByText(ctx, word)
	if err != nil {
		return err
	}
	if existing != nil {
		result.Skipped++
		return nil
	}

	entry := &models.Word{
		Word:       word,
		Definition: strings.TrimSpace(definition),
		Example:    strings.TrimSpace(example),
	}
	if err := wordRepo.Create(ctx, entry); err != nil {
		return err
	}
	result.Created++

	return nil
}

// cellValue returns the row value for a column letter, empty when the row is
// short
func cellValue(row []string, column string) string {
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// columnToIndex converts an Excel column letter (A, B, ..., AA) to a
// zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}

	idx := 0
	for _, r := range column {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1
}
