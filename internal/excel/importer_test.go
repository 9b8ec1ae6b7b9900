package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestImportCatalogCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	content := "english,russian\ncat,кошка\ndog,собака\n,\nragged\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	words, err := ImportCatalog(path)
	if err != nil {
		t.Fatalf("ImportCatalog failed: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[0].English != "cat" || words[0].Russian != "кошка" {
		t.Fatalf("unexpected first word: %+v", words[0])
	}
}

func TestImportCatalogExcel(t *testing.T) {
	f := excelize.NewFile()
	cells := map[string]string{
		"A1": "english", "B1": "russian",
		"A2": "sun", "B2": "солнце",
		"A3": " moon ", "B3": "луна",
	}
	for cell, value := range cells {
		if err := f.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatalf("failed to set cell %s: %v", cell, err)
		}
	}

	path := filepath.Join(t.TempDir(), "words.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}

	words, err := ImportCatalog(path)
	if err != nil {
		t.Fatalf("ImportCatalog failed: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[1].English != "moon" {
		t.Fatalf("expected trimmed text, got %q", words[1].English)
	}
}

func TestImportCatalogEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("english,russian\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := ImportCatalog(path); err == nil {
		t.Fatal("expected an error for an empty catalog")
	}
}
