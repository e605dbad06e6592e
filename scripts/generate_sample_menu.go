//go:build ignore

package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// generateSampleMenu writes a spreadsheet export the importer accepts.
// The header mixes capitalised and snake_case column names, and one row
// leaves the section blank so it lands in cafe.
func main() {
	dataDir := "data"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	header := []string{"Name", "Description", "Ingredients", "Price", "deal_price", "Section", "Category", "Tags", "Featured", "sort_order"}
	rows := [][]string{
		{"Tomato Soup", "Roast tomato and basil", "Tomato, basil, cream", "4.50", "", "Cafe", "Soups", "vg, gf", "yes", "1"},
		{"Bacon Bap", "Smoked back bacon in a floury bap", "Bacon, bap, butter", "5.20", "4.50", "cafe", "Breakfast", "", "no", "2"},
		{"Carrot Cake", "", "", "3.80", "", "", "Cakes & Bakes", "V, nuts", "", ""},
		{"Comte 18 Month", "Per 100g", "", "4.20", "", "Deli", "Cheese", "V, GF", "yes", "5"},
		{"Sourdough Loaf", "Baked every morning", "Flour, water, salt", "4.00", "", "deli", "Bread", "vg", "", "abc"},
		{"Sandwich Platter", "Serves 10", "", "45.00", "", "Catering", "Platters", "", "YES", ""},
		{"Brownie Box", "Twelve brownies", "", "24.00", "", "catering", "Desserts", "gf", "", "3"},
	}

	filePath := filepath.Join(dataDir, "sample_menu.csv")
	if err := writeMenuFile(filePath, header, rows); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d items\n", filePath, len(rows))
	fmt.Println("\nUpload it with:")
	fmt.Printf("  curl -H \"Authorization: Bearer $TOKEN\" -F file=@%s http://localhost:8080/api/imports\n", filePath)
}

func writeMenuFile(filePath string, header []string, rows [][]string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
