package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"prodcheck/internal/config"
	"prodcheck/internal/logger"
	"prodcheck/internal/validation"
)

func main() {
	input := flag.String("input", "", "path to a JSON file holding an array of scraped product records")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: validate -input <products.json>")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	raw, err := os.ReadFile(*input)
	if err != nil {
		logger.Fatal("Failed to read %s: %v", *input, err)
	}

	var records []interface{}
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.Fatal("Invalid JSON format: %v", err)
	}

	validator := validation.New(cfg, logger)
	result := validator.ValidateBatch(records)

	if result.Valid {
		fmt.Println("All product data is valid")
		return
	}

	fmt.Println("Some product data is not valid:")
	for _, failure := range result.Failures {
		fmt.Println(failure.String())
	}
	os.Exit(1)
}
