package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

func initializeCSV(filename string, header []string) (err error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", filename, cerr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing header to %s: %w", filename, err)
	}
	writer.Flush()
	return writer.Error()
}

func appendToCSV(filename string, data [][]string) (err error) {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", filename, cerr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(data); err != nil {
		return fmt.Errorf("writing data to %s: %w", filename, err)
	}
	return nil
}
