package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vsinha/stockplan/pkg/domain/entities"
)

// Loader handles loading planning data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDemandHistory loads historical demand observations from a CSV file
// with columns date,demand.
func (l *Loader) LoadDemandHistory(filename string) ([]entities.DemandRecord, error) {
	records, err := l.readAll(filename, []string{"date", "demand"})
	if err != nil {
		return nil, fmt.Errorf("demand history CSV: %w", err)
	}

	var history []entities.DemandRecord
	for i, record := range records {
		date, err := parseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("demand history CSV row %d: %w", i+2, err)
		}
		demand, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("demand history CSV row %d: invalid demand %q", i+2, record[1])
		}
		if demand < 0 {
			return nil, fmt.Errorf("demand history CSV row %d: demand must be non-negative, got %v", i+2, demand)
		}
		history = append(history, entities.NewDemandRecord(date, demand))
	}
	return history, nil
}

// LoadLeadTimes loads lead-time samples from a CSV file with a single
// lead_time_days column.
func (l *Loader) LoadLeadTimes(filename string) ([]int, error) {
	records, err := l.readAll(filename, []string{"lead_time_days"})
	if err != nil {
		return nil, fmt.Errorf("lead times CSV: %w", err)
	}

	var leadTimes []int
	for i, record := range records {
		days, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("lead times CSV row %d: invalid lead time %q", i+2, record[0])
		}
		if days < 0 {
			return nil, fmt.Errorf("lead times CSV row %d: lead time must be non-negative, got %d", i+2, days)
		}
		leadTimes = append(leadTimes, days)
	}
	return leadTimes, nil
}

// LoadDailyDemand loads daily demand records from a CSV file with columns
// date,quantity.
func (l *Loader) LoadDailyDemand(filename string) ([]entities.DailyDemand, error) {
	records, err := l.readAll(filename, []string{"date", "quantity"})
	if err != nil {
		return nil, fmt.Errorf("daily demand CSV: %w", err)
	}

	var demand []entities.DailyDemand
	for i, record := range records {
		date, err := parseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("daily demand CSV row %d: %w", i+2, err)
		}
		quantity, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("daily demand CSV row %d: invalid quantity %q", i+2, record[1])
		}
		demand = append(demand, entities.NewDailyDemand(date, quantity))
	}
	return demand, nil
}

// readAll opens a CSV file, validates its header and returns the data rows
func (l *Loader) readAll(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s must have header and at least one data row", filename)
	}

	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("%s header mismatch. Expected: %v, Got: %v",
			filename, expectedHeader, records[0])
	}

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d",
				filename, i+2, len(expectedHeader), len(record))
		}
	}

	return records[1:], nil
}

// validateHeader checks that a CSV header matches the expected column names
func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range header {
		if strings.TrimSpace(strings.ToLower(col)) != expected[i] {
			return false
		}
	}
	return true
}

// parseDate parses a date column in YYYY-MM-DD format
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return date, nil
}
