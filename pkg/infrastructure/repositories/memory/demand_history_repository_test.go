package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vsinha/stockplan/pkg/domain/entities"
)

func TestDemandHistoryRepository_FetchDemandHistory(t *testing.T) {
	repo := NewDemandHistoryRepository()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	repo.LoadRecords("WIDGET-1", []entities.DemandRecord{
		entities.NewDemandRecord(date, 10),
		entities.NewDemandRecord(date.AddDate(0, 0, 1), 12),
	})

	records, err := repo.FetchDemandHistory(context.Background(), "WIDGET-1")
	if err != nil {
		t.Fatalf("FetchDemandHistory failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if *records[1].Demand != 12 {
		t.Errorf("Expected demand 12, got %v", *records[1].Demand)
	}
}

func TestDemandHistoryRepository_FetchDemandHistory_UnknownItem(t *testing.T) {
	repo := NewDemandHistoryRepository()

	_, err := repo.FetchDemandHistory(context.Background(), "MISSING")
	if err == nil {
		t.Fatal("Expected error for unknown item, got none")
	}
	if !errors.Is(err, entities.ErrNoUpstreamData) {
		t.Errorf("Expected ErrNoUpstreamData, got %v", err)
	}
}

func TestDemandHistoryRepository_FetchDemandHistory_ReturnsCopy(t *testing.T) {
	repo := NewDemandHistoryRepository()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.LoadRecords("WIDGET-1", []entities.DemandRecord{entities.NewDemandRecord(date, 10)})

	first, err := repo.FetchDemandHistory(context.Background(), "WIDGET-1")
	if err != nil {
		t.Fatalf("FetchDemandHistory failed: %v", err)
	}
	first[0] = entities.DemandRecord{}

	second, err := repo.FetchDemandHistory(context.Background(), "WIDGET-1")
	if err != nil {
		t.Fatalf("FetchDemandHistory failed: %v", err)
	}
	if second[0].Demand == nil {
		t.Error("Expected stored records to be unaffected by caller mutation")
	}
}
