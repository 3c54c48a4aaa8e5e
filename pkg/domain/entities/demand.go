package entities

import "time"

// ItemID represents a unique item identifier
type ItemID string

// DemandRecord represents one historical period's demand as returned by the
// upstream history API. Demand is a pointer so a record missing the field
// can be told apart from a record with a literal zero.
type DemandRecord struct {
	Date   time.Time
	Demand *float64
}

// DailyDemand represents one day of caller-supplied demand consumed by the
// inventory simulation. Quantity follows the same pointer convention as
// DemandRecord.
type DailyDemand struct {
	Date     time.Time
	Quantity *float64
}

// NewDemandRecord creates a DemandRecord with a present demand value
func NewDemandRecord(date time.Time, demand float64) DemandRecord {
	return DemandRecord{Date: date, Demand: &demand}
}

// NewDailyDemand creates a DailyDemand with a present quantity value
func NewDailyDemand(date time.Time, quantity float64) DailyDemand {
	return DailyDemand{Date: date, Quantity: &quantity}
}
