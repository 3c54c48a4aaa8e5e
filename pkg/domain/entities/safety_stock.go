package entities

// SafetyStockResult contains the output of a safety stock calculation.
// SafetyStock, AverageDemand and StdDemand are rounded to 2 decimal places.
// ServiceLevel echoes the caller's requested service level verbatim.
type SafetyStockResult struct {
	ItemID        ItemID
	SafetyStock   float64
	AverageDemand float64
	StdDemand     float64
	ServiceLevel  float64
	SampleSize    int
}
