package entities

// SampleStatistics holds population statistics computed over a sample of
// observations. StdDev is always >= 0 and SampleSize is the number of
// observations the statistics were computed from.
type SampleStatistics struct {
	Mean       float64
	StdDev     float64
	SampleSize int
}
