package entities

import (
	"errors"
	"fmt"
)

// Sentinel errors for the planning core. Callers distinguish them with
// errors.Is; the typed errors below carry per-record context and are matched
// with errors.As.
var (
	// ErrEmptyInput is returned when statistics are requested over zero
	// observations.
	ErrEmptyInput = errors.New("statistics require at least one observation")

	// ErrEmptyData is returned when a required input sequence contains no
	// usable records.
	ErrEmptyData = errors.New("no demand data found in records")

	// ErrNoUpstreamData is returned when the upstream history API responds
	// successfully but with zero records. It is distinct from ErrEmptyData so
	// callers can tell an empty upstream payload apart from an empty
	// extracted sequence.
	ErrNoUpstreamData = errors.New("no historical data received from upstream")
)

// MalformedRecordError reports a record missing a required numeric field.
type MalformedRecordError struct {
	ItemID ItemID
	Field  string
	Index  int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("record %d for item %s is missing field %q", e.Index, e.ItemID, e.Field)
}

// UpstreamError reports a failed call to the upstream demand history API.
// StatusCode is 0 when the request never completed.
type UpstreamError struct {
	ItemID     ItemID
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch historical data for item %s: HTTP %d", e.ItemID, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch historical data for item %s: %v", e.ItemID, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
