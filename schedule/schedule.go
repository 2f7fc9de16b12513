package schedule

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Seitaro-Yuki/peer-1on1/types"
)

// Load reads and validates a schedule document from the given path.
//
// A missing exclusion list or history is tolerated; a missing or duplicated
// roster is not.
//
// Parameters:
//   - path: Path to the JSON document
//
// Returns:
//   - *types.Schedule: Parsed and validated document
//   - error: Read, parse, or validation failure
func Load(path string) (*types.Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}

	var sched types.Schedule
	if err := json.Unmarshal(data, &sched); err != nil {
		return nil, fmt.Errorf("parse schedule %s: %w", path, err)
	}

	if err := sched.Validate(); err != nil {
		return nil, fmt.Errorf("validate schedule %s: %w", path, err)
	}

	return &sched, nil
}

// Append returns a copy of the schedule with the period appended.
//
// The input schedule is not mutated; history is append-only.
//
// Parameters:
//   - sched: Existing document
//   - period: Newly generated period
//
// Returns:
//   - *types.Schedule: New document with the period at the end of Months
func Append(sched *types.Schedule, period types.Period) *types.Schedule {
	out := *sched
	out.Months = make([]types.Period, 0, len(sched.Months)+1)
	out.Months = append(out.Months, sched.Months...)
	out.Months = append(out.Months, period)

	return &out
}

// Write emits the document as pretty-printed JSON.
//
// Labels stay as raw UTF-8; HTML escaping is disabled so the output matches
// what a human would write by hand.
//
// Parameters:
//   - w: Destination writer
//   - sched: Document to emit
//
// Returns:
//   - error: Encoding or write failure
func Write(w io.Writer, sched *types.Schedule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(sched); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}

	return nil
}
