package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/Seitaro-Yuki/peer-1on1/types"
)

// LabelPolicy selects how the label of a new period is computed.
type LabelPolicy string

const (
	// PolicySuccessor continues the calendar from the last period's label:
	// the month is incremented and rolls into the next year after month 12.
	// Requires a non-empty history with a parseable last label.
	PolicySuccessor LabelPolicy = "successor"

	// PolicyClock labels the new period with the current year and month.
	PolicyClock LabelPolicy = "clock"
)

// Labels are "YYYY年M月" without zero padding, e.g. "2021年10月".
var labelPattern = regexp.MustCompile(`^([0-9]{1,4})年([0-9]{1,2})月$`)

// ParseLabel splits a period label into year and month.
//
// Parameters:
//   - label: Label in "YYYY年M月" form
//
// Returns:
//   - int: Year
//   - int: Month (1-12)
//   - error: Wrapped ErrBadLabel when the label does not match
func ParseLabel(label string) (int, int, error) {
	m := labelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}

	return year, month, nil
}

// FormatLabel renders a year and month as a period label.
func FormatLabel(year, month int) string {
	return fmt.Sprintf("%d年%d月", year, month)
}

// NextLabel computes the label of the period to append.
//
// An empty policy defaults to PolicySuccessor.
//
// Parameters:
//   - policy: Label policy
//   - months: Existing history, chronological
//   - now: Current time, used by PolicyClock
//
// Returns:
//   - string: Label of the new period
//   - error: ErrNoPeriods, wrapped ErrBadLabel, or ErrUnknownPolicy
func NextLabel(policy LabelPolicy, months []types.Period, now time.Time) (string, error) {
	switch policy {
	case PolicyClock:
		return FormatLabel(now.Year(), int(now.Month())), nil

	case PolicySuccessor, "":
		if len(months) == 0 {
			return "", ErrNoPeriods
		}

		year, month, err := ParseLabel(months[len(months)-1].Month)
		if err != nil {
			return "", err
		}

		month++
		if month > 12 {
			year++
			month = 1
		}

		return FormatLabel(year, month), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
}
