package reporting

import (
	"errors"
	"fmt"
	"time"
)

// RangeMode selects how the report window is derived.
type RangeMode string

const (
	Range30Days  RangeMode = "30days"
	Range90Days  RangeMode = "90days"
	Range6Months RangeMode = "6months"
	Range1Year   RangeMode = "1year"
	RangeCustom  RangeMode = "custom"
)

// ErrInvalidRange is returned when a custom window has its start after its
// end. The orchestrator rejects such requests before issuing any fetch.
var ErrInvalidRange = errors.New("range start must not be after range end")

// ParseRangeMode validates a raw range mode string.
func ParseRangeMode(raw string) (RangeMode, error) {
	switch RangeMode(raw) {
	case Range30Days, Range90Days, Range6Months, Range1Year, RangeCustom:
		return RangeMode(raw), nil
	}
	return "", fmt.Errorf("unknown range mode %q", raw)
}

// ResolveRange turns a range mode into concrete [start, end] bounds. Relative
// presets are computed deterministically from now; custom bounds are taken as
// given once validated.
func ResolveRange(mode RangeMode, now, customStart, customEnd time.Time) (time.Time, time.Time, error) {
	switch mode {
	case Range30Days:
		return now.AddDate(0, 0, -30), now, nil
	case Range90Days:
		return now.AddDate(0, 0, -90), now, nil
	case Range6Months:
		return now.AddDate(0, -6, 0), now, nil
	case Range1Year:
		return now.AddDate(-1, 0, 0), now, nil
	case RangeCustom:
		if customStart.After(customEnd) {
			return time.Time{}, time.Time{}, ErrInvalidRange
		}
		return customStart, customEnd, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unknown range mode %q", mode)
}
