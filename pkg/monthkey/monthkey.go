// Package monthkey provides utilities for the textual month keys used
// throughout the forecast: dotted ("2025.11") and compact ("202511").
package monthkey

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/pkg/constants"
)

// Layout is the dotted month-key format.
const Layout = constants.MonthKeyLayout

// ToCompact converts a dotted month key ("2025.11") to its compact form
// ("202511"). This is a plain separator substitution; malformed input passes
// through with only its dots removed.
func ToCompact(month string) string {
	return strings.ReplaceAll(month, ".", "")
}

// ToDotted converts a compact month key ("202511") to dotted form
// ("2025.11"). Inputs that are not exactly six characters are returned
// unchanged.
func ToDotted(month string) string {
	if len(month) != 6 {
		return month
	}
	return month[:4] + "." + month[4:]
}

// Valid reports whether month is a well-formed dotted month key with a month
// field in 01..12.
func Valid(month string) bool {
	_, err := time.Parse(Layout, month)
	return err == nil
}

// Next returns the month key immediately after the given dotted month,
// rolling December into January of the following year. Input that does not
// parse as a dotted month key is rejected.
func Next(month string) (string, error) {
	t, err := time.Parse(Layout, month)
	if err != nil {
		return month, fmt.Errorf("failed to parse month key %s: %w", month, err)
	}
	return t.AddDate(0, 1, 0).Format(Layout), nil
}

// DaysIn looks up the number of days for month in the caller-supplied table,
// falling back to 30 for missing entries. This is a lookup, never a calendar
// computation; supplying correct day counts (leap-year February included) is
// the table author's responsibility.
func DaysIn(month string, table map[string]int) int {
	if days, ok := table[month]; ok {
		return days
	}
	return constants.DefaultDaysInMonth
}
