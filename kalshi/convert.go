package kalshi

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DollarsToCents converts a dollar string to whole cents.
// "0.52" -> 52, "1.00" -> 100. Returns 0 for empty or invalid input.
func DollarsToCents(dollars string) int {
	dollars = strings.TrimSpace(dollars)
	if dollars == "" {
		return 0
	}

	f, err := strconv.ParseFloat(dollars, 64)
	if err != nil {
		return 0
	}

	return int(f*100 + 0.5)
}

// CentsToDollars formats cents as a dollar string. 52 -> "0.52".
func CentsToDollars(cents int) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// ParseTimestamp parses an ISO 8601 timestamp to microseconds since epoch.
// Returns 0 for empty or invalid input.
func ParseTimestamp(iso string) int64 {
	if iso == "" {
		return 0
	}

	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		// Try without timezone
		t, err = time.Parse("2006-01-02T15:04:05", iso)
		if err != nil {
			return 0
		}
	}

	return t.UnixMicro()
}
