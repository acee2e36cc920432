// Package digest renders an alert list into the plain-text event list embedded
// in the reminder email template.
package digest

import (
	"fmt"
	"strings"

	"dateminder/internal/types"
)

// Render produces one line per alert in the form "<urgency> -- <label>",
// newline-joined with no trailing newline. An empty alert list renders as an
// empty string.
func Render(alerts []types.Alert) string {
	if len(alerts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(alerts))
	for _, a := range alerts {
		lines = append(lines, urgency(a.Days)+" -- "+a.Label)
	}
	return strings.Join(lines, "\n")
}

// urgency maps a day count to its display prefix. Day counts of one through
// three keep the historical "day(s)" suffix.
func urgency(days int) string {
	switch {
	case days == 0:
		return "TODAY"
	case days <= 3:
		return fmt.Sprintf("In %d day(s)", days)
	default:
		return fmt.Sprintf("In %d days", days)
	}
}
