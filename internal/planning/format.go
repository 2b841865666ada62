package planning

import (
	"fmt"
	"time"
)

// FormatCurrency renders an amount for messages and reports.
func FormatCurrency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// FormatDate renders a date the way the reports do.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
