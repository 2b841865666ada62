package planning

import (
	"testing"

	"planboard/internal/models"
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		progress int
		blocked  bool
		want     models.TaskStatus
	}{
		{0, false, models.StatusNotStarted},
		{1, false, models.StatusInProgress},
		{45, false, models.StatusInProgress},
		{99, false, models.StatusInProgress},
		{100, false, models.StatusCompleted},
		{0, true, models.StatusBlocked},
		{50, true, models.StatusBlocked},
		// completed takes priority over blocked
		{100, true, models.StatusCompleted},
	}
	for _, c := range cases {
		if got := DeriveStatus(c.progress, c.blocked); got != c.want {
			t.Errorf("DeriveStatus(%d, %v) = %q, want %q", c.progress, c.blocked, got, c.want)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := FormatCurrency(1234.5); got != "$1234.50" {
		t.Errorf("FormatCurrency = %q", got)
	}
	if got := FormatPercent(87.25); got != "87.2%" && got != "87.3%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatDate(d(t, "2025-03-09")); got != "09.03.2025" {
		t.Errorf("FormatDate = %q", got)
	}
}
