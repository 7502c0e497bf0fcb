package reports

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestConversionRate(t *testing.T) {
	cases := []struct {
		name     string
		orders   int
		budgets  int
		expected string
	}{
		{"half converted", 5, 10, "50"},
		{"all converted", 4, 4, "100"},
		{"more orders than budgets", 6, 4, "150"},
		{"no budgets", 3, 0, "0"},
		{"nothing at all", 0, 0, "0"},
	}
	for _, tc := range cases {
		got := conversionRate(tc.orders, tc.budgets)
		if !got.Equal(decimal.RequireFromString(tc.expected)) {
			t.Errorf("%s: expected %s%%, got %s", tc.name, tc.expected, got)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	if got := monthLabel(1); got != "Jan" {
		t.Errorf("month 1: got %q", got)
	}
	if got := monthLabel(12); got != "Dez" {
		t.Errorf("month 12: got %q", got)
	}
	for _, mes := range []int{0, 13, -1} {
		if got := monthLabel(mes); got != "" {
			t.Errorf("month %d: expected empty label, got %q", mes, got)
		}
	}
}
