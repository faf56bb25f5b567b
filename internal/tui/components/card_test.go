package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLayoutRowSumsToTotal(t *testing.T) {
	cases := []struct{ total, n int }{
		{100, 3},
		{97, 4},
		{10, 1},
		{7, 5},
	}

	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}

	if LayoutRow(100, 0) != nil {
		t.Error("LayoutRow with n=0 should return nil")
	}
}

func TestSparklineLength(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4}
	got := Sparkline(values, lipgloss.Color("1"))
	if lipgloss.Width(got) != len(values) {
		t.Errorf("Sparkline width = %d, want %d", lipgloss.Width(got), len(values))
	}

	if Sparkline(nil, lipgloss.Color("1")) != "" {
		t.Error("Sparkline of empty input should be empty")
	}
}

func TestSparklineAllZeros(t *testing.T) {
	// Zero peak must not divide by zero.
	got := Sparkline([]float64{0, 0, 0}, lipgloss.Color("1"))
	if lipgloss.Width(got) != 3 {
		t.Errorf("Sparkline width = %d, want 3", lipgloss.Width(got))
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('d'); idx != 0 {
		t.Errorf("TabIdxByKey('d') = %d, want 0", idx)
	}
	if idx := TabIdxByKey('z'); idx != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", idx)
	}
}
