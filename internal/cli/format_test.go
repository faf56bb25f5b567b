package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatGrouped(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"100000", "1,00,000"},
		{"1234567", "12,34,567"},
		{"120000", "1,20,000"},
		{"12345678", "1,23,45,678"},
		{"-5000", "-5,000"},
		{"-285000", "-2,85,000"},
	}

	for _, tc := range cases {
		if got := FormatGrouped(tc.in); got != tc.want {
			t.Errorf("FormatGrouped(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount("৳", decimal.NewFromInt(120000)); got != "৳1,20,000" {
		t.Errorf("FormatAmount = %s", got)
	}
	if got := FormatAmount("৳", decimal.NewFromFloat(500.5)); got != "৳500.50" {
		t.Errorf("FormatAmount with fraction = %s", got)
	}
	if got := FormatAmount("", decimal.NewFromInt(-5000)); got != "-5,000" {
		t.Errorf("FormatAmount negative = %s", got)
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned("৳", decimal.NewFromInt(1000), true); got != "+৳1,000" {
		t.Errorf("income = %s", got)
	}
	if got := FormatSigned("৳", decimal.NewFromInt(400), false); got != "-৳400" {
		t.Errorf("expense = %s", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "05 Aug 2026" {
		t.Errorf("FormatDate = %s", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("groceries", 5); got != "groc…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("ok", 5); got != "ok" {
		t.Errorf("Truncate short = %q", got)
	}
}
