package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/hisab/internal/model"
)

func amt(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func tx(typ model.TransactionType, amount int64, date time.Time, category, note string) model.Transaction {
	return model.Transaction{Type: typ, Amount: amt(amount), Date: date, Category: category, Note: note}
}

func TestMonthlyPartitionsByType(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, 7, 20, 12, 0, 0, 0, time.UTC)
	lastYear := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

	s := model.FinancialState{Transactions: []model.Transaction{
		tx(model.Income, 1000, now, "salary", ""),
		tx(model.Expense, 400, now, "groceries", ""),
		tx(model.Income, 9999, lastMonth, "salary", ""),
		tx(model.Expense, 5555, lastYear, "rent", ""),
	}}

	f := Monthly(s, now)
	if !f.Income.Equal(amt(1000)) {
		t.Errorf("Income = %s, want 1000", f.Income)
	}
	if !f.Expense.Equal(amt(400)) {
		t.Errorf("Expense = %s, want 400", f.Expense)
	}
	if !f.Net().Equal(amt(600)) {
		t.Errorf("Net = %s, want 600", f.Net())
	}
}

func TestMonthlyMatchesCalendarMonthAndYear(t *testing.T) {
	// Same month number in a different year must not match.
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	s := model.FinancialState{Transactions: []model.Transaction{
		tx(model.Income, 100, time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC), "", ""),
	}}

	if got := len(TransactionsInMonth(s.Transactions, now)); got != 0 {
		t.Errorf("matched %d transactions across years, want 0", got)
	}
}

func TestTotalRemainingDebt(t *testing.T) {
	liabilities := []model.Liability{
		{TotalAmount: amt(120000), PaidAmount: amt(0)},
		{TotalAmount: amt(70000), PaidAmount: amt(5000)},
		{TotalAmount: amt(100000), PaidAmount: amt(0)},
	}

	got := TotalRemainingDebt(liabilities)
	if !got.Equal(amt(285000)) {
		t.Errorf("TotalRemainingDebt = %s, want 285000", got)
	}
}

func TestFatherTransfersMatchesCategoryOrNote(t *testing.T) {
	now := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	s := model.FinancialState{Transactions: []model.Transaction{
		tx(model.Expense, 3000, now, model.CategoryFatherSupport, ""),
		tx(model.Expense, 2000, now, "misc", "sent to father's bank account"),
		tx(model.Expense, 500, now, "groceries", "weekly bazar"),
		tx(model.Expense, 4000, now.AddDate(0, -1, 0), model.CategoryFatherSupport, ""),
	}}

	got := FatherTransfers(s, now)
	if !got.Equal(amt(5000)) {
		t.Errorf("FatherTransfers = %s, want 5000", got)
	}
}

func TestSpecialDebtsDualMatch(t *testing.T) {
	liabilities := []model.Liability{
		{ID: "a", Title: "Car loan", Type: model.Loan},
		{ID: "b", Title: "Office", Type: model.Special},
		{ID: "c", Title: "Kisti (renamed)", Type: model.Debt},
	}

	got := SpecialDebts(liabilities)
	if len(got) != 2 {
		t.Fatalf("SpecialDebts returned %d, want 2", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "c" {
		t.Errorf("SpecialDebts = [%s %s], want [b c]", got[0].ID, got[1].ID)
	}
}

func TestProgressClamping(t *testing.T) {
	cases := []struct {
		name        string
		part, whole int64
		want        float64
	}{
		{"half", 50, 100, 50},
		{"full", 100, 100, 100},
		{"overshoot clamps", 150, 100, 100},
		{"zero denominator", 50, 0, 0},
		{"negative part", -10, 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Progress(amt(tc.part), amt(tc.whole))
			if got != tc.want {
				t.Errorf("Progress(%d, %d) = %v, want %v", tc.part, tc.whole, got, tc.want)
			}
		})
	}
}

func TestGoalAndDebtProgress(t *testing.T) {
	g := model.Goal{TargetAmount: amt(50000), CurrentAmount: amt(60000)}
	if got := GoalProgress(g); got != 100 {
		t.Errorf("GoalProgress = %v, want 100 (clamped)", got)
	}

	l := model.Liability{TotalAmount: amt(70000), PaidAmount: amt(5000)}
	want := 100 * 5000.0 / 70000.0
	if got := DebtProgress(l); got < want-0.001 || got > want+0.001 {
		t.Errorf("DebtProgress = %v, want ~%v", got, want)
	}
}
