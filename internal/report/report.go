// Package report computes derived metrics over a financial state
// snapshot. Everything here is a pure function recomputed on each
// render; nothing is cached or maintained incrementally.
package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/hisab/internal/model"
)

// MonthlyFlow holds this month's income/expense totals.
type MonthlyFlow struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense.
func (f MonthlyFlow) Net() decimal.Decimal {
	return f.Income.Sub(f.Expense)
}

// TransactionsInMonth filters transactions whose date falls in the same
// calendar month and year as now.
func TransactionsInMonth(txs []model.Transaction, now time.Time) []model.Transaction {
	year, month := now.Year(), now.Month()
	var out []model.Transaction
	for _, t := range txs {
		if t.Date.Year() == year && t.Date.Month() == month {
			out = append(out, t)
		}
	}
	return out
}

// Monthly partitions the current month's transaction amounts by type.
func Monthly(s model.FinancialState, now time.Time) MonthlyFlow {
	var f MonthlyFlow
	for _, t := range TransactionsInMonth(s.Transactions, now) {
		if t.Type == model.Income {
			f.Income = f.Income.Add(t.Amount)
		} else {
			f.Expense = f.Expense.Add(t.Amount)
		}
	}
	return f
}

// TotalRemainingDebt sums total minus paid over all liabilities.
func TotalRemainingDebt(liabilities []model.Liability) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range liabilities {
		sum = sum.Add(l.Remaining())
	}
	return sum
}

// FatherTransfers totals this month's transactions whose category or
// note contains the fixed father marker.
func FatherTransfers(s model.FinancialState, now time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range TransactionsInMonth(s.Transactions, now) {
		if strings.Contains(t.Category, model.FatherMarker) || strings.Contains(t.Note, model.FatherMarker) {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// SpecialDebts returns liabilities that are special by type, or whose
// title contains one of the seed keywords. The dual match keeps
// user-renamed copies of the seeded debts on the quick-access trackers.
func SpecialDebts(liabilities []model.Liability) []model.Liability {
	var out []model.Liability
	for _, l := range liabilities {
		if l.Type == model.Special || titleHasKeyword(l.Title) {
			out = append(out, l)
		}
	}
	return out
}

func titleHasKeyword(title string) bool {
	for _, kw := range model.SpecialDebtKeywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// Progress returns 100*part/whole as a float in [0, 100]. A zero or
// negative whole yields 0 rather than dividing by it.
func Progress(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	pct, _ := part.Div(whole).Mul(decimal.NewFromInt(100)).Float64()
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// GoalProgress is the goal's saved-vs-target percentage, clamped.
func GoalProgress(g model.Goal) float64 {
	return Progress(g.CurrentAmount, g.TargetAmount)
}

// DebtProgress is the liability's paid-vs-total percentage, clamped.
func DebtProgress(l model.Liability) float64 {
	return Progress(l.PaidAmount, l.TotalAmount)
}
