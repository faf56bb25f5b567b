package advisor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/hisab/internal/model"
	"github.com/theirongolddev/hisab/internal/report"
)

// recentLimit is how many transactions the prompts mention.
const recentLimit = 3

// Digest is the compact view of the financial state that prompts are
// built from. Keeping it a plain value makes prompt construction
// testable without a live book.
type Digest struct {
	BankBalance decimal.Decimal
	TotalDebt   decimal.Decimal
	Recent      []model.Transaction
	GoalCount   int
	Goals       []model.Goal
	Liabilities []model.Liability
}

// NewDigest summarizes a state snapshot.
func NewDigest(s model.FinancialState) Digest {
	recent := s.Transactions
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	return Digest{
		BankBalance: s.BankBalance,
		TotalDebt:   report.TotalRemainingDebt(s.Liabilities),
		Recent:      recent,
		GoalCount:   len(s.Goals),
		Goals:       s.Goals,
		Liabilities: s.Liabilities,
	}
}

// dailyPrompt asks for a short daily status update.
func dailyPrompt(d Digest) string {
	var b strings.Builder
	b.WriteString("You are a personal finance analyst for a single user in Bangladesh. ")
	b.WriteString("Write a brief daily update (2-3 sentences, plain text, no markdown) on their finances. ")
	b.WriteString("Be encouraging but honest about debt.\n\n")
	fmt.Fprintf(&b, "Bank balance: %s BDT\n", d.BankBalance)
	fmt.Fprintf(&b, "Total outstanding debt: %s BDT\n", d.TotalDebt)
	fmt.Fprintf(&b, "Active savings goals: %d\n", d.GoalCount)
	if len(d.Recent) > 0 {
		b.WriteString("Most recent transactions:\n")
		for _, t := range d.Recent {
			fmt.Fprintf(&b, "- %s %s BDT (%s)\n", t.Type, t.Amount, t.Category)
		}
	}
	return b.String()
}

// strategyPrompt asks for a payoff and savings plan.
func strategyPrompt(d Digest) string {
	var b strings.Builder
	b.WriteString("You are a personal finance analyst. Given the debts and savings goals below, ")
	b.WriteString("suggest a concrete monthly repayment plan. Compare snowball (smallest debt first) ")
	b.WriteString("and avalanche ordering and recommend one. Keep it under 150 words, plain text.\n\n")
	fmt.Fprintf(&b, "Bank balance: %s BDT\n", d.BankBalance)
	b.WriteString("Debts:\n")
	for _, l := range d.Liabilities {
		fmt.Fprintf(&b, "- %s: %s BDT remaining of %s\n", l.Title, l.Remaining(), l.TotalAmount)
	}
	if len(d.Goals) > 0 {
		b.WriteString("Savings goals:\n")
		for _, g := range d.Goals {
			fmt.Fprintf(&b, "- %s: %s of %s BDT saved\n", g.Title, g.CurrentAmount, g.TargetAmount)
		}
	}
	return b.String()
}
