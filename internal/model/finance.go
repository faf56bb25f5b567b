// Package model defines the domain types for the hisab financial book.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// GoalType classifies a savings goal by horizon.
type GoalType string

const (
	ShortTerm GoalType = "short-term"
	LongTerm  GoalType = "long-term"
)

// Valid reports whether g is a known goal type.
func (g GoalType) Valid() bool {
	return g == ShortTerm || g == LongTerm
}

// LiabilityType classifies an outstanding obligation.
type LiabilityType string

const (
	Loan LiabilityType = "loan"
	Debt LiabilityType = "debt"
	// Special marks the pre-seeded named obligations that get
	// first-class quick-access treatment in the dashboard.
	Special LiabilityType = "special"
)

// Valid reports whether l is a known liability type.
func (l LiabilityType) Valid() bool {
	return l == Loan || l == Debt || l == Special
}

// Transaction is a single dated income or expense record affecting the
// bank balance. Immutable once created; removed only by deletion, which
// reverses its balance effect.
type Transaction struct {
	ID       string          `json:"id"`
	Type     TransactionType `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
	Note     string          `json:"note"`
}

// Goal is a savings target with a deadline and progress tracking.
// CurrentAmount is set at creation; nothing increments it automatically
// from transactions.
type Goal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      time.Time       `json:"deadline"`
	Type          GoalType        `json:"type"`
}

// Liability is an outstanding obligation tracked by total vs. paid amount.
type Liability struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Type        LiabilityType   `json:"type"`
}

// Remaining returns the unpaid portion of the liability.
func (l Liability) Remaining() decimal.Decimal {
	return l.TotalAmount.Sub(l.PaidAmount)
}

// FinancialState is the root aggregate: the entire book, serialized as a
// single blob on every mutation. Transactions are ordered newest-first.
type FinancialState struct {
	BankBalance          decimal.Decimal `json:"bankBalance"`
	MonthlyInstallment   decimal.Decimal `json:"monthlyInstallment"`
	MonthlyFatherSupport decimal.Decimal `json:"monthlyFatherSupport"`
	Transactions         []Transaction   `json:"transactions"`
	Goals                []Goal          `json:"goals"`
	Liabilities          []Liability     `json:"liabilities"`
}

// Clone returns a deep copy of the state. Mutating the copy never
// affects the original; snapshots handed to renderers and the advisor
// go through here.
func (s FinancialState) Clone() FinancialState {
	out := s
	out.Transactions = make([]Transaction, len(s.Transactions))
	copy(out.Transactions, s.Transactions)
	out.Goals = make([]Goal, len(s.Goals))
	copy(out.Goals, s.Goals)
	out.Liabilities = make([]Liability, len(s.Liabilities))
	copy(out.Liabilities, s.Liabilities)
	return out
}
