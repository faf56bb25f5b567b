package tui

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/hisab/internal/book"
	"github.com/theirongolddev/hisab/internal/model"
)

type memPersister struct {
	saved *model.FinancialState
}

func (m *memPersister) Load() (*model.FinancialState, error) { return m.saved, nil }
func (m *memPersister) Save(s model.FinancialState) error {
	c := s.Clone()
	m.saved = &c
	return nil
}

func openTestBook(t *testing.T) *book.Book {
	t.Helper()
	b, err := book.Open(&memPersister{})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestEntryApplyExpense(t *testing.T) {
	b := openTestBook(t)
	before := b.Snapshot().BankBalance

	v := entryValues{Kind: entryExpense, Amount: "400", Category: "groceries"}
	if err := v.apply(b); err != nil {
		t.Fatal(err)
	}

	s := b.Snapshot()
	if !s.BankBalance.Equal(before.Sub(decimal.NewFromInt(400))) {
		t.Errorf("balance = %s, want %s", s.BankBalance, before.Sub(decimal.NewFromInt(400)))
	}
	if s.Transactions[0].Category != "groceries" {
		t.Errorf("category = %q", s.Transactions[0].Category)
	}
}

func TestEntryApplyFatherDefaultsCategory(t *testing.T) {
	b := openTestBook(t)

	v := entryValues{Kind: entryFather, Amount: "5000"}
	if err := v.apply(b); err != nil {
		t.Fatal(err)
	}

	got := b.Snapshot().Transactions[0]
	if got.Category != model.CategoryFatherSupport {
		t.Errorf("category = %q, want %q", got.Category, model.CategoryFatherSupport)
	}
	if got.Type != model.Expense {
		t.Errorf("type = %q, want expense", got.Type)
	}
}

func TestEntryApplyGoalAndDebt(t *testing.T) {
	b := openTestBook(t)

	g := entryValues{Kind: entryGoal, Title: "Bike", Target: "50000", GoalType: string(model.ShortTerm)}
	if err := g.apply(b); err != nil {
		t.Fatal(err)
	}

	d := entryValues{Kind: entryDebt, Title: "Office", Total: "20000", Paid: "5000", DebtType: string(model.Debt)}
	if err := d.apply(b); err != nil {
		t.Fatal(err)
	}

	s := b.Snapshot()
	if len(s.Goals) != 1 || s.Goals[0].Title != "Bike" {
		t.Errorf("goals = %+v", s.Goals)
	}
	var added *model.Liability
	for i := range s.Liabilities {
		if s.Liabilities[i].Title == "Office" {
			added = &s.Liabilities[i]
		}
	}
	if added == nil {
		t.Fatal("liability not added")
	}
	if !added.Remaining().Equal(decimal.NewFromInt(15000)) {
		t.Errorf("remaining = %s, want 15000", added.Remaining())
	}
}

func TestEntryApplyBadAmount(t *testing.T) {
	b := openTestBook(t)
	before := len(b.Snapshot().Transactions)

	v := entryValues{Kind: entryExpense, Amount: "lots"}
	if err := v.apply(b); err == nil {
		t.Fatal("expected error for non-numeric amount")
	}
	if got := len(b.Snapshot().Transactions); got != before {
		t.Errorf("transaction count changed on bad input: %d -> %d", before, got)
	}
}

func TestPaymentApply(t *testing.T) {
	b := openTestBook(t)
	l, ok := b.FindLiability("Mama")
	if !ok {
		t.Fatal("seed liability missing")
	}

	v := paymentValues{Amount: "5000"}
	if err := v.apply(b, l.ID); err != nil {
		t.Fatal(err)
	}

	updated, _ := b.FindLiability(l.ID)
	if !updated.PaidAmount.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("paid = %s, want 5000", updated.PaidAmount)
	}
}

func TestValidAmount(t *testing.T) {
	if err := validAmount("120000"); err != nil {
		t.Errorf("valid amount rejected: %v", err)
	}
	if err := validAmount(""); err == nil {
		t.Error("empty amount accepted")
	}
	if err := validAmount("12x"); err == nil {
		t.Error("garbage amount accepted")
	}
	if err := optionalAmount(""); err != nil {
		t.Error("optional empty amount rejected")
	}
}
