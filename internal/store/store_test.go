package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/hisab/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "hisab.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadEmptyReturnsNil(t *testing.T) {
	s := openTestStore(t)

	state, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != nil {
		t.Fatalf("Load on empty store = %+v, want nil", state)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := model.FinancialState{
		BankBalance:          decimal.NewFromInt(-5000),
		MonthlyInstallment:   decimal.NewFromInt(10000),
		MonthlyFatherSupport: decimal.NewFromInt(5000),
		Transactions: []model.Transaction{
			{
				ID:       "t1",
				Type:     model.Expense,
				Amount:   decimal.NewFromInt(5000),
				Category: model.CategoryDebtRepayment,
				Date:     time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
				Note:     "Mama repayment",
			},
		},
		Goals: []model.Goal{
			{ID: "g1", Title: "Bike", TargetAmount: decimal.NewFromInt(50000), CurrentAmount: decimal.NewFromInt(2000), Type: model.ShortTerm},
		},
		Liabilities: []model.Liability{
			{ID: "sd-mama", Title: "Mama", TotalAmount: decimal.NewFromInt(70000), PaidAmount: decimal.NewFromInt(5000), Type: model.Special},
		},
	}

	if err := s.Save(in); err != nil {
		t.Fatal(err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if out == nil {
		t.Fatal("Load returned nil after Save")
	}

	if !out.BankBalance.Equal(in.BankBalance) {
		t.Errorf("BankBalance = %s, want %s", out.BankBalance, in.BankBalance)
	}
	if len(out.Transactions) != 1 || out.Transactions[0].ID != "t1" {
		t.Fatalf("Transactions did not round trip: %+v", out.Transactions)
	}
	got := out.Transactions[0]
	if !got.Amount.Equal(in.Transactions[0].Amount) {
		t.Errorf("Amount = %s, want 5000", got.Amount)
	}
	if !got.Date.Equal(in.Transactions[0].Date) {
		t.Errorf("Date = %v, want %v", got.Date, in.Transactions[0].Date)
	}
	if len(out.Goals) != 1 || out.Goals[0].Title != "Bike" {
		t.Errorf("Goals did not round trip: %+v", out.Goals)
	}
	if len(out.Liabilities) != 1 || !out.Liabilities[0].Remaining().Equal(decimal.NewFromInt(65000)) {
		t.Errorf("Liabilities did not round trip: %+v", out.Liabilities)
	}
}

func TestSaveReplacesPreviousState(t *testing.T) {
	s := openTestStore(t)

	first := model.FinancialState{BankBalance: decimal.NewFromInt(1)}
	second := model.FinancialState{BankBalance: decimal.NewFromInt(2)}

	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(second); err != nil {
		t.Fatal(err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !out.BankBalance.Equal(second.BankBalance) {
		t.Errorf("BankBalance = %s, want 2 (last write wins)", out.BankBalance)
	}
}

func TestLoadCorruptPayload(t *testing.T) {
	s := openTestStore(t)

	_, err := s.db.Exec(`INSERT INTO state (key, payload, saved_at) VALUES (?, ?, ?)`,
		stateKey, []byte("{not json"), "2026-08-20T00:00:00Z")
	if err != nil {
		t.Fatal(err)
	}

	_, err = s.Load()
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("Load on corrupt payload = %v, want ErrCorruptState", err)
	}
}
