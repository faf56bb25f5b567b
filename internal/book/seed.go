package book

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/hisab/internal/model"
)

// Seed returns the initial book for a fresh install: empty ledger, the
// default monthly targets, and the three named special debts.
func Seed() model.FinancialState {
	return model.FinancialState{
		BankBalance:          decimal.Zero,
		MonthlyInstallment:   decimal.NewFromInt(10000),
		MonthlyFatherSupport: decimal.NewFromInt(5000),
		Transactions:         []model.Transaction{},
		Goals:                []model.Goal{},
		Liabilities: []model.Liability{
			{ID: "sd-toma", Title: "Toma", TotalAmount: decimal.NewFromInt(120000), PaidAmount: decimal.Zero, Type: model.Special},
			{ID: "sd-mama", Title: "Mama", TotalAmount: decimal.NewFromInt(70000), PaidAmount: decimal.Zero, Type: model.Special},
			{ID: "sd-kisti", Title: "Kisti", TotalAmount: decimal.NewFromInt(100000), PaidAmount: decimal.Zero, Type: model.Special},
		},
	}
}
