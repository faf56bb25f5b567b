package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/hisab/internal/book"
	"github.com/theirongolddev/hisab/internal/model"
)

// Entry kinds selectable in the add form.
const (
	entryExpense = "expense"
	entryIncome  = "income"
	entryFather  = "father"
	entryGoal    = "goal"
	entryDebt    = "debt"
)

// entryValues holds the add-entry form state across groups.
type entryValues struct {
	Kind     string
	Amount   string
	Category string
	Note     string

	Title    string
	Target   string
	GoalType string

	Total    string
	Paid     string
	DebtType string
}

// validAmount rejects values decimal can't parse. Used as a huh input
// validator so bad input is caught in the form, not by the book.
func validAmount(s string) error {
	if s == "" {
		return fmt.Errorf("amount is required")
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return fmt.Errorf("not a number")
	}
	return nil
}

func optionalAmount(s string) error {
	if s == "" {
		return nil
	}
	return validAmount(s)
}

// newEntryForm builds the add-entry form. Groups after the first are
// shown or hidden based on the selected kind.
func newEntryForm(vals *entryValues) *huh.Form {
	isTransaction := func() bool {
		return vals.Kind == entryExpense || vals.Kind == entryIncome || vals.Kind == entryFather
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What are you recording?").
				Options(
					huh.NewOption("Expense", entryExpense),
					huh.NewOption("Income", entryIncome),
					huh.NewOption("Sent to father", entryFather),
					huh.NewOption("Savings goal", entryGoal),
					huh.NewOption("Debt / loan", entryDebt),
				).
				Value(&vals.Kind),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Validate(validAmount).
				Value(&vals.Amount),
			huh.NewInput().
				Title("Category").
				Placeholder("groceries, salary, rent...").
				Value(&vals.Category),
			huh.NewInput().
				Title("Note").
				Value(&vals.Note),
		).WithHideFunc(func() bool { return !isTransaction() }),

		huh.NewGroup(
			huh.NewInput().
				Title("Goal title").
				Value(&vals.Title),
			huh.NewInput().
				Title("Target amount").
				Validate(validAmount).
				Value(&vals.Target),
			huh.NewSelect[string]().
				Title("Horizon").
				Options(
					huh.NewOption("Short term", string(model.ShortTerm)),
					huh.NewOption("Long term", string(model.LongTerm)),
				).
				Value(&vals.GoalType),
		).WithHideFunc(func() bool { return vals.Kind != entryGoal }),

		huh.NewGroup(
			huh.NewInput().
				Title("Debt title").
				Value(&vals.Title),
			huh.NewInput().
				Title("Total amount").
				Validate(validAmount).
				Value(&vals.Total),
			huh.NewInput().
				Title("Already paid").
				Placeholder("0").
				Validate(optionalAmount).
				Value(&vals.Paid),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Loan", string(model.Loan)),
					huh.NewOption("Debt", string(model.Debt)),
					huh.NewOption("Priority", string(model.Special)),
				).
				Value(&vals.DebtType),
		).WithHideFunc(func() bool { return vals.Kind != entryDebt }),
	)
}

// apply writes the completed form into the book.
func (v entryValues) apply(b *book.Book) error {
	switch v.Kind {
	case entryExpense, entryIncome, entryFather:
		amount, err := decimal.NewFromString(v.Amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q", v.Amount)
		}
		in := book.TransactionInput{
			Type:     model.Expense,
			Amount:   amount,
			Category: v.Category,
			Date:     time.Now(),
			Note:     v.Note,
		}
		if v.Kind == entryIncome {
			in.Type = model.Income
		}
		if v.Kind == entryFather && in.Category == "" {
			in.Category = model.CategoryFatherSupport
		}
		_, err = b.AddTransaction(in)
		return err

	case entryGoal:
		target, err := decimal.NewFromString(v.Target)
		if err != nil {
			return fmt.Errorf("invalid target %q", v.Target)
		}
		_, err = b.AddGoal(book.GoalInput{
			Title:        v.Title,
			TargetAmount: target,
			Type:         model.GoalType(v.GoalType),
		})
		return err

	case entryDebt:
		total, err := decimal.NewFromString(v.Total)
		if err != nil {
			return fmt.Errorf("invalid total %q", v.Total)
		}
		paid := decimal.Zero
		if v.Paid != "" {
			if paid, err = decimal.NewFromString(v.Paid); err != nil {
				return fmt.Errorf("invalid paid amount %q", v.Paid)
			}
		}
		_, err = b.AddLiability(book.LiabilityInput{
			Title:       v.Title,
			TotalAmount: total,
			PaidAmount:  paid,
			Type:        model.LiabilityType(v.DebtType),
		})
		return err
	}

	return fmt.Errorf("unknown entry kind %q", v.Kind)
}

// paymentValues holds the debt payment form state.
type paymentValues struct {
	Amount string
}

// newPaymentForm builds the pay-debt form for the selected liability.
func newPaymentForm(l model.Liability, currency string, vals *paymentValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Pay toward %s", l.Title)).
				Description(fmt.Sprintf("%s%s remaining", currency, l.Remaining())).
				Validate(validAmount).
				Value(&vals.Amount),
		),
	)
}

// apply records the payment against the liability.
func (v paymentValues) apply(b *book.Book, liabilityID string) error {
	amount, err := decimal.NewFromString(v.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q", v.Amount)
	}
	_, err = b.RecordDebtPayment(liabilityID, amount)
	return err
}
