// Package book owns the canonical in-memory financial state and the
// full set of mutations over it. Every mutation validates its input,
// applies atomically under the lock, and persists the whole aggregate
// before returning. Readers get deep-copied snapshots; state never
// escapes by reference.
package book

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/hisab/internal/model"
)

// Persister stores and retrieves the serialized aggregate.
// Load returns (nil, nil) when no state has been saved yet.
type Persister interface {
	Load() (*model.FinancialState, error)
	Save(model.FinancialState) error
}

// Book is the financial state store. Safe for concurrent use; in
// practice mutations arrive from a single UI goroutine and only the
// advisor reads snapshots concurrently.
type Book struct {
	mu      sync.Mutex
	state   model.FinancialState
	persist Persister
}

// Open loads the book from p, seeding a fresh one when nothing is
// stored. The seed is persisted immediately so the first mutation does
// not race a half-initialized store.
func Open(p Persister) (*Book, error) {
	loaded, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("loading book: %w", err)
	}

	b := &Book{persist: p}
	if loaded != nil {
		b.state = loaded.Clone()
		return b, nil
	}

	b.state = Seed()
	if err := p.Save(b.state); err != nil {
		return nil, fmt.Errorf("seeding book: %w", err)
	}
	return b, nil
}

// Snapshot returns a deep copy of the current state.
func (b *Book) Snapshot() model.FinancialState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Clone()
}

// TransactionInput holds the caller-supplied fields for a new transaction.
// A zero Date defaults to today.
type TransactionInput struct {
	Type     model.TransactionType
	Amount   decimal.Decimal
	Category string
	Date     time.Time
	Note     string
}

// AddTransaction validates the input, prepends the transaction, and
// adjusts the bank balance by the signed amount (income +, expense -).
func (b *Book) AddTransaction(in TransactionInput) (model.Transaction, error) {
	if !in.Type.Valid() {
		return model.Transaction{}, fmt.Errorf("%w: %q", ErrInvalidType, in.Type)
	}
	if in.Amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrInvalidAmount, in.Amount)
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	t := model.Transaction{
		ID:       uuid.NewString(),
		Type:     in.Type,
		Amount:   in.Amount,
		Category: in.Category,
		Date:     date,
		Note:     in.Note,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.prependTransaction(t)
	return t, b.save()
}

// RecordDebtPayment pays amount toward the liability with the given id.
// It increments the liability's PaidAmount (overpayment past the total
// is allowed and not clamped), synthesizes a matching expense
// transaction at the head of the ledger, and decrements the balance.
// An unknown id is rejected with ErrNotFound and leaves state unchanged.
func (b *Book) RecordDebtPayment(liabilityID string, amount decimal.Decimal) (model.Transaction, error) {
	if !amount.IsPositive() {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	idx := -1
	for i := range b.state.Liabilities {
		if b.state.Liabilities[i].ID == liabilityID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Transaction{}, fmt.Errorf("%w: liability %q", ErrNotFound, liabilityID)
	}

	l := &b.state.Liabilities[idx]
	l.PaidAmount = l.PaidAmount.Add(amount)

	t := model.Transaction{
		ID:       uuid.NewString(),
		Type:     model.Expense,
		Amount:   amount,
		Category: model.CategoryDebtRepayment,
		Date:     time.Now(),
		Note:     fmt.Sprintf("%s repayment", l.Title),
	}
	b.prependTransaction(t)

	return t, b.save()
}

// GoalInput holds the caller-supplied fields for a new savings goal.
type GoalInput struct {
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	Type          model.GoalType
}

// AddGoal appends a goal. Goals never touch the balance.
func (b *Book) AddGoal(in GoalInput) (model.Goal, error) {
	if in.Title == "" {
		return model.Goal{}, ErrEmptyTitle
	}
	if !in.Type.Valid() {
		return model.Goal{}, fmt.Errorf("%w: %q", ErrInvalidType, in.Type)
	}
	if !in.TargetAmount.IsPositive() {
		return model.Goal{}, fmt.Errorf("%w: target %s", ErrInvalidAmount, in.TargetAmount)
	}
	if in.CurrentAmount.IsNegative() {
		return model.Goal{}, fmt.Errorf("%w: current %s", ErrInvalidAmount, in.CurrentAmount)
	}

	g := model.Goal{
		ID:            uuid.NewString(),
		Title:         in.Title,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		Deadline:      in.Deadline,
		Type:          in.Type,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.Goals = append(b.state.Goals, g)
	return g, b.save()
}

// LiabilityInput holds the caller-supplied fields for a new liability.
type LiabilityInput struct {
	Title       string
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	Type        model.LiabilityType
}

// AddLiability appends a liability. No balance effect.
func (b *Book) AddLiability(in LiabilityInput) (model.Liability, error) {
	if in.Title == "" {
		return model.Liability{}, ErrEmptyTitle
	}
	if !in.Type.Valid() {
		return model.Liability{}, fmt.Errorf("%w: %q", ErrInvalidType, in.Type)
	}
	if !in.TotalAmount.IsPositive() {
		return model.Liability{}, fmt.Errorf("%w: total %s", ErrInvalidAmount, in.TotalAmount)
	}
	if in.PaidAmount.IsNegative() {
		return model.Liability{}, fmt.Errorf("%w: paid %s", ErrInvalidAmount, in.PaidAmount)
	}

	l := model.Liability{
		ID:          uuid.NewString(),
		Title:       in.Title,
		TotalAmount: in.TotalAmount,
		PaidAmount:  in.PaidAmount,
		Type:        in.Type,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.Liabilities = append(b.state.Liabilities, l)
	return l, b.save()
}

// SetBankBalance overwrites the balance directly, bypassing the
// transaction-derived invariant. Manual-correction escape hatch bound
// to the dashboard's balance control.
func (b *Book) SetBankBalance(amount decimal.Decimal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.BankBalance = amount
	return b.save()
}

// UpdateTargets overwrites the monthly installment and father-support
// target amounts.
func (b *Book) UpdateTargets(installment, fatherSupport decimal.Decimal) error {
	if installment.IsNegative() || fatherSupport.IsNegative() {
		return ErrInvalidAmount
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.MonthlyInstallment = installment
	b.state.MonthlyFatherSupport = fatherSupport
	return b.save()
}

// ItemKind selects which collection Delete operates on.
type ItemKind string

const (
	KindTransaction ItemKind = "transaction"
	KindGoal        ItemKind = "goal"
	KindLiability   ItemKind = "liability"
)

// Delete removes the item with the given id. Deleting a transaction
// reverses its balance effect exactly, so the balance invariant holds;
// goals and liabilities are removed with no balance effect.
func (b *Book) Delete(kind ItemKind, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch kind {
	case KindTransaction:
		for i, t := range b.state.Transactions {
			if t.ID != id {
				continue
			}
			if t.Type == model.Income {
				b.state.BankBalance = b.state.BankBalance.Sub(t.Amount)
			} else {
				b.state.BankBalance = b.state.BankBalance.Add(t.Amount)
			}
			b.state.Transactions = append(b.state.Transactions[:i], b.state.Transactions[i+1:]...)
			return b.save()
		}
	case KindGoal:
		for i, g := range b.state.Goals {
			if g.ID == id {
				b.state.Goals = append(b.state.Goals[:i], b.state.Goals[i+1:]...)
				return b.save()
			}
		}
	case KindLiability:
		for i, l := range b.state.Liabilities {
			if l.ID == id {
				b.state.Liabilities = append(b.state.Liabilities[:i], b.state.Liabilities[i+1:]...)
				return b.save()
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	return fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
}

// FindLiability resolves a liability by id or, failing that, by exact
// title match. Lets CLI users pay "Mama" instead of a uuid.
func (b *Book) FindLiability(idOrTitle string) (model.Liability, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, l := range b.state.Liabilities {
		if l.ID == idOrTitle {
			return l, true
		}
	}
	for _, l := range b.state.Liabilities {
		if l.Title == idOrTitle {
			return l, true
		}
	}
	return model.Liability{}, false
}

// prependTransaction puts t at the head of the ledger and applies its
// signed balance effect. Caller holds the lock.
func (b *Book) prependTransaction(t model.Transaction) {
	b.state.Transactions = append([]model.Transaction{t}, b.state.Transactions...)
	if t.Type == model.Income {
		b.state.BankBalance = b.state.BankBalance.Add(t.Amount)
	} else {
		b.state.BankBalance = b.state.BankBalance.Sub(t.Amount)
	}
}

// save persists the whole aggregate. Caller holds the lock.
func (b *Book) save() error {
	if err := b.persist.Save(b.state); err != nil {
		return fmt.Errorf("saving book: %w", err)
	}
	return nil
}
