package book

import "errors"

var (
	// ErrInvalidAmount indicates an amount that is negative, zero where a
	// positive value is required, or otherwise unusable. Malformed numeric
	// input is rejected here instead of being coerced into the balance.
	ErrInvalidAmount = errors.New("book: invalid amount")

	// ErrInvalidType indicates an unknown transaction, goal, or liability type.
	ErrInvalidType = errors.New("book: invalid type")

	// ErrEmptyTitle indicates a goal or liability without a title.
	ErrEmptyTitle = errors.New("book: empty title")

	// ErrNotFound indicates a lookup against an id that is not in the book.
	ErrNotFound = errors.New("book: item not found")

	// ErrInvalidKind indicates an unknown item kind passed to Delete.
	ErrInvalidKind = errors.New("book: invalid item kind")
)
