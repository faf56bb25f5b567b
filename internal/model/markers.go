package model

// Fixed category and marker strings the book and reports key off.
// These mirror the quick-access entries the dashboard exposes; changing
// them orphans previously recorded transactions, so treat them as frozen.
const (
	// CategoryDebtRepayment tags transactions synthesized by debt payments.
	CategoryDebtRepayment = "debt repayment"

	// CategoryFatherSupport tags transfers sent to the father's account.
	CategoryFatherSupport = "father support"

	// FatherMarker is the substring matched against a transaction's
	// category or note when totaling father-support transfers.
	FatherMarker = "father"
)

// SpecialDebtKeywords are the titles of the three pre-seeded obligations.
// A liability whose title contains one of these is treated as special
// even if its type says otherwise.
var SpecialDebtKeywords = []string{"Toma", "Mama", "Kisti"}
