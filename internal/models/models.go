// Package models defines the core domain types shared across the
// categorization, recurrence detection and bank import components.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money leaving the account from money coming in.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// Transaction is a single financial transaction as seen by this core.
// Transactions are immutable once persisted except for category reassignment;
// after resolution CategoryID always references an existing catalog entry.
type Transaction struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Date        time.Time       `json:"date"`
	CategoryID  string          `json:"category_id,omitempty"`
}

// Category is one entry of the category catalog. The catalog is an ordered
// list: keyword matching scans it in order and the first match wins, so the
// position of an entry is part of its meaning.
type Category struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords,omitempty"`
}

// ResolutionSource records which step of the resolver produced a category.
type ResolutionSource string

const (
	SourceRule    ResolutionSource = "rule"
	SourceAI      ResolutionSource = "ai"
	SourceDefault ResolutionSource = "default"
)

// CategorizationResult is the outcome of resolving a transaction's category.
// CategoryID is always a valid catalog id; Source tells the caller whether the
// id came from a keyword rule, the AI fallback, or the default category.
type CategorizationResult struct {
	CategoryID string           `json:"category_id"`
	Source     ResolutionSource `json:"source"`
}

// SubscriptionBrand is one entry of the known-subscription table used by the
// recurrence detector's fast path.
type SubscriptionBrand struct {
	Keyword string `yaml:"keyword" json:"keyword"`
	Name    string `yaml:"name" json:"name"`
	Icon    string `yaml:"icon" json:"icon"`
}

// SubscriptionCandidate is the recurrence detector's verdict for a single
// transaction. It is only ever a suggestion: the caller presents it to the
// user for confirmation and never commits it automatically.
type SubscriptionCandidate struct {
	IsSubscription bool            `json:"is_subscription"`
	Name           string          `json:"name,omitempty"`
	Icon           string          `json:"icon,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Confidence     float64         `json:"confidence"`
	AutoDetected   bool            `json:"auto_detected"`
}

// BankRow is a single parsed line of a bank CSV export. It exists only during
// import: a row either becomes a Transaction or is dropped as a duplicate.
type BankRow struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Type        TransactionType
}

// Transaction converts the row into a Transaction with the given category.
func (r BankRow) Transaction(categoryID string) Transaction {
	return Transaction{
		Description: r.Description,
		Amount:      r.Amount,
		Type:        r.Type,
		Date:        r.Date,
		CategoryID:  categoryID,
	}
}
