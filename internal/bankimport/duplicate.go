package bankimport

import (
	"time"

	"finbot/core/internal/models"

	"github.com/shopspring/decimal"
)

// DuplicateFilter decides whether a parsed CSV row duplicates an existing
// transaction. Two entries match when they share the calendar day, their
// amounts differ by less than AmountEpsilon, and their descriptions agree on
// the first PrefixLen characters. The prefix comparison absorbs the trailing
// reference numbers banks append to otherwise identical bookings.
type DuplicateFilter struct {
	PrefixLen     int
	AmountEpsilon decimal.Decimal
}

// NewDuplicateFilter creates a filter with the given prefix length and amount
// epsilon. Non-positive values fall back to the defaults (50 characters,
// 0.01).
func NewDuplicateFilter(prefixLen int, amountEpsilon decimal.Decimal) DuplicateFilter {
	if prefixLen <= 0 {
		prefixLen = 50
	}
	if amountEpsilon.Sign() <= 0 {
		amountEpsilon = decimal.NewFromFloat(0.01)
	}
	return DuplicateFilter{PrefixLen: prefixLen, AmountEpsilon: amountEpsilon}
}

// IsDuplicate reports whether row duplicates any transaction in existing.
func (f DuplicateFilter) IsDuplicate(row models.BankRow, existing []models.Transaction) bool {
	for _, tx := range existing {
		if f.matches(row, tx) {
			return true
		}
	}
	return false
}

func (f DuplicateFilter) matches(row models.BankRow, tx models.Transaction) bool {
	if !sameDay(row.Date, tx.Date) {
		return false
	}
	// Strictly less than epsilon: a difference of exactly 0.01 is a
	// different booking.
	if row.Amount.Sub(tx.Amount).Abs().Cmp(f.AmountEpsilon) >= 0 {
		return false
	}
	return prefix(row.Description, f.PrefixLen) == prefix(tx.Description, f.PrefixLen)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// prefix returns the first n runes of s. Cutting on runes keeps umlauts in
// German booking texts intact.
func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
