package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDeriveFeeStatus(t *testing.T) {
	tests := []struct {
		name  string
		total string
		paid  string
		want  string
	}{
		{name: "nothing paid", total: "1000", paid: "0", want: "pending"},
		{name: "partially paid", total: "1000", paid: "400", want: "partial"},
		{name: "fully paid", total: "1000", paid: "1000", want: "paid"},
		{name: "one cent short", total: "1000.00", paid: "999.99", want: "partial"},
		{name: "one cent paid", total: "1000.00", paid: "0.01", want: "partial"},
		{name: "paid above total", total: "1000", paid: "1200", want: "paid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveFeeStatus(dec(tt.total), dec(tt.paid)))
		})
	}
}

func TestSumTransactionsIsExact(t *testing.T) {
	// 100 payments of 0.10 must sum to exactly 10.00, with no float drift.
	var transactions []FeeTransaction
	for i := 0; i < 100; i++ {
		transactions = append(transactions, FeeTransaction{Amount: dec("0.10")})
	}

	sum := SumTransactions(transactions)
	assert.True(t, sum.Equal(dec("10.00")), "got %s", sum)

	assert.True(t, SumTransactions(nil).Equal(decimal.Zero))
}

func TestRemainingBalance(t *testing.T) {
	assert.True(t, RemainingBalance(dec("5000"), dec("2000")).Equal(dec("3000")))
	assert.True(t, RemainingBalance(dec("100.50"), dec("100.50")).Equal(decimal.Zero))
}

// Plays out a full ledger: a 5000 fee paid down in two installments, with an
// overpayment attempted at each step.
func TestFeeLedgerScenario(t *testing.T) {
	total := dec("5000")
	var transactions []FeeTransaction

	pay := func(amount decimal.Decimal) (string, bool) {
		paid := SumTransactions(transactions)
		remaining := RemainingBalance(total, paid)
		if amount.GreaterThan(remaining) {
			return DeriveFeeStatus(total, paid), false
		}
		transactions = append(transactions, FeeTransaction{Amount: amount})
		return DeriveFeeStatus(total, SumTransactions(transactions)), true
	}

	// No initial payment.
	require.Equal(t, "pending", DeriveFeeStatus(total, SumTransactions(transactions)))

	// Overpaying up front is rejected and records nothing.
	status, ok := pay(dec("5000.01"))
	require.False(t, ok)
	require.Equal(t, "pending", status)
	require.Len(t, transactions, 0)

	// 2000 cash.
	status, ok = pay(dec("2000"))
	require.True(t, ok)
	require.Equal(t, "partial", status)
	require.True(t, RemainingBalance(total, SumTransactions(transactions)).Equal(dec("3000")))

	// Paying a cent over the remainder is rejected, ledger untouched.
	status, ok = pay(dec("3000.01"))
	require.False(t, ok)
	require.Equal(t, "partial", status)
	require.Len(t, transactions, 1)

	// Paying exactly the remainder settles the fee.
	status, ok = pay(dec("3000"))
	require.True(t, ok)
	require.Equal(t, "paid", status)
	require.True(t, RemainingBalance(total, SumTransactions(transactions)).Equal(decimal.Zero))

	// Any further positive payment is rejected.
	_, ok = pay(dec("0.01"))
	require.False(t, ok)
	require.Len(t, transactions, 2)

	// The ledger invariant held throughout.
	assert.True(t, SumTransactions(transactions).LessThanOrEqual(total))
}
