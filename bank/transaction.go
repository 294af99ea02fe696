package bank

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "Deposit"
	TransactionTypeWithdrawal TransactionType = "Withdrawal"
)

// ParseTransactionType normalizes a transaction type string case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return TransactionTypeDeposit, nil
	case "withdrawal":
		return TransactionTypeWithdrawal, nil
	}
	return "", fmt.Errorf("%w: unknown transaction type %q", ErrInvalid, s)
}

// Transaction is an immutable deposit or withdrawal record. Applying it to
// a balance is the owning Account's job.
type Transaction struct {
	ID     string
	Type   TransactionType
	Amount decimal.Decimal

	date time.Time
}

func NewTransaction(id, date, txType string, amount decimal.Decimal) (*Transaction, error) {
	kind, err := ParseTransactionType(txType)
	if err != nil {
		return nil, err
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: transaction amount must be positive", ErrInvalid)
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalid)
	}
	return &Transaction{ID: id, Type: kind, Amount: amount, date: day}, nil
}

// Date returns the transaction date as a YYYY-MM-DD string.
func (t *Transaction) Date() string {
	return t.date.Format(dateLayout)
}
