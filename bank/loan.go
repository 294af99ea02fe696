package bank

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type LoanType string

const (
	LoanTypePersonal LoanType = "Personal"
	LoanTypeMortgage LoanType = "Mortgage"
	LoanTypeAuto     LoanType = "Auto"
)

// Every loan carries the same flat rate regardless of type.
var defaultLoanInterestRate = decimal.RequireFromString("0.2")

// ParseLoanType normalizes a loan type string case-insensitively.
func ParseLoanType(s string) (LoanType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "personal":
		return LoanTypePersonal, nil
	case "mortgage":
		return LoanTypeMortgage, nil
	case "auto":
		return LoanTypeAuto, nil
	}
	return "", fmt.Errorf("%w: unknown loan type %q", ErrInvalid, s)
}

// Loan is an immutable loan record held by an Account.
type Loan struct {
	ID           string
	Type         LoanType
	Amount       decimal.Decimal
	InterestRate decimal.Decimal
}

func NewLoan(id string, amount decimal.Decimal, loanType string) (*Loan, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: loan amount must be positive", ErrInvalid)
	}
	kind, err := ParseLoanType(loanType)
	if err != nil {
		return nil, err
	}
	return &Loan{
		ID:           id,
		Type:         kind,
		Amount:       amount,
		InterestRate: defaultLoanInterestRate,
	}, nil
}
