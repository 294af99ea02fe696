package bank

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeChecking AccountType = "Checking"
	AccountTypeSavings  AccountType = "Savings"
)

const minPasswordLen = 6

// ParseAccountType normalizes an account type string case-insensitively.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "checking":
		return AccountTypeChecking, nil
	case "savings":
		return AccountTypeSavings, nil
	}
	return "", fmt.Errorf("%w: unknown account type %q", ErrInvalid, s)
}

// Account is the mutation hub of the model. It references its customer,
// card and branch, owns its transaction and loan lists, and requires the
// account password for every mutating operation. A failed check never
// leaves a partial mutation behind.
//
// The password is stored and compared in plaintext. Credential hashing is
// explicitly out of scope for this model.
type Account struct {
	ID       int64
	Customer *Customer
	Type     AccountType
	Card     *Card
	Branch   *Branch

	password     string
	balance      decimal.Decimal
	transactions []*Transaction
	loans        []*Loan
}

func (b *Bank) NewAccount(customer *Customer, balance decimal.Decimal, accountType string, card *Card, password string, branch *Branch) (*Account, error) {
	kind, err := ParseAccountType(accountType)
	if err != nil {
		return nil, err
	}
	if balance.Sign() < 0 {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", ErrInvalid)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalid, minPasswordLen)
	}
	if customer == nil || card == nil || branch == nil {
		return nil, fmt.Errorf("%w: customer, card and branch are required", ErrInvalid)
	}
	return &Account{
		ID:       b.accountIDs.Next(),
		Customer: customer,
		Type:     kind,
		Card:     card,
		Branch:   branch,
		password: password,
		balance:  balance,
	}, nil
}

func (a *Account) checkPassword(password string) bool {
	return a.password == password
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Transactions returns a copy of the account's transaction history.
func (a *Account) Transactions() []*Transaction {
	out := make([]*Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Loans returns a copy of the account's outstanding loans.
func (a *Account) Loans() []*Loan {
	out := make([]*Loan, len(a.loans))
	copy(out, a.loans)
	return out
}

// AddTransaction applies tx to the balance and appends it to the history.
// A withdrawal larger than the balance fails and changes nothing; the
// balance never goes negative.
func (a *Account) AddTransaction(tx *Transaction, password string) error {
	if !a.checkPassword(password) {
		return ErrWrongPassword
	}
	switch tx.Type {
	case TransactionTypeDeposit:
		a.balance = a.balance.Add(tx.Amount)
	case TransactionTypeWithdrawal:
		if tx.Amount.GreaterThan(a.balance) {
			return ErrInsufficientFunds
		}
		a.balance = a.balance.Sub(tx.Amount)
	}
	a.transactions = append(a.transactions, tx)
	return nil
}

func (a *Account) AddLoan(loan *Loan, password string) error {
	if !a.checkPassword(password) {
		return ErrWrongPassword
	}
	a.loans = append(a.loans, loan)
	return nil
}

// Remove checks that the account is removable: correct password, no
// outstanding loans. Actual detachment from the customer is the caller's
// responsibility.
func (a *Account) Remove(password string) error {
	if !a.checkPassword(password) {
		return ErrWrongPassword
	}
	if len(a.loans) > 0 {
		return ErrOutstandingLoans
	}
	return nil
}

// RemoveLoan deletes the first loan whose id matches loanID.
func (a *Account) RemoveLoan(loanID, password string) error {
	if !a.checkPassword(password) {
		return ErrWrongPassword
	}
	for i, loan := range a.loans {
		if loan.ID == loanID {
			a.loans = append(a.loans[:i], a.loans[i+1:]...)
			return nil
		}
	}
	return ErrLoanNotFound
}
