package bank

import "errors"

// Domain errors. Validation failures wrap ErrInvalid with detail so callers
// can match the category with errors.Is; the rest are matched directly.
var (
	ErrInvalid = errors.New("invalid argument")

	ErrWrongPassword = errors.New("incorrect password")

	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOutstandingLoans  = errors.New("cannot remove account with outstanding loans")
	ErrLoanNotFound      = errors.New("loan not found")
	ErrDuplicateEmployee = errors.New("employee already assigned to this branch")
	ErrSelfManager       = errors.New("employee cannot be their own manager")
	ErrDuplicateManager  = errors.New("manager already assigned")
	ErrManagerNotFound   = errors.New("manager not found")
)
