// Package bank is an in-memory banking domain model: customers, accounts,
// cards, loans, transactions, branches and employees, with field-level
// validation and password-gated account mutation. Amounts and balances use
// decimal arithmetic throughout.
package bank

// Dates cross every boundary as YYYY-MM-DD strings.
const dateLayout = "2006-01-02"

const (
	firstCustomerID = 1001
	firstAccountID  = 10001
	firstEmployeeID = 1000
)

// Bank owns the id sequences and builds the entities that carry assigned
// ids. A fresh Bank starts its sequences over, so separate instances never
// share counters.
type Bank struct {
	customerIDs *Sequence
	accountIDs  *Sequence
	employeeIDs *Sequence
}

func NewBank() *Bank {
	return &Bank{
		customerIDs: NewSequence(firstCustomerID),
		accountIDs:  NewSequence(firstAccountID),
		employeeIDs: NewSequence(firstEmployeeID),
	}
}
