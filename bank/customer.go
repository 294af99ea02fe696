package bank

import (
	"fmt"
	"regexp"
)

// Deliberately permissive: local@domain.tld shape, nothing close to full
// RFC 5322.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Customer owns its accounts. Accounts are appended over the customer's
// life and never detached here.
type Customer struct {
	ID        int64
	Name      Name
	Email     string
	Phone     string
	Address   Address
	BirthDate DateOfBirth

	accounts []*Account
}

func (b *Bank) NewCustomer(name Name, email, phone string, address Address, birthDate DateOfBirth) (*Customer, error) {
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email address %q", ErrInvalid, email)
	}
	if len(phone) < 7 || !allDigits(phone) {
		return nil, fmt.Errorf("%w: phone must be at least 7 digits", ErrInvalid)
	}
	return &Customer{
		ID:        b.customerIDs.Next(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		BirthDate: birthDate,
	}, nil
}

// AddAccount appends without a duplicate check.
func (c *Customer) AddAccount(a *Account) {
	c.accounts = append(c.accounts, a)
}

// Accounts returns a copy of the customer's account list.
func (c *Customer) Accounts() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
