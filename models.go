package main

import (
	"github.com/shopspring/decimal"

	"corebank/bank"
)

type CreateCustomerRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	Country    string `json:"country"`
	BirthDay   int    `json:"birth_day"`
	BirthMonth int    `json:"birth_month"`
	BirthYear  int    `json:"birth_year"`
}

type CreateAccountRequest struct {
	Balance    decimal.Decimal `json:"balance"`
	Type       string          `json:"type"`
	Password   string          `json:"password"`
	BranchID   string          `json:"branch_id"`
	CardType   string          `json:"card_type"`
	CardExpiry string          `json:"card_expiry,omitempty"`
}

type TransactionRequest struct {
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date,omitempty"`
	Password string          `json:"password"`
}

type LoanRequest struct {
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Password string          `json:"password"`
}

type PasswordRequest struct {
	Password string `json:"password"`
}

type RenewCardRequest struct {
	Years int `json:"years"`
}

type CreateBranchRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

type AddManagerRequest struct {
	ManagerID int64 `json:"manager_id"`
}

// Response views. Domain entities hold back-references (account -> customer
// -> accounts), so they are never serialized directly; each view flattens
// one entity and links the rest by id.

type CustomerView struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Accounts  []int64 `json:"accounts"`
}

type AccountView struct {
	ID           int64             `json:"id"`
	CustomerID   int64             `json:"customer_id"`
	Type         bank.AccountType  `json:"type"`
	Balance      decimal.Decimal   `json:"balance"`
	BranchID     string            `json:"branch_id"`
	Card         CardView          `json:"card"`
	Transactions []TransactionView `json:"transactions"`
	Loans        []LoanView        `json:"loans"`
}

type CardView struct {
	ID      string        `json:"id"`
	Type    bank.CardType `json:"type"`
	Expiry  string        `json:"expiry"`
	Expired bool          `json:"expired"`
}

type TransactionView struct {
	ID     string               `json:"id"`
	Type   bank.TransactionType `json:"type"`
	Amount decimal.Decimal      `json:"amount"`
	Date   string               `json:"date"`
}

type LoanView struct {
	ID           string          `json:"id"`
	Type         bank.LoanType   `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
}

type BranchView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Employees []int64 `json:"employees"`
}

type EmployeeView struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	BranchID string  `json:"branch_id"`
	Managers []int64 `json:"managers"`
}

func customerView(c *bank.Customer) CustomerView {
	accounts := c.Accounts()
	ids := make([]int64, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID)
	}
	return CustomerView{
		ID:        c.ID,
		FirstName: c.Name.First,
		LastName:  c.Name.Last,
		Email:     c.Email,
		Phone:     c.Phone,
		City:      c.Address.City,
		Country:   c.Address.Country,
		Accounts:  ids,
	}
}

func accountView(a *bank.Account) AccountView {
	txs := a.Transactions()
	txViews := make([]TransactionView, 0, len(txs))
	for _, tx := range txs {
		txViews = append(txViews, transactionView(tx))
	}
	loans := a.Loans()
	loanViews := make([]LoanView, 0, len(loans))
	for _, l := range loans {
		loanViews = append(loanViews, loanView(l))
	}
	return AccountView{
		ID:           a.ID,
		CustomerID:   a.Customer.ID,
		Type:         a.Type,
		Balance:      a.Balance(),
		BranchID:     a.Branch.ID,
		Card:         cardView(a.Card),
		Transactions: txViews,
		Loans:        loanViews,
	}
}

func cardView(c *bank.Card) CardView {
	return CardView{ID: c.ID, Type: c.Type, Expiry: c.ExpiryDate(), Expired: c.IsExpired()}
}

func transactionView(t *bank.Transaction) TransactionView {
	return TransactionView{ID: t.ID, Type: t.Type, Amount: t.Amount, Date: t.Date()}
}

func loanView(l *bank.Loan) LoanView {
	return LoanView{ID: l.ID, Type: l.Type, Amount: l.Amount, InterestRate: l.InterestRate}
}

func branchView(b *bank.Branch) BranchView {
	employees := b.Employees()
	ids := make([]int64, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	return BranchView{ID: b.ID, Name: b.Name, Location: b.Location, Employees: ids}
}

func employeeView(e *bank.Employee) EmployeeView {
	managers := e.Managers()
	ids := make([]int64, 0, len(managers))
	for _, m := range managers {
		ids = append(ids, m.ID)
	}
	return EmployeeView{
		ID:       e.ID,
		Name:     e.Name.String(),
		Position: e.Position,
		BranchID: e.Branch.ID,
		Managers: ids,
	}
}
