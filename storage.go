package main

import (
	"sync"

	"corebank/bank"
)

// InMemoryStorage is the process registry for the domain model: it owns the
// bank.Bank id factory and indexes every aggregate by id so handlers can
// find them. It is a registry, not persistence — nothing survives restart.
type InMemoryStorage struct {
	bank      *bank.Bank
	customers map[int64]*bank.Customer
	accounts  map[int64]*bank.Account
	branches  map[string]*bank.Branch
	employees map[int64]*bank.Employee
	mu        sync.RWMutex
}

var storage *InMemoryStorage

func InitStorage() {
	storage = &InMemoryStorage{
		bank:      bank.NewBank(),
		customers: make(map[int64]*bank.Customer),
		accounts:  make(map[int64]*bank.Account),
		branches:  make(map[string]*bank.Branch),
		employees: make(map[int64]*bank.Employee),
	}
}

func AddCustomer(c *bank.Customer) {
	storage.mu.Lock()
	defer storage.mu.Unlock()
	storage.customers[c.ID] = c
}

func GetCustomer(id int64) (*bank.Customer, bool) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()
	c, ok := storage.customers[id]
	return c, ok
}

func AddAccount(a *bank.Account) {
	storage.mu.Lock()
	defer storage.mu.Unlock()
	storage.accounts[a.ID] = a
}

func GetAccount(id int64) (*bank.Account, bool) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()
	a, ok := storage.accounts[id]
	return a, ok
}

func RemoveAccount(id int64) {
	storage.mu.Lock()
	defer storage.mu.Unlock()
	delete(storage.accounts, id)
}

func AddBranch(b *bank.Branch) {
	storage.mu.Lock()
	defer storage.mu.Unlock()
	storage.branches[b.ID] = b
}

func GetBranch(id string) (*bank.Branch, bool) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()
	b, ok := storage.branches[id]
	return b, ok
}

func AddEmployee(e *bank.Employee) {
	storage.mu.Lock()
	defer storage.mu.Unlock()
	storage.employees[e.ID] = e
}

func GetEmployee(id int64) (*bank.Employee, bool) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()
	e, ok := storage.employees[id]
	return e, ok
}
