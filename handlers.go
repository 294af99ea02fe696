package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"corebank/bank"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling JSON: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, code int, message string) {
	log.Printf("HTTP Error %d: %s", code, message)
	respondJSON(w, code, map[string]string{"error": message})
}

// statusForError maps domain errors onto HTTP status codes: validation
// failures are 400, a failed password check 403, missing things 404 and
// precondition failures 409.
func statusForError(err error) int {
	switch {
	case errors.Is(err, bank.ErrWrongPassword):
		return http.StatusForbidden
	case errors.Is(err, bank.ErrLoanNotFound), errors.Is(err, bank.ErrManagerNotFound):
		return http.StatusNotFound
	case errors.Is(err, bank.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, bank.ErrInsufficientFunds),
		errors.Is(err, bank.ErrOutstandingLoans),
		errors.Is(err, bank.ErrDuplicateEmployee),
		errors.Is(err, bank.ErrDuplicateManager),
		errors.Is(err, bank.ErrSelfManager):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondDomainError(w http.ResponseWriter, err error) {
	respondError(w, statusForError(err), err.Error())
}

func pathID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[key], 10, 64)
}

func CreateBranchHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	branch, err := bank.NewBranch(GenerateID(), req.Name, req.Location)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	AddBranch(branch)

	log.Printf("Branch created: %s (%s)", branch.Name, branch.ID)
	respondJSON(w, http.StatusCreated, branchView(branch))
}

func GetBranchHandler(w http.ResponseWriter, r *http.Request) {
	branch, ok := GetBranch(mux.Vars(r)["branchId"])
	if !ok {
		respondError(w, http.StatusNotFound, "Branch not found")
		return
	}
	respondJSON(w, http.StatusOK, branchView(branch))
}

func CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	name, err := bank.NewName(req.FirstName, req.LastName)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	address, err := bank.NewAddress(req.City, req.Country)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	birthDate, err := bank.NewDateOfBirth(req.BirthDay, req.BirthMonth, req.BirthYear)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	customer, err := storage.bank.NewCustomer(name, req.Email, req.Phone, address, birthDate)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	AddCustomer(customer)

	log.Printf("Customer created: %s (ID: %d)", customer.Name, customer.ID)
	respondJSON(w, http.StatusCreated, customerView(customer))
}

func GetCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "customerId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	customer, ok := GetCustomer(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}
	respondJSON(w, http.StatusOK, customerView(customer))
}

func CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	customer, ok := GetCustomer(customerID)
	if !ok {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}
	branch, ok := GetBranch(req.BranchID)
	if !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Branch %s not found", req.BranchID))
		return
	}

	expiry := req.CardExpiry
	if expiry == "" {
		expiry = DefaultCardExpiry()
	}
	card, err := bank.NewCard(GenerateID(), expiry, req.CardType)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	account, err := storage.bank.NewAccount(customer, req.Balance, req.Type, card, req.Password, branch)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	storage.mu.Lock()
	customer.AddAccount(account)
	storage.accounts[account.ID] = account
	storage.mu.Unlock()

	log.Printf("Account %d created for customer %d", account.ID, customer.ID)
	respondJSON(w, http.StatusCreated, accountView(account))
}

func GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "accountId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid account id")
		return
	}
	account, ok := GetAccount(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Account not found")
		return
	}
	respondJSON(w, http.StatusOK, accountView(account))
}

func AddTransactionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "accountId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid account id")
		return
	}
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	account, ok := GetAccount(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Account not found")
		return
	}

	date := req.Date
	if date == "" {
		date = Today()
	}
	tx, err := bank.NewTransaction(GenerateID(), date, req.Type, req.Amount)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	storage.mu.Lock()
	err = account.AddTransaction(tx, req.Password)
	storage.mu.Unlock()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	log.Printf("%s of %s applied to account %d", tx.Type, tx.Amount.String(), account.ID)
	respondJSON(w, http.StatusCreated, accountView(account))
}

func AddLoanHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "accountId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid account id")
		return
	}
	var req LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	account, ok := GetAccount(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Account not found")
		return
	}

	loan, err := bank.NewLoan(GenerateID(), req.Amount, req.Type)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	storage.mu.Lock()
	err = account.AddLoan(loan, req.Password)
	storage.mu.Unlock()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	log.Printf("%s loan of %s added to account %d", loan.Type, loan.Amount.String(), account.ID)
	respondJSON(w, http.StatusCreated, loanView(loan))
}

func RemoveLoanHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "accountId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid account id")
		return
	}
	loanID := mux.Vars(r)["loanId"]

	var req PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	account, ok := GetAccount(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Account not found")
		return
	}

	storage.mu.Lock()
	err = account.RemoveLoan(loanID, req.Password)
	storage.mu.Unlock()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	log.Printf("Loan %s removed from account %d", loanID, account.ID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Loan removed"})
}

// CloseAccountHandler runs the removal check (password, no outstanding
// loans) and drops the account from the registry when it passes. The
// customer keeps its historical reference.
func CloseAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "accountId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid account id")
		return
	}
	var req PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	account, ok := GetAccount(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Account not found")
		return
	}

	if err := account.Remove(req.Password); err != nil {
		respondDomainError(w, err)
		return
	}
	RemoveAccount(id)

	log.Printf("Account %d closed", id)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Account closed"})
}

func RenewCardHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "accountId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid account id")
		return
	}
	var req RenewCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	account, ok := GetAccount(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Account not found")
		return
	}

	storage.mu.Lock()
	err = account.Card.Renew(req.Years)
	storage.mu.Unlock()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	log.Printf("Card %s on account %d renewed until %s", account.Card.ID, account.ID, account.Card.ExpiryDate())
	respondJSON(w, http.StatusOK, cardView(account.Card))
}

func CreateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	createEmployee(w, r, false)
}

// CreateManagerHandler is the only way to mint a "Manager" position over
// the API.
func CreateManagerHandler(w http.ResponseWriter, r *http.Request) {
	createEmployee(w, r, true)
}

func createEmployee(w http.ResponseWriter, r *http.Request, manager bool) {
	branch, ok := GetBranch(mux.Vars(r)["branchId"])
	if !ok {
		respondError(w, http.StatusNotFound, "Branch not found")
		return
	}
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	name, err := bank.NewName(req.FirstName, req.LastName)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	var employee *bank.Employee
	if manager {
		employee, err = storage.bank.NewManager(name, branch)
	} else {
		employee, err = storage.bank.NewEmployee(name, req.Position, branch)
	}
	if err != nil {
		respondDomainError(w, err)
		return
	}

	storage.mu.Lock()
	err = branch.AddEmployee(employee)
	if err == nil {
		storage.employees[employee.ID] = employee
	}
	storage.mu.Unlock()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	log.Printf("Employee %d (%s) joined branch %s", employee.ID, employee.Position, branch.Name)
	respondJSON(w, http.StatusCreated, employeeView(employee))
}

func AddManagerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "employeeId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}
	var req AddManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	employee, ok := GetEmployee(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Employee not found")
		return
	}
	manager, ok := GetEmployee(req.ManagerID)
	if !ok {
		respondError(w, http.StatusNotFound, "Manager not found")
		return
	}

	storage.mu.Lock()
	err = employee.AddManager(manager)
	storage.mu.Unlock()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	log.Printf("Employee %d now reports to %d", employee.ID, manager.ID)
	respondJSON(w, http.StatusOK, employeeView(employee))
}

func RemoveManagerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "employeeId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}
	managerID, err := pathID(r, "managerId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid manager id")
		return
	}

	employee, ok := GetEmployee(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Employee not found")
		return
	}
	manager, ok := GetEmployee(managerID)
	if !ok {
		respondError(w, http.StatusNotFound, "Manager not found")
		return
	}

	storage.mu.Lock()
	err = employee.RemoveManager(manager)
	storage.mu.Unlock()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	log.Printf("Employee %d no longer reports to %d", employee.ID, manager.ID)
	respondJSON(w, http.StatusOK, employeeView(employee))
}

// EmployeeInfoHandler serves the plain-text employee dump.
func EmployeeInfoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "employeeId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}
	employee, ok := GetEmployee(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Employee not found")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	employee.DisplayInfo(w)
}
