package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	InitStorage()
	return newRouter()
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
}

func createTestBranch(t *testing.T, router *mux.Router) BranchView {
	t.Helper()
	rec := doJSON(t, router, "POST", "/branches", CreateBranchRequest{Name: "Main Street", Location: "Oslo"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create branch: status=%d body=%s", rec.Code, rec.Body)
	}
	var branch BranchView
	decode(t, rec, &branch)
	return branch
}

func TestAccountLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	branch := createTestBranch(t, router)

	rec := doJSON(t, router, "POST", "/customers", CreateCustomerRequest{
		FirstName: "Jane", LastName: "Doe",
		Email: "jane.doe@example.com", Phone: "5551234567",
		City: "oslo", Country: "norway",
		BirthDay: 12, BirthMonth: 4, BirthYear: 1985,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create customer: status=%d body=%s", rec.Code, rec.Body)
	}
	var customer CustomerView
	decode(t, rec, &customer)
	if customer.ID != 1001 {
		t.Fatalf("customer id=%d want 1001", customer.ID)
	}
	if customer.City != "Oslo" || customer.Country != "Norway" {
		t.Fatalf("address not title-cased: %+v", customer)
	}

	rec = doJSON(t, router, "POST", "/customers/1001/accounts", CreateAccountRequest{
		Balance: decimal.NewFromInt(100), Type: "checking",
		Password: "secret1", BranchID: branch.ID, CardType: "debit",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create account: status=%d body=%s", rec.Code, rec.Body)
	}
	var account AccountView
	decode(t, rec, &account)
	if account.ID != 10001 {
		t.Fatalf("account id=%d want 10001", account.ID)
	}

	rec = doJSON(t, router, "POST", "/accounts/10001/transactions", TransactionRequest{
		Type: "Deposit", Amount: decimal.NewFromInt(50), Password: "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("deposit: status=%d body=%s", rec.Code, rec.Body)
	}
	decode(t, rec, &account)
	if !account.Balance.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("balance=%s want 150", account.Balance)
	}

	// Overdraft is refused and the balance stays put.
	rec = doJSON(t, router, "POST", "/accounts/10001/transactions", TransactionRequest{
		Type: "Withdrawal", Amount: decimal.NewFromInt(200), Password: "secret1",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("overdraft: status=%d want 409", rec.Code)
	}

	// Wrong password maps to 403.
	rec = doJSON(t, router, "POST", "/accounts/10001/transactions", TransactionRequest{
		Type: "Deposit", Amount: decimal.NewFromInt(10), Password: "wrongpw",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("wrong password: status=%d want 403", rec.Code)
	}

	rec = doJSON(t, router, "POST", "/accounts/10001/loans", LoanRequest{
		Type: "Personal", Amount: decimal.NewFromInt(1000), Password: "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add loan: status=%d body=%s", rec.Code, rec.Body)
	}
	var loan LoanView
	decode(t, rec, &loan)

	rec = doJSON(t, router, "POST", "/accounts/10001/close", PasswordRequest{Password: "secret1"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("close with outstanding loan: status=%d want 409", rec.Code)
	}

	rec = doJSON(t, router, "DELETE", "/accounts/10001/loans/"+loan.ID, PasswordRequest{Password: "secret1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("remove loan: status=%d body=%s", rec.Code, rec.Body)
	}

	rec = doJSON(t, router, "POST", "/accounts/10001/close", PasswordRequest{Password: "secret1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("close: status=%d body=%s", rec.Code, rec.Body)
	}
	if rec := doJSON(t, router, "GET", "/accounts/10001", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("closed account still served: status=%d want 404", rec.Code)
	}
}

func TestCardRenewOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	branch := createTestBranch(t, router)

	doJSON(t, router, "POST", "/customers", CreateCustomerRequest{
		FirstName: "Jane", LastName: "Doe",
		Email: "jane@example.com", Phone: "5551234567",
		City: "Oslo", Country: "Norway",
		BirthDay: 12, BirthMonth: 4, BirthYear: 1985,
	})
	rec := doJSON(t, router, "POST", "/customers/1001/accounts", CreateAccountRequest{
		Balance: decimal.Zero, Type: "Savings",
		Password: "secret1", BranchID: branch.ID,
		CardType: "credit", CardExpiry: "2031-03-01",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create account: status=%d body=%s", rec.Code, rec.Body)
	}

	rec = doJSON(t, router, "POST", "/accounts/10001/card/renew", RenewCardRequest{Years: 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("renew: status=%d body=%s", rec.Code, rec.Body)
	}
	var card CardView
	decode(t, rec, &card)
	if card.Expiry != "2032-02-29" { // 2031-03-01 + 365 days
		t.Fatalf("expiry=%s want 2032-02-29", card.Expiry)
	}

	rec = doJSON(t, router, "POST", "/accounts/10001/card/renew", RenewCardRequest{Years: 0})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("renew 0 years: status=%d want 400", rec.Code)
	}
}

func TestEmployeeEndpoints(t *testing.T) {
	router := newTestRouter(t)
	branch := createTestBranch(t, router)
	base := "/branches/" + branch.ID

	// The reserved position is rejected on the employee endpoint.
	rec := doJSON(t, router, "POST", base+"/employees", CreateEmployeeRequest{
		FirstName: "Mary", LastName: "Boss", Position: "manager",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("reserved position: status=%d want 400", rec.Code)
	}

	rec = doJSON(t, router, "POST", base+"/managers", CreateEmployeeRequest{
		FirstName: "Mary", LastName: "Boss",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create manager: status=%d body=%s", rec.Code, rec.Body)
	}
	var manager EmployeeView
	decode(t, rec, &manager)
	if manager.ID != 1000 || manager.Position != "Manager" {
		t.Fatalf("manager=%+v want id 1000, position Manager", manager)
	}

	rec = doJSON(t, router, "POST", base+"/employees", CreateEmployeeRequest{
		FirstName: "Alice", LastName: "Smith", Position: "Teller",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create employee: status=%d body=%s", rec.Code, rec.Body)
	}
	var employee EmployeeView
	decode(t, rec, &employee)
	if employee.ID != 1001 {
		t.Fatalf("employee id=%d want 1001", employee.ID)
	}

	rec = doJSON(t, router, "POST", "/employees/1001/managers", AddManagerRequest{ManagerID: 1001})
	if rec.Code != http.StatusConflict {
		t.Fatalf("self as manager: status=%d want 409", rec.Code)
	}
	rec = doJSON(t, router, "POST", "/employees/1001/managers", AddManagerRequest{ManagerID: 1000})
	if rec.Code != http.StatusOK {
		t.Fatalf("add manager: status=%d body=%s", rec.Code, rec.Body)
	}
	rec = doJSON(t, router, "POST", "/employees/1001/managers", AddManagerRequest{ManagerID: 1000})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate manager: status=%d want 409", rec.Code)
	}

	rec = doJSON(t, router, "GET", "/employees/1001", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("employee info: status=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Employee ID: 1001") ||
		!strings.Contains(rec.Body.String(), "Position: Teller") {
		t.Fatalf("unexpected info dump:\n%s", rec.Body)
	}

	rec = doJSON(t, router, "DELETE", "/employees/1001/managers/1000", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove manager: status=%d body=%s", rec.Code, rec.Body)
	}
	rec = doJSON(t, router, "DELETE", "/employees/1001/managers/1000", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("remove absent manager: status=%d want 404", rec.Code)
	}
}
