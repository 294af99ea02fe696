package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
)

func newRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/branches", CreateBranchHandler).Methods("POST")
	r.HandleFunc("/branches/{branchId}", GetBranchHandler).Methods("GET")
	r.HandleFunc("/branches/{branchId}/employees", CreateEmployeeHandler).Methods("POST")
	r.HandleFunc("/branches/{branchId}/managers", CreateManagerHandler).Methods("POST")

	r.HandleFunc("/customers", CreateCustomerHandler).Methods("POST")
	r.HandleFunc("/customers/{customerId}", GetCustomerHandler).Methods("GET")
	r.HandleFunc("/customers/{customerId}/accounts", CreateAccountHandler).Methods("POST")

	r.HandleFunc("/accounts/{accountId}", GetAccountHandler).Methods("GET")
	r.HandleFunc("/accounts/{accountId}/transactions", AddTransactionHandler).Methods("POST")
	r.HandleFunc("/accounts/{accountId}/loans", AddLoanHandler).Methods("POST")
	r.HandleFunc("/accounts/{accountId}/loans/{loanId}", RemoveLoanHandler).Methods("DELETE")
	r.HandleFunc("/accounts/{accountId}/close", CloseAccountHandler).Methods("POST")
	r.HandleFunc("/accounts/{accountId}/card/renew", RenewCardHandler).Methods("POST")

	r.HandleFunc("/employees/{employeeId}", EmployeeInfoHandler).Methods("GET")
	r.HandleFunc("/employees/{employeeId}/managers", AddManagerHandler).Methods("POST")
	r.HandleFunc("/employees/{employeeId}/managers/{managerId}", RemoveManagerHandler).Methods("DELETE")

	return r
}

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("Starting Core Bank API...")

	InitStorage()
	log.Println("In-memory storage initialized.")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)

	loggedRouter := loggingMiddleware(newRouter())

	err := http.ListenAndServe(":"+port, loggedRouter)
	if err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("--> %s %s %s", r.Method, r.RequestURI, r.Proto)
		next.ServeHTTP(w, r)
		log.Printf("<-- %s %s (%v)", r.Method, r.RequestURI, time.Since(start))
	})
}
