package bank

import "fmt"

// Branch is an organizational unit holding references to the employees
// assigned to it. Membership is by identity; the same employee cannot be
// assigned twice. Employees are never removed from a branch.
type Branch struct {
	ID       string
	Name     string
	Location string

	employees []*Employee
}

func NewBranch(id, name, location string) (*Branch, error) {
	if id == "" || name == "" || location == "" {
		return nil, fmt.Errorf("%w: branch id, name and location cannot be empty", ErrInvalid)
	}
	return &Branch{ID: id, Name: name, Location: location}, nil
}

func (b *Branch) AddEmployee(e *Employee) error {
	for _, existing := range b.employees {
		if existing == e {
			return ErrDuplicateEmployee
		}
	}
	b.employees = append(b.employees, e)
	return nil
}

// Employees returns a copy of the branch's employee list.
func (b *Branch) Employees() []*Employee {
	out := make([]*Employee, len(b.employees))
	copy(out, b.employees)
	return out
}
