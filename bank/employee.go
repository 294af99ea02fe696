package bank

import (
	"fmt"
	"io"
	"strings"
)

// PositionManager is the reserved position. Ordinary employees cannot take
// it; managers are built through Bank.NewManager.
const PositionManager = "Manager"

// Employee belongs to a branch and may report to any number of managers.
// A manager is a plain Employee whose position is forced to "Manager";
// there is no separate manager type.
type Employee struct {
	ID       int64
	Name     Name
	Position string
	Branch   *Branch

	managers []*Employee
}

func (b *Bank) NewEmployee(name Name, position string, branch *Branch) (*Employee, error) {
	return b.newEmployee(name, position, branch, false)
}

// NewManager builds an employee with the reserved "Manager" position.
func (b *Bank) NewManager(name Name, branch *Branch) (*Employee, error) {
	return b.newEmployee(name, PositionManager, branch, true)
}

func (b *Bank) newEmployee(name Name, position string, branch *Branch, allowManager bool) (*Employee, error) {
	if position == "" {
		return nil, fmt.Errorf("%w: position cannot be empty", ErrInvalid)
	}
	if strings.EqualFold(strings.TrimSpace(position), PositionManager) && !allowManager {
		return nil, fmt.Errorf("%w: position %q is reserved, use NewManager", ErrInvalid, PositionManager)
	}
	if branch == nil {
		return nil, fmt.Errorf("%w: branch cannot be nil", ErrInvalid)
	}
	return &Employee{
		ID:       b.employeeIDs.Next(),
		Name:     name,
		Position: position,
		Branch:   branch,
	}, nil
}

func (e *Employee) AddManager(m *Employee) error {
	if m == e {
		return ErrSelfManager
	}
	for _, existing := range e.managers {
		if existing == m {
			return ErrDuplicateManager
		}
	}
	e.managers = append(e.managers, m)
	return nil
}

func (e *Employee) RemoveManager(m *Employee) error {
	for i, existing := range e.managers {
		if existing == m {
			e.managers = append(e.managers[:i], e.managers[i+1:]...)
			return nil
		}
	}
	return ErrManagerNotFound
}

// Managers returns a copy of the employee's manager list.
func (e *Employee) Managers() []*Employee {
	out := make([]*Employee, len(e.managers))
	copy(out, e.managers)
	return out
}

// DisplayInfo writes a plain-text dump of the employee to w.
func (e *Employee) DisplayInfo(w io.Writer) {
	fmt.Fprintf(w, "Employee ID: %d\n", e.ID)
	fmt.Fprintf(w, "Name: %s\n", e.Name)
	fmt.Fprintf(w, "Position: %s\n", e.Position)
	fmt.Fprintf(w, "Branch: %s\n", e.Branch.Name)
}
