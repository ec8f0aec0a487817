package employees

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-dynform/pkg/observable"
)

// ErrNotFound is returned when an id does not match a stored employee.
var ErrNotFound = errors.New("employees: not found")

// Store is safe for concurrent use. Every mutation publishes the new list to
// subscribers.
type Store struct {
	list *observable.Subject[[]Employee]
}

// NewStore creates a store holding initial. Pass Seed() for the sample data.
func NewStore(initial []Employee) *Store {
	return &Store{
		list: observable.NewSubject(cloneEmployees(initial), observable.WithClone(cloneEmployees)),
	}
}

// List returns every employee in insertion order.
func (s *Store) List() []Employee {
	return s.list.Value()
}

// Subscribe streams the employee list, starting with the current one.
func (s *Store) Subscribe() (<-chan []Employee, func()) {
	return s.list.Subscribe()
}

// Get returns the employee with id.
func (s *Store) Get(id int) (Employee, bool) {
	for _, e := range s.list.Value() {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// Add stores employee under the next free id (highest id plus one) and
// returns the stored record. Any id on the input is ignored.
func (s *Store) Add(employee Employee) Employee {
	var stored Employee
	s.list.Update(func(list []Employee) []Employee {
		next := 0
		for _, e := range list {
			if e.ID > next {
				next = e.ID
			}
		}
		stored = employee
		stored.ID = next + 1
		return append(list, stored)
	})
	return stored
}

// Update replaces the employee with id, keeping the id.
func (s *Store) Update(id int, employee Employee) error {
	found := false
	s.list.Update(func(list []Employee) []Employee {
		for i := range list {
			if list[i].ID == id {
				employee.ID = id
				list[i] = employee
				found = true
				break
			}
		}
		return list
	})
	if !found {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// Delete removes the employee with id.
func (s *Store) Delete(id int) error {
	found := false
	s.list.Update(func(list []Employee) []Employee {
		out := list[:0]
		for _, e := range list {
			if e.ID == id {
				found = true
				continue
			}
			out = append(out, e)
		}
		return out
	})
	if !found {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

func cloneEmployees(list []Employee) []Employee {
	return append([]Employee{}, list...)
}
