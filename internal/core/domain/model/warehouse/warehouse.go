// Package warehouse models storage sites run by employees.
package warehouse

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse was not built by NewWarehouse.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse is a storage site managed by one employee.
type Warehouse struct {
	id         string
	location   string
	capacity   int
	employeeID string
	guard      guard.ConstructorGuard
}

func NewWarehouse(id, location string, capacity int, employeeID string) (*Warehouse, error) {
	w := &Warehouse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setLocation(location),
		w.setCapacity(capacity),
		w.setEmployeeID(employeeID),
	); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

func (w *Warehouse) ID() string         { return w.id }
func (w *Warehouse) Location() string   { return w.location }
func (w *Warehouse) Capacity() int      { return w.capacity }
func (w *Warehouse) EmployeeID() string { return w.employeeID }

func (w *Warehouse) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("warehouseid")
	}
	w.id = id
	return nil
}

func (w *Warehouse) setLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	w.location = location
	return nil
}

func (w *Warehouse) setCapacity(capacity int) error {
	if capacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid", fmt.Errorf("%d is negative", capacity))
	}
	w.capacity = capacity
	return nil
}

func (w *Warehouse) setEmployeeID(employeeID string) error {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return errs.NewValueIsRequiredError("employeeid")
	}
	w.employeeID = employeeID
	return nil
}
