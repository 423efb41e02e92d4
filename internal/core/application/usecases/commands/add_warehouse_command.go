package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/warehouse"
	"marketplace/internal/pkg/guard"
)

var ErrAddWarehouseCommandIsNotConstructed = errors.New(
	"AddWarehouseCommand must be created via NewAddWarehouseCommand constructor",
)

type AddWarehouseCommand struct {
	warehouse *warehouse.Warehouse

	guard guard.ConstructorGuard
}

func NewAddWarehouseCommand(warehouseID, location string, capacity int, employeeID string) (AddWarehouseCommand, error) {
	w, err := warehouse.NewWarehouse(warehouseID, location, capacity, employeeID)
	if err != nil {
		return AddWarehouseCommand{}, err
	}

	return AddWarehouseCommand{
		warehouse: w,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrAddWarehouseCommandIsNotConstructed)
}

func (c AddWarehouseCommand) Warehouse() *warehouse.Warehouse {
	return c.warehouse
}
