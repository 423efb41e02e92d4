package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand moves an order one step along its lifecycle.
// It is the only write path for an existing order.
type AdvanceOrderStatusCommand struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

func NewAdvanceOrderStatusCommand(orderID string) (AdvanceOrderStatusCommand, error) {
	id, err := order.ParseID(orderID)
	if err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return AdvanceOrderStatusCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() order.ID {
	return c.orderID
}
