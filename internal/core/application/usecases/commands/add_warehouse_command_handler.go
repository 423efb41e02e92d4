package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
)

// AddWarehouseCommandHandler stores a warehouse run by an existing employee,
// failing with errs.ReferenceError("employee") otherwise.
type AddWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

func NewAddWarehouseCommandHandler(uowFactory WarehouseUoWFactory) AddWarehouseCommandHandler {
	return AddWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddWarehouseCommandHandler) Handle(ctx context.Context, cmd AddWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	w := cmd.Warehouse()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.RoleBindingRepository().Get(ctx, user.Employee, w.EmployeeID()); err != nil {
		return asReference(err, "employee", w.EmployeeID())
	}

	if err := uow.WarehouseRepository().Add(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
