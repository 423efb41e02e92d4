package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
)

// AddRoleBindingCommandHandler creates a customer, seller or employee record.
// The referenced user must exist, otherwise errs.ReferenceError("user").
//
// Example:
//
//	cmd, _ := NewAddRoleBindingCommand(user.Customer, "C001", "U001")
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrReference) {
//	    // no such user
//	}
type AddRoleBindingCommandHandler struct {
	uowFactory RoleBindingUoWFactory
}

func NewAddRoleBindingCommandHandler(uowFactory RoleBindingUoWFactory) AddRoleBindingCommandHandler {
	return AddRoleBindingCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddRoleBindingCommandHandler) Handle(ctx context.Context, cmd AddRoleBindingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return asReference(err, "user", cmd.UserID())
	}

	binding, err := user.NewBinding(cmd.Role(), cmd.ID(), cmd.UserID())
	if err != nil {
		return err
	}

	if err = uow.RoleBindingRepository().Add(ctx, binding); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
