package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
)

// AddUserCommandHandler persists a new user. A taken userid surfaces as
// errs.DuplicateKeyError from the repository.
type AddUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewAddUserCommandHandler(uowFactory UserUoWFactory) AddUserCommandHandler {
	return AddUserCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddUserCommandHandler) Handle(ctx context.Context, cmd AddUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Contact(), cmd.Address(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
