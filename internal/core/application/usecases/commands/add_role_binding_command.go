package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAddRoleBindingCommandIsNotConstructed = errors.New(
	"AddRoleBindingCommand must be created via NewAddRoleBindingCommand constructor",
)

// AddRoleBindingCommand covers addCustomer, addSeller and addEmployee. The
// three differ only in Role.
type AddRoleBindingCommand struct { //nolint:recvcheck //using for validation
	role   user.Role
	id     string
	userID string

	guard guard.ConstructorGuard
}

func NewAddRoleBindingCommand(role user.Role, id, userID string) (AddRoleBindingCommand, error) {
	cmd := AddRoleBindingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := role.Validate(); err != nil {
		return AddRoleBindingCommand{}, err
	}
	cmd.role = role

	var errList []error
	if strings.TrimSpace(id) == "" {
		errList = append(errList, errs.NewValueIsRequiredError(role.String()+"id"))
	}
	if strings.TrimSpace(userID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("userid"))
	}
	if err := errors.Join(errList...); err != nil {
		return AddRoleBindingCommand{}, err
	}
	cmd.id = id
	cmd.userID = userID

	return cmd, nil
}

func (c AddRoleBindingCommand) Validate() error {
	return c.guard.Validate(ErrAddRoleBindingCommandIsNotConstructed)
}

func (c AddRoleBindingCommand) Role() user.Role { return c.role }
func (c AddRoleBindingCommand) ID() string      { return c.id }
func (c AddRoleBindingCommand) UserID() string  { return c.userID }
