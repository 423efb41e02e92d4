package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAddUserCommandIsNotConstructed = errors.New(
	"AddUserCommand must be created via NewAddUserCommand constructor",
)

// AddUserCommand registers a marketplace identity.
//
// Example:
//
//	addr, _ := kernel.NewAddress("123 Mogoma St", "Gaborone", "SE")
//	cmd, err := NewAddUserCommand("U001", "Mpho Kgosi", "mpho@example.com", "+26771000000", addr, user.Customer)
type AddUserCommand struct { //nolint:recvcheck //using for validation
	userID  string
	name    string
	email   string
	contact string
	address kernel.Address
	role    user.Role

	guard guard.ConstructorGuard
}

func NewAddUserCommand(
	userID, name, email, contact string,
	address kernel.Address,
	role user.Role,
) (AddUserCommand, error) {
	cmd := AddUserCommand{
		name:    name,
		email:   email,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setAddress(address),
		cmd.setRole(role),
	); err != nil {
		return AddUserCommand{}, err
	}

	return cmd, nil
}

func (c AddUserCommand) Validate() error {
	return c.guard.Validate(ErrAddUserCommandIsNotConstructed)
}

func (c AddUserCommand) UserID() string          { return c.userID }
func (c AddUserCommand) Name() string            { return c.name }
func (c AddUserCommand) Email() string           { return c.email }
func (c AddUserCommand) Contact() string         { return c.contact }
func (c AddUserCommand) Address() kernel.Address { return c.address }
func (c AddUserCommand) Role() user.Role         { return c.role }

func (c *AddUserCommand) setUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("userid")
	}
	c.userID = userID
	return nil
}

func (c *AddUserCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *AddUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
