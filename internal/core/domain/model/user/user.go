package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User was not built by NewUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a marketplace identity. The role is fixed at construction and there
// is no setter for it.
type User struct {
	id      string
	name    string
	email   string
	contact string
	address kernel.Address
	role    Role
	guard   guard.ConstructorGuard
}

// NewUser validates every field and returns a User. It is used both for new
// users and for users loaded from storage.
//
// Example:
//
//	addr, _ := kernel.NewAddress("123 Mogoma St", "Gaborone", "SE")
//	u, err := user.NewUser("U001", "Mpho Kgosi", "mpho@example.com", "+26771000000", addr, user.Customer)
func NewUser(id, name, email, contact string, address kernel.Address, role Role) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setContact(contact),
		u.setAddress(address),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate reports whether the user was built by NewUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() string              { return u.id }
func (u *User) Name() string            { return u.name }
func (u *User) Email() string           { return u.email }
func (u *User) Contact() string         { return u.contact }
func (u *User) Address() kernel.Address { return u.address }
func (u *User) Role() Role              { return u.role }

func (u *User) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("userid")
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid", fmt.Errorf("%q: %w", email, err))
	}
	u.email = email
	return nil
}

// contact is optional.
func (u *User) setContact(contact string) error {
	u.contact = strings.TrimSpace(contact)
	return nil
}

func (u *User) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	u.address = address
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
