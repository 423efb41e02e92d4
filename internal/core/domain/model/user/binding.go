package user

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrBindingIsNotConstructed is returned when a Binding was not built by NewBinding.
var ErrBindingIsNotConstructed = errors.New("Binding must be created via NewBinding constructor")

// Binding is a customer, seller or employee record pointing at a user.
// The key namespace is per role: C001 and S001 may point at the same user.
type Binding struct {
	role   Role
	id     string
	userID string
	guard  guard.ConstructorGuard
}

// NewBinding creates a role binding. It does not check that userID exists.
func NewBinding(role Role, id, userID string) (*Binding, error) {
	b := &Binding{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setRole(role),
		b.setID(id),
		b.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate reports whether the binding was built by NewBinding.
func (b *Binding) Validate() error {
	if b == nil {
		return ErrBindingIsNotConstructed
	}
	return b.guard.Validate(ErrBindingIsNotConstructed)
}

func (b *Binding) Role() Role     { return b.role }
func (b *Binding) ID() string     { return b.id }
func (b *Binding) UserID() string { return b.userID }

func (b *Binding) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	b.role = role
	return nil
}

func (b *Binding) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError(b.role.String() + "id")
	}
	b.id = id
	return nil
}

func (b *Binding) setUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errs.NewValueIsRequiredError("userid")
	}
	b.userID = userID
	return nil
}
