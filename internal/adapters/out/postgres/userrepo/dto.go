// Package userrepo persists users and the customer, seller and employee
// bindings that point at them.
package userrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserDTO is the users table row.
type UserDTO struct {
	UserID  string     `gorm:"type:varchar(64);primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	Email   string     `gorm:"type:varchar(255);not null"`
	Contact string     `gorm:"type:varchar(64);not null;default:''"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Role    string     `gorm:"type:varchar(16);not null;index"`
}

func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO is embedded into the users table.
type AddressDTO struct {
	Street   string `gorm:"type:varchar(255);not null"`
	City     string `gorm:"type:varchar(128);not null;index"`
	District string `gorm:"type:varchar(128);not null;index"`
}

// RoleBindingDTO is one customer, seller or employee record. The same id
// may be reused across roles, so the key is (role, binding_id).
type RoleBindingDTO struct {
	Role      string `gorm:"type:varchar(16);primaryKey"`
	BindingID string `gorm:"type:varchar(64);primaryKey"`
	UserID    string `gorm:"type:varchar(64);not null;index"`
}

func (RoleBindingDTO) TableName() string {
	return "role_bindings"
}

func userFromDomain(u *user.User) UserDTO {
	return UserDTO{
		UserID:  u.ID(),
		Name:    u.Name(),
		Email:   u.Email(),
		Contact: u.Contact(),
		Address: AddressDTO{
			Street:   u.Address().Street(),
			City:     u.Address().City(),
			District: u.Address().District(),
		},
		Role: u.Role().String(),
	}
}

func userToDomain(dto UserDTO) (*user.User, error) {
	addr, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.District)
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(dto.UserID, dto.Name, dto.Email, dto.Contact, addr, role)
}

func bindingFromDomain(b *user.Binding) RoleBindingDTO {
	return RoleBindingDTO{
		Role:      b.Role().String(),
		BindingID: b.ID(),
		UserID:    b.UserID(),
	}
}

func bindingToDomain(dto RoleBindingDTO) (*user.Binding, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.NewBinding(role, dto.BindingID, dto.UserID)
}
