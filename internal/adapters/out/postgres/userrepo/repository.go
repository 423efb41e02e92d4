package userrepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/dberr"
	"marketplace/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new user. A taken user id yields errs.DuplicateKeyError.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, "users", dto.UserID)
	}

	r.tracker.TrackAggregate("users/"+aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by id.
func (r *GormUserRepository) Get(ctx context.Context, userID string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Take(&dto, "user_id = ?", userID).Error; err != nil {
		return nil, dberr.Translate(err, "user", userID)
	}

	return userToDomain(dto)
}

// GormRoleBindingRepository implements ports.RoleBindingRepository using GORM.
type GormRoleBindingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormRoleBindingRepository(db *gorm.DB, tracker aggregateTracker) *GormRoleBindingRepository {
	return &GormRoleBindingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a binding. The referenced user is not checked here; callers
// resolve it inside the same unit of work.
func (r *GormRoleBindingRepository) Add(ctx context.Context, b *user.Binding) error {
	if err := b.Validate(); err != nil {
		return err
	}

	dto := bindingFromDomain(b)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, dto.Role+"s", dto.BindingID)
	}

	r.tracker.TrackAggregate(dto.Role+"s/"+dto.BindingID, b)
	return nil
}

// Get retrieves the binding for role and id.
func (r *GormRoleBindingRepository) Get(ctx context.Context, role user.Role, id string) (*user.Binding, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dto RoleBindingDTO
	if err := r.db.WithContext(ctx).
		Take(&dto, "role = ? AND binding_id = ?", role.String(), id).Error; err != nil {
		return nil, dberr.Translate(err, role.String(), id)
	}

	return bindingToDomain(dto)
}
