// Package shippingrepo persists shipping records.
package shippingrepo

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/dberr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipping"

	"gorm.io/gorm"
)

// ShippingDTO is the shippings table row. CreatedAt and UpdatedAt are
// maintained by gorm; the pending payment cohort report measures processing
// time against UpdatedAt.
type ShippingDTO struct {
	ShippingID     string     `gorm:"type:varchar(64);primaryKey"`
	TrackingNo     string     `gorm:"type:varchar(64);not null"`
	DeliveryStatus string     `gorm:"type:varchar(16);not null"`
	Address        AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ShippingDTO) TableName() string {
	return "shippings"
}

// AddressDTO is embedded into the shippings table.
type AddressDTO struct {
	Street   string `gorm:"type:varchar(255);not null"`
	City     string `gorm:"type:varchar(128);not null"`
	District string `gorm:"type:varchar(128);not null"`
}

func fromDomain(s *shipping.Shipping) ShippingDTO {
	return ShippingDTO{
		ShippingID:     s.ID(),
		TrackingNo:     s.TrackingNo(),
		DeliveryStatus: s.Status().String(),
		Address: AddressDTO{
			Street:   s.Address().Street(),
			City:     s.Address().City(),
			District: s.Address().District(),
		},
	}
}

func toDomain(dto ShippingDTO) (*shipping.Shipping, error) {
	addr, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.District)
	if err != nil {
		return nil, err
	}
	status, err := shipping.ParseStatus(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}
	return shipping.NewShipping(dto.ShippingID, dto.TrackingNo, status, addr)
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// GormShippingRepository implements ports.ShippingRepository using GORM.
type GormShippingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormShippingRepository(db *gorm.DB, tracker aggregateTracker) *GormShippingRepository {
	return &GormShippingRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormShippingRepository) Add(ctx context.Context, aggregate *shipping.Shipping) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, "shipping", dto.ShippingID)
	}

	r.tracker.TrackAggregate("shippings/"+aggregate.ID(), aggregate)
	return nil
}

func (r *GormShippingRepository) Get(ctx context.Context, shippingID string) (*shipping.Shipping, error) {
	var dto ShippingDTO
	if err := r.db.WithContext(ctx).Take(&dto, "shipping_id = ?", shippingID).Error; err != nil {
		return nil, dberr.Translate(err, "shipping", shippingID)
	}

	return toDomain(dto)
}

func (r *GormShippingRepository) Exists(ctx context.Context, shippingID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ShippingDTO{}).
		Where("shipping_id = ?", shippingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
