// Package warehouserepo persists warehouses.
package warehouserepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/dberr"
	"marketplace/internal/core/domain/model/warehouse"

	"gorm.io/gorm"
)

// WarehouseDTO is the warehouses table row.
type WarehouseDTO struct {
	WarehouseID string `gorm:"type:varchar(64);primaryKey"`
	Location    string `gorm:"type:varchar(255);not null"`
	Capacity    int    `gorm:"not null;check:chk_warehouses_capacity_nonnegative,capacity >= 0"`
	EmployeeID  string `gorm:"type:varchar(64);not null;index"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		WarehouseID: w.ID(),
		Location:    w.Location(),
		Capacity:    w.Capacity(),
		EmployeeID:  w.EmployeeID(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	return warehouse.NewWarehouse(dto.WarehouseID, dto.Location, dto.Capacity, dto.EmployeeID)
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// GormWarehouseRepository implements ports.WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormWarehouseRepository(db *gorm.DB, tracker aggregateTracker) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, "warehouses", dto.WarehouseID)
	}

	r.tracker.TrackAggregate("warehouses/"+aggregate.ID(), aggregate)
	return nil
}

func (r *GormWarehouseRepository) Get(ctx context.Context, warehouseID string) (*warehouse.Warehouse, error) {
	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).Take(&dto, "warehouse_id = ?", warehouseID).Error; err != nil {
		return nil, dberr.Translate(err, "warehouse", warehouseID)
	}

	return toDomain(dto)
}
