// Package sequencerepo mints values from named counters.
package sequencerepo

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// SequenceDTO is one named counter. Value is the last value handed out.
type SequenceDTO struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}

func (SequenceDTO) TableName() string {
	return "sequences"
}

// GormSequenceGenerator implements ports.SequenceGenerator.
//
// It must be built on the root connection, never on a unit of work's
// transaction: a value minted for an order that later rolls back stays
// consumed.
type GormSequenceGenerator struct {
	db *gorm.DB
}

func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

// Next increments the counter and returns the new value in one statement,
// so concurrent callers always see distinct values.
func (g *GormSequenceGenerator) Next(ctx context.Context, name string) (int64, error) {
	var values []int64
	if err := g.db.WithContext(ctx).
		Raw("UPDATE sequences SET value = value + 1 WHERE name = ? RETURNING value", name).
		Scan(&values).Error; err != nil {
		return 0, err
	}

	if len(values) == 0 {
		return 0, errs.NewObjectNotFoundError("sequence", name)
	}
	return values[0], nil
}
