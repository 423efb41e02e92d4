// Package paymentrepo persists payments. Orders keep their own snapshot of
// the payment, so rows here are never joined back into an order aggregate.
package paymentrepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/dberr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentDTO is the payments table row.
type PaymentDTO struct {
	PaymentID         string          `gorm:"type:varchar(64);primaryKey"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TransactionStatus string          `gorm:"type:varchar(16);not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p payment.Payment) PaymentDTO {
	return PaymentDTO{
		PaymentID:         p.ID(),
		Amount:            p.Amount().Amount(),
		TransactionStatus: p.Status().String(),
	}
}

func toDomain(dto PaymentDTO) (payment.Payment, error) {
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return payment.Payment{}, err
	}
	status, err := payment.ParseStatus(dto.TransactionStatus)
	if err != nil {
		return payment.Payment{}, err
	}
	return payment.NewPayment(dto.PaymentID, amount, status)
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPaymentRepository) Add(ctx context.Context, p payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, "payments", dto.PaymentID)
	}

	r.tracker.TrackAggregate("payments/"+p.ID(), p)
	return nil
}

func (r *GormPaymentRepository) Get(ctx context.Context, paymentID string) (payment.Payment, error) {
	var dto PaymentDTO
	if err := r.db.WithContext(ctx).Take(&dto, "payment_id = ?", paymentID).Error; err != nil {
		return payment.Payment{}, dberr.Translate(err, "payment", paymentID)
	}

	return toDomain(dto)
}
