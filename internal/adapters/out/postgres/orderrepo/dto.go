// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order row carries its payment snapshot in embedded columns and its line
// items as a jsonb array, mirroring the document the order was placed as.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	OrderID    string             `gorm:"type:varchar(32);primaryKey"`
	OrderDate  time.Time          `gorm:"not null;index"`
	Status     string             `gorm:"type:varchar(16);not null;index"`
	CustomerID string             `gorm:"type:varchar(64);not null;index"`
	ShippingID string             `gorm:"type:varchar(64);not null"`
	Payment    PaymentSnapshotDTO `gorm:"embedded;embeddedPrefix:payment_"`
	Lines      []LineItemDTO      `gorm:"type:jsonb;serializer:json;not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// PaymentSnapshotDTO is the payment copy embedded into an order row.
type PaymentSnapshotDTO struct {
	ID                string          `gorm:"type:varchar(64);not null"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TransactionStatus string          `gorm:"type:varchar(16);not null;index"`
}

// LineItemDTO is one element of the lines jsonb array.
type LineItemDTO struct {
	ProductID string `json:"productid"`
	Quantity  int    `json:"quantity"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	lines := make([]LineItemDTO, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, LineItemDTO{ProductID: l.ProductID(), Quantity: l.Quantity()})
	}

	return OrderDTO{
		OrderID:    o.ID().String(),
		OrderDate:  o.PlacedAt(),
		Status:     o.Status().String(),
		CustomerID: o.CustomerID(),
		ShippingID: o.ShippingID(),
		Payment: PaymentSnapshotDTO{
			ID:                o.Payment().ID(),
			Amount:            o.Payment().Amount().Amount(),
			TransactionStatus: o.Payment().Status().String(),
		},
		Lines: lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := order.ParseID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Payment.Amount)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := payment.ParseStatus(dto.Payment.TransactionStatus)
	if err != nil {
		return nil, err
	}
	p, err := payment.NewPayment(dto.Payment.ID, amount, paymentStatus)
	if err != nil {
		return nil, err
	}

	productIDs := make([]string, 0, len(dto.Lines))
	quantities := make([]int, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		productIDs = append(productIDs, l.ProductID)
		quantities = append(quantities, l.Quantity)
	}
	lines, err := order.NewLineItems(productIDs, quantities)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.OrderDate, status, dto.CustomerID, p, dto.ShippingID, lines)
}
