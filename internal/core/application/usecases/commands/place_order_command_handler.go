package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// PlaceOrderCommandHandler places an order in a single transaction: either
// the shipping, payment, stock decrements and order all become visible, or
// none of them do.
//
// Steps, each aborting the transaction on failure:
//  1. the customer must exist, else errs.ReferenceError("customer")
//  2. the shipping id must be unused, else errs.DuplicateKeyError("shipping")
//  3. every product must exist, else errs.ReferenceError("product"), and have
//     enough stock for the summed quantity of its lines, else
//     errs.InsufficientStockError; product rows stay locked until commit
//  4. the payment must cover the order within 0.01, else
//     errs.PaymentMismatchError
//  5. a sequence value is minted outside the transaction and formatted into
//     the order id
//  6. shipping, payment, stock and order are written
//
// A minted sequence value is never returned; a failed placement leaves a gap.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, sequences, time.Now)
//	id, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInsufficientStock):
//	    // tell the customer
//	case err != nil:
//	    return err
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	sequence   ports.SequenceGenerator
	pricer     services.OrderPricer
	now        func() time.Time
}

// NewPlaceOrderCommandHandler wires the handler. now defaults to time.Now.
func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	sequence ports.SequenceGenerator,
	now func() time.Time,
) PlaceOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		sequence:   sequence,
		pricer:     services.NewOrderPricer(),
		now:        now,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (order.ID, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	// After Commit there is no transaction left and Rollback only reports
	// gorm.ErrInvalidTransaction, so its error is dropped.
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	startedAt := h.now().UTC()
	productRepo := uow.ProductRepository()
	shippingRepo := uow.ShippingRepository()

	if _, err := uow.RoleBindingRepository().Get(ctx, user.Customer, cmd.CustomerID()); err != nil {
		return "", asReference(err, "customer", cmd.CustomerID())
	}

	shipment := cmd.Shipping()
	exists, err := shippingRepo.Exists(ctx, shipment.ID())
	if err != nil {
		return "", err
	}
	if exists {
		return "", errs.NewDuplicateKeyError("shipping", shipment.ID())
	}

	demand := order.Demand(cmd.Lines())
	products := make(map[string]*catalog.Product, len(demand))
	for _, line := range demand {
		p, getErr := productRepo.GetForUpdate(ctx, line.ProductID())
		if getErr != nil {
			return "", asReference(getErr, "product", line.ProductID())
		}
		if err = p.CanReserve(line.Quantity()); err != nil {
			return "", err
		}
		products[p.ID()] = p
	}

	pay := cmd.Payment()
	if err = h.pricer.CheckPayment("", pay.Amount(), cmd.Lines(), products); err != nil {
		return "", err
	}

	seq, err := h.sequence.Next(ctx, order.SequenceName)
	if err != nil {
		return "", err
	}
	orderID, err := order.NewID(startedAt, seq)
	if err != nil {
		return "", err
	}

	o, err := order.NewOrder(orderID, startedAt, cmd.CustomerID(), pay, shipment.ID(), cmd.Lines())
	if err != nil {
		return "", err
	}

	if err = shippingRepo.Add(ctx, shipment); err != nil {
		return "", err
	}
	if err = uow.PaymentRepository().Add(ctx, pay); err != nil {
		return "", err
	}
	for _, line := range demand {
		if err = productRepo.AdjustStock(ctx, line.ProductID(), -line.Quantity()); err != nil {
			return "", err
		}
	}
	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return "", err
	}

	if err = ctx.Err(); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return orderID, nil
}
