package queries

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPendingPaymentCohortQueryIsNotConstructed = errors.New(
	"PendingPaymentCohortQuery must be created via NewPendingPaymentCohortQuery constructor",
)

const (
	// DefaultCohortMonths is the look-back window used when months is zero.
	DefaultCohortMonths = 6
	maxCohortMonths     = 120
)

// PendingPaymentCohortQuery groups line items of orders whose payment is
// still pending and that were placed within the last Months months of Now.
type PendingPaymentCohortQuery struct {
	now    time.Time
	months int

	guard guard.ConstructorGuard
}

func NewPendingPaymentCohortQuery(now time.Time, months int) (PendingPaymentCohortQuery, error) {
	if now.IsZero() {
		return PendingPaymentCohortQuery{}, errs.NewValueIsRequiredError("now")
	}
	if months == 0 {
		months = DefaultCohortMonths
	}
	if months < 0 || months > maxCohortMonths {
		return PendingPaymentCohortQuery{}, errs.NewValueIsOutOfRangeError("months", months, 1, maxCohortMonths)
	}
	return PendingPaymentCohortQuery{now: now.UTC(), months: months, guard: guard.NewConstructorGuard()}, nil
}

func (q PendingPaymentCohortQuery) Validate() error {
	return q.guard.Validate(ErrPendingPaymentCohortQueryIsNotConstructed)
}

func (q PendingPaymentCohortQuery) Now() time.Time { return q.now }
func (q PendingPaymentCohortQuery) Months() int    { return q.months }

// Since is the start of the window.
func (q PendingPaymentCohortQuery) Since() time.Time {
	return q.now.AddDate(0, -q.months, 0)
}

// PendingPaymentCohortQueryResponse is one (category, customer, month)
// group. OrderCount counts line items. AvgProcessingDays is the mean time
// from order date to the shipping record's last update.
type PendingPaymentCohortQueryResponse struct {
	Category          string  `json:"category"`
	CustomerName      string  `json:"customer_name"`
	OrderMonth        int     `json:"order_month"`
	OrderCount        int64   `json:"order_count"`
	AvgProcessingDays float64 `json:"avg_processing_days"`
}
