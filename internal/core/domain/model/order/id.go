package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"marketplace/internal/pkg/errs"
)

// SequenceName is the counter that order numbers are minted from.
const SequenceName = "order_seq"

const idDateLayout = "20060102"

var idPattern = regexp.MustCompile(`^ORD-\d{8}-\d{6,}$`)

// ID is an order identifier of the form ORD-YYYYMMDD-NNNNNN.
type ID string

// NewID formats an identifier from the placement time and a minted sequence
// value. The date part is always taken in UTC. Values above 999999 are
// printed in full rather than truncated.
func NewID(placedAt time.Time, seq int64) (ID, error) {
	if seq <= 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("sequence is invalid", fmt.Errorf("%d is not greater than 0", seq))
	}
	return ID(fmt.Sprintf("ORD-%s-%06d", placedAt.UTC().Format(idDateLayout), seq)), nil
}

// ParseID checks that s has the ORD-YYYYMMDD-NNNNNN shape.
func ParseID(s string) (ID, error) {
	id := ID(strings.TrimSpace(s))
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

func (id ID) Validate() error {
	if !idPattern.MatchString(string(id)) {
		return errs.NewValueIsInvalidErrorWithCause("orderid is invalid", fmt.Errorf("%q does not match ORD-YYYYMMDD-NNNNNN", string(id)))
	}
	return nil
}

func (id ID) String() string {
	return string(id)
}
