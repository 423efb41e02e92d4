package payment

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Status is the transaction status of a payment.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Completed
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pending",
		Completed:     "completed",
		Failed:        "failed",
	}
}

// ParseStatus maps a stored transactionstatus back to a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != UnknownStatus && str == normalized {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"transactionstatus is invalid",
		fmt.Errorf("%q is not a valid transaction status", s),
	)
}

func (s Status) Validate() error {
	if s != Pending && s != Completed && s != Failed {
		return errs.NewValueIsInvalidErrorWithCause(
			"transactionstatus is invalid",
			fmt.Errorf("%d is not a valid transaction status", s),
		)
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
