package ports

import "context"

// SequenceGenerator mints values from named counters.
//
// Next increments the counter and returns the new value in one atomic step.
// It never joins a caller's transaction, so a minted value stays consumed even
// if the caller rolls back. Unknown names fail with errs.ObjectNotFoundError.
type SequenceGenerator interface {
	Next(ctx context.Context, name string) (int64, error)
}
