package invoices

import "time"

// ResolvePaidDate computes the paid_date resulting from applying the requested
// paid flag to an invoice whose current paid_date is given.
//
//   - unpaid -> paid: stamp with now
//   - any -> unpaid: clear
//   - paid -> paid: keep the original date, no churn
//
// now is passed in rather than read from the wall clock so the rules stay
// deterministic under test.
func ResolvePaidDate(current *time.Time, requestedPaid bool, now time.Time) *time.Time {
	switch {
	case current == nil && requestedPaid:
		return &now
	case !requestedPaid:
		return nil
	default:
		return current
	}
}
