package entities

import "time"

// ValidityStatus classifies an order by where the wall clock sits relative to
// its service window. It is presentation-only: computed on every read and
// never persisted, because "now" advances independently of any write.

type ValidityStatus string

const (
	ValidityStatusFutura  ValidityStatus = "FUTURA"
	ValidityStatusVigente ValidityStatus = "VIGENTE"
	ValidityStatusVencida ValidityStatus = "VENCIDA"
)

// OrderValidity classifies an order at the given instant.
//
// Precedence:
//  1. now before StartDate  => FUTURA
//  2. now after EndDate     => VENCIDA (payment ignored for display)
//  3. otherwise             => VIGENTE
//
// Pure function of its two inputs.
func OrderValidity(o Order, now time.Time) ValidityStatus {
	if now.Before(o.StartDate) {
		return ValidityStatusFutura
	}
	if now.After(o.EndDate) {
		return ValidityStatusVencida
	}
	return ValidityStatusVigente
}

// FinancialStatusOf derives a client's financial status from its full order
// set at the given instant: INADIMPLENTE iff at least one order is overdue
// and unpaid, ADIMPLENTE otherwise (including the zero-orders case).
//
// Inactive orders still count. The legacy behavior applies no activity
// filter and that is preserved here until the product decides otherwise.
func FinancialStatusOf(orders []Order, now time.Time) FinancialStatus {
	for _, o := range orders {
		if o.OverdueUnpaid(now) {
			return FinancialStatusInadimplente
		}
	}
	return FinancialStatusAdimplente
}
