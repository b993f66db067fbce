package entities

import (
	"math/rand"
	"testing"
	"time"
)

var (
	windowStart = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
)

func windowOrder(isPaid bool) Order {
	return Order{
		ID:        "ord-1",
		StartDate: windowStart,
		EndDate:   windowEnd,
		IsPaid:    isPaid,
		IsActive:  true,
		ClientID:  "cli-1",
	}
}

func TestOrderValidity(t *testing.T) {
	t.Run("before window is futura", func(t *testing.T) {
		now := windowStart.Add(-time.Hour)
		if got := OrderValidity(windowOrder(false), now); got != ValidityStatusFutura {
			t.Fatalf("expected FUTURA, got %s", got)
		}
	})

	t.Run("inside window is vigente", func(t *testing.T) {
		now := windowStart.Add(24 * time.Hour)
		if got := OrderValidity(windowOrder(false), now); got != ValidityStatusVigente {
			t.Fatalf("expected VIGENTE, got %s", got)
		}
	})

	t.Run("after window is vencida regardless of payment", func(t *testing.T) {
		now := windowEnd.Add(time.Hour)
		for _, paid := range []bool{false, true} {
			if got := OrderValidity(windowOrder(paid), now); got != ValidityStatusVencida {
				t.Fatalf("expected VENCIDA for paid=%v, got %s", paid, got)
			}
		}
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		if got := OrderValidity(windowOrder(false), windowStart); got != ValidityStatusVigente {
			t.Fatalf("expected VIGENTE at start instant, got %s", got)
		}
		if got := OrderValidity(windowOrder(false), windowEnd); got != ValidityStatusVigente {
			t.Fatalf("expected VIGENTE at end instant, got %s", got)
		}
	})

	t.Run("payment never changes futura or vigente", func(t *testing.T) {
		instants := []time.Time{windowStart.Add(-time.Minute), windowStart, windowEnd}
		for _, now := range instants {
			unpaid := OrderValidity(windowOrder(false), now)
			paid := OrderValidity(windowOrder(true), now)
			if unpaid != paid {
				t.Fatalf("payment changed classification at %v: %s vs %s", now, unpaid, paid)
			}
		}
	})

	t.Run("deterministic for equal inputs", func(t *testing.T) {
		now := windowEnd.Add(time.Second)
		first := OrderValidity(windowOrder(false), now)
		for i := 0; i < 10; i++ {
			if got := OrderValidity(windowOrder(false), now); got != first {
				t.Fatalf("classification not stable: %s vs %s", first, got)
			}
		}
	})
}

func TestOrderOverdueUnpaid(t *testing.T) {
	t.Run("strictly after end and unpaid", func(t *testing.T) {
		o := windowOrder(false)
		if o.OverdueUnpaid(windowEnd) {
			t.Fatalf("order at exact end instant must not be overdue")
		}
		if !o.OverdueUnpaid(windowEnd.Add(time.Nanosecond)) {
			t.Fatalf("order one instant past end must be overdue")
		}
	})

	t.Run("paid order is never delinquent", func(t *testing.T) {
		o := windowOrder(true)
		if o.OverdueUnpaid(windowEnd.Add(24 * time.Hour)) {
			t.Fatalf("paid order must not count as overdue-unpaid")
		}
	})
}

func TestFinancialStatusOf(t *testing.T) {
	now := windowEnd.Add(48 * time.Hour)

	t.Run("zero orders is adimplente", func(t *testing.T) {
		if got := FinancialStatusOf(nil, now); got != FinancialStatusAdimplente {
			t.Fatalf("expected ADIMPLENTE, got %s", got)
		}
	})

	t.Run("single overdue unpaid order is inadimplente", func(t *testing.T) {
		if got := FinancialStatusOf([]Order{windowOrder(false)}, now); got != FinancialStatusInadimplente {
			t.Fatalf("expected INADIMPLENTE, got %s", got)
		}
	})

	t.Run("paying the only overdue order restores adimplente", func(t *testing.T) {
		if got := FinancialStatusOf([]Order{windowOrder(true)}, now); got != FinancialStatusAdimplente {
			t.Fatalf("expected ADIMPLENTE, got %s", got)
		}
	})

	t.Run("one delinquent order dominates", func(t *testing.T) {
		current := Order{
			StartDate: now.Add(-time.Hour),
			EndDate:   now.Add(time.Hour),
			IsPaid:    true,
			IsActive:  true,
		}
		orders := []Order{current, windowOrder(false)}
		if got := FinancialStatusOf(orders, now); got != FinancialStatusInadimplente {
			t.Fatalf("expected INADIMPLENTE, got %s", got)
		}
	})

	t.Run("inactive orders still count", func(t *testing.T) {
		o := windowOrder(false)
		o.IsActive = false
		if got := FinancialStatusOf([]Order{o}, now); got != FinancialStatusInadimplente {
			t.Fatalf("deactivated overdue order must still cause INADIMPLENTE, got %s", got)
		}
	})

	t.Run("randomized order sets match the any-overdue-unpaid rule", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 500; i++ {
			n := rng.Intn(8)
			orders := make([]Order, 0, n)
			expectDelinquent := false
			for j := 0; j < n; j++ {
				start := now.Add(time.Duration(rng.Intn(200)-100) * time.Hour)
				end := start.Add(time.Duration(rng.Intn(72)+1) * time.Hour)
				o := Order{
					StartDate: start,
					EndDate:   end,
					IsPaid:    rng.Intn(2) == 0,
					IsActive:  rng.Intn(2) == 0,
				}
				if now.After(o.EndDate) && !o.IsPaid {
					expectDelinquent = true
				}
				orders = append(orders, o)
			}

			want := FinancialStatusAdimplente
			if expectDelinquent {
				want = FinancialStatusInadimplente
			}
			if got := FinancialStatusOf(orders, now); got != want {
				t.Fatalf("iteration %d: expected %s, got %s (orders=%+v)", i, want, got, orders)
			}
		}
	})
}
