package response

import (
	"testing"
	"time"

	"gestao_cobranca/internal/domain/entities"
)

func TestFromOrder_DerivesValidity(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"future window", now.Add(24 * time.Hour), now.Add(48 * time.Hour), "FUTURA"},
		{"current window", now.Add(-24 * time.Hour), now.Add(24 * time.Hour), "VIGENTE"},
		{"expired window", now.Add(-48 * time.Hour), now.Add(-24 * time.Hour), "VENCIDA"},
		{"ends exactly now", now.Add(-24 * time.Hour), now, "VIGENTE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromOrder(entities.Order{ID: "order-1", StartDate: tc.start, EndDate: tc.end}, now)
			if got.ValidityStatus != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.ValidityStatus)
			}
		})
	}
}

func TestFromClientOrder_FormatsDates(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:        "order-1",
		StartDate: time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	got := FromClientOrder(order, now)
	if got.StartDateFormatted != "02/01/2026" {
		t.Fatalf("unexpected start date: %s", got.StartDateFormatted)
	}
	if got.EndDateFormatted != "31/12/2026" {
		t.Fatalf("unexpected end date: %s", got.EndDateFormatted)
	}
	if got.ValidityStatus != "VIGENTE" {
		t.Fatalf("unexpected validity: %s", got.ValidityStatus)
	}
}
